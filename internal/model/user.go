package model

import "time"

// Role classifies what a user does in the restaurant.
type Role string

const (
	RoleAdmin  Role = "Admin"
	RoleWaiter Role = "Waiter"
	RoleChef   Role = "Chef"
	RoleUser   Role = "User"
)

// ValidRole reports whether r is a known role.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleWaiter, RoleChef, RoleUser:
		return true
	}
	return false
}

// User is a staff member or customer account.
type User struct {
	ID          string     `json:"id" bson:"user_id"`
	Name        string     `json:"name" bson:"name"`
	Email       string     `json:"email" bson:"email"`
	Phone       string     `json:"phone" bson:"phone"`
	Address     string     `json:"address,omitempty" bson:"address"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty" bson:"date_of_birth,omitempty"`
	Gender      string     `json:"gender,omitempty" bson:"gender"`
	Role        Role       `json:"role" bson:"role"`
	IsActive    bool       `json:"isActive" bson:"is_active"`
	CreatedAt   time.Time  `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" bson:"updated_at"`
}
