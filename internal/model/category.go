package model

import "time"

// Category groups menu items. Names are unique among non-deleted categories.
type Category struct {
	ID        string    `json:"id" bson:"category_id"`
	Name      string    `json:"name" bson:"name"`
	Popular   bool      `json:"popular" bson:"popular"`
	IsDeleted bool      `json:"-" bson:"is_deleted"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}
