package model

import "time"

// Offer describes a discount applied to a menu item, for display only.
// The pricing engine reads DiscountedPrice and never derives it from here.
type Offer struct {
	Type   string  `json:"type" bson:"type"` // "percentage" or "fixed"
	Amount float64 `json:"amount" bson:"amount"`
}

// MenuOption is a customisation choice on a menu item (size, spice level).
type MenuOption struct {
	Name     string   `json:"name" bson:"name"`
	Choices  []string `json:"choices" bson:"choices"`
	Required bool     `json:"required" bson:"required"`
}

// MenuItem is a sellable entry in the catalog. DiscountedPrice is the
// authoritative unit price used when pricing orders; MainPrice and Offer are
// display concerns.
type MenuItem struct {
	ID              string       `json:"id" bson:"item_id"`
	Name            string       `json:"name" bson:"name"`
	Description     string       `json:"description,omitempty" bson:"description"`
	MainPrice       float64      `json:"mainPrice" bson:"main_price"`
	DiscountedPrice float64      `json:"discountedPrice" bson:"discounted_price"`
	Offer           *Offer       `json:"offer,omitempty" bson:"offer,omitempty"`
	CategoryID      string       `json:"categoryId,omitempty" bson:"category_id"`
	Ingredients     []string     `json:"ingredients,omitempty" bson:"ingredients"`
	Availability    bool         `json:"availability" bson:"availability"`
	Customizable    bool         `json:"customizable" bson:"customizable"`
	Options         []MenuOption `json:"options,omitempty" bson:"options"`
	Veg             bool         `json:"veg" bson:"veg"`
	Allergens       []string     `json:"allergens,omitempty" bson:"allergens"`
	Popular         bool         `json:"popular" bson:"popular"`
	IsDeleted       bool         `json:"-" bson:"is_deleted"`
	CreatedAt       time.Time    `json:"createdAt" bson:"created_at"`
	UpdatedAt       time.Time    `json:"updatedAt" bson:"updated_at"`
}

// MenuFilter narrows List queries. Nil fields are ignored; soft-deleted
// items are always excluded.
type MenuFilter struct {
	CategoryID *string
	Veg        *bool
	Available  *bool
	Popular    *bool
}
