package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Status is the fulfillment state of a line item or a whole order.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusComplete Status = "COMPLETE"
	StatusRejected Status = "REJECTED"
)

// Valid reports whether s is one of the known fulfillment states.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusComplete, StatusRejected:
		return true
	}
	return false
}

// CustomerDetails identifies the customer an order was placed for.
type CustomerDetails struct {
	FullName string `json:"fullName" bson:"full_name"`
	Phone    string `json:"phone" bson:"phone"`
}

// Validate checks the customer fields required to place an order.
func (c CustomerDetails) Validate() error {
	if len(c.FullName) < 4 {
		return ErrInvalidCustomerName
	}
	if len(c.Phone) < 10 || len(c.Phone) > 14 {
		return ErrInvalidCustomerPhone
	}
	return nil
}

// LineItem is one entry in an order. MenuItemID is a weak reference: the
// menu item may be repriced or soft-deleted after the order is placed, and
// the order keeps the total computed at order time.
type LineItem struct {
	MenuItemID string `json:"menuItemId" bson:"menu_item_id"`
	Quantity   int    `json:"quantity" bson:"quantity"`
	Status     Status `json:"status" bson:"status"`
}

// Order is the persisted order aggregate. TotalPrice and Status are derived
// fields: they are recomputed by RecomputeTotal and SetLineItemStatus before
// every write and are never set directly by callers.
type Order struct {
	OrderID         string          `json:"orderId" bson:"order_id"`
	CustomerDetails CustomerDetails `json:"customerDetails" bson:"customer_details"`
	Items           []LineItem      `json:"items" bson:"items"`
	TotalPrice      float64         `json:"totalPrice" bson:"total_price"`
	Status          Status          `json:"status" bson:"status"`
	Version         int64           `json:"-" bson:"version"`
	CreatedAt       time.Time       `json:"createdAt" bson:"created_at"`
	UpdatedAt       time.Time       `json:"updatedAt" bson:"updated_at"`
}

// NewOrder builds a pending order with a generated identifier and defaulted
// line items. The total is not priced yet; callers must run RecomputeTotal
// before persisting.
func NewOrder(customer CustomerDetails, items []LineItem) *Order {
	now := time.Now().UTC()
	order := &Order{
		OrderID:         uuid.New().String(),
		CustomerDetails: customer,
		Items:           items,
		Status:          StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	for i := range order.Items {
		if order.Items[i].Quantity == 0 {
			order.Items[i].Quantity = 1
		}
		if order.Items[i].Status == "" {
			order.Items[i].Status = StatusPending
		}
	}

	return order
}

// RecomputeTotal sets TotalPrice to the sum of quantity times unit price
// over all line items, resolving each line item against the prices map keyed
// by menu item ID. Matching is by identifier, never by position, so the
// ordering of the batched lookup result does not matter.
//
// A line item whose reference is missing from the map fails the whole
// recomputation with ErrMenuItemNotFound; a missing catalog entry is never
// silently priced at zero.
func (o *Order) RecomputeTotal(prices map[string]float64) error {
	total := 0.0
	for _, item := range o.Items {
		price, ok := prices[item.MenuItemID]
		if !ok {
			return fmt.Errorf("%w: %s", ErrMenuItemNotFound, item.MenuItemID)
		}
		total += float64(item.Quantity) * price
	}
	o.TotalPrice = total
	return nil
}

// SetLineItemStatus updates the status of the line item referencing
// menuItemID and recomputes the order status. It returns false, leaving the
// order unmodified, when no line item references menuItemID.
func (o *Order) SetLineItemStatus(menuItemID string, status Status) bool {
	for i := range o.Items {
		if o.Items[i].MenuItemID == menuItemID {
			o.Items[i].Status = status
			o.recomputeStatus()
			return true
		}
	}
	return false
}

// recomputeStatus derives the order status from the full line-item list:
// COMPLETE when every item is COMPLETE, REJECTED when every item is
// REJECTED, PENDING otherwise. An order with no items stays PENDING rather
// than vacuously completing.
func (o *Order) recomputeStatus() {
	if len(o.Items) == 0 {
		o.Status = StatusPending
		return
	}

	allComplete := true
	allRejected := true
	for _, item := range o.Items {
		if item.Status != StatusComplete {
			allComplete = false
		}
		if item.Status != StatusRejected {
			allRejected = false
		}
	}

	switch {
	case allComplete:
		o.Status = StatusComplete
	case allRejected:
		o.Status = StatusRejected
	default:
		o.Status = StatusPending
	}
}

// CreateOrderRequest is the request payload for placing an order.
type CreateOrderRequest struct {
	CustomerDetails CustomerDetails   `json:"customerDetails"`
	Items           []LineItemRequest `json:"items"`
}

// LineItemRequest is a single item in an order request.
type LineItemRequest struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
}

// UpdateLineItemStatusRequest is the payload for updating one line item's
// fulfillment status.
type UpdateLineItemStatusRequest struct {
	MenuItemID string `json:"menuItemId"`
	Status     Status `json:"status"`
}
