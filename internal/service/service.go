package service

import (
	"context"

	"dinehub/internal/model"
)

// OrderService defines operations for order lifecycle management.
type OrderService interface {
	// CreateOrder validates the request, prices the line items against the
	// menu in one batched read, and persists the order.
	CreateOrder(ctx context.Context, req *model.CreateOrderRequest) (*model.Order, error)

	// UpdateLineItemStatus sets one line item's fulfillment status and
	// recomputes the order status, persisting the result.
	UpdateLineItemStatus(ctx context.Context, orderID string, req *model.UpdateLineItemStatusRequest) (*model.Order, error)

	// GetByID retrieves a single order.
	GetByID(ctx context.Context, orderID string) (*model.Order, error)

	// List retrieves all orders.
	List(ctx context.Context) ([]model.Order, error)
}

// MenuService defines operations for menu-item management.
type MenuService interface {
	// Create adds a menu item to the catalog.
	Create(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error)

	// Update replaces an existing menu item.
	Update(ctx context.Context, id string, item *model.MenuItem) (*model.MenuItem, error)

	// GetByID retrieves a single menu item.
	GetByID(ctx context.Context, id string) (*model.MenuItem, error)

	// List retrieves menu items matching the filter.
	List(ctx context.Context, filter model.MenuFilter) ([]model.MenuItem, error)

	// SetAvailability toggles whether a menu item can currently be ordered.
	SetAvailability(ctx context.Context, id string, available bool) error

	// Delete soft-deletes a menu item.
	Delete(ctx context.Context, id string) error
}

// CategoryService defines operations for menu-category management.
type CategoryService interface {
	// Create adds a category.
	Create(ctx context.Context, category *model.Category) (*model.Category, error)

	// Update replaces an existing category.
	Update(ctx context.Context, id string, category *model.Category) (*model.Category, error)

	// GetByID retrieves a single category.
	GetByID(ctx context.Context, id string) (*model.Category, error)

	// List retrieves all categories.
	List(ctx context.Context) ([]model.Category, error)

	// Delete soft-deletes a category.
	Delete(ctx context.Context, id string) error
}

// UserService defines operations for user management.
type UserService interface {
	// Create adds a user.
	Create(ctx context.Context, user *model.User) (*model.User, error)

	// Update replaces an existing user.
	Update(ctx context.Context, id string, user *model.User) (*model.User, error)

	// GetByID retrieves a single user.
	GetByID(ctx context.Context, id string) (*model.User, error)

	// List retrieves all users.
	List(ctx context.Context) ([]model.User, error)

	// Delete removes a user.
	Delete(ctx context.Context, id string) error
}

// EventPublisher emits order lifecycle events. Implementations must not
// block the write path.
type EventPublisher interface {
	OrderCreated(order *model.Order)
	OrderStatusUpdated(order *model.Order)
}
