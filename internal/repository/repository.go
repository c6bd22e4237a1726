package repository

import (
	"context"

	"dinehub/internal/model"
)

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// Insert persists a new order document.
	Insert(ctx context.Context, order *model.Order) error

	// FindByID retrieves an order by its generated identifier.
	// Returns model.ErrOrderNotFound when no document matches.
	FindByID(ctx context.Context, orderID string) (*model.Order, error)

	// Update replaces the order document conditionally on its version,
	// bumping the version on success. The replace covers items, total price
	// and status in one write, so derived fields can never be persisted out
	// of step with the items they were computed from.
	// Returns model.ErrOrderConflict when the stored version has moved on,
	// model.ErrOrderNotFound when the order no longer exists.
	Update(ctx context.Context, order *model.Order) error

	// FindAll retrieves every order, newest first.
	FindAll(ctx context.Context) ([]model.Order, error)
}

// MenuRepository defines the interface for menu-item data access operations.
type MenuRepository interface {
	// Create persists a new menu item.
	Create(ctx context.Context, item *model.MenuItem) error

	// Update replaces a menu item. Returns model.ErrMenuItemNotFound when
	// the item does not exist or was soft-deleted.
	Update(ctx context.Context, item *model.MenuItem) error

	// GetByID retrieves a single non-deleted menu item.
	GetByID(ctx context.Context, id string) (*model.MenuItem, error)

	// GetByIDs retrieves the non-deleted menu items for the given IDs in one
	// batched read. Missing IDs are simply absent from the result; callers
	// decide how to treat them.
	GetByIDs(ctx context.Context, ids []string) ([]model.MenuItem, error)

	// List retrieves non-deleted menu items matching the filter.
	List(ctx context.Context, filter model.MenuFilter) ([]model.MenuItem, error)

	// SetAvailability flips the availability flag on a menu item.
	SetAvailability(ctx context.Context, id string, available bool) error

	// SoftDelete marks a menu item deleted without removing the document.
	SoftDelete(ctx context.Context, id string) error
}

// CategoryRepository defines the interface for category data access operations.
type CategoryRepository interface {
	// Create persists a new category. Returns model.ErrCategoryExists when a
	// non-deleted category already uses the name.
	Create(ctx context.Context, category *model.Category) error

	// Update replaces a category.
	Update(ctx context.Context, category *model.Category) error

	// GetByID retrieves a single non-deleted category.
	GetByID(ctx context.Context, id string) (*model.Category, error)

	// List retrieves all non-deleted categories.
	List(ctx context.Context) ([]model.Category, error)

	// SoftDelete marks a category deleted without removing the document.
	SoftDelete(ctx context.Context, id string) error
}

// UserRepository defines the interface for user data access operations.
type UserRepository interface {
	// Create persists a new user.
	Create(ctx context.Context, user *model.User) error

	// Update replaces a user. Returns model.ErrUserNotFound when absent.
	Update(ctx context.Context, user *model.User) error

	// GetByID retrieves a single user.
	GetByID(ctx context.Context, id string) (*model.User, error)

	// List retrieves all users.
	List(ctx context.Context) ([]model.User, error)

	// Delete removes a user document.
	Delete(ctx context.Context, id string) error
}
