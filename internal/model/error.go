package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON      = "INVALID_JSON"
	ErrCodeBadRequest       = "BAD_REQUEST"
	ErrCodeInvalidCustomer  = "INVALID_CUSTOMER"
	ErrCodeInvalidQuantity  = "INVALID_QUANTITY"
	ErrCodeInvalidStatus    = "INVALID_STATUS"
	ErrCodeMenuItemNotFound = "MENU_ITEM_NOT_FOUND"
	ErrCodeLineItemNotFound = "LINE_ITEM_NOT_FOUND"
	ErrCodeOrderNotFound    = "ORDER_NOT_FOUND"
	ErrCodeOrderConflict    = "ORDER_CONFLICT"
	ErrCodeCategoryExists   = "CATEGORY_EXISTS"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeUnauthorised     = "UNAUTHORIZED"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// DomainError is a business-logic error with a stable code.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrInvalidCustomerName  = NewDomainError(ErrCodeInvalidCustomer, "Customer name must be at least 4 characters")
	ErrInvalidCustomerPhone = NewDomainError(ErrCodeInvalidCustomer, "Customer phone must be between 10 and 14 characters")
	ErrInvalidQuantity      = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrInvalidStatus        = NewDomainError(ErrCodeInvalidStatus, "Status must be PENDING, COMPLETE or REJECTED")
	ErrMenuItemNotFound     = NewDomainError(ErrCodeMenuItemNotFound, "One or more menu items not found")
	ErrLineItemNotFound     = NewDomainError(ErrCodeLineItemNotFound, "No line item references the given menu item")
	ErrOrderNotFound        = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrOrderConflict        = NewDomainError(ErrCodeOrderConflict, "Order was modified concurrently, retries exhausted")
	ErrCategoryExists       = NewDomainError(ErrCodeCategoryExists, "A category with this name already exists")
	ErrCategoryNotFound     = NewDomainError(ErrCodeNotFound, "Category not found")
	ErrUserNotFound         = NewDomainError(ErrCodeNotFound, "User not found")
)
