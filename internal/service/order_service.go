package service

import (
	"context"
	"errors"
	"fmt"

	"dinehub/internal/metrics"
	"dinehub/internal/model"
	"dinehub/internal/repository"

	"github.com/rs/zerolog"
)

// maxUpdateAttempts bounds the optimistic-concurrency retry loop for status
// updates. Each attempt is a fresh read-modify-write cycle.
const maxUpdateAttempts = 3

// orderService implements OrderService.
type orderService struct {
	orderRepo repository.OrderRepository
	menuRepo  repository.MenuRepository
	publisher EventPublisher
	metrics   *metrics.Metrics
	logger    zerolog.Logger
}

// NewOrderService creates a new order service. publisher and m may be nil.
func NewOrderService(
	orderRepo repository.OrderRepository,
	menuRepo repository.MenuRepository,
	publisher EventPublisher,
	m *metrics.Metrics,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		menuRepo:  menuRepo,
		publisher: publisher,
		metrics:   m,
		logger:    logger.With().Str("service", "order").Logger(),
	}
}

// CreateOrder validates the request, prices the line items against the menu
// in one batched read, and persists the order. The price of each line item
// is the menu item's discounted price at the moment of creation; later
// repricing or deletion of a menu item does not change the stored total.
func (s *orderService) CreateOrder(ctx context.Context, req *model.CreateOrderRequest) (*model.Order, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, err
	}

	items := make([]model.LineItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = model.LineItem{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
		}
	}

	order := model.NewOrder(req.CustomerDetails, items)

	prices, err := s.resolvePrices(ctx, order)
	if err != nil {
		return nil, err
	}

	// Recompute the derived total explicitly before the only write, never
	// as a persistence hook.
	if err := order.RecomputeTotal(prices); err != nil {
		s.logger.Warn().
			Err(err).
			Str("order_id", order.OrderID).
			Msg("order references unresolvable menu items")
		return nil, err
	}

	if err := s.orderRepo.Insert(ctx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.OrderID).Msg("failed to persist order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if s.metrics != nil {
		s.metrics.OrdersCreated.Inc()
	}
	if s.publisher != nil {
		s.publisher.OrderCreated(order)
	}

	s.logger.Info().
		Str("order_id", order.OrderID).
		Int("item_count", len(order.Items)).
		Float64("total_price", order.TotalPrice).
		Msg("order created")

	return order, nil
}

// UpdateLineItemStatus runs a bounded optimistic-concurrency loop: read the
// order, apply the status change plus the derived status recomputation, and
// replace the document conditionally on the version that was read. A
// concurrent writer triggers a fresh cycle rather than a lost update.
func (s *orderService) UpdateLineItemStatus(ctx context.Context, orderID string, req *model.UpdateLineItemStatusRequest) (*model.Order, error) {
	if req == nil || req.MenuItemID == "" {
		return nil, model.ErrLineItemNotFound
	}
	if !req.Status.Valid() {
		return nil, model.ErrInvalidStatus
	}

	for attempt := 1; attempt <= maxUpdateAttempts; attempt++ {
		order, err := s.orderRepo.FindByID(ctx, orderID)
		if err != nil {
			return nil, err
		}

		if !order.SetLineItemStatus(req.MenuItemID, req.Status) {
			s.logger.Warn().
				Str("order_id", orderID).
				Str("menu_item_id", req.MenuItemID).
				Msg("line item not found on order")
			return nil, model.ErrLineItemNotFound
		}

		err = s.orderRepo.Update(ctx, order)
		if err == nil {
			if s.metrics != nil && order.Status == model.StatusComplete {
				s.metrics.OrdersCompleted.Inc()
			}
			if s.publisher != nil {
				s.publisher.OrderStatusUpdated(order)
			}

			s.logger.Info().
				Str("order_id", orderID).
				Str("menu_item_id", req.MenuItemID).
				Str("item_status", string(req.Status)).
				Str("order_status", string(order.Status)).
				Msg("line item status updated")

			return order, nil
		}

		if errors.Is(err, model.ErrOrderConflict) {
			if s.metrics != nil {
				s.metrics.OrderConflicts.Inc()
			}
			s.logger.Debug().
				Str("order_id", orderID).
				Int("attempt", attempt).
				Msg("retrying status update after concurrent write")
			continue
		}

		return nil, err
	}

	return nil, model.ErrOrderConflict
}

// GetByID retrieves a single order.
func (s *orderService) GetByID(ctx context.Context, orderID string) (*model.Order, error) {
	if orderID == "" {
		return nil, model.ErrOrderNotFound
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return order, nil
}

// List retrieves all orders.
func (s *orderService) List(ctx context.Context) ([]model.Order, error) {
	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	s.logger.Debug().Int("count", len(orders)).Msg("retrieved orders")
	return orders, nil
}

// resolvePrices performs the single batched menu read for an order and keys
// the result by menu item ID. Soft-deleted and unknown items are absent from
// the map and surface later as ErrMenuItemNotFound.
func (s *orderService) resolvePrices(ctx context.Context, order *model.Order) (map[string]float64, error) {
	seen := make(map[string]bool, len(order.Items))
	ids := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		if !seen[item.MenuItemID] {
			seen[item.MenuItemID] = true
			ids = append(ids, item.MenuItemID)
		}
	}

	menuItems, err := s.menuRepo.GetByIDs(ctx, ids)
	if err != nil {
		s.logger.Error().Err(err).Int("count", len(ids)).Msg("failed to resolve menu prices")
		return nil, fmt.Errorf("failed to resolve menu prices: %w", err)
	}

	prices := make(map[string]float64, len(menuItems))
	for _, item := range menuItems {
		prices[item.ID] = item.DiscountedPrice
	}

	return prices, nil
}

// validateCreateRequest checks the order request fields.
func (s *orderService) validateCreateRequest(req *model.CreateOrderRequest) error {
	if req == nil {
		return fmt.Errorf("order request is nil")
	}

	if err := req.CustomerDetails.Validate(); err != nil {
		return err
	}

	for i, item := range req.Items {
		if item.MenuItemID == "" {
			return fmt.Errorf("item %d: menu item ID is required", i)
		}

		if item.Quantity < 0 {
			s.logger.Warn().
				Int("item_index", i).
				Str("menu_item_id", item.MenuItemID).
				Int("quantity", item.Quantity).
				Msg("invalid quantity")
			return model.ErrInvalidQuantity
		}
	}

	return nil
}
