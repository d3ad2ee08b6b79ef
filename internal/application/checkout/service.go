// Package checkout implements the order-placement use case.
package checkout

import (
	"context"
	"fmt"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/order"
	"go.uber.org/zap"
)

// Sender publishes an order confirmation to an external destination.
// Implementations must be safe for concurrent use.
type Sender interface {
	Publish(ctx context.Context, msg ConfirmationMessage) error
}

// PlaceOrderInput carries the submitted checkout form.
// Quantities is keyed by product ID; unknown products are ignored and
// non-positive quantities are excluded from the order.
type PlaceOrderInput struct {
	CustomerName  string
	CustomerEmail string
	Quantities    map[string]int
}

// Service coordinates validation, total computation, persistence and
// best-effort notification for a checkout submission.
type Service struct {
	catalog *catalog.Catalog
	orders  order.Repository
	sender  Sender
	logger  *zap.Logger
}

// NewService creates a checkout Service.
func NewService(cat *catalog.Catalog, orders order.Repository, sender Sender, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		catalog: cat,
		orders:  orders,
		sender:  sender,
		logger:  logger,
	}
}

// PlaceOrder validates the submission, prices the cart from the catalog,
// persists the order, and publishes a confirmation.
//
// Validation failures return a domain error before anything is persisted.
// A persistence failure is fatal to the request. A publish failure is logged
// and swallowed; the order is already durable at that point.
func (s *Service) PlaceOrder(ctx context.Context, in PlaceOrderInput) (*order.Order, error) {
	var lines []order.Line
	for _, p := range s.catalog.Products() {
		qty := in.Quantities[p.ID]
		if qty <= 0 {
			continue
		}

		line, err := order.NewLine(p.ID, p.Name, p.Price, qty)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	o, err := order.New(in.CustomerName, in.CustomerEmail, lines)
	if err != nil {
		return nil, err
	}

	if err := s.orders.Insert(ctx, o); err != nil {
		return nil, fmt.Errorf("persist order: %w", err)
	}

	if err := s.sender.Publish(ctx, NewConfirmationMessage(o)); err != nil {
		s.logger.Warn("Order confirmation publish failed",
			zap.String("order_id", o.ID),
			zap.Error(err),
		)
	}

	return o, nil
}
