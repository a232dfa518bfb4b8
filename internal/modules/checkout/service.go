package checkout

import (
	"context"

	"github.com/faizaniiiking/Ecommerce/internal/modules/cart"
	"github.com/faizaniiiking/Ecommerce/internal/modules/orders"
)

type Service struct {
	orders *orders.Repo
}

func NewService(orderRepo *orders.Repo) *Service {
	return &Service{orders: orderRepo}
}

type Result struct {
	OrderID string
	Total   float64
}

// Place converts the cart snapshot into a persisted order. The total comes
// from the snapshot itself, one unit per entry; duplicate entries stay
// separate lines. The caller clears the cart only after a nil error.
func (s *Service) Place(ctx context.Context, c cart.Cart, idemKey *string) (Result, error) {
	if len(c.Items) == 0 {
		return Result{}, orders.ErrCartEmpty
	}

	lines := make([]orders.Line, 0, len(c.Items))
	for _, it := range c.Items {
		lines = append(lines, orders.Line{ProductID: it.ID, Quantity: 1})
	}

	o, err := s.orders.Create(ctx, orders.CreateInput{
		Lines:          lines,
		Total:          cart.Total(c),
		IdempotencyKey: idemKey,
	})
	if err != nil {
		return Result{}, err
	}
	return Result{OrderID: o.ID, Total: o.Total}, nil
}
