package order

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"luxestore-be/internal/logger"
	"luxestore-be/internal/state"
)

type Service interface {
	Create(ctx context.Context, userID string, lines []state.CartLine) (*Order, error)
	ListByUser(ctx context.Context, userID string) ([]Order, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Create turns the cart lines into a pending order. The total is recomputed
// from the line snapshots, matching what the buyer saw in the cart.
func (s *service) Create(ctx context.Context, userID string, lines []state.CartLine) (*Order, error) {
	if userID == "" {
		return nil, ErrUserNotAuthenticated
	}
	if len(lines) == 0 {
		return nil, ErrCartEmpty
	}

	o := &Order{
		ID:        uuid.New().String(),
		UserID:    userID,
		Status:    StatusPending,
		CreatedAt: time.Now().UTC(),
	}
	for _, line := range lines {
		o.Total += line.Product.Price * float64(line.Quantity)
		o.Items = append(o.Items, Item{
			ID:        uuid.New().String(),
			OrderID:   o.ID,
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			UnitPrice: line.Product.Price,
			Quantity:  line.Quantity,
			Variant:   line.Variant,
		})
	}

	if err := s.repo.Create(ctx, o); err != nil {
		logger.FromCtx(ctx).Error("failed to create order",
			zap.String("user_id", userID), zap.Error(err))
		return nil, ErrFailedCreateOrder
	}

	logger.FromCtx(ctx).Info("order created",
		zap.String("order_id", o.ID),
		zap.String("user_id", userID),
		zap.Float64("total", o.Total),
	)
	return o, nil
}

func (s *service) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	if userID == "" {
		return nil, ErrUserNotAuthenticated
	}

	orders, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to list orders",
			zap.String("user_id", userID), zap.Error(err))
		return nil, ErrFailedListOrders
	}
	return orders, nil
}
