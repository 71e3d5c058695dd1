package review

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"luxestore-be/internal/logger"
)

type Service interface {
	Create(ctx context.Context, productID, userID string, rating int, comment string) (*Review, error)
	ListByProduct(ctx context.Context, productID string) ([]Review, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, productID, userID string, rating int, comment string) (*Review, error) {
	if userID == "" {
		return nil, ErrUserNotAuthenticated
	}
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	rv := &Review{
		ID:        uuid.New().String(),
		ProductID: productID,
		UserID:    userID,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, rv); err != nil {
		logger.FromCtx(ctx).Error("failed to create review",
			zap.String("product_id", productID), zap.Error(err))
		return nil, ErrFailedCreateReview
	}
	return rv, nil
}

func (s *service) ListByProduct(ctx context.Context, productID string) ([]Review, error) {
	reviews, err := s.repo.ListByProduct(ctx, productID)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to list reviews",
			zap.String("product_id", productID), zap.Error(err))
		return nil, ErrFailedListReviews
	}
	return reviews, nil
}
