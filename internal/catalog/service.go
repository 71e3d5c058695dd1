package catalog

import (
	"context"

	"go.uber.org/zap"

	"luxestore-be/internal/logger"
)

// Service exposes the catalog to the storefront: a browse call running the
// filter pipeline over the fetched list, plus single-product lookups.
type Service interface {
	Browse(ctx context.Context, f Filter, page, pageSize int) (Page, error)
	Get(ctx context.Context, id string) (*Product, error)
	Categories(ctx context.Context) ([]string, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Browse(ctx context.Context, f Filter, page, pageSize int) (Page, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to list products", zap.Error(err))
		return Page{}, ErrFailedListProducts
	}

	return Query(products, f, page, pageSize), nil
}

func (s *service) Get(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to list categories", zap.Error(err))
		return nil, ErrFailedListCategories
	}
	return categories, nil
}
