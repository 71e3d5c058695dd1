package catalog

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")

	ErrFailedListProducts   = errors.New("failed to list products")
	ErrFailedListCategories = errors.New("failed to list categories")
)
