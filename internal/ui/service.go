package ui

import (
	"context"

	"github.com/tturner/stockdeck/internal/catalog"
)

// Service is the slice of the catalog client the views consume. The
// views never see transport details; every failure arrives as a
// *catalog.Error through this boundary.
type Service interface {
	List(ctx context.Context, filter catalog.ListFilter) ([]catalog.Item, error)
	LowStock(ctx context.Context, threshold int) ([]catalog.Item, error)
	Get(ctx context.Context, id string) (catalog.Item, error)
	Create(ctx context.Context, in catalog.ItemInput) (catalog.Item, error)
	Update(ctx context.Context, id string, in catalog.ItemInput) (catalog.Item, error)
	Delete(ctx context.Context, id string) error
}
