// Package repository defines the data-access contracts of the domain.
package repository

import (
	"context"

	"rig/internal/domain/entity"
	"rig/internal/errors"
)

// ErrCategoryNotFound is returned when a category has no catalog slice.
var ErrCategoryNotFound = errors.New("category not found in catalog")

// CatalogRepository supplies the immutable component catalog the decision
// layer operates on. Implementations resolve the catalog before any
// decision function runs; the decision layer itself never performs I/O.
type CatalogRepository interface {
	// FetchComponents returns the ordered component records of one
	// category. Unknown categories return ErrCategoryNotFound.
	FetchComponents(ctx context.Context, category entity.Category) ([]entity.Component, error)

	// Snapshot returns the full catalog keyed by category. The returned
	// value must be treated as read-only.
	Snapshot(ctx context.Context) (entity.Catalog, error)
}
