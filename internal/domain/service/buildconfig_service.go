// Package service defines domain service contracts implemented by the
// infrastructure layer.
package service

import (
	"rig/internal/domain/entity"
)

// BuildConfigService supplies the hand-authored finder data: the build
// templates and the keyword price tables they are priced against. Both are
// configuration loaded at startup, never code.
type BuildConfigService interface {
	// Templates returns the fixed template set in declaration order.
	Templates() []entity.BuildTemplate

	// Pricing returns the finder price-resolution tables.
	Pricing() entity.FinderPricing
}
