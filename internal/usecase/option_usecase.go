package usecase

import (
	"rig/internal/domain/entity"
)

// ResolvedOptions is the effective price, identifier and imagery of a
// component once the buyer's sub-option choices are applied.
type ResolvedOptions struct {
	Price      *float64 `json:"price"`
	Identifier string   `json:"identifier,omitempty"`
	Images     []string `json:"images"`
}

// OptionUsecase resolves a component's effective price and imagery for a
// set of selected sub-option values (colour, size, storage variant, ...).
type OptionUsecase interface {
	// Resolve applies the option-override rules: price overrides are
	// consulted in a fixed key precedence order with colour/color
	// aliasing, images follow the component's own declared option
	// groups, and with no applicable override the component's base
	// values are returned unchanged.
	Resolve(component *entity.Component, selected map[string]string) ResolvedOptions
}
