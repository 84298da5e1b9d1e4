// Package entity contains the core business objects of the project.
package entity

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Component is a single catalog entry. Every category shares the same
// closed shape; fields that do not apply to a category are simply left
// unset. Numeric fields are pointers so that "absent" stays distinguishable
// from zero — consumers apply documented defaults, never silent zeros.
type Component struct {
	ID         string   `json:"id" yaml:"id"`
	Category   Category `json:"category" yaml:"category"`
	Name       string   `json:"name" yaml:"name"`
	Price      *float64 `json:"price,omitempty" yaml:"price"`
	Identifier string   `json:"identifier,omitempty" yaml:"identifier"`
	Images     []string `json:"images,omitempty" yaml:"images"`

	// CPU / motherboard
	Socket     string `json:"socket,omitempty" yaml:"socket"`
	Chipset    string `json:"chipset,omitempty" yaml:"chipset"`
	Generation string `json:"generation,omitempty" yaml:"generation"`

	// Motherboard
	FormFactor string   `json:"formFactor,omitempty" yaml:"formFactor"`
	RAMSupport []string `json:"ramSupport,omitempty" yaml:"ramSupport"`
	MaxRAM     *int     `json:"maxRam,omitempty" yaml:"maxRam"`

	// CPU heat output, or GPU board power, in watts.
	TDP   *int `json:"tdp,omitempty" yaml:"tdp"`
	Power *int `json:"power,omitempty" yaml:"power"`
	VRAM  *int `json:"vram,omitempty" yaml:"vram"`

	// Physical dimensions in millimetres.
	Length *float64 `json:"length,omitempty" yaml:"length"`
	Height *float64 `json:"height,omitempty" yaml:"height"`

	// PSU
	Wattage *int `json:"wattage,omitempty" yaml:"wattage"`

	// Cooling: the rated heat load the cooler can dissipate.
	SupportedTDP *int `json:"supportedTdp,omitempty" yaml:"supportedTdp"`

	// Type carries the category-specific variant tag: the RAM generation
	// ("DDR4", "DDR5") or the cooler type ("Air", "AIO").
	Type string `json:"type,omitempty" yaml:"type"`

	// Compatibility lists the counterpart identifiers this component
	// accepts: CPU generations for a motherboard, motherboard form
	// factors for a case. An absent list means "no declared restriction".
	Compatibility []string `json:"compatibility,omitempty" yaml:"compatibility"`

	// Case clearances.
	MaxGPULength       *float64 `json:"maxGpuLength,omitempty" yaml:"maxGpuLength"`
	MaxCPUCoolerHeight *float64 `json:"maxCpuCoolerHeight,omitempty" yaml:"maxCpuCoolerHeight"`
	MaxPSULength       *float64 `json:"maxPsuLength,omitempty" yaml:"maxPsuLength"`

	// Options declares the sub-option groups a buyer can pick for this
	// component, in the order the catalog author listed them.
	Options []OptionGroup `json:"options,omitempty" yaml:"options"`

	// PricesByOption maps option key -> option value -> override. Picking
	// a matching value replaces the base price (and identifier, when the
	// override carries one).
	PricesByOption map[string]map[string]PriceOverride `json:"pricesByOption,omitempty" yaml:"pricesByOption"`

	// ImagesByOption maps option key -> option value -> image set shown
	// when that value is selected.
	ImagesByOption map[string]map[string][]string `json:"imagesByOption,omitempty" yaml:"imagesByOption"`
}

// OptionGroup is one selectable sub-option of a component, e.g.
// {Key: "colour", Values: ["Black", "White"]}.
type OptionGroup struct {
	Key    string   `json:"key" yaml:"key"`
	Values []string `json:"values" yaml:"values"`
}

// PriceOverride is a per-option-value price substitution. Catalog data may
// declare it as a bare number or as a {price, identifier} mapping; both
// forms decode into this struct.
type PriceOverride struct {
	Price      float64 `json:"price" yaml:"price"`
	Identifier string  `json:"identifier,omitempty" yaml:"identifier"`
}

// UnmarshalYAML accepts either a scalar price or a {price, identifier}
// mapping.
func (p *PriceOverride) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		return value.Decode(&p.Price)
	}

	type plain PriceOverride

	return value.Decode((*plain)(p))
}

// Catalog is an immutable snapshot of every category's components, keyed
// by category. It is always passed explicitly to the decision functions.
type Catalog map[Category][]Component

// Find returns the component with the given id inside a category, or nil
// when the id is unknown. An unknown id is "no component", never an error.
func (c Catalog) Find(category Category, id string) *Component {
	for i := range c[category] {
		if c[category][i].ID == id {
			return &c[category][i]
		}
	}

	return nil
}

// SupportsRAMType reports whether a motherboard's declared RAM support
// accepts the given RAM generation. Support entries match by equality or
// substring in either direction, case-insensitive; an empty declaration is
// treated as compatible.
func (c *Component) SupportsRAMType(ramType string) bool {
	if ramType == "" || len(c.RAMSupport) == 0 {
		return true
	}

	needle := strings.ToLower(ramType)
	for _, supported := range c.RAMSupport {
		have := strings.ToLower(supported)
		if have == needle || strings.Contains(have, needle) || strings.Contains(needle, have) {
			return true
		}
	}

	return false
}

// ListsCompat reports whether the component's compatibility list contains
// the given entry, case-insensitive.
func (c *Component) ListsCompat(entry string) bool {
	for _, candidate := range c.Compatibility {
		if strings.EqualFold(candidate, entry) {
			return true
		}
	}

	return false
}
