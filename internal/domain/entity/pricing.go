package entity

// PriceEntry pairs a lookup keyword with the price it resolves to. Entries
// are matched in declaration order, so more specific keywords belong
// first.
type PriceEntry struct {
	Keyword string  `json:"keyword" yaml:"keyword"`
	Price   float64 `json:"price" yaml:"price"`
}

// SlotPricing is the keyword price table for one build-spec slot (cpu,
// gpu, ...). Entries are the primary table; Fallbacks are the coarser
// keyword table consulted when no entry matches; Default is the price of
// last resort so that an unmatched spec string always resolves.
type SlotPricing struct {
	Entries   []PriceEntry `json:"entries" yaml:"entries"`
	Fallbacks []PriceEntry `json:"fallbacks" yaml:"fallbacks"`
	Default   float64      `json:"default" yaml:"default"`
}

// FixedEstimates are the constant average prices assumed for the parts a
// template spec does not describe.
type FixedEstimates struct {
	Motherboard float64 `json:"motherboard" yaml:"motherboard"`
	Case        float64 `json:"case" yaml:"case"`
	PSU         float64 `json:"psu" yaml:"psu"`
}

// FinderPricing is the full price-resolution configuration of the build
// finder, loaded as data so the scoring engine stays a pure function of
// (profile, templates, tables).
type FinderPricing struct {
	CPU       SlotPricing    `json:"cpu" yaml:"cpu"`
	GPU       SlotPricing    `json:"gpu" yaml:"gpu"`
	RAM       SlotPricing    `json:"ram" yaml:"ram"`
	Storage   SlotPricing    `json:"storage" yaml:"storage"`
	Cooling   SlotPricing    `json:"cooling" yaml:"cooling"`
	Estimates FixedEstimates `json:"estimates" yaml:"estimates"`
}
