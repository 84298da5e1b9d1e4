package usecase

import (
	"rig/internal/domain/entity"
)

// PowerEstimate is the estimated system draw and the PSU wattage
// recommended after headroom.
type PowerEstimate struct {
	EstimatedWatts   int `json:"estimated_watts"`
	RecommendedWatts int `json:"recommended_watts"`
}

// PricingUsecase aggregates resolved prices and power draw across a
// selection.
type PricingUsecase interface {
	// TotalPrice sums the resolved price of every selected main
	// component and every selected peripheral. Unresolvable ids
	// contribute zero.
	TotalPrice(
		selection entity.SelectedComponentIDs,
		peripherals entity.SelectedPeripherals,
		options entity.OptionSelections,
		catalog entity.Catalog,
	) float64

	// EstimatedPowerDraw estimates total draw from the CPU's TDP and the
	// GPU's board power, with documented defaults for missing data, and
	// sizes the recommended PSU wattage with 20% headroom.
	EstimatedPowerDraw(selection entity.SelectedComponentIDs, catalog entity.Catalog) PowerEstimate
}
