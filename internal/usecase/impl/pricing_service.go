package impl

import (
	"rig/internal/domain/entity"
	"rig/internal/usecase"

	"go.uber.org/fx"
)

type pricingService struct {
	options usecase.OptionUsecase
}

// PricingServiceParams holds dependencies for PricingService, injected by Fx.
type PricingServiceParams struct {
	fx.In

	Options usecase.OptionUsecase
}

// NewPricingService creates a new pricing service instance
func NewPricingService(params PricingServiceParams) usecase.PricingUsecase {
	return &pricingService{
		options: params.Options,
	}
}

// TotalPrice sums the resolved price of every selected main component and
// every selected peripheral. A selected id with no catalog record, or a
// component with no price, contributes zero.
func (s *pricingService) TotalPrice(
	selection entity.SelectedComponentIDs,
	peripherals entity.SelectedPeripherals,
	options entity.OptionSelections,
	catalog entity.Catalog,
) float64 {
	total := 0.0

	for _, category := range entity.CoreCategories() {
		id, ok := selection[category]
		if !ok {
			continue
		}

		component := catalog.Find(category, id)
		if component == nil {
			continue
		}

		resolved := s.options.Resolve(component, options[category])
		if resolved.Price != nil {
			total += *resolved.Price
		}
	}

	for category, ids := range peripherals {
		for _, id := range ids {
			component := catalog.Find(category, id)
			if component == nil {
				continue
			}

			resolved := s.options.Resolve(component, nil)
			if resolved.Price != nil {
				total += *resolved.Price
			}
		}
	}

	return total
}

// EstimatedPowerDraw estimates the system draw from the selected CPU and
// GPU with documented defaults, and the PSU wattage recommended after 20%
// headroom.
func (s *pricingService) EstimatedPowerDraw(selection entity.SelectedComponentIDs, catalog entity.Catalog) usecase.PowerEstimate {
	var cpu, gpu *entity.Component
	if id, ok := selection[entity.CategoryCPU]; ok {
		cpu = catalog.Find(entity.CategoryCPU, id)
	}
	if id, ok := selection[entity.CategoryGPU]; ok {
		gpu = catalog.Find(entity.CategoryGPU, id)
	}

	estimated := estimatePowerDraw(cpu, gpu)

	return usecase.PowerEstimate{
		EstimatedWatts:   estimated,
		RecommendedWatts: recommendedWattage(estimated),
	}
}
