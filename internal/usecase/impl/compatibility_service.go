package impl

import (
	"fmt"
	"math"

	"rig/internal/domain/entity"
	"rig/internal/usecase"

	"go.uber.org/fx"
)

// Power-draw defaults applied when catalog data is missing, and the fixed
// baseline covering board, drives and fans.
const (
	defaultCPUTDP     = 65
	defaultGPUPower   = 150
	basePowerDraw     = 150
	psuHeadroomFactor = 1.2
	airCoolerType     = "Air"
)

type compatibilityService struct{}

// CompatibilityServiceParams holds dependencies for CompatibilityService, injected by Fx.
type CompatibilityServiceParams struct {
	fx.In
}

// NewCompatibilityService creates a new compatibility service instance
func NewCompatibilityService(_ CompatibilityServiceParams) usecase.CompatibilityUsecase {
	return &compatibilityService{}
}

// Validate runs the full rule sequence against the selection. Rules never
// short-circuit each other; every applicable rule contributes its own
// issue. A rule with a missing component on either side is skipped.
func (s *compatibilityService) Validate(selection entity.SelectedComponentIDs, catalog entity.Catalog) []entity.CompatibilityIssue {
	parts := selectedParts(selection, catalog)
	issues := make([]entity.CompatibilityIssue, 0, 4)

	for _, check := range []func(selectedComponents) *entity.CompatibilityIssue{
		checkSocket,
		checkCPUGeneration,
		checkRAMSupport,
		checkFormFactor,
		checkGPUClearance,
		checkPSUWattage,
		checkCoolerClearance,
		checkCoolerTDP,
		checkPSUClearance,
	} {
		if issue := check(parts); issue != nil {
			issues = append(issues, *issue)
		}
	}

	return issues
}

// FilterChoices rejects every candidate of the target category that would
// raise a critical issue against any already-selected component. The
// constraints are symmetric: selecting a case narrows GPU choices and
// selecting a GPU narrows case choices alike.
func (s *compatibilityService) FilterChoices(category entity.Category, partial entity.SelectedComponentIDs, catalog entity.Catalog) []entity.Component {
	candidates := catalog[category]

	selected := make([]*entity.Component, 0, len(partial))
	for selectedCategory, id := range partial {
		if selectedCategory == category {
			continue
		}
		if component := catalog.Find(selectedCategory, id); component != nil {
			selected = append(selected, component)
		}
	}

	if len(selected) == 0 {
		return candidates
	}

	out := make([]entity.Component, 0, len(candidates))
	for i := range candidates {
		compatible := true
		for _, other := range selected {
			if criticalConflict(&candidates[i], other) {
				compatible = false

				break
			}
		}
		if compatible {
			out = append(out, candidates[i])
		}
	}

	return out
}

// selectedComponents holds the resolved component of each core slot;
// unselected or unresolvable slots are nil.
type selectedComponents struct {
	pcCase      *entity.Component
	motherboard *entity.Component
	cpu         *entity.Component
	ram         *entity.Component
	gpu         *entity.Component
	psu         *entity.Component
	cooling     *entity.Component
}

func selectedParts(selection entity.SelectedComponentIDs, catalog entity.Catalog) selectedComponents {
	find := func(category entity.Category) *entity.Component {
		id, ok := selection[category]
		if !ok {
			return nil
		}

		return catalog.Find(category, id)
	}

	return selectedComponents{
		pcCase:      find(entity.CategoryCase),
		motherboard: find(entity.CategoryMotherboard),
		cpu:         find(entity.CategoryCPU),
		ram:         find(entity.CategoryRAM),
		gpu:         find(entity.CategoryGPU),
		psu:         find(entity.CategoryPSU),
		cooling:     find(entity.CategoryCooling),
	}
}

func checkSocket(parts selectedComponents) *entity.CompatibilityIssue {
	cpu, motherboard := parts.cpu, parts.motherboard
	if cpu == nil || motherboard == nil || cpu.Socket == "" || motherboard.Socket == "" {
		return nil
	}
	if cpu.Socket == motherboard.Socket {
		return nil
	}

	return &entity.CompatibilityIssue{
		Severity: entity.SeverityCritical,
		Title:    "CPU socket mismatch",
		Description: fmt.Sprintf("The CPU uses socket %s but the motherboard provides socket %s.",
			cpu.Socket, motherboard.Socket),
		Recommendation:     "Choose a motherboard with a matching CPU socket, or a CPU for this board's socket.",
		AffectedComponents: []string{cpu.Name, motherboard.Name},
	}
}

func checkCPUGeneration(parts selectedComponents) *entity.CompatibilityIssue {
	cpu, motherboard := parts.cpu, parts.motherboard
	if cpu == nil || motherboard == nil || cpu.Generation == "" || len(motherboard.Compatibility) == 0 {
		return nil
	}
	if motherboard.ListsCompat(cpu.Generation) {
		return nil
	}

	return &entity.CompatibilityIssue{
		Severity: entity.SeverityWarning,
		Title:    "CPU generation not listed as supported",
		Description: fmt.Sprintf("The motherboard does not list %s CPUs as supported; a BIOS update may be required.",
			cpu.Generation),
		Recommendation:     "Check the board vendor's CPU support list before buying.",
		AffectedComponents: []string{cpu.Name, motherboard.Name},
	}
}

func checkRAMSupport(parts selectedComponents) *entity.CompatibilityIssue {
	ram, motherboard := parts.ram, parts.motherboard
	if ram == nil || motherboard == nil || ram.Type == "" {
		return nil
	}
	if motherboard.SupportsRAMType(ram.Type) {
		return nil
	}

	return &entity.CompatibilityIssue{
		Severity: entity.SeverityCritical,
		Title:    "RAM type not supported",
		Description: fmt.Sprintf("The motherboard does not support %s memory.",
			ram.Type),
		Recommendation:     "Select memory of the type the motherboard supports.",
		AffectedComponents: []string{ram.Name, motherboard.Name},
	}
}

func checkFormFactor(parts selectedComponents) *entity.CompatibilityIssue {
	motherboard, pcCase := parts.motherboard, parts.pcCase
	if motherboard == nil || pcCase == nil || motherboard.FormFactor == "" || len(pcCase.Compatibility) == 0 {
		return nil
	}
	if pcCase.ListsCompat(motherboard.FormFactor) {
		return nil
	}

	return &entity.CompatibilityIssue{
		Severity: entity.SeverityCritical,
		Title:    "Motherboard does not fit the case",
		Description: fmt.Sprintf("The case does not accept %s motherboards.",
			motherboard.FormFactor),
		Recommendation:     "Pick a case that lists this form factor, or a smaller board.",
		AffectedComponents: []string{motherboard.Name, pcCase.Name},
	}
}

func checkGPUClearance(parts selectedComponents) *entity.CompatibilityIssue {
	gpu, pcCase := parts.gpu, parts.pcCase
	if gpu == nil || pcCase == nil || gpu.Length == nil || pcCase.MaxGPULength == nil {
		return nil
	}
	if *gpu.Length <= *pcCase.MaxGPULength {
		return nil
	}

	return &entity.CompatibilityIssue{
		Severity: entity.SeverityCritical,
		Title:    "Graphics card too long for the case",
		Description: fmt.Sprintf("The graphics card is %.0f mm long but the case clears %.0f mm.",
			*gpu.Length, *pcCase.MaxGPULength),
		Recommendation:     "Choose a shorter card or a case with more GPU clearance.",
		AffectedComponents: []string{gpu.Name, pcCase.Name},
	}
}

func checkPSUWattage(parts selectedComponents) *entity.CompatibilityIssue {
	psu := parts.psu
	if psu == nil || psu.Wattage == nil {
		return nil
	}

	estimated := estimatePowerDraw(parts.cpu, parts.gpu)
	recommended := recommendedWattage(estimated)
	if *psu.Wattage >= recommended {
		return nil
	}

	return &entity.CompatibilityIssue{
		Severity: entity.SeverityWarning,
		Title:    "Power supply may be undersized",
		Description: fmt.Sprintf("Estimated draw is %d W; %d W is recommended but the PSU delivers %d W.",
			estimated, recommended, *psu.Wattage),
		Recommendation:     fmt.Sprintf("Choose a power supply rated at %d W or more.", recommended),
		AffectedComponents: []string{psu.Name},
	}
}

func checkCoolerClearance(parts selectedComponents) *entity.CompatibilityIssue {
	cooling, pcCase := parts.cooling, parts.pcCase
	if cooling == nil || pcCase == nil || cooling.Type != airCoolerType {
		return nil
	}
	if cooling.Height == nil || pcCase.MaxCPUCoolerHeight == nil {
		return nil
	}
	if *cooling.Height <= *pcCase.MaxCPUCoolerHeight {
		return nil
	}

	return &entity.CompatibilityIssue{
		Severity: entity.SeverityCritical,
		Title:    "CPU cooler too tall for the case",
		Description: fmt.Sprintf("The air cooler is %.0f mm tall but the case clears %.0f mm.",
			*cooling.Height, *pcCase.MaxCPUCoolerHeight),
		Recommendation:     "Choose a lower-profile cooler or a wider case.",
		AffectedComponents: []string{cooling.Name, pcCase.Name},
	}
}

func checkCoolerTDP(parts selectedComponents) *entity.CompatibilityIssue {
	cpu, cooling := parts.cpu, parts.cooling
	if cpu == nil || cooling == nil || cpu.TDP == nil || cooling.SupportedTDP == nil {
		return nil
	}
	if *cpu.TDP <= *cooling.SupportedTDP {
		return nil
	}

	return &entity.CompatibilityIssue{
		Severity: entity.SeverityWarning,
		Title:    "Cooler rated below CPU heat output",
		Description: fmt.Sprintf("The CPU dissipates %d W but the cooler is rated for %d W.",
			*cpu.TDP, *cooling.SupportedTDP),
		Recommendation:     "Pick a cooler rated at or above the CPU's TDP to avoid thermal throttling.",
		AffectedComponents: []string{cpu.Name, cooling.Name},
	}
}

func checkPSUClearance(parts selectedComponents) *entity.CompatibilityIssue {
	psu, pcCase := parts.psu, parts.pcCase
	if psu == nil || pcCase == nil || psu.Length == nil || pcCase.MaxPSULength == nil {
		return nil
	}
	if *psu.Length <= *pcCase.MaxPSULength {
		return nil
	}

	return &entity.CompatibilityIssue{
		Severity: entity.SeverityCritical,
		Title:    "Power supply too long for the case",
		Description: fmt.Sprintf("The power supply is %.0f mm long but the case clears %.0f mm.",
			*psu.Length, *pcCase.MaxPSULength),
		Recommendation:     "Choose a shorter power supply or a case with a larger PSU bay.",
		AffectedComponents: []string{psu.Name, pcCase.Name},
	}
}

// estimatePowerDraw sums the CPU's TDP and the GPU's board power with the
// fixed baseline for board, drives and fans. Missing data falls back to
// the documented defaults.
func estimatePowerDraw(cpu, gpu *entity.Component) int {
	cpuWatts := defaultCPUTDP
	if cpu != nil && cpu.TDP != nil {
		cpuWatts = *cpu.TDP
	}

	gpuWatts := defaultGPUPower
	if gpu != nil && gpu.Power != nil {
		gpuWatts = *gpu.Power
	}

	return cpuWatts + gpuWatts + basePowerDraw
}

// recommendedWattage applies 20% headroom to an estimated draw.
func recommendedWattage(estimated int) int {
	return int(math.Round(float64(estimated) * psuHeadroomFactor))
}

// criticalConflict reports whether pairing the two components violates a
// physical constraint that Validate would flag as critical. The check is
// symmetric in its arguments, which is what makes FilterChoices
// bidirectional.
func criticalConflict(a, b *entity.Component) bool {
	for _, pair := range [][2]*entity.Component{{a, b}, {b, a}} {
		x, y := pair[0], pair[1]

		switch {
		case x.Category == entity.CategoryCPU && y.Category == entity.CategoryMotherboard:
			if x.Socket != "" && y.Socket != "" && x.Socket != y.Socket {
				return true
			}

		case x.Category == entity.CategoryRAM && y.Category == entity.CategoryMotherboard:
			if x.Type != "" && !y.SupportsRAMType(x.Type) {
				return true
			}

		case x.Category == entity.CategoryMotherboard && y.Category == entity.CategoryCase:
			if x.FormFactor != "" && len(y.Compatibility) > 0 && !y.ListsCompat(x.FormFactor) {
				return true
			}

		case x.Category == entity.CategoryGPU && y.Category == entity.CategoryCase:
			if x.Length != nil && y.MaxGPULength != nil && *x.Length > *y.MaxGPULength {
				return true
			}

		case x.Category == entity.CategoryCooling && y.Category == entity.CategoryCase:
			if x.Type == airCoolerType && x.Height != nil && y.MaxCPUCoolerHeight != nil && *x.Height > *y.MaxCPUCoolerHeight {
				return true
			}

		case x.Category == entity.CategoryPSU && y.Category == entity.CategoryCase:
			if x.Length != nil && y.MaxPSULength != nil && *x.Length > *y.MaxPSULength {
				return true
			}
		}
	}

	return false
}
