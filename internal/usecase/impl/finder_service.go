package impl

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"strings"

	"rig/internal/domain/entity"
	"rig/internal/domain/service"
	"rig/internal/usecase"

	"go.uber.org/fx"
)

// Composite score weighting. Budget, use-case and future-proofing carry
// fixed weights; performance and value weights shift with the profile.
const (
	budgetWeight          = 0.30
	useCaseWeight         = 0.25
	basePerformanceWeight = 0.20
	baseValueWeight       = 0.15
	futureProofWeight     = 0.10

	weightBoost        = 0.10
	valueBoostBudget   = 1500
	useCaseMatchPoints = 50
	maxUseCaseScore    = 100
	maxRankedBuilds    = 3
)

// rankLabels are the presentation tags attached to the returned builds in
// rank order.
var rankLabels = []string{"Best Match", "Great Value", "Alternative Option"}

type finderService struct {
	buildConfig service.BuildConfigService
	logger      *slog.Logger
}

// FinderServiceParams holds dependencies for FinderService, injected by Fx.
type FinderServiceParams struct {
	fx.In

	BuildConfig service.BuildConfigService
	Logger      *slog.Logger
}

// NewFinderService creates a new build finder service instance
func NewFinderService(params FinderServiceParams) usecase.FinderUsecase {
	return &finderService{
		buildConfig: params.BuildConfig,
		logger:      params.Logger,
	}
}

// Rank scores every template against the profile and returns the top
// builds, highest score first. Ties keep template declaration order, so
// the result is fully deterministic for a given profile and table set.
func (s *finderService) Rank(_ context.Context, profile entity.UserProfile) ([]entity.ScoredBuild, error) {
	templates := s.buildConfig.Templates()
	pricing := s.buildConfig.Pricing()

	scored := make([]entity.ScoredBuild, 0, len(templates))
	for _, template := range templates {
		accuratePrice := s.resolveTemplatePrice(template, pricing)
		scored = append(scored, entity.ScoredBuild{
			BuildTemplate: template,
			AccuratePrice: accuratePrice,
			Score:         s.compositeScore(profile, template, accuratePrice),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > maxRankedBuilds {
		scored = scored[:maxRankedBuilds]
	}
	for i := range scored {
		scored[i].Label = rankLabels[i]
	}

	return scored, nil
}

// resolveTemplatePrice prices a template from its descriptive spec strings
// plus the fixed estimates for the parts the spec does not describe.
func (s *finderService) resolveTemplatePrice(template entity.BuildTemplate, pricing entity.FinderPricing) float64 {
	total := s.resolveSpecPrice(template.Name, "cpu", template.Spec.CPU, pricing.CPU)
	total += s.resolveSpecPrice(template.Name, "gpu", template.Spec.GPU, pricing.GPU)
	total += s.resolveSpecPrice(template.Name, "ram", template.Spec.RAM, pricing.RAM)
	total += s.resolveSpecPrice(template.Name, "storage", template.Spec.Storage, pricing.Storage)
	total += s.resolveSpecPrice(template.Name, "cooling", template.Spec.Cooling, pricing.Cooling)
	total += pricing.Estimates.Motherboard + pricing.Estimates.Case + pricing.Estimates.PSU

	return total
}

// resolveSpecPrice matches one spec string against its slot's keyword
// table, then the fallback table, then the slot default. Matching is the
// documented heuristic: case-insensitive, the spec string containing the
// keyword or the keyword containing the spec's first token. The heuristic
// is ambiguous by nature, so misses are logged as a data-quality signal
// instead of being papered over.
func (s *finderService) resolveSpecPrice(templateName, slot, spec string, table entity.SlotPricing) float64 {
	if price, ok := matchKeywordPrice(spec, table.Entries); ok {
		return price
	}

	if price, ok := matchKeywordPrice(spec, table.Fallbacks); ok {
		s.logger.Warn("template spec priced from fallback table",
			slog.String("template", templateName),
			slog.String("slot", slot),
			slog.String("spec", spec),
		)

		return price
	}

	s.logger.Warn("template spec matched no price entry",
		slog.String("template", templateName),
		slog.String("slot", slot),
		slog.String("spec", spec),
	)

	return table.Default
}

// matchKeywordPrice returns the price of the first entry whose keyword
// matches the spec string. Entries are consulted in declaration order.
func matchKeywordPrice(spec string, entries []entity.PriceEntry) (float64, bool) {
	lowered := strings.ToLower(spec)
	firstToken := lowered
	if fields := strings.Fields(lowered); len(fields) > 0 {
		firstToken = fields[0]
	}

	for _, entry := range entries {
		keyword := strings.ToLower(entry.Keyword)
		if keyword == "" {
			continue
		}
		if strings.Contains(lowered, keyword) || strings.Contains(keyword, firstToken) {
			return entry.Price, true
		}
	}

	return 0, false
}

// compositeScore combines the budget fit, use-case overlap and the
// template's own sub-scores under the profile's dynamic weights.
func (s *finderService) compositeScore(profile entity.UserProfile, template entity.BuildTemplate, accuratePrice float64) int {
	budgetScore := budgetFitScore(profile.Budget, accuratePrice)
	useCaseScore := useCaseFitScore(profile, template)
	performanceWeight, valueWeight := dynamicWeights(profile)

	score := float64(budgetScore)*budgetWeight +
		float64(useCaseScore)*useCaseWeight +
		float64(template.PerformanceScore)*performanceWeight +
		float64(template.ValueScore)*valueWeight +
		float64(template.FutureProofScore)*futureProofWeight

	return int(math.Round(score))
}

// budgetFitScore grades how comfortably the budget covers the resolved
// price, as a step function of the budget/price ratio.
func budgetFitScore(budget, accuratePrice float64) int {
	if accuratePrice <= 0 {
		// A free build fits any budget.
		return 100
	}

	ratio := budget / accuratePrice
	switch {
	case ratio >= 1.1:
		return 100
	case ratio >= 0.95:
		return 90
	case ratio >= 0.8:
		return 70
	case ratio >= 0.6:
		return 40
	default:
		return 10
	}
}

// useCaseFitScore awards points for every stated intent the template
// targets, saturating at the cap.
func useCaseFitScore(profile entity.UserProfile, template entity.BuildTemplate) int {
	score := 0
	for _, detail := range profile.Details() {
		if template.TargetsUseCase(detail) {
			score += useCaseMatchPoints
		}
	}
	if score > maxUseCaseScore {
		score = maxUseCaseScore
	}

	return score
}

// dynamicWeights shifts weight towards raw performance for ambitious or
// rendering-heavy profiles, and towards value on tighter budgets.
func dynamicWeights(profile entity.UserProfile) (performanceWeight, valueWeight float64) {
	performanceWeight = basePerformanceWeight
	if profile.Performance == entity.PerformanceMaximum || profile.CreativeWork == entity.CreativeWork3DRendering {
		performanceWeight += weightBoost
	}

	valueWeight = baseValueWeight
	if profile.Budget < valueBoostBudget {
		valueWeight += weightBoost
	}

	return performanceWeight, valueWeight
}
