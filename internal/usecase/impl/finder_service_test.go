package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"rig/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBuildConfig struct {
	templates []entity.BuildTemplate
	pricing   entity.FinderPricing
}

func (s *stubBuildConfig) Templates() []entity.BuildTemplate { return s.templates }

func (s *stubBuildConfig) Pricing() entity.FinderPricing { return s.pricing }

func finderPricingFixture() entity.FinderPricing {
	return entity.FinderPricing{
		CPU: entity.SlotPricing{
			Entries:   []entity.PriceEntry{{Keyword: "9700X", Price: 300}, {Keyword: "i3-14100", Price: 120}},
			Fallbacks: []entity.PriceEntry{{Keyword: "Ryzen", Price: 180}},
			Default:   150,
		},
		GPU: entity.SlotPricing{
			Entries: []entity.PriceEntry{{Keyword: "4070", Price: 530}, {Keyword: "4060", Price: 300}},
			Default: 100,
		},
		RAM: entity.SlotPricing{
			Entries: []entity.PriceEntry{{Keyword: "64GB", Price: 200}, {Keyword: "32GB", Price: 110}, {Keyword: "16GB", Price: 60}},
			Default: 50,
		},
		Storage: entity.SlotPricing{
			Entries: []entity.PriceEntry{{Keyword: "2TB", Price: 140}, {Keyword: "1TB", Price: 80}},
			Default: 70,
		},
		Cooling: entity.SlotPricing{
			Entries: []entity.PriceEntry{{Keyword: "Liquid", Price: 130}, {Keyword: "Air", Price: 45}},
			Default: 35,
		},
		Estimates: entity.FixedEstimates{Motherboard: 180, Case: 100, PSU: 120},
	}
}

func finderTemplatesFixture() []entity.BuildTemplate {
	return []entity.BuildTemplate{
		{
			Name: "Apex Gaming",
			Spec: entity.BuildSpec{
				CPU: "Ryzen 7 9700X", GPU: "RTX 4070 Super", RAM: "32GB DDR5",
				Storage: "2TB NVMe", Cooling: "360mm Liquid AIO",
			},
			TargetUseCases:   []string{"gaming"},
			PerformanceScore: 92, ValueScore: 70, FutureProofScore: 88,
		},
		{
			Name: "Everyday Office",
			Spec: entity.BuildSpec{
				CPU: "Intel Core i3-14100", GPU: "Integrated Graphics", RAM: "16GB DDR4",
				Storage: "1TB SSD", Cooling: "Stock Air Cooler",
			},
			TargetUseCases:   []string{"office", "everyday"},
			PerformanceScore: 35, ValueScore: 90, FutureProofScore: 40,
		},
		{
			Name: "Creator Pro",
			Spec: entity.BuildSpec{
				CPU: "Ryzen 9 9900X", GPU: "RTX 4070 Ti", RAM: "64GB DDR5",
				Storage: "2TB NVMe", Cooling: "240mm Liquid",
			},
			TargetUseCases:   []string{"creative", "3d-rendering"},
			PerformanceScore: 88, ValueScore: 65, FutureProofScore: 85,
		},
		{
			Name: "Esports Value",
			Spec: entity.BuildSpec{
				CPU: "Ryzen 5 7600", GPU: "RTX 4060", RAM: "16GB DDR5",
				Storage: "1TB NVMe", Cooling: "Stock Air",
			},
			TargetUseCases:   []string{"gaming", "esports"},
			PerformanceScore: 70, ValueScore: 95, FutureProofScore: 55,
		},
	}
}

func newFinderService(logger *slog.Logger) *finderService {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &finderService{
		buildConfig: &stubBuildConfig{
			templates: finderTemplatesFixture(),
			pricing:   finderPricingFixture(),
		},
		logger: logger,
	}
}

func TestRank_ReturnsTopThreeDescending(t *testing.T) {
	service := newFinderService(nil)
	profile := entity.UserProfile{Budget: 1600, Purpose: "gaming", Performance: "balanced"}

	builds, err := service.Rank(context.Background(), profile)

	require.NoError(t, err)
	require.Len(t, builds, 3)
	assert.Equal(t, "Apex Gaming", builds[0].Name)
	assert.Equal(t, "Esports Value", builds[1].Name)
	assert.Equal(t, "Creator Pro", builds[2].Name)
	assert.GreaterOrEqual(t, builds[0].Score, builds[1].Score)
	assert.GreaterOrEqual(t, builds[1].Score, builds[2].Score)
}

func TestRank_AttachesLabelsInRankOrder(t *testing.T) {
	service := newFinderService(nil)

	builds, err := service.Rank(context.Background(), entity.UserProfile{Budget: 1600, Purpose: "gaming"})

	require.NoError(t, err)
	require.Len(t, builds, 3)
	assert.Equal(t, "Best Match", builds[0].Label)
	assert.Equal(t, "Great Value", builds[1].Label)
	assert.Equal(t, "Alternative Option", builds[2].Label)
}

func TestRank_IsDeterministic(t *testing.T) {
	service := newFinderService(nil)
	profile := entity.UserProfile{Budget: 1200, Purpose: "everyday"}

	first, err := service.Rank(context.Background(), profile)
	require.NoError(t, err)

	for range 5 {
		again, err := service.Rank(context.Background(), profile)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestResolveTemplatePrice_SumsSlotsAndEstimates(t *testing.T) {
	service := newFinderService(nil)

	// 300 + 530 + 110 + 140 + 130 for the spec slots, plus the fixed
	// 180 + 100 + 120 estimates.
	price := service.resolveTemplatePrice(finderTemplatesFixture()[0], finderPricingFixture())

	assert.InDelta(t, 1610, price, 0.001)
}

func TestResolveSpecPrice_FallbackAndDefault(t *testing.T) {
	service := newFinderService(nil)
	pricing := finderPricingFixture()

	// "Ryzen 9 9900X" misses the primary table and lands on the Ryzen
	// fallback entry.
	assert.InDelta(t, 180, service.resolveSpecPrice("Creator Pro", "cpu", "Ryzen 9 9900X", pricing.CPU), 0.001)

	// "Integrated Graphics" matches nothing and resolves to the default.
	assert.InDelta(t, 100, service.resolveSpecPrice("Everyday Office", "gpu", "Integrated Graphics", pricing.GPU), 0.001)
}

func TestMatchKeywordPrice(t *testing.T) {
	entries := []entity.PriceEntry{
		{Keyword: "Ryzen 7", Price: 300},
		{Keyword: "Ryzen 5", Price: 200},
		{Keyword: "i5-14600K", Price: 230},
	}

	t.Run("substring match is case-insensitive", func(t *testing.T) {
		price, ok := matchKeywordPrice("Intel Core i5-14600K", entries)
		require.True(t, ok)
		assert.InDelta(t, 230, price, 0.001)
	})

	t.Run("first token containment keeps declaration order", func(t *testing.T) {
		// "Ryzen 5 8500G" does not contain "Ryzen 7", but "Ryzen 7"
		// contains the first token "ryzen", so the earlier entry wins.
		// Ambiguity like this is resolved by order, not specificity.
		price, ok := matchKeywordPrice("Ryzen 5 8500G", entries)
		require.True(t, ok)
		assert.InDelta(t, 300, price, 0.001)
	})

	t.Run("no match", func(t *testing.T) {
		_, ok := matchKeywordPrice("Apple M4", entries)
		assert.False(t, ok)
	})

	t.Run("empty keyword never matches", func(t *testing.T) {
		_, ok := matchKeywordPrice("anything", []entity.PriceEntry{{Keyword: "", Price: 999}})
		assert.False(t, ok)
	})
}

func TestBudgetFitScore(t *testing.T) {
	tests := []struct {
		name   string
		budget float64
		price  float64
		want   int
	}{
		{"well under budget", 5000, 1400, 100},
		{"exactly at ratio 1.1", 1100, 1000, 100},
		{"near budget", 1000, 1000, 90},
		{"slightly over", 900, 1000, 70},
		{"well over", 650, 1000, 40},
		{"far over", 400, 1000, 10},
		{"free build fits any budget", 500, 0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, budgetFitScore(tt.budget, tt.price))
		})
	}
}

func TestUseCaseFitScore(t *testing.T) {
	template := entity.BuildTemplate{TargetUseCases: []string{"gaming", "esports", "streaming"}}

	tests := []struct {
		name    string
		profile entity.UserProfile
		want    int
	}{
		{"no overlap", entity.UserProfile{Purpose: "office"}, 0},
		{"single match", entity.UserProfile{Purpose: "gaming"}, 50},
		{"two matches", entity.UserProfile{Purpose: "gaming", GamingType: "esports"}, 100},
		{"three matches saturate", entity.UserProfile{Purpose: "gaming", GamingType: "esports", CreativeWork: "streaming"}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, useCaseFitScore(tt.profile, template))
		})
	}
}

func TestDynamicWeights(t *testing.T) {
	tests := []struct {
		name    string
		profile entity.UserProfile
		perf    float64
		value   float64
	}{
		{"base weights", entity.UserProfile{Budget: 2000}, 0.20, 0.15},
		{"maximum performance boost", entity.UserProfile{Budget: 2000, Performance: "maximum"}, 0.30, 0.15},
		{"rendering boost", entity.UserProfile{Budget: 2000, CreativeWork: "3d-rendering"}, 0.30, 0.15},
		{"tight budget boosts value", entity.UserProfile{Budget: 1200}, 0.20, 0.25},
		{"both boosts", entity.UserProfile{Budget: 1200, Performance: "maximum"}, 0.30, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			perf, value := dynamicWeights(tt.profile)
			assert.InDelta(t, tt.perf, perf, 0.0001)
			assert.InDelta(t, tt.value, value, 0.0001)
		})
	}
}

func TestCompositeScore(t *testing.T) {
	service := newFinderService(nil)
	template := finderTemplatesFixture()[0]
	profile := entity.UserProfile{Budget: 1600, Purpose: "gaming", Performance: "balanced"}

	// budget 90*0.30 + useCase 50*0.25 + perf 92*0.20 + value 70*0.15 +
	// future 88*0.10 = 77.2, rounded to 77.
	assert.Equal(t, 77, service.compositeScore(profile, template, 1610))
}
