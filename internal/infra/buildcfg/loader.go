// Package buildcfg loads the build finder's hand-authored data: the fixed
// template set and the keyword price tables. Keeping both as external
// configuration keeps the scoring engine a pure function of its inputs.
package buildcfg

import (
	"log/slog"
	"os"

	"rig/config"
	"rig/internal/domain/entity"
	"rig/internal/domain/service"
	"rig/internal/errors"

	"go.uber.org/fx"
	"gopkg.in/yaml.v3"
)

// templatesFile is the on-disk shape of the template set.
type templatesFile struct {
	Templates []entity.BuildTemplate `yaml:"templates"`
}

// pricingFile is the on-disk shape of the finder price tables.
type pricingFile struct {
	Pricing entity.FinderPricing `yaml:"pricing"`
}

type buildConfig struct {
	templates []entity.BuildTemplate
	pricing   entity.FinderPricing
}

// Params holds dependencies for the build configuration, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New loads and validates the finder templates and price tables.
func New(params Params) (service.BuildConfigService, error) {
	templates, err := LoadTemplates(params.Config.Finder.TemplatesPath)
	if err != nil {
		return nil, err
	}

	pricing, err := LoadPricing(params.Config.Finder.PricingPath)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Finder configuration loaded",
		slog.Int("templates", len(templates)),
	)

	return &buildConfig{
		templates: templates,
		pricing:   pricing,
	}, nil
}

// LoadTemplates reads and validates a template set file.
func LoadTemplates(path string) ([]entity.BuildTemplate, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read templates file %s", path)
	}

	var parsed templatesFile
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, errors.Wrapf(err, "parse templates file %s", path)
	}
	if len(parsed.Templates) == 0 {
		return nil, errors.Errorf("templates file %s declares no templates", path)
	}

	for _, template := range parsed.Templates {
		if template.Name == "" {
			return nil, errors.Errorf("templates file %s: template with empty name", path)
		}
		for _, score := range []int{
			template.PerformanceScore,
			template.ValueScore,
			template.FutureProofScore,
			template.PowerEfficiency,
		} {
			if score < 0 || score > 100 {
				return nil, errors.Errorf("template %s: sub-score %d outside 0-100", template.Name, score)
			}
		}
	}

	return parsed.Templates, nil
}

// LoadPricing reads and validates a finder price table file.
func LoadPricing(path string) (entity.FinderPricing, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return entity.FinderPricing{}, errors.Wrapf(err, "read pricing file %s", path)
	}

	var parsed pricingFile
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return entity.FinderPricing{}, errors.Wrapf(err, "parse pricing file %s", path)
	}

	pricing := parsed.Pricing
	for slot, table := range map[string]entity.SlotPricing{
		"cpu":     pricing.CPU,
		"gpu":     pricing.GPU,
		"ram":     pricing.RAM,
		"storage": pricing.Storage,
		"cooling": pricing.Cooling,
	} {
		if table.Default <= 0 {
			return entity.FinderPricing{}, errors.Errorf("pricing slot %s: default price must be positive", slot)
		}
	}

	return pricing, nil
}

// Templates returns the fixed template set in declaration order
func (b *buildConfig) Templates() []entity.BuildTemplate {
	return b.templates
}

// Pricing returns the finder price-resolution tables
func (b *buildConfig) Pricing() entity.FinderPricing {
	return b.pricing
}
