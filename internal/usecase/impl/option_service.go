package impl

import (
	"rig/internal/domain/entity"
	"rig/internal/usecase"

	"go.uber.org/fx"
)

// optionKeyPrecedence is the fixed order in which price overrides are
// consulted. The first selected key with a matching override wins.
var optionKeyPrecedence = []string{"size", "storage", "colour", "color", "type", "style"}

// placeholderImages is served when a component declares no imagery at all.
var placeholderImages = []string{
	"/images/placeholder/front.webp",
	"/images/placeholder/side.webp",
	"/images/placeholder/rear.webp",
	"/images/placeholder/detail.webp",
}

type optionService struct{}

// OptionServiceParams holds dependencies for OptionService, injected by Fx.
type OptionServiceParams struct {
	fx.In
}

// NewOptionService creates a new option resolution service instance
func NewOptionService(_ OptionServiceParams) usecase.OptionUsecase {
	return &optionService{}
}

// Resolve computes the effective price, identifier and image set of a
// component for the given sub-option choices.
func (s *optionService) Resolve(component *entity.Component, selected map[string]string) usecase.ResolvedOptions {
	resolved := usecase.ResolvedOptions{
		Identifier: component.Identifier,
		Images:     s.resolveImages(component, selected),
	}
	if component.Price != nil {
		price := *component.Price
		resolved.Price = &price
	}

	for _, key := range optionKeyPrecedence {
		value, ok := selected[key]
		if !ok {
			continue
		}

		table, ok := component.PricesByOption[key]
		if !ok {
			// The selection may use one colour spelling while the
			// catalog uses the other.
			table, ok = component.PricesByOption[colourAlias(key)]
		}
		if !ok {
			continue
		}

		override, ok := table[value]
		if !ok {
			continue
		}

		price := override.Price
		resolved.Price = &price
		if override.Identifier != "" {
			resolved.Identifier = override.Identifier
		}

		return resolved
	}

	return resolved
}

// resolveImages walks the component's declared option groups, in
// declaration order, and returns the first non-empty image override for a
// currently selected value. Declared colour/color duplicates collapse,
// preferring "colour". Falls back to the component's default images, then
// to the placeholder set.
func (s *optionService) resolveImages(component *entity.Component, selected map[string]string) []string {
	for _, group := range dedupeOptionGroups(component.Options) {
		value, ok := selected[group.Key]
		if !ok {
			value, ok = selected[colourAlias(group.Key)]
		}
		if !ok || value == "" {
			continue
		}

		if images := lookupImages(component.ImagesByOption, group.Key, value); len(images) > 0 {
			return images
		}
	}

	if len(component.Images) > 0 {
		return component.Images
	}

	return placeholderImages
}

// lookupImages checks the image override map under the key and, for the
// colour keys, under the alias spelling.
func lookupImages(byOption map[string]map[string][]string, key, value string) []string {
	if images := byOption[key][value]; len(images) > 0 {
		return images
	}

	return byOption[colourAlias(key)][value]
}

// dedupeOptionGroups removes duplicate declarations of the same option
// key. When both "colour" and "color" are declared only "colour" is kept.
func dedupeOptionGroups(groups []entity.OptionGroup) []entity.OptionGroup {
	hasColour := false
	for _, group := range groups {
		if group.Key == "colour" {
			hasColour = true

			break
		}
	}

	seen := make(map[string]bool, len(groups))
	out := make([]entity.OptionGroup, 0, len(groups))
	for _, group := range groups {
		if group.Key == "color" && hasColour {
			continue
		}
		if seen[group.Key] {
			continue
		}
		seen[group.Key] = true
		out = append(out, group)
	}

	return out
}

// colourAlias maps between the two colour spellings; every other key maps
// to itself.
func colourAlias(key string) string {
	switch key {
	case "colour":
		return "color"
	case "color":
		return "colour"
	default:
		return key
	}
}
