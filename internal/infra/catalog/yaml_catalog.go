// Package catalog implements the component catalog boundary over a YAML
// snapshot loaded at startup. The loaded data is immutable for the process
// lifetime; every decision function receives it as a parameter.
package catalog

import (
	"context"
	"log/slog"
	"os"

	"rig/config"
	"rig/internal/domain/entity"
	"rig/internal/domain/repository"
	"rig/internal/errors"

	"go.uber.org/fx"
	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk shape of the catalog snapshot.
type catalogFile struct {
	Categories map[entity.Category][]entity.Component `yaml:"categories"`
}

type yamlCatalog struct {
	catalog entity.Catalog
}

// Params holds dependencies for the catalog repository, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New loads the catalog snapshot from the configured path.
func New(params Params) (repository.CatalogRepository, error) {
	catalog, err := Load(params.Config.Catalog.Path)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, components := range catalog {
		total += len(components)
	}
	params.Logger.Info("Catalog loaded",
		slog.String("path", params.Config.Catalog.Path),
		slog.Int("categories", len(catalog)),
		slog.Int("components", total),
	)

	return &yamlCatalog{catalog: catalog}, nil
}

// Load reads and validates a catalog snapshot file.
func Load(path string) (entity.Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read catalog file %s", path)
	}

	var parsed catalogFile
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, errors.Wrapf(err, "parse catalog file %s", path)
	}

	catalog := make(entity.Catalog, len(parsed.Categories))
	for category, components := range parsed.Categories {
		seen := make(map[string]bool, len(components))
		for i := range components {
			component := &components[i]
			if component.ID == "" {
				return nil, errors.Errorf("catalog category %s: component %d has no id", category, i)
			}
			if seen[component.ID] {
				return nil, errors.Errorf("catalog category %s: duplicate component id %s", category, component.ID)
			}
			seen[component.ID] = true
			component.Category = category
		}
		catalog[category] = components
	}

	return catalog, nil
}

// FetchComponents returns the ordered component records of one category
func (c *yamlCatalog) FetchComponents(_ context.Context, category entity.Category) ([]entity.Component, error) {
	components, ok := c.catalog[category]
	if !ok {
		return nil, errors.Wrapf(repository.ErrCategoryNotFound, "category %s", category)
	}

	return components, nil
}

// Snapshot returns the full catalog keyed by category
func (c *yamlCatalog) Snapshot(_ context.Context) (entity.Catalog, error) {
	return c.catalog, nil
}
