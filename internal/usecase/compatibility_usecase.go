package usecase

import (
	"rig/internal/domain/entity"
)

// CompatibilityUsecase checks a full or partial selection against the
// physical and electrical constraints of the chosen parts.
type CompatibilityUsecase interface {
	// Validate runs every compatibility rule against the selection and
	// returns the issues found. Rules are additive: each fires
	// independently and a build may report several issues at once. A
	// rule whose components are not selected is skipped silently.
	Validate(selection entity.SelectedComponentIDs, catalog entity.Catalog) []entity.CompatibilityIssue

	// FilterChoices narrows the candidates of a target category to those
	// that cannot trigger a critical rule against the already-selected
	// components. With nothing selected it returns the full category
	// list.
	FilterChoices(category entity.Category, partial entity.SelectedComponentIDs, catalog entity.Catalog) []entity.Component
}
