package usecase

import (
	"context"

	"rig/internal/domain/entity"
)

// FinderUsecase ranks the hand-authored build templates against a user
// profile and returns the best matches.
type FinderUsecase interface {
	// Rank scores every template for the profile — template price
	// resolved against the finder price tables, budget fit, use-case
	// overlap and the template's own sub-scores under dynamic weights —
	// and returns the top builds in descending score order with their
	// rank labels attached.
	Rank(ctx context.Context, profile entity.UserProfile) ([]entity.ScoredBuild, error)
}
