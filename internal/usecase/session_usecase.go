// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"rig/internal/domain/entity"
	"rig/internal/domain/selection"

	"github.com/google/uuid"
)

// BuildState is the full derived view of a build session after a
// transition: the raw selection plus everything recomputed from it.
type BuildState struct {
	SessionID   uuid.UUID                   `json:"session_id"`
	Components  entity.SelectedComponentIDs `json:"components"`
	Peripherals entity.SelectedPeripherals  `json:"peripherals"`
	Options     entity.OptionSelections     `json:"options"`
	Issues      []entity.CompatibilityIssue `json:"issues"`
	TotalPrice  float64                     `json:"total_price"`
	Power       PowerEstimate               `json:"power"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
}

// SessionUsecase manages in-memory build sessions. Selections only change
// through reducer actions; issues, totals and power are recomputed from
// scratch after every transition and never patched incrementally.
type SessionUsecase interface {
	// Create starts an empty build session.
	Create(ctx context.Context) (*BuildState, error)

	// Get returns the current derived state of a session.
	Get(ctx context.Context, id uuid.UUID) (*BuildState, error)

	// Dispatch applies a reducer action to the session's selection and
	// returns the re-derived state.
	Dispatch(ctx context.Context, id uuid.UUID, action selection.Action) (*BuildState, error)

	// AddPeripheral adds a peripheral id to the session; adding an
	// already-selected id is a no-op.
	AddPeripheral(ctx context.Context, id uuid.UUID, category entity.Category, componentID string) (*BuildState, error)

	// RemovePeripheral removes a peripheral id from the session.
	RemovePeripheral(ctx context.Context, id uuid.UUID, category entity.Category, componentID string) (*BuildState, error)

	// SetOptions records the sub-option choices for one core category.
	SetOptions(ctx context.Context, id uuid.UUID, category entity.Category, options map[string]string) (*BuildState, error)

	// Delete discards a session.
	Delete(ctx context.Context, id uuid.UUID) error
}
