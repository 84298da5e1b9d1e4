package impl

import (
	"context"
	"sync"
	"time"

	"rig/internal/domain/entity"
	domainerrors "rig/internal/domain/errors"
	"rig/internal/domain/repository"
	"rig/internal/domain/selection"
	"rig/internal/errors"
	"rig/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// buildSession is the mutable per-session record. Only the selection,
// peripherals and option choices are stored; everything else is derived on
// read.
type buildSession struct {
	id          uuid.UUID
	components  entity.SelectedComponentIDs
	peripherals entity.SelectedPeripherals
	options     entity.OptionSelections
	createdAt   time.Time
	updatedAt   time.Time
}

type sessionService struct {
	catalogRepo   repository.CatalogRepository
	compatibility usecase.CompatibilityUsecase
	pricing       usecase.PricingUsecase

	mu       sync.RWMutex
	sessions map[uuid.UUID]*buildSession
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	CatalogRepo   repository.CatalogRepository
	Compatibility usecase.CompatibilityUsecase
	Pricing       usecase.PricingUsecase
}

// NewSessionService creates a new build session service instance
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		catalogRepo:   params.CatalogRepo,
		compatibility: params.Compatibility,
		pricing:       params.Pricing,
		sessions:      make(map[uuid.UUID]*buildSession),
	}
}

// Create starts an empty build session
func (s *sessionService) Create(ctx context.Context) (*usecase.BuildState, error) {
	now := time.Now()
	session := &buildSession{
		id:          uuid.New(),
		components:  entity.SelectedComponentIDs{},
		peripherals: entity.SelectedPeripherals{},
		options:     entity.OptionSelections{},
		createdAt:   now,
		updatedAt:   now,
	}

	s.mu.Lock()
	s.sessions[session.id] = session
	s.mu.Unlock()

	return s.derive(ctx, session)
}

// Get returns the current derived state of a session
func (s *sessionService) Get(ctx context.Context, id uuid.UUID) (*usecase.BuildState, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, domainerrors.ErrSessionNotFound
	}

	return s.derive(ctx, session)
}

// Dispatch applies a reducer action to the session's selection
func (s *sessionService) Dispatch(ctx context.Context, id uuid.UUID, action selection.Action) (*usecase.BuildState, error) {
	switch action.Type {
	case selection.ActionSelect, selection.ActionRemove, selection.ActionReset,
		selection.ActionSetAll, selection.ActionImport:
	default:
		return nil, domainerrors.ErrInvalidAction.WithDetails(string(action.Type))
	}

	s.mu.Lock()
	session, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()

		return nil, domainerrors.ErrSessionNotFound
	}

	session.components = selection.Reduce(session.components, action)

	// Option choices for a slot die with the slot's selection.
	for category := range session.options {
		if _, selected := session.components[category]; !selected {
			delete(session.options, category)
		}
	}

	session.updatedAt = time.Now()
	s.mu.Unlock()

	return s.derive(ctx, session)
}

// AddPeripheral adds a peripheral id to the session
func (s *sessionService) AddPeripheral(ctx context.Context, id uuid.UUID, category entity.Category, componentID string) (*usecase.BuildState, error) {
	if category.IsCore() {
		return nil, domainerrors.ErrInvalidAction.WithDetails("core categories change through selection actions")
	}

	s.mu.Lock()
	session, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()

		return nil, domainerrors.ErrSessionNotFound
	}

	if !session.peripherals.Contains(category, componentID) {
		session.peripherals[category] = append(session.peripherals[category], componentID)
		session.updatedAt = time.Now()
	}
	s.mu.Unlock()

	return s.derive(ctx, session)
}

// RemovePeripheral removes a peripheral id from the session
func (s *sessionService) RemovePeripheral(ctx context.Context, id uuid.UUID, category entity.Category, componentID string) (*usecase.BuildState, error) {
	s.mu.Lock()
	session, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()

		return nil, domainerrors.ErrSessionNotFound
	}

	ids := session.peripherals[category]
	for i, existing := range ids {
		if existing == componentID {
			session.peripherals[category] = append(ids[:i], ids[i+1:]...)
			session.updatedAt = time.Now()

			break
		}
	}
	if len(session.peripherals[category]) == 0 {
		delete(session.peripherals, category)
	}
	s.mu.Unlock()

	return s.derive(ctx, session)
}

// SetOptions records the sub-option choices for one core category
func (s *sessionService) SetOptions(ctx context.Context, id uuid.UUID, category entity.Category, options map[string]string) (*usecase.BuildState, error) {
	if !category.IsCore() {
		return nil, domainerrors.ErrUnknownCategory.WithDetails(string(category))
	}

	s.mu.Lock()
	session, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()

		return nil, domainerrors.ErrSessionNotFound
	}

	if len(options) == 0 {
		delete(session.options, category)
	} else {
		copied := make(map[string]string, len(options))
		for key, value := range options {
			copied[key] = value
		}
		session.options[category] = copied
	}
	session.updatedAt = time.Now()
	s.mu.Unlock()

	return s.derive(ctx, session)
}

// Delete discards a session
func (s *sessionService) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return domainerrors.ErrSessionNotFound
	}
	delete(s.sessions, id)

	return nil
}

// derive recomputes the full build state from the session's raw selection
// against the current catalog snapshot.
func (s *sessionService) derive(ctx context.Context, session *buildSession) (*usecase.BuildState, error) {
	catalog, err := s.catalogRepo.Snapshot(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalog snapshot")
	}

	s.mu.RLock()
	components := session.components.Clone()
	peripherals := session.peripherals.Clone()
	options := session.options.Clone()
	createdAt, updatedAt := session.createdAt, session.updatedAt
	s.mu.RUnlock()

	return &usecase.BuildState{
		SessionID:   session.id,
		Components:  components,
		Peripherals: peripherals,
		Options:     options,
		Issues:      s.compatibility.Validate(components, catalog),
		TotalPrice:  s.pricing.TotalPrice(components, peripherals, options, catalog),
		Power:       s.pricing.EstimatedPowerDraw(components, catalog),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}
