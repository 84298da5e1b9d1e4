package impl

import (
	"context"
	"testing"

	"rig/internal/domain/entity"
	domainerrors "rig/internal/domain/errors"
	"rig/internal/domain/selection"
	"rig/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalogRepo struct {
	catalog entity.Catalog
}

func (s *stubCatalogRepo) FetchComponents(_ context.Context, category entity.Category) ([]entity.Component, error) {
	return s.catalog[category], nil
}

func (s *stubCatalogRepo) Snapshot(_ context.Context) (entity.Catalog, error) {
	return s.catalog, nil
}

func sessionCatalogFixture() entity.Catalog {
	return entity.Catalog{
		entity.CategoryCPU: {
			{ID: "cpu-am5", Name: "Ryzen 7 9700X", Category: entity.CategoryCPU, Socket: "AM5", Price: floatPtr(329.99), TDP: intPtr(65)},
			{ID: "cpu-lga", Name: "Core i5-14600K", Category: entity.CategoryCPU, Socket: "LGA1700", Price: floatPtr(279.99), TDP: intPtr(125)},
		},
		entity.CategoryMotherboard: {
			{ID: "mb-am5", Name: "B650 Tomahawk", Category: entity.CategoryMotherboard, Socket: "AM5", Price: floatPtr(189.99)},
		},
		entity.CategoryCase: {
			{ID: "case-1", Name: "4000D Airflow", Category: entity.CategoryCase, Price: floatPtr(94.99),
				PricesByOption: map[string]map[string]entity.PriceOverride{
					"colour": {"White": {Price: 99.99}},
				}},
		},
		"monitor": {
			{ID: "mon-1", Name: "27G2", Category: "monitor", Price: floatPtr(189.99)},
		},
	}
}

func newSessionService() usecase.SessionUsecase {
	return NewSessionService(SessionServiceParams{
		CatalogRepo:   &stubCatalogRepo{catalog: sessionCatalogFixture()},
		Compatibility: &compatibilityService{},
		Pricing:       &pricingService{options: &optionService{}},
	})
}

func TestSession_CreateAndGet(t *testing.T) {
	service := newSessionService()
	ctx := context.Background()

	created, err := service.Create(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.SessionID)
	assert.Empty(t, created.Components)
	assert.Empty(t, created.Issues)
	assert.Zero(t, created.TotalPrice)
	assert.Equal(t, 365, created.Power.EstimatedWatts)

	got, err := service.Get(ctx, created.SessionID)
	require.NoError(t, err)
	assert.Equal(t, created.SessionID, got.SessionID)
}

func TestSession_GetUnknown(t *testing.T) {
	service := newSessionService()

	_, err := service.Get(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
}

func TestSession_DispatchSelectDerivesState(t *testing.T) {
	service := newSessionService()
	ctx := context.Background()

	created, err := service.Create(ctx)
	require.NoError(t, err)

	state, err := service.Dispatch(ctx, created.SessionID, selection.Action{
		Type:        selection.ActionSelect,
		Category:    entity.CategoryCPU,
		ComponentID: "cpu-lga",
	})
	require.NoError(t, err)
	assert.Equal(t, "cpu-lga", state.Components[entity.CategoryCPU])
	assert.InDelta(t, 279.99, state.TotalPrice, 0.001)
	assert.Empty(t, state.Issues)
	assert.Equal(t, 125+150+150, state.Power.EstimatedWatts)

	// Adding a mismatched board surfaces the socket conflict.
	state, err = service.Dispatch(ctx, created.SessionID, selection.Action{
		Type:        selection.ActionSelect,
		Category:    entity.CategoryMotherboard,
		ComponentID: "mb-am5",
	})
	require.NoError(t, err)
	require.Len(t, state.Issues, 1)
	assert.Equal(t, entity.SeverityCritical, state.Issues[0].Severity)
	assert.InDelta(t, 279.99+189.99, state.TotalPrice, 0.001)
}

func TestSession_DispatchInvalidAction(t *testing.T) {
	service := newSessionService()
	ctx := context.Background()

	created, err := service.Create(ctx)
	require.NoError(t, err)

	_, err = service.Dispatch(ctx, created.SessionID, selection.Action{Type: "TOGGLE"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidAction)
}

func TestSession_RemovingSlotDropsItsOptions(t *testing.T) {
	service := newSessionService()
	ctx := context.Background()

	created, err := service.Create(ctx)
	require.NoError(t, err)

	_, err = service.Dispatch(ctx, created.SessionID, selection.Action{
		Type:        selection.ActionSelect,
		Category:    entity.CategoryCase,
		ComponentID: "case-1",
	})
	require.NoError(t, err)

	state, err := service.SetOptions(ctx, created.SessionID, entity.CategoryCase, map[string]string{"colour": "White"})
	require.NoError(t, err)
	assert.InDelta(t, 99.99, state.TotalPrice, 0.001)

	state, err = service.Dispatch(ctx, created.SessionID, selection.Action{
		Type:     selection.ActionRemove,
		Category: entity.CategoryCase,
	})
	require.NoError(t, err)
	assert.Empty(t, state.Options)
	assert.Zero(t, state.TotalPrice)
}

func TestSession_ResetClearsOptionsToo(t *testing.T) {
	service := newSessionService()
	ctx := context.Background()

	created, err := service.Create(ctx)
	require.NoError(t, err)

	_, err = service.Dispatch(ctx, created.SessionID, selection.Action{
		Type:        selection.ActionSelect,
		Category:    entity.CategoryCase,
		ComponentID: "case-1",
	})
	require.NoError(t, err)
	_, err = service.SetOptions(ctx, created.SessionID, entity.CategoryCase, map[string]string{"colour": "White"})
	require.NoError(t, err)

	state, err := service.Dispatch(ctx, created.SessionID, selection.Action{Type: selection.ActionReset})
	require.NoError(t, err)
	assert.Empty(t, state.Components)
	assert.Empty(t, state.Options)
}

func TestSession_Peripherals(t *testing.T) {
	service := newSessionService()
	ctx := context.Background()

	created, err := service.Create(ctx)
	require.NoError(t, err)

	state, err := service.AddPeripheral(ctx, created.SessionID, "monitor", "mon-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"mon-1"}, state.Peripherals["monitor"])
	assert.InDelta(t, 189.99, state.TotalPrice, 0.001)

	// Adding the same peripheral twice is a no-op.
	state, err = service.AddPeripheral(ctx, created.SessionID, "monitor", "mon-1")
	require.NoError(t, err)
	assert.Len(t, state.Peripherals["monitor"], 1)

	state, err = service.RemovePeripheral(ctx, created.SessionID, "monitor", "mon-1")
	require.NoError(t, err)
	assert.Empty(t, state.Peripherals)
	assert.Zero(t, state.TotalPrice)
}

func TestSession_AddPeripheralRejectsCoreCategory(t *testing.T) {
	service := newSessionService()
	ctx := context.Background()

	created, err := service.Create(ctx)
	require.NoError(t, err)

	_, err = service.AddPeripheral(ctx, created.SessionID, entity.CategoryCPU, "cpu-am5")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidAction)
}

func TestSession_SetOptionsRejectsUnknownCategory(t *testing.T) {
	service := newSessionService()
	ctx := context.Background()

	created, err := service.Create(ctx)
	require.NoError(t, err)

	_, err = service.SetOptions(ctx, created.SessionID, "monitor", map[string]string{"colour": "White"})

	assert.ErrorIs(t, err, domainerrors.ErrUnknownCategory)
}

func TestSession_Delete(t *testing.T) {
	service := newSessionService()
	ctx := context.Background()

	created, err := service.Create(ctx)
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, created.SessionID))

	_, err = service.Get(ctx, created.SessionID)
	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)

	assert.ErrorIs(t, service.Delete(ctx, created.SessionID), domainerrors.ErrSessionNotFound)
}
