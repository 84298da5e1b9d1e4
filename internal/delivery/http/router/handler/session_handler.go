package handler

import (
	"log/slog"
	"net/http"

	"rig/internal/delivery/http/response"
	"rig/internal/domain/entity"
	"rig/internal/domain/selection"
	"rig/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionHandler holds dependencies for build session handlers
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// ActionRequest carries one reducer action for a session.
type ActionRequest struct {
	Type        selection.ActionType        `json:"type" validate:"required"`
	Category    entity.Category             `json:"category,omitempty"`
	ComponentID string                      `json:"component_id,omitempty"`
	Payload     entity.SelectedComponentIDs `json:"payload,omitempty"`
}

// PeripheralRequest carries a peripheral add/remove.
type PeripheralRequest struct {
	Category    entity.Category `json:"category" validate:"required"`
	ComponentID string          `json:"component_id" validate:"required"`
}

// OptionsRequest carries the sub-option choices for one core category.
type OptionsRequest struct {
	Category entity.Category   `json:"category" validate:"required"`
	Options  map[string]string `json:"options"`
}

// Create handles starting a new build session
func (h *SessionHandler) Create(c echo.Context) error {
	state, err := h.sessionUC.Create(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, state, "Build session created successfully")
}

// Get handles retrieving a session's derived state
func (h *SessionHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID")
	}

	state, err := h.sessionUC.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state, "Build session retrieved successfully")
}

// Dispatch handles applying a selection action to a session
func (h *SessionHandler) Dispatch(c echo.Context) error {
	id, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID")
	}

	var req ActionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid action input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	state, err := h.sessionUC.Dispatch(c.Request().Context(), id, selection.Action{
		Type:        req.Type,
		Category:    req.Category,
		ComponentID: req.ComponentID,
		Payload:     req.Payload,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state, "Selection updated successfully")
}

// AddPeripheral handles adding a peripheral to a session
func (h *SessionHandler) AddPeripheral(c echo.Context) error {
	id, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID")
	}

	var req PeripheralRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid peripheral input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	state, err := h.sessionUC.AddPeripheral(c.Request().Context(), id, req.Category, req.ComponentID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state, "Peripheral added successfully")
}

// RemovePeripheral handles removing a peripheral from a session
func (h *SessionHandler) RemovePeripheral(c echo.Context) error {
	id, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID")
	}

	category := entity.Category(c.Param("category"))
	componentID := c.Param("componentId")

	state, err := h.sessionUC.RemovePeripheral(c.Request().Context(), id, category, componentID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state, "Peripheral removed successfully")
}

// SetOptions handles recording sub-option choices for a core category
func (h *SessionHandler) SetOptions(c echo.Context) error {
	id, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID")
	}

	var req OptionsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid options input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	state, err := h.sessionUC.SetOptions(c.Request().Context(), id, req.Category, req.Options)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state, "Options updated successfully")
}

// Delete handles discarding a session
func (h *SessionHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID")
	}

	if err := h.sessionUC.Delete(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Session deleted"}, "Build session deleted successfully")
}
