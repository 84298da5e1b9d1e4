package handler

import (
	"log/slog"
	"net/http"

	"rig/internal/delivery/http/response"
	"rig/internal/domain/entity"
	"rig/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FinderHandlerParams holds dependencies for FinderHandler, injected by Fx.
type FinderHandlerParams struct {
	fx.In

	FinderUC usecase.FinderUsecase
	Logger   *slog.Logger
}

// FinderHandler holds dependencies for the build finder handlers
type FinderHandler struct {
	finderUC usecase.FinderUsecase
	logger   *slog.Logger
}

// NewFinderHandler is the constructor for FinderHandler
func NewFinderHandler(params FinderHandlerParams) *FinderHandler {
	return &FinderHandler{
		finderUC: params.FinderUC,
		logger:   params.Logger,
	}
}

// RecommendationsRequest carries the finder questionnaire answers.
type RecommendationsRequest struct {
	Budget       float64 `json:"budget" validate:"required,gt=0"`
	Purpose      string  `json:"purpose" validate:"required"`
	GamingType   string  `json:"gaming_type,omitempty"`
	CreativeWork string  `json:"creative_work,omitempty"`
	Performance  string  `json:"performance,omitempty"`
}

// Recommendations handles ranking the build templates for a profile
func (h *FinderHandler) Recommendations(c echo.Context) error {
	var req RecommendationsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid finder input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	profile := entity.UserProfile{
		Budget:       req.Budget,
		Purpose:      req.Purpose,
		GamingType:   req.GamingType,
		CreativeWork: req.CreativeWork,
		Performance:  req.Performance,
	}

	builds, err := h.finderUC.Rank(c.Request().Context(), profile)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, builds, "Recommendations computed successfully")
}
