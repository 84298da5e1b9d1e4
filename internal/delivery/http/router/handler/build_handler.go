package handler

import (
	"log/slog"
	"net/http"

	"rig/internal/delivery/http/response"
	"rig/internal/domain/entity"
	"rig/internal/domain/repository"
	"rig/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BuildHandlerParams holds dependencies for BuildHandler, injected by Fx.
type BuildHandlerParams struct {
	fx.In

	CatalogRepo   repository.CatalogRepository
	Compatibility usecase.CompatibilityUsecase
	Pricing       usecase.PricingUsecase
	Logger        *slog.Logger
}

// BuildHandler holds dependencies for stateless build evaluation handlers
type BuildHandler struct {
	catalogRepo   repository.CatalogRepository
	compatibility usecase.CompatibilityUsecase
	pricing       usecase.PricingUsecase
	logger        *slog.Logger
}

// NewBuildHandler is the constructor for BuildHandler
func NewBuildHandler(params BuildHandlerParams) *BuildHandler {
	return &BuildHandler{
		catalogRepo:   params.CatalogRepo,
		compatibility: params.Compatibility,
		pricing:       params.Pricing,
		logger:        params.Logger,
	}
}

// ValidateRequest carries a selection to check for compatibility issues.
type ValidateRequest struct {
	Selection entity.SelectedComponentIDs `json:"selection"`
}

// SummaryRequest carries a full selection for price and power totals.
type SummaryRequest struct {
	Selection   entity.SelectedComponentIDs `json:"selection"`
	Peripherals entity.SelectedPeripherals  `json:"peripherals,omitempty"`
	Options     entity.OptionSelections     `json:"options,omitempty"`
}

// SummaryResponse is the aggregate view of a selection.
type SummaryResponse struct {
	TotalPrice float64                     `json:"total_price"`
	Power      usecase.PowerEstimate       `json:"power"`
	Issues     []entity.CompatibilityIssue `json:"issues"`
}

// Validate handles compatibility validation of a posted selection
func (h *BuildHandler) Validate(c echo.Context) error {
	var req ValidateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid selection input")
	}

	catalog, err := h.catalogRepo.Snapshot(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	issues := h.compatibility.Validate(req.Selection, catalog)

	return response.Success(c, http.StatusOK, issues, "Selection validated successfully")
}

// Summary handles total price and power estimation of a posted selection
func (h *BuildHandler) Summary(c echo.Context) error {
	var req SummaryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid selection input")
	}

	catalog, err := h.catalogRepo.Snapshot(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	summary := SummaryResponse{
		TotalPrice: h.pricing.TotalPrice(req.Selection, req.Peripherals, req.Options, catalog),
		Power:      h.pricing.EstimatedPowerDraw(req.Selection, catalog),
		Issues:     h.compatibility.Validate(req.Selection, catalog),
	}

	return response.Success(c, http.StatusOK, summary, "Build summary computed successfully")
}
