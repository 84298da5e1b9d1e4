package handler

import (
	"log/slog"
	"net/http"

	"rig/internal/delivery/http/response"
	"rig/internal/domain/entity"
	domainerrors "rig/internal/domain/errors"
	"rig/internal/domain/repository"
	"rig/internal/errors"
	"rig/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogRepo   repository.CatalogRepository
	Compatibility usecase.CompatibilityUsecase
	Options       usecase.OptionUsecase
	Logger        *slog.Logger
}

// CatalogHandler holds dependencies for catalog-related handlers
type CatalogHandler struct {
	catalogRepo   repository.CatalogRepository
	compatibility usecase.CompatibilityUsecase
	options       usecase.OptionUsecase
	logger        *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogRepo:   params.CatalogRepo,
		compatibility: params.Compatibility,
		options:       params.Options,
		logger:        params.Logger,
	}
}

// ChoicesRequest carries the partial selection used to narrow a category.
type ChoicesRequest struct {
	Selection entity.SelectedComponentIDs `json:"selection"`
}

// ResolveRequest carries the sub-option choices to resolve a component.
type ResolveRequest struct {
	Options map[string]string `json:"options"`
}

// ListComponents handles listing one category of the catalog
func (h *CatalogHandler) ListComponents(c echo.Context) error {
	category := entity.Category(c.Param("category"))

	components, err := h.catalogRepo.FetchComponents(c.Request().Context(), category)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return response.HandleAppError(c, domainerrors.ErrUnknownCategory.WithDetails(string(category)))
		}

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, components, "Components retrieved successfully")
}

// ListChoices handles narrowing a category to the components compatible
// with a partial selection
func (h *CatalogHandler) ListChoices(c echo.Context) error {
	category := entity.Category(c.Param("category"))

	var req ChoicesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid selection input")
	}

	catalog, err := h.catalogRepo.Snapshot(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if _, ok := catalog[category]; !ok {
		return response.HandleAppError(c, domainerrors.ErrUnknownCategory.WithDetails(string(category)))
	}

	choices := h.compatibility.FilterChoices(category, req.Selection, catalog)

	return response.Success(c, http.StatusOK, choices, "Compatible components retrieved successfully")
}

// ResolveComponent handles resolving a component's effective price,
// identifier and images for a set of sub-option choices
func (h *CatalogHandler) ResolveComponent(c echo.Context) error {
	category := entity.Category(c.Param("category"))
	id := c.Param("id")

	var req ResolveRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid option input")
	}

	catalog, err := h.catalogRepo.Snapshot(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	component := catalog.Find(category, id)
	if component == nil {
		return response.HandleAppError(c, domainerrors.ErrComponentNotFound.WithDetails(id))
	}

	resolved := h.options.Resolve(component, req.Options)

	return response.Success(c, http.StatusOK, resolved, "Component resolved successfully")
}
