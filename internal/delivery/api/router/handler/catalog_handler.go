package handler

import (
	"net/http"

	"pos/internal/delivery/api/response"
	"pos/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	OrderUC   usecase.OrderUsecase
}

// CatalogHandler serves the read-only catalog views. Load failures are part of the listing, so these never fail.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	orderUC   usecase.OrderUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{catalogUC: params.CatalogUC, orderUC: params.OrderUC}
}

func (h *CatalogHandler) Categories(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.catalogUC.Categories(c.Request().Context()))
}

func (h *CatalogHandler) Subcategories(c echo.Context) error {
	categoryID, ok := queryID(c, "categoria")
	if !ok {
		return response.BindingError(c, "Invalid category")
	}

	return response.Success(c, http.StatusOK, h.catalogUC.Subcategories(c.Request().Context(), categoryID))
}

// Products serves the ordering view, each product marked with the stock the order leaves
func (h *CatalogHandler) Products(c echo.Context) error {
	categoryID, ok := queryID(c, "categoria")
	if !ok {
		return response.BindingError(c, "Invalid category")
	}

	ctx := c.Request().Context()

	return response.Success(c, http.StatusOK, h.orderUC.Menu(ctx, h.catalogUC.Products(ctx, categoryID)))
}
