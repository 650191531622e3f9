package handler

import (
	"log/slog"
	"net/http"

	"pos/internal/delivery/api/response"
	"pos/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves the cart of the current session
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// AddItemRequest adds cantidad units of producto. Non-positive quantities are rejected by the order.
type AddItemRequest struct {
	Producto int `json:"producto" validate:"required,gt=0"`
	Cantidad int `json:"cantidad"`
}

func (h *OrderHandler) Summary(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.orderUC.Summary(c.Request().Context()))
}

func (h *OrderHandler) AddItem(c echo.Context) error {
	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid order item")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	summary, err := h.orderUC.AddItem(c.Request().Context(), req.Producto, req.Cantidad)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary)
}

// RemoveItem deletes the whole line of the product
func (h *OrderHandler) RemoveItem(c echo.Context) error {
	productID, ok := pathID(c)
	if !ok {
		return response.BindingError(c, "Invalid product id")
	}

	summary, err := h.orderUC.RemoveItem(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary)
}

func (h *OrderHandler) Receipt(c echo.Context) error {
	receipt, err := h.orderUC.Receipt(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, receipt)
}

// ReceiptQR writes the bill as a PNG
func (h *OrderHandler) ReceiptQR(c echo.Context) error {
	png, err := h.orderUC.ReceiptQR(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
