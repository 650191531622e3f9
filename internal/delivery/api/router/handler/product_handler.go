package handler

import (
	"log/slog"
	"net/http"

	"pos/internal/delivery/api/response"
	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductAdminUsecase
	Logger    *slog.Logger
}

// ProductHandler serves the admin product form
type ProductHandler struct {
	productUC usecase.ProductAdminUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

func (h *ProductHandler) Create(c echo.Context) error {
	var form entity.ProductForm
	if err := c.Bind(&form); err != nil {
		return response.BindingError(c, "Invalid product input")
	}

	change, err := h.productUC.Create(c.Request().Context(), form)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, change)
}

func (h *ProductHandler) Update(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.BindingError(c, "Invalid product id")
	}

	var form entity.ProductForm
	if err := c.Bind(&form); err != nil {
		return response.BindingError(c, "Invalid product input")
	}

	change, err := h.productUC.Update(c.Request().Context(), id, form)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, change)
}

// Form returns the edit form of a saved product
func (h *ProductHandler) Form(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.BindingError(c, "Invalid product id")
	}

	form, err := h.productUC.EditForm(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, form)
}

func (h *ProductHandler) Delete(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.BindingError(c, "Invalid product id")
	}

	change, err := h.productUC.Delete(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, change)
}

// UploadImage accepts a multipart "imagen" part or a JSON blob reference
func (h *ProductHandler) UploadImage(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.BindingError(c, "Invalid product id")
	}
	ctx := c.Request().Context()

	var (
		change *usecase.ProductChange
		err    error
	)

	if isMultipart(c) {
		image, readErr := formImage(c, "imagen")
		if readErr != nil {
			return readErr
		}
		if image == nil {
			return errors.WithStack(domainerrors.ErrInvalidImage.WithDetails("missing imagen part"))
		}
		change, err = h.productUC.UploadImage(ctx, id, image)
	} else {
		var ref entity.BlobRef
		if bindErr := c.Bind(&ref); bindErr != nil {
			return response.BindingError(c, "Invalid image reference")
		}
		if validateErr := c.Validate(&ref); validateErr != nil {
			return errors.WithStack(validateErr)
		}
		change, err = h.productUC.UploadImageFromBlob(ctx, id, ref)
	}

	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, change)
}
