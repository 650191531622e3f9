package impl

import (
	"context"
	"log/slog"
	"net/http"

	deliverycontext "pos/internal/delivery/context"
	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/service"
	"pos/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productAdminService implements the ProductAdminUsecase interface.
type productAdminService struct {
	api     service.CatalogAPI
	catalog usecase.CatalogUsecase
	images  service.ImageSource
	logger  *slog.Logger
}

// ProductAdminServiceParams holds dependencies for productAdminService, injected by Fx
type ProductAdminServiceParams struct {
	fx.In

	API     service.CatalogAPI
	Catalog usecase.CatalogUsecase
	Images  service.ImageSource
	Logger  *slog.Logger
}

// NewProductAdminService is the constructor for productAdminService.
func NewProductAdminService(params ProductAdminServiceParams) usecase.ProductAdminUsecase {
	return &productAdminService{
		api:     params.API,
		catalog: params.Catalog,
		images:  params.Images,
		logger:  params.Logger,
	}
}

func (srv *productAdminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *productAdminService) Create(ctx context.Context, form entity.ProductForm) (*usecase.ProductChange, error) {
	product, err := srv.api.CreateProduct(ctx, form.Payload())
	if err != nil {
		return nil, saveError(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Int("product_id", product.ID))

	return srv.changed(ctx, product), nil
}

func (srv *productAdminService) Update(ctx context.Context, id int, form entity.ProductForm) (*usecase.ProductChange, error) {
	if id <= 0 {
		return nil, errors.WithStack(domainerrors.ErrProductNotSaved)
	}

	product, err := srv.api.UpdateProduct(ctx, id, form.Payload())
	if err != nil {
		return nil, saveError(err, "failed to update product")
	}

	srv.log(ctx).Info("Product updated", slog.Int("product_id", id))

	return srv.changed(ctx, product), nil
}

func (srv *productAdminService) EditForm(ctx context.Context, id int) (*entity.ProductForm, error) {
	if id <= 0 {
		return nil, errors.WithStack(domainerrors.ErrProductNotFound)
	}

	product, ok := srv.catalog.Product(ctx, id)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrProductNotFound)
	}

	form := entity.FormFromProduct(*product)

	return &form, nil
}

func (srv *productAdminService) Delete(ctx context.Context, id int) (*usecase.ProductChange, error) {
	if id <= 0 {
		return nil, errors.WithStack(domainerrors.ErrProductNotFound)
	}

	if err := srv.api.DeleteProduct(ctx, id); err != nil {
		return nil, saveError(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.Int("product_id", id))

	return srv.changed(ctx, nil), nil
}

func (srv *productAdminService) UploadImage(ctx context.Context, id int, image *entity.ImageFile) (*usecase.ProductChange, error) {
	if id <= 0 {
		return nil, errors.WithStack(domainerrors.ErrProductNotSaved)
	}
	if image == nil || len(image.Data) == 0 {
		return nil, errors.WithStack(domainerrors.ErrInvalidImage)
	}

	product, err := srv.api.UploadProductImage(ctx, id, image)
	if err != nil {
		return nil, saveError(err, "failed to upload product image")
	}

	srv.log(ctx).Info("Product image uploaded", slog.Int("product_id", id), slog.Int("size", len(image.Data)))

	return srv.changed(ctx, product), nil
}

func (srv *productAdminService) UploadImageFromBlob(ctx context.Context, id int, ref entity.BlobRef) (*usecase.ProductChange, error) {
	if id <= 0 {
		return nil, errors.WithStack(domainerrors.ErrProductNotSaved)
	}

	image, err := srv.images.Open(ctx, ref)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open image")
	}

	return srv.UploadImage(ctx, id, image)
}

// changed refetches the full list after a successful mutation
func (srv *productAdminService) changed(ctx context.Context, product *entity.Product) *usecase.ProductChange {
	return &usecase.ProductChange{
		Product:  product,
		Products: srv.catalog.RefreshProducts(ctx),
	}
}

// saveError maps a failed mutation: a missing product is reported as such, everything else goes through surfaceError
func saveError(err error, message string) error {
	var statusErr *domainerrors.BackendStatusError
	if errors.As(err, &statusErr) && statusErr.Status == http.StatusNotFound {
		return errors.Wrap(domainerrors.ErrProductNotFound.WithDetails(err.Error()), message)
	}

	return errors.Wrap(surfaceError(err, domainerrors.ErrProductSaveFailed), message)
}
