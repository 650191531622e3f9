package impl

import (
	"context"
	"net/http"
	"testing"

	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	mockService "pos/internal/mocks/service"
	"pos/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type productAdminFixtures struct {
	service usecase.ProductAdminUsecase
	api     *mockService.MockCatalogAPI
	images  *mockService.MockImageSource
}

func createTestProductAdminService(t *testing.T) productAdminFixtures {
	t.Helper()

	fx := productAdminFixtures{
		api:    mockService.NewMockCatalogAPI(t),
		images: mockService.NewMockImageSource(t),
	}
	catalog := NewCatalogService(CatalogServiceParams{API: fx.api, Events: newBus(), Logger: discardLogger()})
	fx.service = NewProductAdminService(ProductAdminServiceParams{
		API:     fx.api,
		Catalog: catalog,
		Images:  fx.images,
		Logger:  discardLogger(),
	})

	return fx
}

func strPtr(s string) *string { return &s }

func TestProductAdminService_UploadImageRequiresSavedProduct(t *testing.T) {
	fx := createTestProductAdminService(t)
	ctx := context.Background()

	_, err := fx.service.UploadImage(ctx, 0, &entity.ImageFile{Filename: "a.png", Data: []byte("x")})
	require.ErrorIs(t, err, domainerrors.ErrProductNotSaved)
	assert.Equal(t, "Primero debes guardar el producto antes de subir una imagen", domainerrors.ErrProductNotSaved.Message())

	_, err = fx.service.UploadImageFromBlob(ctx, 0, entity.BlobRef{Bucket: "file:///srv", Key: "a.png"})
	require.ErrorIs(t, err, domainerrors.ErrProductNotSaved)

	fx.api.AssertNotCalled(t, "UploadProductImage")
	fx.images.AssertNotCalled(t, "Open")
}

func TestProductAdminService_CreateSendsCleanPayloadAndRefetches(t *testing.T) {
	fx := createTestProductAdminService(t)
	ctx := context.Background()
	precio := decimal.RequireFromString("10")
	categoria := entity.Ref{ID: 2, Nombre: "Bebidas"}
	created := product(5, "Café", "10", 4)

	form := entity.ProductForm{
		ID:            99,
		Nombre:        strPtr("Café"),
		Descripcion:   strPtr(""),
		Precio:        &precio,
		Categoria:     &categoria,
		Imagen:        strPtr("http://media/old.png"),
		FechaCreacion: strPtr("2024-01-01"),
	}

	fx.api.EXPECT().CreateProduct(ctx, map[string]any{
		"nombre":    "Café",
		"precio":    "10",
		"categoria": 2,
	}).Return(&created, nil)
	fx.api.EXPECT().ListProducts(ctx, 0).Return([]entity.Product{created}, nil)

	change, err := fx.service.Create(ctx, form)
	require.NoError(t, err)

	assert.Equal(t, 5, change.Product.ID)
	assert.Equal(t, usecase.ListingLoaded, change.Products.Status)
	assert.Len(t, change.Products.Items, 1)
}

func TestProductAdminService_FieldErrorsPassThroughWithoutRefetch(t *testing.T) {
	fx := createTestProductAdminService(t)
	ctx := context.Background()
	fields := map[string][]string{"nombre": {"Este campo es requerido."}}

	fx.api.EXPECT().CreateProduct(ctx, map[string]any{}).
		Return(nil, domainerrors.NewFieldValidationError(http.StatusBadRequest, fields))

	_, err := fx.service.Create(ctx, entity.ProductForm{Nombre: strPtr("")})

	var fieldErr *domainerrors.FieldValidationError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, fields, fieldErr.Fields())
	fx.api.AssertNotCalled(t, "ListProducts")
}

func TestProductAdminService_UpdateMissingProduct(t *testing.T) {
	fx := createTestProductAdminService(t)
	ctx := context.Background()

	fx.api.EXPECT().UpdateProduct(ctx, 8, map[string]any{"cantidad": 3}).
		Return(nil, domainerrors.NewBackendStatusError(http.StatusNotFound, "No encontrado."))

	cantidad := 3
	_, err := fx.service.Update(ctx, 8, entity.ProductForm{Cantidad: &cantidad})
	require.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductAdminService_TransportFailureIsGenericSaveError(t *testing.T) {
	fx := createTestProductAdminService(t)
	ctx := context.Background()

	fx.api.EXPECT().DeleteProduct(ctx, 3).Return(errors.WithStack(domainerrors.ErrBackendUnavailable.WithDetails("connection refused")))

	_, err := fx.service.Delete(ctx, 3)
	require.ErrorIs(t, err, domainerrors.ErrProductSaveFailed)
}

func TestProductAdminService_SessionExpiryIsNotMasked(t *testing.T) {
	fx := createTestProductAdminService(t)
	ctx := context.Background()

	fx.api.EXPECT().DeleteProduct(ctx, 3).Return(errors.WithStack(domainerrors.ErrSessionExpired))

	_, err := fx.service.Delete(ctx, 3)
	require.ErrorIs(t, err, domainerrors.ErrSessionExpired)
}

func TestProductAdminService_DeleteRefetches(t *testing.T) {
	fx := createTestProductAdminService(t)
	ctx := context.Background()

	fx.api.EXPECT().DeleteProduct(ctx, 3).Return(nil)
	fx.api.EXPECT().ListProducts(ctx, 0).Return([]entity.Product{}, nil)

	change, err := fx.service.Delete(ctx, 3)
	require.NoError(t, err)
	assert.Nil(t, change.Product)
	assert.True(t, change.Products.Empty)
}

func TestProductAdminService_UploadImageFromBlob(t *testing.T) {
	fx := createTestProductAdminService(t)
	ctx := context.Background()
	ref := entity.BlobRef{Bucket: "mem://", Key: "cafe.png"}
	image := &entity.ImageFile{Filename: "cafe.png", ContentType: "image/png", Data: []byte("png")}
	updated := product(4, "Café", "1500", 2)
	updated.Imagen = strPtr("http://media/cafe.png")

	fx.images.EXPECT().Open(ctx, ref).Return(image, nil)
	fx.api.EXPECT().UploadProductImage(ctx, 4, image).Return(&updated, nil)
	fx.api.EXPECT().ListProducts(ctx, 0).Return([]entity.Product{updated}, nil)

	change, err := fx.service.UploadImageFromBlob(ctx, 4, ref)
	require.NoError(t, err)
	assert.Equal(t, "http://media/cafe.png", *change.Product.Imagen)
}

func TestProductAdminService_UploadImageRejectsEmptyFile(t *testing.T) {
	fx := createTestProductAdminService(t)

	_, err := fx.service.UploadImage(context.Background(), 4, &entity.ImageFile{Filename: "a.png"})
	require.ErrorIs(t, err, domainerrors.ErrInvalidImage)
}

func TestProductAdminService_EditFormPrefillsSavedProduct(t *testing.T) {
	fx := createTestProductAdminService(t)
	ctx := context.Background()

	sopa := product(3, "Sopa", "2500", 6)
	sopa.FechaCreacion = "2024-01-01"
	fx.api.EXPECT().ListProducts(ctx, 0).Return([]entity.Product{sopa}, nil).Once()

	form, err := fx.service.EditForm(ctx, 3)
	require.NoError(t, err)

	assert.Equal(t, 3, form.ID)
	require.NotNil(t, form.Nombre)
	assert.Equal(t, "Sopa", *form.Nombre)
	require.NotNil(t, form.Cantidad)
	assert.Equal(t, 6, *form.Cantidad)
	assert.Equal(t, map[string]any{
		"nombre":     "Sopa",
		"precio":     "2500",
		"disponible": true,
		"cantidad":   6,
		"categoria":  1,
	}, form.Payload())
}

func TestProductAdminService_EditFormUnknownProduct(t *testing.T) {
	fx := createTestProductAdminService(t)
	ctx := context.Background()

	_, err := fx.service.EditForm(ctx, 0)
	require.ErrorIs(t, err, domainerrors.ErrProductNotFound)

	fx.api.EXPECT().ListProducts(ctx, 0).Return([]entity.Product{}, nil).Once()
	_, err = fx.service.EditForm(ctx, 42)
	require.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}
