package impl

import (
	"context"
	"testing"

	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/service"
	mockService "pos/internal/mocks/service"
	"pos/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service usecase.CatalogUsecase
	api     *mockService.MockCatalogAPI
	bus     service.EventBus
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	t.Helper()

	fx := catalogServiceFixtures{
		api: mockService.NewMockCatalogAPI(t),
		bus: newBus(),
	}
	fx.service = NewCatalogService(CatalogServiceParams{API: fx.api, Events: fx.bus, Logger: discardLogger()})

	return fx
}

func product(id int, nombre string, precio string, stock int) entity.Product {
	return entity.Product{
		ID:         id,
		Nombre:     nombre,
		Precio:     decimal.RequireFromString(precio),
		Disponible: true,
		Cantidad:   stock,
		Categoria:  entity.Ref{ID: 1},
	}
}

func TestCatalogService_Products_Loaded(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	items := []entity.Product{product(1, "Café", "1500", 3), product(2, "Té", "1000", 0)}

	fx.api.EXPECT().ListProducts(ctx, 2).Return(items, nil)

	listing := fx.service.Products(ctx, 2)

	assert.Equal(t, usecase.ListingLoaded, listing.Status)
	assert.Equal(t, items, listing.Items)
	assert.False(t, listing.Empty)
	assert.Empty(t, listing.Message)
}

func TestCatalogService_Products_EmptyIsNotAnError(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.api.EXPECT().ListProducts(ctx, 0).Return(nil, nil)

	listing := fx.service.Products(ctx, 0)

	assert.Equal(t, usecase.ListingLoaded, listing.Status)
	assert.True(t, listing.Empty)
	assert.NotNil(t, listing.Items)
}

func TestCatalogService_LoadFailuresBecomeListingErrors(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.api.EXPECT().ListProducts(ctx, 0).Return(nil, errors.WithStack(domainerrors.ErrBackendUnavailable))
	fx.api.EXPECT().ListCategories(ctx).Return(nil, errors.WithStack(domainerrors.ErrSessionExpired))
	fx.api.EXPECT().ListSubcategories(ctx, 4).Return(nil, errors.New("boom"))

	products := fx.service.Products(ctx, 0)
	assert.Equal(t, usecase.ListingError, products.Status)
	assert.Equal(t, "No se pudieron cargar los productos", products.Message)
	assert.False(t, products.Empty)

	categories := fx.service.Categories(ctx)
	assert.Equal(t, usecase.ListingError, categories.Status)
	assert.Equal(t, domainerrors.ErrSessionExpired.Message(), categories.Message)

	subcategories := fx.service.Subcategories(ctx, 4)
	assert.Equal(t, usecase.ListingError, subcategories.Status)
	assert.Equal(t, domainerrors.ErrCategoriesLoadFailed.Message(), subcategories.Message)
}

func TestCatalogService_LateResponseAfterResetIsDropped(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	fx.api.EXPECT().ListProducts(ctx, 0).RunAndReturn(func(context.Context, int) ([]entity.Product, error) {
		close(started)
		<-release

		return []entity.Product{product(1, "Café", "1500", 3)}, nil
	})

	done := make(chan usecase.Listing[entity.Product], 1)
	go func() { done <- fx.service.Products(ctx, 0) }()

	<-started
	fx.bus.Publish(ctx, entity.Event{Kind: entity.EventLoggedOut})
	close(release)

	listing := <-done
	assert.Equal(t, usecase.ListingLoading, listing.Status)
	assert.Empty(t, listing.Items)

	_, ok := findProduct(listing.Items, 1)
	assert.False(t, ok)
}

func TestCatalogService_NewerLoadWins(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	fx.api.EXPECT().ListProducts(ctx, 1).RunAndReturn(func(context.Context, int) ([]entity.Product, error) {
		close(started)
		<-release

		return []entity.Product{product(1, "Viejo", "1", 1)}, nil
	})
	fx.api.EXPECT().ListProducts(ctx, 2).Return([]entity.Product{product(2, "Nuevo", "2", 2)}, nil)

	done := make(chan usecase.Listing[entity.Product], 1)
	go func() { done <- fx.service.Products(ctx, 1) }()
	<-started

	newer := fx.service.Products(ctx, 2)
	close(release)
	older := <-done

	require.Len(t, newer.Items, 1)
	assert.Equal(t, "Nuevo", newer.Items[0].Nombre)
	assert.Equal(t, newer, older, "the superseded load reports the current state")
}

func TestCatalogService_ProductLookup(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.api.EXPECT().ListProducts(ctx, 1).Return([]entity.Product{product(1, "Café", "1500", 3)}, nil).Once()
	fx.service.Products(ctx, 1)

	cached, ok := fx.service.Product(ctx, 1)
	require.True(t, ok)
	assert.Equal(t, "Café", cached.Nombre)

	fx.api.EXPECT().ListProducts(ctx, 0).Return([]entity.Product{product(9, "Pan", "500", 1)}, nil).Once()
	other, ok := fx.service.Product(ctx, 9)
	require.True(t, ok)
	assert.Equal(t, "Pan", other.Nombre)

	fx.api.EXPECT().ListProducts(ctx, 0).Return(nil, errors.New("offline")).Once()
	_, ok = fx.service.Product(ctx, 42)
	assert.False(t, ok)
}

func TestCatalogService_RefreshProductsKeepsFilter(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.api.EXPECT().ListProducts(ctx, 3).Return([]entity.Product{}, nil).Twice()

	fx.service.Products(ctx, 3)
	listing := fx.service.RefreshProducts(ctx)
	assert.True(t, listing.Empty)

	fx.service.Reset()
	fx.api.EXPECT().ListProducts(ctx, 0).Return([]entity.Product{}, nil).Once()
	fx.service.RefreshProducts(ctx)

	fx.api.AssertNumberOfCalls(t, "ListProducts", 3)
	fx.api.AssertCalled(t, "ListProducts", mock.Anything, 0)
}
