package impl

import (
	"context"
	"testing"

	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/service"
	mockService "pos/internal/mocks/service"
	mockUsecase "pos/internal/mocks/usecase"
	"pos/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	service       usecase.OrderUsecase
	catalog       *mockUsecase.MockCatalogUsecase
	configuration *mockUsecase.MockConfigurationUsecase
	qrcode        *mockService.MockQRCodeService
	bus           service.EventBus
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	t.Helper()

	fx := orderServiceFixtures{
		catalog:       mockUsecase.NewMockCatalogUsecase(t),
		configuration: mockUsecase.NewMockConfigurationUsecase(t),
		qrcode:        mockService.NewMockQRCodeService(t),
		bus:           newBus(),
	}
	fx.service = NewOrderService(OrderServiceParams{
		Config:        testConfig(),
		Catalog:       fx.catalog,
		Configuration: fx.configuration,
		QRCode:        fx.qrcode,
		Events:        fx.bus,
		Logger:        discardLogger(),
	})

	return fx
}

func (fx orderServiceFixtures) stock(p entity.Product) {
	fx.catalog.EXPECT().Product(mock.Anything, p.ID).Return(&p, true).Maybe()
}

func TestOrderService_AddItemClampsToStock(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	fx.stock(product(1, "Café", "100", 3))

	summary, err := fx.service.AddItem(ctx, 1, 5)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Added)
	assert.True(t, summary.Clamped)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, 3, summary.Items[0].Cantidad)
	assert.Equal(t, "₡300.00", summary.Items[0].LineTotal)
	assert.True(t, summary.Items[0].OutOfStock)
	assert.Equal(t, "₡300.00", summary.Subtotal)
	assert.Equal(t, "₡39.00", summary.Tax)
	assert.Equal(t, "₡339.00", summary.Total)
	assert.Equal(t, "13%", summary.TaxRate)
}

func TestOrderService_AddItemAtLimitIsNoop(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	fx.stock(product(1, "Café", "100", 2))

	_, err := fx.service.AddItem(ctx, 1, 2)
	require.NoError(t, err)

	summary, err := fx.service.AddItem(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Added)
	assert.True(t, summary.Clamped)
	assert.Equal(t, 2, summary.Items[0].Cantidad)
}

func TestOrderService_AddItemRejections(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	fx.stock(product(2, "Té", "1000", 0))
	fx.catalog.EXPECT().Product(mock.Anything, 9).Return(nil, false)

	_, err := fx.service.AddItem(ctx, 1, 0)
	require.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)

	_, err = fx.service.AddItem(ctx, 2, 1)
	require.ErrorIs(t, err, domainerrors.ErrOutOfStock)
	var appErr *domainerrors.BaseError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Té", appErr.Details())

	_, err = fx.service.AddItem(ctx, 9, 1)
	require.ErrorIs(t, err, domainerrors.ErrProductNotFound)

	assert.Empty(t, fx.service.Summary(ctx).Items)
}

func TestOrderService_RemoveItem(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	fx.stock(product(1, "Café", "100", 5))
	fx.stock(product(2, "Pan", "50", 5))

	_, err := fx.service.AddItem(ctx, 1, 2)
	require.NoError(t, err)
	_, err = fx.service.AddItem(ctx, 2, 1)
	require.NoError(t, err)

	summary, err := fx.service.RemoveItem(ctx, 1)
	require.NoError(t, err)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, 2, summary.Items[0].Producto.ID)
	assert.Equal(t, "₡50.00", summary.Subtotal)

	_, err = fx.service.RemoveItem(ctx, 1)
	require.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestOrderService_ReceiptRequiresItems(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.Receipt(context.Background())
	require.ErrorIs(t, err, domainerrors.ErrEmptyOrder)

	_, err = fx.service.ReceiptQR(context.Background())
	require.ErrorIs(t, err, domainerrors.ErrEmptyOrder)
}

func TestOrderService_Receipt(t *testing.T) {
	tests := []struct {
		name     string
		language string
		want     []string
	}{
		{
			name:     "spanish",
			language: "es",
			want:     []string{"Soda La Esquina", "Tel: 2222-0000", "3 x Café", "IVA (13%)", "¡Gracias por su compra!"},
		},
		{
			name:     "english",
			language: "en",
			want:     []string{"Phone: 2222-0000", "Tax (13%)", "Thank you for your purchase!"},
		},
		{
			name:     "unknown language falls back",
			language: "fr",
			want:     []string{"IVA (13%)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			ctx := context.Background()
			fx.stock(product(1, "Café", "100", 3))
			fx.configuration.EXPECT().Current(mock.Anything).Return(&entity.BusinessConfiguration{
				NombreRestaurante: "Soda La Esquina",
				Telefono:          "2222-0000",
			}, nil)
			fx.configuration.EXPECT().Language(mock.Anything).Return(tt.language)

			_, err := fx.service.AddItem(ctx, 1, 3)
			require.NoError(t, err)

			receipt, err := fx.service.Receipt(ctx)
			require.NoError(t, err)

			for _, want := range tt.want {
				assert.Contains(t, receipt.Text, want)
			}
			assert.Contains(t, receipt.Text, "₡339.00")
			assert.Equal(t, "₡339.00", receipt.Summary.Total)
		})
	}
}

func TestOrderService_ReceiptWithoutConfiguration(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	fx.stock(product(1, "Café", "100", 3))
	fx.configuration.EXPECT().Current(mock.Anything).Return(nil, errors.WithStack(domainerrors.ErrConfigurationLoadFailed))
	fx.configuration.EXPECT().Language(mock.Anything).Return("es")

	_, err := fx.service.AddItem(ctx, 1, 1)
	require.NoError(t, err)

	receipt, err := fx.service.Receipt(ctx)
	require.NoError(t, err)
	assert.NotContains(t, receipt.Text, "Tel:")
	assert.Contains(t, receipt.Text, "1 x Café")
}

func TestOrderService_ReceiptQR(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	fx.stock(product(1, "Café", "100", 3))
	fx.stock(product(4, "Pan", "50", 3))
	fx.configuration.EXPECT().Current(mock.Anything).Return(&entity.BusinessConfiguration{}, nil)
	fx.configuration.EXPECT().Language(mock.Anything).Return("es")
	fx.qrcode.EXPECT().GeneratePNG("2x1;1x4;total=₡282.50").Return([]byte("png"), nil)

	_, err := fx.service.AddItem(ctx, 1, 2)
	require.NoError(t, err)
	_, err = fx.service.AddItem(ctx, 4, 1)
	require.NoError(t, err)

	png, err := fx.service.ReceiptQR(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestOrderService_ClearedWhenSessionEnds(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	fx.stock(product(1, "Café", "100", 3))

	_, err := fx.service.AddItem(ctx, 1, 1)
	require.NoError(t, err)

	fx.bus.Publish(ctx, entity.Event{Kind: entity.EventSessionExpired, Reason: "refresh_failed"})

	assert.Empty(t, fx.service.Summary(ctx).Items)
}

func TestOrderService_MenuMarksRemainingStock(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	cafe := product(1, "Café", "100", 3)
	te := product(2, "Té", "50", 0)
	pan := product(3, "Pan", "20", 4)
	pan.Disponible = false
	jugo := product(4, "Jugo", "30", 5)
	fx.stock(cafe)

	_, err := fx.service.AddItem(ctx, 1, 3)
	require.NoError(t, err)

	menu := fx.service.Menu(ctx, usecase.Listing[entity.Product]{
		Status:     usecase.ListingLoaded,
		Items:      []entity.Product{cafe, te, pan, jugo},
		Generation: 7,
	})

	assert.Equal(t, usecase.ListingLoaded, menu.Status)
	assert.Equal(t, uint64(7), menu.Generation)
	require.Len(t, menu.Items, 4)

	assert.Equal(t, 3, menu.Items[0].InOrder)
	assert.Equal(t, 0, menu.Items[0].Available)
	assert.True(t, menu.Items[0].OutOfStock)

	assert.Equal(t, 0, menu.Items[1].Available)
	assert.True(t, menu.Items[1].OutOfStock)

	assert.True(t, menu.Items[2].OutOfStock)

	assert.Equal(t, 5, menu.Items[3].Available)
	assert.False(t, menu.Items[3].OutOfStock)
}

func TestOrderService_MenuKeepsErrorState(t *testing.T) {
	fx := createTestOrderService(t)

	menu := fx.service.Menu(context.Background(), usecase.Listing[entity.Product]{
		Status:  usecase.ListingError,
		Items:   []entity.Product{},
		Message: "No se pudieron cargar los productos",
	})

	assert.Equal(t, usecase.ListingError, menu.Status)
	assert.Equal(t, "No se pudieron cargar los productos", menu.Message)
	assert.Empty(t, menu.Items)
}
