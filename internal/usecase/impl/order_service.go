package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"pos/config"
	deliverycontext "pos/internal/delivery/context"
	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/service"
	"pos/internal/usecase"
	"pos/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const receiptWidth = 32

type receiptLabels struct {
	phone    string
	subtotal string
	tax      string
	total    string
	thanks   string
}

var receiptText = map[string]receiptLabels{
	"es": {phone: "Tel", subtotal: "Subtotal", tax: "IVA", total: "Total", thanks: "¡Gracias por su compra!"},
	"en": {phone: "Phone", subtotal: "Subtotal", tax: "Tax", total: "Total", thanks: "Thank you for your purchase!"},
}

// orderService implements the OrderUsecase interface. One cart per session.
type orderService struct {
	mu       sync.Mutex
	order    *entity.Order
	currency string

	catalog       usecase.CatalogUsecase
	configuration usecase.ConfigurationUsecase
	qrcode        service.QRCodeService
	logger        *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx
type OrderServiceParams struct {
	fx.In

	Config        *config.Config
	Catalog       usecase.CatalogUsecase
	Configuration usecase.ConfigurationUsecase
	QRCode        service.QRCodeService
	Events        service.EventBus
	Logger        *slog.Logger
}

// NewOrderService is the constructor for orderService. The cart is discarded when the session ends.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	srv := &orderService{
		order:         entity.NewOrder(params.Config.Order.Rate()),
		currency:      params.Config.Order.CurrencySymbol,
		catalog:       params.Catalog,
		configuration: params.Configuration,
		qrcode:        params.QRCode,
		logger:        params.Logger,
	}

	params.Events.Subscribe(func(ctx context.Context, _ entity.Event) {
		srv.Clear(ctx)
	}, entity.EventSessionExpired, entity.EventLoggedOut)

	return srv
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *orderService) AddItem(ctx context.Context, productID, qty int) (*usecase.OrderSummary, error) {
	if qty <= 0 {
		return nil, errors.WithStack(domainerrors.ErrInvalidQuantity)
	}

	product, ok := srv.catalog.Product(ctx, productID)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrProductNotFound)
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	result, err := srv.order.Add(*product, qty)
	switch {
	case errors.Is(err, entity.ErrNonPositiveQuantity):
		return nil, errors.WithStack(domainerrors.ErrInvalidQuantity)
	case errors.Is(err, entity.ErrNoStock):
		return nil, errors.WithStack(domainerrors.ErrOutOfStock.WithDetails(product.Nombre))
	case err != nil:
		return nil, errors.Wrap(err, "failed to add item")
	}

	if result.Clamped {
		srv.log(ctx).Debug("Quantity clamped to stock",
			slog.Int("product_id", productID),
			slog.Int("requested", qty),
			slog.Int("added", result.Added),
		)
	}

	summary := srv.summary()
	summary.Added = result.Added
	summary.Clamped = result.Clamped

	return summary, nil
}

func (srv *orderService) RemoveItem(_ context.Context, productID int) (*usecase.OrderSummary, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if !srv.order.Remove(productID) {
		return nil, errors.WithStack(domainerrors.ErrProductNotFound)
	}

	return srv.summary(), nil
}

func (srv *orderService) Summary(_ context.Context) *usecase.OrderSummary {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.summary()
}

func (srv *orderService) Menu(_ context.Context, listing usecase.Listing[entity.Product]) usecase.Listing[usecase.MenuItem] {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	items := make([]usecase.MenuItem, 0, len(listing.Items))
	for _, product := range listing.Items {
		available := 0
		if product.IsOrderable() {
			available = srv.order.AvailableStock(product)
		}
		items = append(items, usecase.MenuItem{
			Producto:   product,
			InOrder:    srv.order.Quantity(product.ID),
			Available:  available,
			OutOfStock: available == 0,
		})
	}

	return usecase.Listing[usecase.MenuItem]{
		Status:     listing.Status,
		Items:      items,
		Empty:      listing.Empty,
		Message:    listing.Message,
		Generation: listing.Generation,
	}
}

func (srv *orderService) Clear(ctx context.Context) {
	srv.mu.Lock()
	lines := srv.order.Len()
	srv.order.Clear()
	srv.mu.Unlock()

	if lines > 0 {
		srv.log(ctx).Info("Order discarded", slog.Int("lines", lines))
	}
}

// summary builds the view; caller holds mu
func (srv *orderService) summary() *usecase.OrderSummary {
	items := srv.order.Items()
	lines := make([]usecase.OrderLine, 0, len(items))
	for _, item := range items {
		available := srv.order.AvailableStock(item.Producto)
		lines = append(lines, usecase.OrderLine{
			Producto:   item.Producto,
			Cantidad:   item.Cantidad,
			LineTotal:  util.FormatAmount(srv.currency, item.LineTotal()),
			Available:  available,
			OutOfStock: available == 0,
		})
	}

	return &usecase.OrderSummary{
		Items:    lines,
		Subtotal: util.FormatAmount(srv.currency, srv.order.Subtotal()),
		Tax:      util.FormatAmount(srv.currency, srv.order.Tax()),
		Total:    util.FormatAmount(srv.currency, srv.order.Total()),
		TaxRate:  util.FormatPercent(srv.order.TaxRate()),
		Currency: srv.currency,
	}
}

func (srv *orderService) Receipt(ctx context.Context) (*usecase.Receipt, error) {
	summary := srv.Summary(ctx)
	if len(summary.Items) == 0 {
		return nil, errors.WithStack(domainerrors.ErrEmptyOrder)
	}

	business, err := srv.configuration.Current(ctx)
	if err != nil {
		// the bill is still printable without the header
		srv.log(ctx).Warn("Receipt without business header", slog.Any("error", err))
		business = &entity.BusinessConfiguration{}
	}

	labels, ok := receiptText[srv.configuration.Language(ctx)]
	if !ok {
		labels = receiptText[entity.DefaultLanguage]
	}

	return &usecase.Receipt{
		Text:    renderReceipt(business, summary, labels),
		Summary: *summary,
	}, nil
}

func (srv *orderService) ReceiptQR(ctx context.Context) ([]byte, error) {
	receipt, err := srv.Receipt(ctx)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GeneratePNG(receiptQRContent(receipt.Summary))
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError.WithDetails(err.Error()), "failed to render receipt QR")
	}

	return png, nil
}

func renderReceipt(business *entity.BusinessConfiguration, summary *usecase.OrderSummary, labels receiptLabels) string {
	var b strings.Builder
	rule := strings.Repeat("-", receiptWidth)

	for _, line := range []string{business.NombreRestaurante, business.Direccion} {
		if line != "" {
			b.WriteString(line + "\n")
		}
	}
	if business.Telefono != "" {
		fmt.Fprintf(&b, "%s: %s\n", labels.phone, business.Telefono)
	}
	b.WriteString(rule + "\n")

	for _, item := range summary.Items {
		writeColumns(&b, fmt.Sprintf("%d x %s", item.Cantidad, item.Producto.Nombre), item.LineTotal)
	}

	b.WriteString(rule + "\n")
	writeColumns(&b, labels.subtotal, summary.Subtotal)
	writeColumns(&b, fmt.Sprintf("%s (%s)", labels.tax, summary.TaxRate), summary.Tax)
	writeColumns(&b, labels.total, summary.Total)
	b.WriteString(rule + "\n")
	b.WriteString(labels.thanks + "\n")

	return b.String()
}

// writeColumns left-aligns label and right-aligns amount within the receipt width
func writeColumns(b *strings.Builder, label, amount string) {
	gap := receiptWidth - len([]rune(label)) - len([]rune(amount))
	if gap < 1 {
		gap = 1
	}
	b.WriteString(label + strings.Repeat(" ", gap) + amount + "\n")
}

// receiptQRContent is a compact form of the bill that stays well inside QR capacity
func receiptQRContent(summary usecase.OrderSummary) string {
	parts := make([]string, 0, len(summary.Items)+1)
	for _, item := range summary.Items {
		parts = append(parts, fmt.Sprintf("%dx%d", item.Cantidad, item.Producto.ID))
	}
	parts = append(parts, "total="+summary.Total)

	return strings.Join(parts, ";")
}
