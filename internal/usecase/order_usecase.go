package usecase

import (
	"context"

	"pos/internal/domain/entity"
)

// OrderLine is one row of the order view.
type OrderLine struct {
	Producto  entity.Product `json:"producto"`
	Cantidad  int            `json:"cantidad"`
	LineTotal string         `json:"line_total"`
	// Available is the stock not yet in the order
	Available  int  `json:"available"`
	OutOfStock bool `json:"out_of_stock"`
}

// MenuItem is a product of the ordering view with what the order leaves of its stock.
type MenuItem struct {
	Producto entity.Product `json:"producto"`
	InOrder  int            `json:"in_order"`
	// Available is zero once the order holds the whole stock
	Available  int  `json:"available"`
	OutOfStock bool `json:"out_of_stock"`
}

// OrderSummary is the order view with totals formatted to two decimals.
type OrderSummary struct {
	Items    []OrderLine `json:"items"`
	Subtotal string      `json:"subtotal"`
	Tax      string      `json:"tax"`
	Total    string      `json:"total"`
	TaxRate  string      `json:"tax_rate"`
	Currency string      `json:"currency"`
	// Added and Clamped describe the last AddItem call
	Added   int  `json:"added,omitempty"`
	Clamped bool `json:"clamped,omitempty"`
}

// Receipt is the printable bill.
type Receipt struct {
	Text    string       `json:"text"`
	Summary OrderSummary `json:"summary"`
}

// OrderUsecase holds the cart of the current session
type OrderUsecase interface {
	AddItem(ctx context.Context, productID, qty int) (*OrderSummary, error)
	// RemoveItem deletes the whole line
	RemoveItem(ctx context.Context, productID int) (*OrderSummary, error)
	Summary(ctx context.Context) *OrderSummary
	Clear(ctx context.Context)
	Receipt(ctx context.Context) (*Receipt, error)
	// ReceiptQR renders the bill summary as a PNG QR code
	ReceiptQR(ctx context.Context) ([]byte, error)
	// Menu marks each product of listing with its remaining stock
	Menu(ctx context.Context, listing Listing[entity.Product]) Listing[MenuItem]
}
