package entity

import (
	"github.com/shopspring/decimal"
)

// DefaultTaxRate is the sales tax applied to every order (13%).
var DefaultTaxRate = decimal.RequireFromString("0.13")

// OrderItem is one line of the order. Invariant: 0 < Cantidad <= Producto.Cantidad.
type OrderItem struct {
	Producto Product `json:"producto"`
	Cantidad int     `json:"cantidad"`
}

// LineTotal is price times quantity.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Producto.Precio.Mul(decimal.NewFromInt(int64(i.Cantidad)))
}

// Order is the in-memory cart. Lines are keyed by product id and keep insertion order.
// Order is not safe for concurrent use; callers serialize access.
type Order struct {
	taxRate decimal.Decimal
	items   map[int]*OrderItem
	order   []int
}

// NewOrder creates an empty order using taxRate.
func NewOrder(taxRate decimal.Decimal) *Order {
	return &Order{
		taxRate: taxRate,
		items:   make(map[int]*OrderItem),
	}
}

// AddResult describes what Add did.
type AddResult struct {
	Added   int  // units actually added
	Clamped bool // true when fewer than requested were added because of stock
}

// Add puts qty units of p in the order, never exceeding p's stock.
// qty <= 0 and out-of-stock products are rejected and leave the order untouched.
// A line holding more than p's current stock is cut back to it.
func (o *Order) Add(p Product, qty int) (AddResult, error) {
	if qty <= 0 {
		return AddResult{}, ErrNonPositiveQuantity
	}

	line, exists := o.items[p.ID]
	if !exists {
		if !p.IsOrderable() {
			return AddResult{}, ErrNoStock
		}
		added := min(qty, p.Cantidad)
		o.items[p.ID] = &OrderItem{Producto: p, Cantidad: added}
		o.order = append(o.order, p.ID)

		return AddResult{Added: added, Clamped: added < qty}, nil
	}

	// the incoming copy carries the latest known stock
	line.Producto = p

	room := p.Cantidad - line.Cantidad
	if room <= 0 {
		line.Cantidad = min(line.Cantidad, max(p.Cantidad, 0))
		if line.Cantidad == 0 {
			o.Remove(p.ID)
		}

		return AddResult{Clamped: true}, nil
	}

	added := min(qty, room)
	line.Cantidad += added

	return AddResult{Added: added, Clamped: added < qty}, nil
}

// Remove deletes the whole line for productID. Missing lines are ignored.
func (o *Order) Remove(productID int) bool {
	if _, ok := o.items[productID]; !ok {
		return false
	}

	delete(o.items, productID)
	for i, id := range o.order {
		if id == productID {
			o.order = append(o.order[:i], o.order[i+1:]...)

			break
		}
	}

	return true
}

// Clear discards every line.
func (o *Order) Clear() {
	o.items = make(map[int]*OrderItem)
	o.order = nil
}

// Quantity returns how many units of productID are in the order.
func (o *Order) Quantity(productID int) int {
	if line, ok := o.items[productID]; ok {
		return line.Cantidad
	}

	return 0
}

// AvailableStock is the stock of p not yet claimed by the order.
func (o *Order) AvailableStock(p Product) int {
	return max(p.Cantidad-o.Quantity(p.ID), 0)
}

// Items returns a copy of the lines in insertion order.
func (o *Order) Items() []OrderItem {
	items := make([]OrderItem, 0, len(o.order))
	for _, id := range o.order {
		items = append(items, *o.items[id])
	}

	return items
}

// Len is the number of distinct lines.
func (o *Order) Len() int {
	return len(o.order)
}

// IsEmpty reports whether the order has no lines.
func (o *Order) IsEmpty() bool {
	return len(o.order) == 0
}

// Subtotal is the sum of price times quantity over all lines.
func (o *Order) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, id := range o.order {
		subtotal = subtotal.Add(o.items[id].LineTotal())
	}

	return subtotal
}

// Tax is Subtotal times the tax rate.
func (o *Order) Tax() decimal.Decimal {
	return o.Subtotal().Mul(o.taxRate)
}

// Total is Subtotal plus Tax.
func (o *Order) Total() decimal.Decimal {
	return o.Subtotal().Add(o.Tax())
}

// TaxRate returns the rate the order was created with.
func (o *Order) TaxRate() decimal.Decimal {
	return o.taxRate
}
