package sales

import (
	"errors"
	"time"
)

// Status enumerates the sale lifecycle. A sale is created Completada and may
// transition exactly once to Anulada; no other transitions exist.
type Status string

const (
	// StatusCompleted marks a recorded sale whose stock decrement is in effect.
	StatusCompleted Status = "Completada"
	// StatusAnnulled marks a voided sale whose stock effect has been reversed.
	StatusAnnulled Status = "Anulada"
)

// Sale is a transaction record. Items is the snapshot frozen at creation time;
// annulment restores stock from it, never from the current catalog.
type Sale struct {
	ID              int64     `json:"id"`
	SaleID          string    `json:"saleId"`
	SoldAt          time.Time `json:"fechaVenta"`
	CustomerName    string    `json:"nombreCliente"`
	CustomerContact string    `json:"contacto"`
	CustomerTaxID   string    `json:"nitCi"`
	Total           float64   `json:"totalVenta"`
	Items           []Item    `json:"productosVendidos"`
	Status          Status    `json:"estado"`
}

// Item is one line of a sale snapshot. The sku reference is weak: the product
// may have been deleted since the sale was recorded.
type Item struct {
	SKU       string  `json:"sku"`
	Quantity  int     `json:"cantidad"`
	Name      string  `json:"nombre,omitempty"`
	UnitPrice float64 `json:"precioVenta,omitempty"`
}

var (
	// ErrNotFoundOrAnnulled guards against double-restoration of stock: the
	// annulment target is either missing or already voided.
	ErrNotFoundOrAnnulled = errors.New("sales: sale not found or already annulled")

	// ErrUnknownSKU indicates a stock adjustment matched no product row.
	ErrUnknownSKU = errors.New("sales: unknown sku")

	// ErrNoItems indicates a sale submitted without line items.
	ErrNoItems = errors.New("sales: sale requires at least one item")
)
