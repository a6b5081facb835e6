package catalog

import "errors"

// Product is a catalog row. Quantity is mutated only by the sale workflows
// (decrement on creation, increment on annulment) and carries no zero floor.
// JSON field names match the storefront's wire format.
type Product struct {
	ID             int64   `json:"id"`
	Name           string  `json:"nombre"`
	SKU            string  `json:"sku"`
	SalePrice      float64 `json:"precioVenta"`
	PurchasePrice  float64 `json:"precioCompra"`
	WholesalePrice float64 `json:"precioMayoreo"`
	Quantity       int     `json:"cantidad"`
	Barcode        string  `json:"codigoBarras"`
	PhotoURL       string  `json:"urlFoto1"`
}

var (
	// ErrNotFound indicates no product matched the addressed sku.
	ErrNotFound = errors.New("catalog: product not found")
	// ErrDuplicate indicates a sku or barcode collision.
	ErrDuplicate = errors.New("catalog: duplicate sku or barcode")
)
