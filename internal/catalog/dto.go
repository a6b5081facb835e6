package catalog

type productPayload struct {
	Data ProductRequest `json:"data"`
}

// ProductRequest is the body of POST and PUT /api/products. OriginalSKU is
// only meaningful on update: it addresses the row as it was before the edit.
type ProductRequest struct {
	Name           string  `json:"nombre" validate:"required,max=255"`
	SKU            string  `json:"sku" validate:"max=100"`
	SalePrice      float64 `json:"precioVenta" validate:"gte=0"`
	PurchasePrice  float64 `json:"precioCompra" validate:"gte=0"`
	WholesalePrice float64 `json:"precioMayoreo" validate:"gte=0"`
	Quantity       int     `json:"cantidad"`
	Barcode        string  `json:"codigoBarras" validate:"max=255"`
	PhotoURL       string  `json:"urlFoto1"`
	OriginalSKU    string  `json:"originalSku" validate:"max=100"`
}

func (r ProductRequest) toProduct() Product {
	return Product{
		Name:           r.Name,
		SKU:            r.SKU,
		SalePrice:      r.SalePrice,
		PurchasePrice:  r.PurchasePrice,
		WholesalePrice: r.WholesalePrice,
		Quantity:       r.Quantity,
		Barcode:        r.Barcode,
		PhotoURL:       r.PhotoURL,
	}
}
