package sales

// The gateway wire format wraps every body in a data object. Field names
// follow the storefront's JSON; decoding relies on encoding/json matching
// keys case-insensitively, so the legacy "SKU" spelling is accepted too.

type createSalePayload struct {
	Data CreateSaleRequest `json:"data"`
}

type annulSalePayload struct {
	Data AnnulSaleRequest `json:"data"`
}

// CreateSaleRequest is the body of POST /api/sales.
type CreateSaleRequest struct {
	Customer CustomerRequest   `json:"customer"`
	Items    []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
	Total    float64           `json:"total" validate:"gte=0"`
}

// CustomerRequest describes the buyer. All fields are optional; walk-in sales
// carry no customer data.
type CustomerRequest struct {
	Name    string `json:"name" validate:"max=255"`
	Contact string `json:"contact" validate:"max=100"`
	TaxID   string `json:"id" validate:"max=100"`
}

// SaleItemRequest is one submitted line item.
type SaleItemRequest struct {
	SKU       string  `json:"sku" validate:"required,max=100"`
	Quantity  int     `json:"cantidad" validate:"required,gt=0"`
	Name      string  `json:"nombre"`
	UnitPrice float64 `json:"precioVenta" validate:"gte=0"`
}

// AnnulSaleRequest is the body of PUT /api/sales/annul.
type AnnulSaleRequest struct {
	SaleID string `json:"saleId" validate:"required,max=50"`
}

func (r CreateSaleRequest) toInput() CreateSaleInput {
	items := make([]Item, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, Item{
			SKU:       it.SKU,
			Quantity:  it.Quantity,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
		})
	}
	return CreateSaleInput{
		CustomerName:    r.Customer.Name,
		CustomerContact: r.Customer.Contact,
		CustomerTaxID:   r.Customer.TaxID,
		Items:           items,
		Total:           r.Total,
	}
}
