package quotation

// ClientData holds the client and project details of a quotation. All
// fields are opaque to the store; validation happens at the HTTP edge.
type ClientData struct {
	ClientName         string `json:"client_name"`
	ClientEmail        string `json:"client_email"`
	ClientPhone        string `json:"client_phone,omitempty"`
	ProjectName        string `json:"project_name"`
	ProjectAddress     string `json:"project_address"`
	ProjectDescription string `json:"project_description"`
	ValidUntil         string `json:"valid_until"`
	PaymentTerms       string `json:"payment_terms"`
}

// LineItem is one priced row of a quotation. Total is quantity times unit
// price and is recomputed by the store whenever either of those changes.
// MaterialID and MaterialName are set only when the row was filled from
// the catalog; freehand rows leave them empty.
type LineItem struct {
	ID           string  `json:"id"`
	Category     string  `json:"category"`
	Subcategory  string  `json:"subcategory"`
	Description  string  `json:"description"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	UnitPrice    float64 `json:"unit_price"`
	Total        float64 `json:"total"`
	MaterialID   string  `json:"material_id,omitempty"`
	MaterialName string  `json:"material_name,omitempty"`
}

// Settings carries the quotation-wide percentages.
type Settings struct {
	TaxRate  float64 `json:"tax_rate"`
	Discount float64 `json:"discount"`
}

// Material is a priced catalog entry consumed by SelectMaterial. The
// catalog producing it is outside this package.
type Material struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Subcategory string  `json:"subcategory"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unit_price"`
	Description string  `json:"description,omitempty"`
}

// Totals are derived from the current state on every read and never
// stored.
type Totals struct {
	Subtotal       float64 `json:"subtotal"`
	TaxAmount      float64 `json:"tax_amount"`
	DiscountAmount float64 `json:"discount_amount"`
	GrandTotal     float64 `json:"grand_total"`
}

// CalculateTotals derives the quotation totals from line items and
// settings.
func CalculateTotals(items []LineItem, settings Settings) Totals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Total
	}
	taxAmount := subtotal * (settings.TaxRate / 100)
	discountAmount := subtotal * (settings.Discount / 100)
	return Totals{
		Subtotal:       subtotal,
		TaxAmount:      taxAmount,
		DiscountAmount: discountAmount,
		GrandTotal:     subtotal + taxAmount - discountAmount,
	}
}

// ItemField names a single LineItem field for UpdateLineItem.
type ItemField string

const (
	FieldCategory     ItemField = "category"
	FieldSubcategory  ItemField = "subcategory"
	FieldDescription  ItemField = "description"
	FieldQuantity     ItemField = "quantity"
	FieldUnit         ItemField = "unit"
	FieldUnitPrice    ItemField = "unit_price"
	FieldMaterialID   ItemField = "material_id"
	FieldMaterialName ItemField = "material_name"
)

// DefaultUnit is the unit label assigned to freshly constructed items.
const DefaultUnit = "sq.ft"

// NewLineItem constructs an empty line item with the given id and the
// defaults UI collaborators expect: quantity 1, zero price, zero total.
func NewLineItem(id string) LineItem {
	return LineItem{
		ID:       id,
		Quantity: 1,
		Unit:     DefaultUnit,
	}
}
