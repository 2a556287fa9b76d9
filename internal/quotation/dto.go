package quotation

// SetClientDataRequest is the edge contract for replacing client data.
// The store stores whatever it is handed; bounds and formats are checked
// here, at the HTTP edge, only.
type SetClientDataRequest struct {
	ClientName         string `json:"client_name" validate:"required"`
	ClientEmail        string `json:"client_email" validate:"required,email"`
	ClientPhone        string `json:"client_phone,omitempty"`
	ProjectName        string `json:"project_name" validate:"required"`
	ProjectAddress     string `json:"project_address"`
	ProjectDescription string `json:"project_description"`
	ValidUntil         string `json:"valid_until" validate:"required,datetime=2006-01-02"`
	PaymentTerms       string `json:"payment_terms"`
}

// UpdateItemRequest sets a single line item field. Value carries a JSON
// string for text fields and a JSON number for quantity/unit price.
type UpdateItemRequest struct {
	Field string `json:"field" validate:"required"`
	Value any    `json:"value"`
}

// SetRateRequest carries a tax or discount percentage.
type SetRateRequest struct {
	Rate float64 `json:"rate" validate:"gte=0,lte=100"`
}

// SelectMaterialRequest links a line item to a catalog entry.
type SelectMaterialRequest struct {
	MaterialID string `json:"material_id" validate:"required"`
}

// Snapshot is the full read model served to UI collaborators. Totals are
// computed fresh for every snapshot.
type Snapshot struct {
	ClientData *ClientData `json:"client_data"`
	LineItems  []LineItem  `json:"line_items"`
	Settings   Settings    `json:"settings"`
	Totals     Totals      `json:"totals"`
}
