package catalog

// Entry is one priced material in the catalog.
type Entry struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Subcategory string  `json:"subcategory"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unit_price"`
	Description string  `json:"description,omitempty"`
}

// seedEntries is the built-in material list. A construction estimator
// works from these until a real supplier feed replaces them.
var seedEntries = []Entry{
	{ID: "mat-flr-001", Name: "Oak Hardwood Plank", Category: "Flooring", Subcategory: "Hardwood", Unit: "sq.ft", UnitPrice: 8.50, Description: "3/4 inch solid oak, natural finish"},
	{ID: "mat-flr-002", Name: "Laminate Board 8mm", Category: "Flooring", Subcategory: "Laminate", Unit: "sq.ft", UnitPrice: 2.75, Description: "AC4 rated, click-lock"},
	{ID: "mat-flr-003", Name: "Porcelain Tile 60x60", Category: "Flooring", Subcategory: "Tile", Unit: "sq.ft", UnitPrice: 4.20},
	{ID: "mat-flr-004", Name: "Vinyl Sheet Commercial", Category: "Flooring", Subcategory: "Vinyl", Unit: "sq.ft", UnitPrice: 1.95, Description: "2mm wear layer"},
	{ID: "mat-pnt-001", Name: "Interior Latex Paint", Category: "Paint", Subcategory: "Interior", Unit: "ltr", UnitPrice: 6.80, Description: "Matte, low VOC"},
	{ID: "mat-pnt-002", Name: "Exterior Acrylic Paint", Category: "Paint", Subcategory: "Exterior", Unit: "ltr", UnitPrice: 9.40, Description: "Weather shield"},
	{ID: "mat-pnt-003", Name: "Wall Primer", Category: "Paint", Subcategory: "Primer", Unit: "ltr", UnitPrice: 4.10},
	{ID: "mat-wll-001", Name: "Gypsum Board 12.5mm", Category: "Walls", Subcategory: "Drywall", Unit: "sq.ft", UnitPrice: 1.35},
	{ID: "mat-wll-002", Name: "Ceramic Wall Tile 30x60", Category: "Walls", Subcategory: "Tile", Unit: "sq.ft", UnitPrice: 3.60, Description: "Gloss white"},
	{ID: "mat-plb-001", Name: "PVC Pipe 1in", Category: "Plumbing", Subcategory: "Pipes", Unit: "m", UnitPrice: 2.20},
	{ID: "mat-plb-002", Name: "Single-Lever Basin Mixer", Category: "Plumbing", Subcategory: "Fixtures", Unit: "pcs", UnitPrice: 54.00, Description: "Chrome finish"},
	{ID: "mat-ele-001", Name: "Copper Wire 2.5mm", Category: "Electrical", Subcategory: "Wiring", Unit: "m", UnitPrice: 0.85},
	{ID: "mat-ele-002", Name: "LED Downlight 12W", Category: "Electrical", Subcategory: "Lighting", Unit: "pcs", UnitPrice: 11.50, Description: "Warm white, dimmable"},
	{ID: "mat-crp-001", Name: "Pine Stud 2x4", Category: "Carpentry", Subcategory: "Lumber", Unit: "m", UnitPrice: 3.15},
	{ID: "mat-crp-002", Name: "Birch Plywood 18mm", Category: "Carpentry", Subcategory: "Sheet Goods", Unit: "sq.ft", UnitPrice: 2.90, Description: "BB/BB grade"},
}
