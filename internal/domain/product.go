package domain

// Specification is a single name/value row on a product detail page.
// Row order is meaningful and preserved as stored.
type Specification struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ColorOption is a selectable product color variant.
type ColorOption struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// Product represents a sellable catalog record.
//
// OldPrice, Brand, Description, Specifications, Colors and Sizes are
// optional; a nil OldPrice means the product carries no strikethrough
// discount. IsNew and IsSale are independent badge flags.
type Product struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	Price          float64         `json:"price"`
	OldPrice       *float64        `json:"oldPrice,omitempty"`
	Image          string          `json:"image,omitempty"`
	Images         []string        `json:"images,omitempty"`
	Rating         float64         `json:"rating"`
	ReviewCount    int             `json:"reviewCount"`
	IsNew          bool            `json:"isNew"`
	IsSale         bool            `json:"isSale"`
	Category       string          `json:"category"`
	Brand          string          `json:"brand,omitempty"`
	Description    string          `json:"description,omitempty"`
	Specifications []Specification `json:"specifications,omitempty"`
	Colors         []ColorOption   `json:"colors,omitempty"`
	Sizes          []string        `json:"sizes,omitempty"`
	Stock          int             `json:"stock"`
}

// Discounted reports whether the product carries a strikethrough price.
func (p Product) Discounted() bool {
	return p.OldPrice != nil
}
