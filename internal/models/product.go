package models

// Product is one catalog record. OriginalPrice is the pre-discount price and
// is optional; nil means the product is not on sale.
type Product struct {
	ID                    string   `json:"id"`
	Name                  string   `json:"name"`
	NameTranslated        string   `json:"nameTranslated"`
	Price                 float64  `json:"price"`
	OriginalPrice         *float64 `json:"originalPrice,omitempty"`
	Image                 string   `json:"image"`
	Category              string   `json:"category"`
	Rating                float64  `json:"rating"`
	Description           string   `json:"description"`
	DescriptionTranslated string   `json:"descriptionTranslated"`
	Ingredients           []string `json:"ingredients"`
	IsOrganic             bool     `json:"isOrganic"`
}

// ProductUpdate carries a partial product edit for the admin panel.
// Nil fields keep their current value; a non-nil Ingredients slice replaces
// the whole list.
type ProductUpdate struct {
	Name                  *string  `json:"name,omitempty"`
	NameTranslated        *string  `json:"nameTranslated,omitempty"`
	Price                 *float64 `json:"price,omitempty"`
	OriginalPrice         *float64 `json:"originalPrice,omitempty"`
	Image                 *string  `json:"image,omitempty"`
	Category              *string  `json:"category,omitempty"`
	Rating                *float64 `json:"rating,omitempty"`
	Description           *string  `json:"description,omitempty"`
	DescriptionTranslated *string  `json:"descriptionTranslated,omitempty"`
	Ingredients           []string `json:"ingredients,omitempty"`
	IsOrganic             *bool    `json:"isOrganic,omitempty"`
}
