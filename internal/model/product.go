package model

// Product represents a bottled cocktail in the catalogue. Products are
// written once by the seed step and read-only from the storefront's
// perspective.
type Product struct {
	ID          string  `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Slug        string  `json:"slug" db:"slug"`
	Tagline     string  `json:"tagline" db:"tagline"`
	Description string  `json:"description" db:"description"`
	Ingredients string  `json:"ingredients" db:"ingredients"`
	Spirit      string  `json:"spirit" db:"spirit"`
	Price       float64 `json:"price" db:"price"`
	Volume      string  `json:"volume" db:"volume"`
	Servings    int     `json:"servings" db:"servings"`
	ABV         string  `json:"abv" db:"abv"`
	ImageURL    string  `json:"imageUrl" db:"image_url"`
	Color       string  `json:"color" db:"color"`
	Featured    bool    `json:"featured" db:"featured"`
}
