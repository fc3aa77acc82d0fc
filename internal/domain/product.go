package domain

import "time"

// Product representa uma categoria/subcategoria cadastrada no catálogo (ex.: "Cogged" / "Bx").
type Product struct {
	ID          string    `json:"_id"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ProductCategories lista as categorias aceitas e as subcategorias sugeridas para cada uma.
var ProductCategories = map[string][]string{
	"PK":     {"1px", "4px", "5px"},
	"Cogged": {"Sux", "Ax", "Bx", "Cx"},
	"Cogged Banded": {
		"2RA", "3RA", "4RA", "5RA", "6RA", "7RA", "8RA",
		"2RB", "3RB", "4RB", "5RB", "6RB",
		"2RC", "3RC", "4RC", "5RC", "6RC",
	},
	"Timing": {"88ZA19", "89ZA19", "90ZA19"},
}

// IsKnownCategory informa se a categoria pertence ao catálogo fixo de produtos.
func IsKnownCategory(category string) bool {
	_, ok := ProductCategories[category]
	return ok
}
