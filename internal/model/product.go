package model

import "github.com/shopspring/decimal"

// Product is a catalog entry. Image holds a media host URL obtained from the
// upload endpoint beforehand; it is stored as given.
type Product struct {
	Base

	Name        string          `json:"name" db:"name"`
	Price       decimal.Decimal `json:"price" db:"price"`
	Description string          `json:"description" db:"description"`
	Stock       int             `json:"stock" db:"stock"`
	Image       string          `json:"image" db:"image"`
	Category    string          `json:"category" db:"category"`
	IsFeatured  bool            `json:"isFeatured" db:"is_featured"`
}

// ProductFields are the mutable attributes of a Product. Create and update
// both take the full set; there is no partial update.
type ProductFields struct {
	Name        string
	Price       decimal.Decimal
	Description string
	Stock       int
	Image       string
	Category    string
	IsFeatured  bool
}

// Apply overwrites every mutable attribute of p with f.
func (f ProductFields) Apply(p *Product) {
	p.Name = f.Name
	p.Price = f.Price
	p.Description = f.Description
	p.Stock = f.Stock
	p.Image = f.Image
	p.Category = f.Category
	p.IsFeatured = f.IsFeatured
}

// ProductFilter restricts a product listing. Zero value matches everything.
type ProductFilter struct {
	Category string
}
