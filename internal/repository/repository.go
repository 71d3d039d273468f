// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist,
// or update data, abstracting SQL logic away from the service layer.
//
// Lookups that match nothing return an error wrapping pgx.ErrNoRows whose
// text carries "table:<name>:" so sqlerr can name the missing entity.
package repository

import (
	"github.com/deppfellow/storefront-admin/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Products *ProductRepository
	Sliders  *SliderRepository
}

// NewRepositories builds every repository on top of the shared pool in s.DB.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Products: NewProductRepository(s),
		Sliders:  NewSliderRepository(s),
	}
}
