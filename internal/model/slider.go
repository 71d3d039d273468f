package model

// Slider is a storefront carousel image. PublicID is the media host handle
// used to delete the binary behind ImageURL.
type Slider struct {
	Base

	ImageURL string `json:"imageUrl" db:"image_url"`
	PublicID string `json:"publicId" db:"public_id"`
}
