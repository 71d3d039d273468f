package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductFields_ApplyOverwritesEverything(t *testing.T) {
	p := &Product{
		Base:        Base{ID: "p-1"},
		Name:        "Mug",
		Price:       decimal.RequireFromString("9.99"),
		Description: "Ceramic",
		Stock:       10,
		Image:       "https://host/x.jpg",
		Category:    "kitchen",
		IsFeatured:  true,
	}

	ProductFields{Name: "Cup"}.Apply(p)

	assert.Equal(t, "p-1", p.ID)
	assert.Equal(t, "Cup", p.Name)
	assert.True(t, p.Price.IsZero())
	assert.Empty(t, p.Description)
	assert.Zero(t, p.Stock)
	assert.Empty(t, p.Image)
	assert.Empty(t, p.Category)
	assert.False(t, p.IsFeatured)
}

func TestProduct_JSONShape(t *testing.T) {
	p := Product{
		Base:       Base{ID: "p-1"},
		Name:       "Mug",
		Price:      decimal.RequireFromString("9.99"),
		IsFeatured: true,
	}

	raw, err := json.Marshal(p)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))

	for _, key := range []string{"id", "name", "price", "description", "stock", "image", "category", "isFeatured", "createdAt", "updatedAt"} {
		assert.Contains(t, fields, key)
	}
	assert.Equal(t, 9.99, fields["price"])
}

func TestSlider_JSONShape(t *testing.T) {
	raw, err := json.Marshal(Slider{ImageURL: "https://host/s.jpg", PublicID: "slider/s"})
	require.NoError(t, err)

	assert.Contains(t, string(raw), `"imageUrl":"https://host/s.jpg"`)
	assert.Contains(t, string(raw), `"publicId":"slider/s"`)
}

func TestProduct_PriceKeepsEveryDecimal(t *testing.T) {
	var p Product
	require.NoError(t, json.Unmarshal([]byte(`{"price":9.999}`), &p))
	assert.Equal(t, "9.999", p.Price.String())

	raw, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"price":9.999`)
}
