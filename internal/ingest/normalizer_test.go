package ingest

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeProduct_AliasResolution(t *testing.T) {
	tests := []struct {
		name     string
		row      Row
		expected string
	}{
		{
			name:     "Canonical column name",
			row:      Row{"name": "Widget"},
			expected: "Widget",
		},
		{
			name:     "Underscore alias",
			row:      Row{"product_name": "Widget"},
			expected: "Widget",
		},
		{
			name:     "Spaced alias",
			row:      Row{"product name": "Widget"},
			expected: "Widget",
		},
		{
			name:     "Title alias",
			row:      Row{"title": "Widget"},
			expected: "Widget",
		},
		{
			name:     "Case-insensitive header",
			row:      Row{"Product_Name": "Widget"},
			expected: "Widget",
		},
		{
			name:     "Priority order prefers name over title",
			row:      Row{"title": "Secondary", "name": "Primary"},
			expected: "Primary",
		},
		{
			name:     "Empty value falls through to next alias",
			row:      Row{"name": "", "title": "Fallback"},
			expected: "Fallback",
		},
		{
			name:     "No alias present defaults to empty",
			row:      Row{"colour": "red"},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product := NormalizeProduct(tt.row, 0)
			assert.Equal(t, tt.expected, product.Name)
		})
	}
}

func TestNormalizeProduct_FieldCoercion(t *testing.T) {
	product := NormalizeProduct(Row{
		"name":      "Widget",
		"price":     "19.99",
		"stock":     "7",
		"category":  "Tools",
		"sku":       "W-100",
		"image_url": "https://example.com/widget.png",
		"details":   "A sturdy widget",
	}, 0)

	assert.Equal(t, "Widget", product.Name)
	assert.Equal(t, 19.99, product.Price)
	assert.Equal(t, 7, product.Stock)
	assert.Equal(t, "Tools", product.Category)
	assert.Equal(t, "W-100", product.SKU)
	assert.Equal(t, "https://example.com/widget.png", product.Image)
	assert.Equal(t, "A sturdy widget", product.Description)
	assert.WithinDuration(t, time.Now(), product.CreatedAt, 5*time.Second)
}

func TestNormalizeProduct_Defaults(t *testing.T) {
	tests := []struct {
		name          string
		row           Row
		expectedPrice float64
		expectedStock int
	}{
		{
			name:          "Unparsable price defaults to zero",
			row:           Row{"price": "abc"},
			expectedPrice: 0,
		},
		{
			name:          "Missing stock defaults to zero",
			row:           Row{"name": "Widget"},
			expectedStock: 0,
		},
		{
			name:          "Negative price clamps to zero",
			row:           Row{"price": "-5.00"},
			expectedPrice: 0,
		},
		{
			name:          "Negative stock clamps to zero",
			row:           Row{"stock": "-3"},
			expectedStock: 0,
		},
		{
			name:          "Fractional stock defaults to zero",
			row:           Row{"stock": "3.5"},
			expectedStock: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product := NormalizeProduct(tt.row, 0)
			assert.Equal(t, tt.expectedPrice, product.Price)
			assert.Equal(t, tt.expectedStock, product.Stock)
		})
	}
}

func TestNormalizeProduct_IDHandling(t *testing.T) {
	t.Run("Row id kept verbatim", func(t *testing.T) {
		product := NormalizeProduct(Row{"id": "SKU-42", "name": "Widget"}, 3)
		assert.Equal(t, "SKU-42", product.ID)
	})

	t.Run("Synthesised ids are unique within a batch", func(t *testing.T) {
		seen := make(map[string]struct{})
		for i := 0; i < 3; i++ {
			product := NormalizeProduct(Row{"name": fmt.Sprintf("Item %d", i)}, i)
			require.NotEmpty(t, product.ID)
			assert.Contains(t, product.ID, "product-")
			seen[product.ID] = struct{}{}
		}
		assert.Len(t, seen, 3)
	})
}
