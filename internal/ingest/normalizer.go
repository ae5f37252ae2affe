package ingest

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"befach-store/internal/model"
)

// Alias priority lists per canonical field. For each field the first
// alias present in the row with a non-empty value wins; header matching
// is case-insensitive.
var (
	nameAliases        = []string{"name", "product_name", "product name", "title", "product"}
	descriptionAliases = []string{"description", "product_description", "product description", "details"}
	priceAliases       = []string{"price", "product_price", "product price", "cost"}
	categoryAliases    = []string{"category", "product_category", "product category", "type"}
	skuAliases         = []string{"sku", "product_sku", "product sku", "code"}
	stockAliases       = []string{"stock", "quantity", "inventory", "stock_quantity"}
	imageAliases       = []string{"image", "image_url", "image url", "picture", "photo"}
)

// NormalizeProduct maps a raw row to a canonical product. Pure: no I/O
// beyond reading the clock for the createdAt stamp and synthesised ids.
//
// index disambiguates synthesised ids within one batch; rows carrying
// their own id keep it verbatim.
func NormalizeProduct(row Row, index int) model.Product {
	fields := make(map[string]string, len(row))
	for key, value := range row {
		fields[strings.ToLower(strings.TrimSpace(key))] = strings.TrimSpace(value)
	}

	resolve := func(aliases []string) string {
		for _, alias := range aliases {
			if value := fields[alias]; value != "" {
				return value
			}
		}
		return ""
	}

	now := time.Now()

	id := fields["id"]
	if id == "" {
		id = fmt.Sprintf("product-%d-%d", now.UnixMilli(), index)
	}

	// Unparsable or negative numerics degrade to zero rather than
	// failing the row.
	price, err := strconv.ParseFloat(resolve(priceAliases), 64)
	if err != nil || price < 0 {
		price = 0
	}

	stock, err := strconv.Atoi(resolve(stockAliases))
	if err != nil || stock < 0 {
		stock = 0
	}

	return model.Product{
		ID:          id,
		Name:        resolve(nameAliases),
		Description: resolve(descriptionAliases),
		Price:       price,
		Category:    resolve(categoryAliases),
		SKU:         resolve(skuAliases),
		Stock:       stock,
		Image:       resolve(imageAliases),
		CreatedAt:   now,
	}
}
