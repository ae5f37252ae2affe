package model

import "time"

// Product represents a catalogue entry in its canonical, stored form.
// Fields absent from JSON written by older versions decode to their zero
// values, which matches the documented defaults.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	SKU         string    `json:"sku"`
	Stock       int       `json:"stock"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
}

// IngestResult summarises a catalogue ingestion batch.
type IngestResult struct {
	// Count is the number of rows normalised in this batch.
	Count int `json:"count"`
	// Total is the size of the stored product set after the merge.
	Total int `json:"total"`
}

// DeleteResult summarises a bulk product deletion.
type DeleteResult struct {
	DeletedCount int `json:"deletedCount"`
	Total        int `json:"total"`
}
