package handler

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"befach-store/internal/service"

	"github.com/rs/zerolog"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	products service.ProductService
	catalog  service.CatalogService
	logger   zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(products service.ProductService, catalog service.CatalogService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		products: products,
		catalog:  catalog,
		logger:   logger.With().Str("handler", "product").Logger(),
	}
}

// uploadRequest is the JSON body of POST /api/products/upload.
type uploadRequest struct {
	File     string `json:"file"` // base64-encoded file content
	Filename string `json:"filename"`
}

// deleteRequest is the JSON body of DELETE /api/products.
type deleteRequest struct {
	IDs []string `json:"ids"`
}

// GetAll handles GET /api/products requests with optional search.
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	search := r.URL.Query().Get("search")

	products, err := h.products.GetAll(r.Context(), search)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve products", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	productID := strings.TrimPrefix(r.URL.Path, "/api/products/")
	if productID == "" {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}

	product, err := h.products.GetByID(r.Context(), productID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// DeleteByID handles DELETE /api/products/{id} requests.
func (h *ProductHandler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	productID := strings.TrimPrefix(r.URL.Path, "/api/products/")
	if productID == "" {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}

	total, err := h.products.DeleteByID(r.Context(), productID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Product deleted successfully",
		"total":   total,
	})
}

// DeleteMany handles DELETE /api/products requests with an id list body.
func (h *ProductHandler) DeleteMany(w http.ResponseWriter, r *http.Request) {
	var req deleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if len(req.IDs) == 0 {
		writeError(w, http.StatusBadRequest, "No product IDs provided", h.logger)
		return
	}

	result, err := h.products.DeleteByIDs(r.Context(), req.IDs)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":      fmt.Sprintf("Successfully deleted %d product(s)", result.DeletedCount),
		"deletedCount": result.DeletedCount,
		"total":        result.Total,
	})
}

// Upload handles POST /api/products/upload requests: a base64-encoded
// CSV/XLSX file is ingested into the catalogue.
func (h *ProductHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req uploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if req.File == "" {
		writeError(w, http.StatusBadRequest, "No file uploaded", h.logger)
		return
	}

	data, err := base64.StdEncoding.DecodeString(req.File)
	if err != nil {
		writeError(w, http.StatusBadRequest, "file content is not valid base64", h.logger)
		return
	}

	result, err := h.catalog.Ingest(r.Context(), data, req.Filename)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Products uploaded successfully",
		"count":   result.Count,
		"total":   result.Total,
	})
}

// Sync handles POST /api/products/sync requests: ingests the configured
// catalogue source file.
func (h *ProductHandler) Sync(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	result, err := h.catalog.IngestFromSource(r.Context())
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Catalogue synchronised successfully",
		"count":   result.Count,
		"total":   result.Total,
	})
}
