package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"befach-store/internal/model"
	"befach-store/internal/service"

	"github.com/rs/zerolog"
)

// SlideHandler handles hero slider HTTP requests.
type SlideHandler struct {
	slides service.SlideService
	logger zerolog.Logger
}

// NewSlideHandler creates a new slide handler.
func NewSlideHandler(slides service.SlideService, logger zerolog.Logger) *SlideHandler {
	return &SlideHandler{
		slides: slides,
		logger: logger.With().Str("handler", "slide").Logger(),
	}
}

// createSlideRequest is the JSON body of POST /api/slider/upload.
type createSlideRequest struct {
	Image    string `json:"image"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// GetAll handles GET /api/slider requests.
func (h *SlideHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	slides, err := h.slides.GetAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve slides", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, slides)
}

// Create handles POST /api/slider/upload requests.
func (h *SlideHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req createSlideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	slide, err := h.slides.Create(r.Context(), req.Image, req.Title, req.Subtitle)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Slider image uploaded successfully",
		"slide":   slide,
	})
}

// Update handles PUT /api/slider/{id} requests with a partial body.
func (h *SlideHandler) Update(w http.ResponseWriter, r *http.Request) {
	slideID := strings.TrimPrefix(r.URL.Path, "/api/slider/")
	if slideID == "" {
		writeError(w, http.StatusBadRequest, "slide ID is required", h.logger)
		return
	}

	var update model.SlideUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	slide, err := h.slides.Update(r.Context(), slideID, update)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Slide updated successfully",
		"slide":   slide,
	})
}

// Delete handles DELETE /api/slider/{id} requests.
func (h *SlideHandler) Delete(w http.ResponseWriter, r *http.Request) {
	slideID := strings.TrimPrefix(r.URL.Path, "/api/slider/")
	if slideID == "" {
		writeError(w, http.StatusBadRequest, "slide ID is required", h.logger)
		return
	}

	if err := h.slides.Delete(r.Context(), slideID); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Slide deleted successfully",
	})
}
