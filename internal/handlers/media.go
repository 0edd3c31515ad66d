package handlers

import (
	"encoding/json"
	"net/http"

	"streaming-backend/internal/service/media"
	"streaming-backend/pkg/api"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// MediaHandler handles the catalog CRUD requests.
type MediaHandler struct {
	mediaService *media.Service
	logger       *zap.Logger
}

// NewMediaHandler creates a new media handler with dependency injection.
func NewMediaHandler(mediaService *media.Service, logger *zap.Logger) *MediaHandler {
	return &MediaHandler{
		mediaService: mediaService,
		logger:       logger,
	}
}

// Create handles POST /media
func (h *MediaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req api.CreateMediaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "corpo da requisição ausente ou inválido")
		return
	}

	item, err := h.mediaService.Create(r.Context(), req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	api.Success(w, http.StatusCreated, item)
}

// Get handles GET /media/{mediaId}
func (h *MediaHandler) Get(w http.ResponseWriter, r *http.Request) {
	mediaID := chi.URLParam(r, "mediaId")

	item, err := h.mediaService.Get(r.Context(), mediaID)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	api.Success(w, http.StatusOK, item)
}

// List handles GET /media
func (h *MediaHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.mediaService.List(r.Context())
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	api.Success(w, http.StatusOK, items)
}

// Update handles PUT /media/{mediaId}. Unknown body fields are rejected so
// arbitrary attributes cannot be written into the table.
func (h *MediaHandler) Update(w http.ResponseWriter, r *http.Request) {
	mediaID := chi.URLParam(r, "mediaId")

	var req api.UpdateMediaRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "corpo da requisição ausente ou inválido")
		return
	}

	item, err := h.mediaService.Update(r.Context(), mediaID, req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	api.Success(w, http.StatusOK, item)
}

// Delete handles DELETE /media/{mediaId}
func (h *MediaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	mediaID := chi.URLParam(r, "mediaId")

	if err := h.mediaService.Delete(r.Context(), mediaID); err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	api.Success(w, http.StatusOK, api.MessageResponse{Message: "mídia deletada com sucesso"})
}
