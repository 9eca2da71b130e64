package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/YelzhanWeb/kiosk/internal/adapter/logger"
	"github.com/YelzhanWeb/kiosk/internal/domain"
	"github.com/YelzhanWeb/kiosk/internal/interfaces"
)

type MenuHandler struct {
	service interfaces.CatalogService
	logger  logger.Logger
}

func NewMenuHandler(service interfaces.CatalogService, logger logger.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		logger:  logger,
	}
}

// ListMenu supports an optional ?category= filter.
func (h *MenuHandler) ListMenu(w http.ResponseWriter, r *http.Request) {
	items := h.service.Menu()

	if c := r.URL.Query().Get("category"); c != "" {
		filtered := make([]domain.MenuItem, 0, len(items))
		for _, item := range items {
			if strings.EqualFold(string(item.Category), c) {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	respondJSON(w, http.StatusOK, items)
}

func (h *MenuHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, domain.Categories)
}

type UpdateImageRequest struct {
	Image string `json:"image"`
}

func (h *MenuHandler) UpdateImage(w http.ResponseWriter, r *http.Request) {
	var req UpdateImageRequest
	if err := decode(r, &req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	item, err := h.service.UpdateImage(chi.URLParam(r, "id"), req.Image)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

type RecommendRequest struct {
	Mood string `json:"mood"`
}

type RecommendResponse struct {
	Recommendation string `json:"recommendation"`
}

func (h *MenuHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if err := decode(r, &req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Mood) == "" {
		respondError(w, "mood is required", http.StatusBadRequest)
		return
	}

	answer := h.service.Recommend(r.Context(), req.Mood)

	h.logger.Debug("recommendation_served", "Recommendation returned", middleware.GetReqID(r.Context()), map[string]interface{}{
		"mood": req.Mood,
	})
	respondJSON(w, http.StatusOK, RecommendResponse{Recommendation: answer})
}
