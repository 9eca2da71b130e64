package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/YelzhanWeb/kiosk/internal/adapter/logger"
	"github.com/YelzhanWeb/kiosk/internal/domain"
	"github.com/YelzhanWeb/kiosk/internal/interfaces"
)

type CartHandler struct {
	service interfaces.OrderService
	logger  logger.Logger
}

func NewCartHandler(service interfaces.OrderService, logger logger.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger,
	}
}

type CartResponse struct {
	Lines []domain.CartLine `json:"lines"`
	Total float64           `json:"total"`
}

func newCartResponse(c *domain.Cart) CartResponse {
	lines := c.Lines
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return CartResponse{Lines: lines, Total: c.Total()}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, newCartResponse(h.service.Cart(session(r))))
}

type AddItemRequest struct {
	ItemID  string `json:"itemId"`
	Variant string `json:"variant,omitempty"`
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := decode(r, &req); err != nil || req.ItemID == "" {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if _, err := h.service.AddToCart(session(r), req.ItemID, req.Variant); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, newCartResponse(h.service.Cart(session(r))))
}

type UpdateQuantityRequest struct {
	Delta int `json:"delta"`
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req UpdateQuantityRequest
	if err := decode(r, &req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	cart, err := h.service.UpdateQuantity(session(r), chi.URLParam(r, "cartID"), req.Delta)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, newCartResponse(cart))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	cart, err := h.service.RemoveFromCart(session(r), chi.URLParam(r, "cartID"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, newCartResponse(cart))
}
