package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/YelzhanWeb/kiosk/internal/adapter/logger"
	"github.com/YelzhanWeb/kiosk/internal/adapter/printer"
	"github.com/YelzhanWeb/kiosk/internal/domain"
	"github.com/YelzhanWeb/kiosk/internal/interfaces"
)

const maxCustomerNameLength = 100

type OrderHandler struct {
	service interfaces.OrderService
	printer interfaces.ReceiptPrinter
	layout  printer.Layout
	logger  logger.Logger
}

func NewOrderHandler(service interfaces.OrderService, receipts interfaces.ReceiptPrinter, layout printer.Layout, logger logger.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		printer: receipts,
		layout:  layout,
		logger:  logger,
	}
}

type PlaceOrderRequest struct {
	CustomerName string `json:"customerName"`
}

func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderRequest
	if r.ContentLength != 0 {
		if err := decode(r, &req); err != nil {
			respondError(w, "Invalid request body", http.StatusBadRequest)
			return
		}
	}
	if len(strings.TrimSpace(req.CustomerName)) > maxCustomerNameLength {
		respondError(w, "customer name must not exceed 100 characters", http.StatusBadRequest)
		return
	}

	order, err := h.service.PlaceOrder(r.Context(), session(r), req.CustomerName)
	if err != nil {
		h.logger.Debug("order_rejected", "Order not placed", middleware.GetReqID(r.Context()), map[string]interface{}{
			"reason": err.Error(),
		})
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, order)
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.Orders())
}

func (h *OrderHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.ActiveOrders())
}

type UpdateStatusRequest struct {
	Status    string `json:"status"`
	ChangedBy string `json:"changedBy,omitempty"`
}

func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if err := decode(r, &req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.ChangedBy == "" {
		req.ChangedBy = "admin"
	}

	order, err := h.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), domain.Status(req.Status), req.ChangedBy)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

// Receipt renders both receipt copies as plain text without printing.
func (h *OrderHandler) Receipt(w http.ResponseWriter, r *http.Request) {
	order, err := h.service.Order(chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(printer.Render(h.layout, order)))
}

func (h *OrderHandler) PrintReceipt(w http.ResponseWriter, r *http.Request) {
	order, err := h.service.Order(chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	if err := h.printer.Print(r.Context(), order); err != nil {
		h.logger.Error("print_failed", "Failed to print receipt", middleware.GetReqID(r.Context()), map[string]interface{}{
			"order_id": order.ID,
		}, err)
		respondError(w, "Printer unavailable", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
