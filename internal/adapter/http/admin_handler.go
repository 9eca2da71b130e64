package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/YelzhanWeb/kiosk/internal/adapter/logger"
	"github.com/YelzhanWeb/kiosk/internal/domain"
	"github.com/YelzhanWeb/kiosk/internal/interfaces"
)

type AdminHandler struct {
	settings interfaces.SettingsService
	reports  interfaces.ReportingService
	now      interfaces.Clock
	logger   logger.Logger
}

func NewAdminHandler(settings interfaces.SettingsService, reports interfaces.ReportingService, now interfaces.Clock, logger logger.Logger) *AdminHandler {
	return &AdminHandler{
		settings: settings,
		reports:  reports,
		now:      now,
		logger:   logger,
	}
}

type LoginRequest struct {
	PIN string `json:"pin"`
}

func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decode(r, &req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.settings.VerifyAdminPIN(req.PIN); err != nil {
		h.logger.Info("admin_login_failed", "Incorrect admin PIN", middleware.GetReqID(r.Context()), nil)
		respondDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.reports.Dashboard(h.now()))
}

func (h *AdminHandler) ExportReport(w http.ResponseWriter, r *http.Request) {
	period, err := domain.ParsePeriod(chi.URLParam(r, "period"))
	if err != nil {
		respondError(w, err.Error(), http.StatusBadRequest)
		return
	}

	report := h.reports.Export(period, h.now())

	w.Header().Set("Content-Type", report.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(report.Body)
}

type SettingsResponse struct {
	AutoPrint bool `json:"autoPrint"`
}

func (h *AdminHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, SettingsResponse{AutoPrint: h.settings.AutoPrint()})
}

type UpdateSettingsRequest struct {
	AutoPrint *bool `json:"autoPrint"`
}

func (h *AdminHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req UpdateSettingsRequest
	if err := decode(r, &req); err != nil || req.AutoPrint == nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	h.settings.SetAutoPrint(*req.AutoPrint)
	respondJSON(w, http.StatusOK, SettingsResponse{AutoPrint: h.settings.AutoPrint()})
}

type ChangePINRequest struct {
	CurrentPIN string `json:"currentPin"`
	NewPIN     string `json:"newPin"`
	ConfirmPIN string `json:"confirmPin"`
}

func (h *AdminHandler) ChangePIN(w http.ResponseWriter, r *http.Request) {
	var req ChangePINRequest
	if err := decode(r, &req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.settings.ChangeAdminPIN(req.CurrentPIN, req.NewPIN, req.ConfirmPIN); err != nil {
		respondDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
