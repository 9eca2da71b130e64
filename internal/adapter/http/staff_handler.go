package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/YelzhanWeb/kiosk/internal/adapter/logger"
	"github.com/YelzhanWeb/kiosk/internal/domain"
	"github.com/YelzhanWeb/kiosk/internal/interfaces"
)

type StaffHandler struct {
	service interfaces.AttendanceService
	logger  logger.Logger
}

func NewStaffHandler(service interfaces.AttendanceService, logger logger.Logger) *StaffHandler {
	return &StaffHandler{
		service: service,
		logger:  logger,
	}
}

// StaffStatus is a staff member with the open session, if any.
type StaffStatus struct {
	domain.StaffMember
	ActiveLog *domain.StaffLog `json:"activeLog,omitempty"`
}

func (h *StaffHandler) ListStaff(w http.ResponseWriter, r *http.Request) {
	members := h.service.Staff()

	out := make([]StaffStatus, 0, len(members))
	for _, m := range members {
		s := StaffStatus{StaffMember: m}
		if log, ok := h.service.ActiveLog(m.ID); ok {
			s.ActiveLog = log
		}
		out = append(out, s)
	}
	respondJSON(w, http.StatusOK, out)
}

type StaffRequest struct {
	Name       string  `json:"name"`
	PIN        string  `json:"pin,omitempty"`
	HourlyRate float64 `json:"hourlyRate"`
}

func (h *StaffHandler) AddStaff(w http.ResponseWriter, r *http.Request) {
	var req StaffRequest
	if err := decode(r, &req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	member, err := h.service.AddStaff(req.Name, req.PIN, req.HourlyRate)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, member)
}

func (h *StaffHandler) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	var req StaffRequest
	if err := decode(r, &req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	member, err := h.service.UpdateStaff(chi.URLParam(r, "id"), req.Name, req.HourlyRate)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, member)
}

func (h *StaffHandler) RemoveStaff(w http.ResponseWriter, r *http.Request) {
	if err := h.service.RemoveStaff(chi.URLParam(r, "id")); err != nil {
		respondDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *StaffHandler) ClockIn(w http.ResponseWriter, r *http.Request) {
	log, err := h.service.ClockIn(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, log)
}

func (h *StaffHandler) ClockOut(w http.ResponseWriter, r *http.Request) {
	log, err := h.service.ClockOut(r.Context(), chi.URLParam(r, "logID"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, log)
}

// LogView adds the derived hours and pay of a closed session.
type LogView struct {
	*domain.StaffLog
	Hours *float64 `json:"hours,omitempty"`
	Pay   *float64 `json:"pay,omitempty"`
}

func (h *StaffHandler) ListAttendance(w http.ResponseWriter, r *http.Request) {
	logs := h.service.Logs()

	out := make([]LogView, 0, len(logs))
	for _, l := range logs {
		v := LogView{StaffLog: l}
		if hours, ok := l.Hours(); ok {
			pay, _ := l.Pay()
			v.Hours, v.Pay = &hours, &pay
		}
		out = append(out, v)
	}
	respondJSON(w, http.StatusOK, out)
}
