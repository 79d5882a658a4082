package handlers

import (
	"net/http"
	"strconv"

	"logistics-backoffice/internal/dashboard"
	"logistics-backoffice/internal/logx"
)

// DashboardHandler serves the KPI report.
type DashboardHandler struct {
	uc     reportUsecase
	logger logx.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(logger logx.Logger, uc reportUsecase) *DashboardHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &DashboardHandler{uc: uc, logger: logger}
}

// Get handles GET /dashboard?from=&to=&courier_id=. Dates are inclusive
// calendar days.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var f dashboard.Filter
	if s := q.Get("from"); s != "" {
		t, err := parseDate(s)
		if err != nil {
			writeError(h.logger, w, r, http.StatusBadRequest, "invalid from")
			return
		}
		f.From = &t
	}
	if s := q.Get("to"); s != "" {
		t, err := parseDate(s)
		if err != nil {
			writeError(h.logger, w, r, http.StatusBadRequest, "invalid to")
			return
		}
		f.To = &t
	}
	if s := q.Get("courier_id"); s != "" && s != "all" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil || id < 0 {
			writeError(h.logger, w, r, http.StatusBadRequest, "invalid courier_id")
			return
		}
		f.CourierID = &id
	}

	rep, err := h.uc.Report(r.Context(), f)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, rep)
}
