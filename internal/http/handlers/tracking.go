package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"logistics-backoffice/internal/logx"
	"logistics-backoffice/internal/tracking"
)

const heartbeatEvery = 25 * time.Second

// TrackingHandler serves the live map as JSON and as a server-sent event
// stream.
type TrackingHandler struct {
	tracker   trackingView
	logger    logx.Logger
	heartbeat time.Duration
}

// NewTrackingHandler creates a TrackingHandler.
func NewTrackingHandler(logger logx.Logger, t trackingView) *TrackingHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &TrackingHandler{tracker: t, logger: logger, heartbeat: heartbeatEvery}
}

// Get handles GET /tracking?courier_id=.
func (h *TrackingHandler) Get(w http.ResponseWriter, r *http.Request) {
	courierID, err := tracking.ParseCourier(r.URL.Query().Get("courier_id"))
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid courier_id")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, h.tracker.View(courierID))
}

// Stream handles GET /tracking/stream. It sends the current view, then a
// fresh view after every change until the client goes away.
func (h *TrackingHandler) Stream(w http.ResponseWriter, r *http.Request) {
	courierID, err := tracking.ParseCourier(r.URL.Query().Get("courier_id"))
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid courier_id")
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(h.logger, w, r, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	changes, stop := h.tracker.Watch()
	defer stop()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	send := func() bool {
		v := h.tracker.View(courierID)
		b, err := json.Marshal(v)
		if err != nil {
			h.logger.Error("tracking view encode failed", logx.Err(err))
			return false
		}
		if _, err := fmt.Fprintf(w, "id: %d\nevent: view\ndata: %s\n\n", v.Version, b); err != nil {
			return false
		}
		flusher.Flush()
		return true
	}
	if !send() {
		return
	}

	h.logger.Debug("tracking stream opened", logx.String("req_id", reqID(r.Context())))
	defer h.logger.Debug("tracking stream closed", logx.String("req_id", reqID(r.Context())))

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()
	for {
		select {
		case <-r.Context().Done():
			return
		case <-changes:
			if !send() {
				return
			}
		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": keepalive\n\n"); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
