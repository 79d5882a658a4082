package handlers

import (
	"net/http"
	"time"

	"logistics-backoffice/internal/board"
	"logistics-backoffice/internal/logx"
)

type boardCardDTO struct {
	deliveryDTO
	WriteState string `json:"write_state"`
}

type boardLaneDTO struct {
	Column board.Column   `json:"column"`
	Title  string         `json:"title"`
	Count  int            `json:"count"`
	Cards  []boardCardDTO `json:"cards"`
}

type moveRequest struct {
	ActiveID int64  `json:"active_id"`
	OverID   string `json:"over_id"`
}

type moveResponse struct {
	DeliveryID int64        `json:"delivery_id"`
	From       board.Column `json:"from"`
	To         board.Column `json:"to"`
	Status     string       `json:"status"`
	Moved      bool         `json:"moved"`
}

// BoardHandler serves the kanban board.
type BoardHandler struct {
	board  boardUsecase
	logger logx.Logger
	now    func() time.Time
}

// NewBoardHandler creates a BoardHandler.
func NewBoardHandler(logger logx.Logger, b boardUsecase) *BoardHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &BoardHandler{board: b, logger: logger, now: time.Now}
}

// Get handles GET /board.
func (h *BoardHandler) Get(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	g := h.board.Grouped()
	out := make([]boardLaneDTO, 0, len(g))
	for _, lane := range g {
		cards := make([]boardCardDTO, 0, len(lane.Deliveries))
		for _, d := range lane.Deliveries {
			cards = append(cards, boardCardDTO{
				deliveryDTO: deliveryToResponse(d, now),
				WriteState:  h.board.State(d.ID).String(),
			})
		}
		out = append(out, boardLaneDTO{Column: lane.Column, Title: lane.Column.Title(), Count: len(cards), Cards: cards})
	}
	writeJSON(h.logger, w, r, http.StatusOK, out)
}

// Move handles POST /board/move. A drop on the card's own column is
// accepted without a write.
func (h *BoardHandler) Move(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	if req.ActiveID <= 0 {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid active_id")
		return
	}
	res, err := h.board.Move(r.Context(), req.ActiveID, req.OverID)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, moveResponse{
		DeliveryID: res.DeliveryID,
		From:       res.From,
		To:         res.To,
		Status:     string(res.Status),
		Moved:      res.Moved,
	})
}
