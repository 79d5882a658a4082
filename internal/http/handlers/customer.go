package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"logistics-backoffice/internal/logx"
)

// CustomerHandler serves /customers and the postal-code lookup.
type CustomerHandler struct {
	uc     customerUsecase
	logger logx.Logger
}

// NewCustomerHandler creates a CustomerHandler.
func NewCustomerHandler(logger logx.Logger, uc customerUsecase) *CustomerHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &CustomerHandler{uc: uc, logger: logger}
}

// List handles GET /customers.
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.uc.List(r.Context())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, customersToResponse(list))
}

// GetByID handles GET /customers/{id}.
func (h *CustomerHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	c, err := h.uc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, customerToResponse(*c))
}

// Create handles POST /customers.
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCustomerRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	id, err := h.uc.Create(r.Context(), req.toModel())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	w.Header().Set("Location", "/customers/"+strconv.FormatInt(id, 10))
	writeJSON(h.logger, w, r, http.StatusCreated, map[string]int64{"id": id})
}

// Update handles PATCH /customers/{id}.
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req updateCustomerRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	if err := h.uc.UpdatePartial(r.Context(), req.toModel(id)); err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// Delete handles DELETE /customers/{id}.
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.uc.Delete(r.Context(), id); err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// LookupPostal handles GET /postal/{code}. An unresolvable code answers
// 404 so the form keeps whatever the user typed.
func (h *CustomerHandler) LookupPostal(w http.ResponseWriter, r *http.Request) {
	addr, err := h.uc.LookupAddress(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	if addr == nil {
		writeError(h.logger, w, r, http.StatusNotFound, "address not found")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, addr)
}
