package handlers

import (
	"net/http"

	"logistics-backoffice/internal/auth"
	"logistics-backoffice/internal/logx"
)

type tokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
}

// AuthHandler serves account registration and login.
type AuthHandler struct {
	uc     authUsecase
	logger logx.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(logger logx.Logger, uc authUsecase) *AuthHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &AuthHandler{uc: uc, logger: logger}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req auth.Credentials
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	u, err := h.uc.Register(r.Context(), req)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusCreated, map[string]string{"id": u.ID.String(), "email": u.Email})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.Credentials
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	token, err := h.uc.Login(r.Context(), req)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, tokenResponse{Token: token, TokenType: "Bearer"})
}
