package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"print-order-server/internal/domain"
	apperrors "print-order-server/pkg/errors"
)

// AdminHandler handles the dashboard login
type AdminHandler struct {
	authService domain.AuthService
	logger      domain.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(authService domain.AuthService, logger domain.Logger) *AdminHandler {
	return &AdminHandler{authService: authService, logger: logger}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// Login checks the credential pair and returns a success token. The token is
// not validated by any other endpoint; the dashboard only keeps a local
// logged-in flag.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			respondError(w, h.logger, apperrors.NewUnauthorizedError("Invalid credentials"), "Login failed")
			return
		}
		respondError(w, h.logger, err, "Login failed")
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{Success: true, Token: token})
}
