package handler

import (
	"claimdesk/middleware"
	"claimdesk/models"
	"claimdesk/service"
	"net/http"
)

// SessionHandler handles operator login and logout
type SessionHandler struct {
	identity *service.IdentityService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(identity *service.IdentityService) *SessionHandler {
	return &SessionHandler{identity: identity}
}

// Login handles POST /api/v1/session/login
// Unknown user, wrong password and inactive account share one response.
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Bad Request", "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondWithError(w, http.StatusBadRequest, "Bad Request", "email and password are required")
		return
	}

	user, token, err := h.identity.StartSession(req.Email, req.Password)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, models.LoginResponse{
		Success: true,
		Token:   token,
		User:    user,
		Message: "Login successful",
	})
}

// Logout handles POST /api/v1/session/logout
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.identity.Logout()
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// Me handles GET /api/v1/session/me
func (h *SessionHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		respondWithServiceError(w, service.ErrNotAuthenticated)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}
