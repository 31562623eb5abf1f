package handler

import (
	"claimdesk/models"
	"claimdesk/service"
	"net/http"

	"github.com/gorilla/mux"
)

// AdminHandler provides admin-only endpoints for operator accounts
type AdminHandler struct {
	users *service.UserService
}

// NewAdminHandler creates an admin handler
func NewAdminHandler(users *service.UserService) *AdminHandler {
	return &AdminHandler{users: users}
}

// ListUsers returns all operator accounts. GET /api/v1/admin/users
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsers()
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"users": users})
}

// SetUserActive enables or disables an account. PUT /api/v1/admin/users/{id}/active
func (h *AdminHandler) SetUserActive(w http.ResponseWriter, r *http.Request) {
	var req models.SetActiveRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Bad Request", "Invalid JSON body")
		return
	}
	user, err := h.users.SetActive(mux.Vars(r)["id"], req.IsActive)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}
