package handler

import (
	"claimdesk/models"
	"claimdesk/repository"
	"claimdesk/service"
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

// respondWithError sends an error response
func respondWithError(w http.ResponseWriter, statusCode int, errorType, message string) {
	response := models.ErrorResponse{
		Error:   errorType,
		Message: message,
		Code:    statusCode,
	}
	respondWithJSON(w, statusCode, response)
}

// respondWithServiceError maps service errors to HTTP status codes
func respondWithServiceError(w http.ResponseWriter, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		respondWithJSON(w, http.StatusBadRequest, models.ErrorResponse{
			Error:   "Validation Error",
			Message: verr.Message,
			Field:   verr.Field,
			Code:    http.StatusBadRequest,
		})
	case errors.Is(err, service.ErrNotAuthenticated):
		respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Authentication required")
	case errors.Is(err, service.ErrInvalidCredentials):
		respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Invalid credentials")
	case errors.Is(err, service.ErrForbidden):
		respondWithError(w, http.StatusForbidden, "Forbidden", err.Error())
	case errors.Is(err, service.ErrClaimNotFound):
		respondWithError(w, http.StatusNotFound, "Not Found", "Claim not found")
	case errors.Is(err, repository.ErrUserNotFound):
		respondWithError(w, http.StatusNotFound, "Not Found", "User not found")
	case errors.Is(err, service.ErrUnknownAgent):
		respondWithError(w, http.StatusBadRequest, "Bad Request", err.Error())
	default:
		log.Printf("[handler] Internal error: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Internal Server Error", "Unexpected error")
	}
}

func decodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
