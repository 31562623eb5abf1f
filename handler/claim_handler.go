package handler

import (
	"claimdesk/models"
	"claimdesk/service"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/mux"
)

// ClaimHandler handles HTTP requests for claims
type ClaimHandler struct {
	service *service.ClaimService
}

// NewClaimHandler creates a new claim handler
func NewClaimHandler(svc *service.ClaimService) *ClaimHandler {
	return &ClaimHandler{service: svc}
}

// ListClaims handles GET /api/v1/claims
// Query: search, status, priority, country, claimType, organization, assignedTo,
// reason, subReason, datePreset, dateFrom, dateTo (YYYY-MM-DD), route, sort, order (asc|desc)
func (h *ClaimHandler) ListClaims(w http.ResponseWriter, r *http.Request) {
	filter, sortBy, desc, err := parseListQuery(r.URL.Query())
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Bad Request", err.Error())
		return
	}
	claims, err := h.service.ListClaims(filter, sortBy, desc)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, models.ClaimListResponse{Total: len(claims), Claims: claims})
}

// CreateClaim handles POST /api/v1/claims
func (h *ClaimHandler) CreateClaim(w http.ResponseWriter, r *http.Request) {
	var req models.CreateClaimRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Bad Request", "Invalid request body")
		return
	}
	claim, err := h.service.CreateClaim(&req)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, claim)
}

// NextNumber handles GET /api/v1/claims/next-number
func (h *ClaimHandler) NextNumber(w http.ResponseWriter, r *http.Request) {
	number, err := h.service.NextClaimNumber()
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, models.NextNumberResponse{ClaimNumber: number})
}

// GetClaim handles GET /api/v1/claims/{id}
func (h *ClaimHandler) GetClaim(w http.ResponseWriter, r *http.Request) {
	claim, err := h.service.GetClaim(mux.Vars(r)["id"])
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, claim)
}

// DeleteClaim handles DELETE /api/v1/claims/{id}
func (h *ClaimHandler) DeleteClaim(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteClaim(mux.Vars(r)["id"]); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// BeginManagement handles POST /api/v1/claims/{id}/manage
// Opens the management view: moves a new claim to en-gestion and returns the prefilled form.
func (h *ClaimHandler) BeginManagement(w http.ResponseWriter, r *http.Request) {
	claim, err := h.service.BeginManagement(mux.Vars(r)["id"])
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"claim": claim,
		"form":  models.ManagementFormFromClaim(claim),
	})
}

// SaveManagement handles PUT /api/v1/claims/{id}/manage
func (h *ClaimHandler) SaveManagement(w http.ResponseWriter, r *http.Request) {
	var form models.ManagementForm
	if err := decodeJSON(r, &form); err != nil {
		respondWithError(w, http.StatusBadRequest, "Bad Request", "Invalid request body")
		return
	}
	claim, err := h.service.SaveManagement(mux.Vars(r)["id"], &form)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, claim)
}

// AddComment handles POST /api/v1/claims/{id}/comments
func (h *ClaimHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	var req models.CommentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Bad Request", "Invalid request body")
		return
	}
	claim, err := h.service.AddComment(mux.Vars(r)["id"], req.Comment, req.Area)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, claim)
}

// AssignClaims handles POST /api/v1/claims/assign
func (h *ClaimHandler) AssignClaims(w http.ResponseWriter, r *http.Request) {
	var req models.AssignRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Bad Request", "Invalid request body")
		return
	}
	n, err := h.service.AssignClaims(req.ClaimIDs, req.Agent)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, models.AssignResponse{
		Assigned: n,
		Agent:    req.Agent,
		Message:  fmt.Sprintf("%d reclamo(s) asignado(s) a %s", n, req.Agent),
	})
}

// Dashboard handles GET /api/v1/dashboard
func (h *ClaimHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Dashboard()
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, summary)
}

// Catalog handles GET /api/v1/catalog
func (h *ClaimHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.service.Catalog())
}

// parseListQuery reads the list filters and sort order from the query string
func parseListQuery(q url.Values) (models.ClaimFilter, models.SortField, bool, error) {
	f := models.ClaimFilter{
		Search:       q.Get("search"),
		Status:       q.Get("status"),
		Priority:     q.Get("priority"),
		Country:      q.Get("country"),
		ClaimType:    q.Get("claimType"),
		Organization: q.Get("organization"),
		AssignedTo:   q.Get("assignedTo"),
		Reason:       q.Get("reason"),
		SubReason:    q.Get("subReason"),
		DatePreset:   models.DatePreset(q.Get("datePreset")),
		Route:        models.RouteFilter(q.Get("route")),
	}
	for key, dst := range map[string]**time.Time{"dateFrom": &f.DateFrom, "dateTo": &f.DateTo} {
		v := q.Get(key)
		if v == "" {
			continue
		}
		t, err := parseDate(v)
		if err != nil {
			return f, "", false, fmt.Errorf("invalid %s: expected YYYY-MM-DD", key)
		}
		*dst = &t
	}
	if f.DatePreset == "" && (f.DateFrom != nil || f.DateTo != nil) {
		f.DatePreset = models.DateCustom
	}

	sortBy := models.SortField(q.Get("sort"))
	if sortBy == "" {
		sortBy = models.SortCreatedAt
	}
	order := q.Get("order")
	if order != "" && order != "asc" && order != "desc" {
		return f, "", false, fmt.Errorf("invalid order %q", order)
	}
	desc := order != "asc"
	return f, sortBy, desc, nil
}

func parseDate(v string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", v, time.Local); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, v)
}
