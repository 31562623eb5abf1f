package handler

import (
	"claimdesk/service"
	"claimdesk/utils"
	"fmt"
	"log"
	"net/http"
	"time"
)

// ExportHandler serves CSV downloads of the current claim view
type ExportHandler struct {
	claims *service.ClaimService
	export *service.ExportService
	now    func() time.Time
}

// NewExportHandler creates a new export handler
func NewExportHandler(claims *service.ClaimService, export *service.ExportService) *ExportHandler {
	return &ExportHandler{claims: claims, export: export, now: time.Now}
}

// ExportClaims handles GET /api/v1/claims/export
// Accepts the same filter and sort query as the list endpoint.
func (h *ExportHandler) ExportClaims(w http.ResponseWriter, r *http.Request) {
	filter, sortBy, desc, err := parseListQuery(r.URL.Query())
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Bad Request", err.Error())
		return
	}
	claims, err := h.claims.ListClaims(filter, sortBy, desc)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	body, err := h.export.Render(claims)
	if err != nil {
		respondWithServiceError(w, fmt.Errorf("failed to render export: %w", err))
		return
	}

	name := service.ExportFileName(h.now())
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	w.Header().Set("X-Content-SHA256", utils.ExportChecksum(body))
	w.WriteHeader(http.StatusOK)
	w.Write(body)
	log.Printf("[export] %s: %d claim(s)", name, len(claims))
}
