package service

import (
	"claimdesk/models"
	"claimdesk/repository"
	"fmt"
	"log"
	"strings"
	"time"
)

// ClaimService handles the claim lifecycle: intake, management, assignment and closure
type ClaimService struct {
	repo     *repository.ClaimRepository
	identity *IdentityService
	catalog  *models.Catalog
	now      func() time.Time
}

// NewClaimService creates a new claim service
func NewClaimService(repo *repository.ClaimRepository, identity *IdentityService, catalog *models.Catalog) *ClaimService {
	return &ClaimService{
		repo:     repo,
		identity: identity,
		catalog:  catalog,
		now:      time.Now,
	}
}

// WithClock replaces the time source (tests)
func (s *ClaimService) WithClock(now func() time.Time) *ClaimService {
	s.now = now
	return s
}

// Catalog returns the lookup tables in use
func (s *ClaimService) Catalog() *models.Catalog {
	return s.catalog
}

// CreateClaim registers a claim from the intake form.
//
// Rules:
// 1. Only admin and supervisor may create claims
// 2. Subject, detail and organization are required; organization must match (country, claimType)
// 3. Claimant fields stay empty until management
// 4. Number, final status, timestamps and the first history entry are assigned by the store
func (s *ClaimService) CreateClaim(req *models.CreateClaimRequest) (*models.Claim, error) {
	if err := s.require(models.ManagerRoles...); err != nil {
		return nil, err
	}
	if verr := validateIntake(req, s.catalog); verr != nil {
		return nil, verr
	}

	claim := models.Claim{
		Country:                 req.Country,
		ClaimType:               req.ClaimType,
		Organization:            strings.TrimSpace(req.Organization),
		Reason:                  req.Reason,
		SubReason:               req.SubReason,
		EmailSubject:            strings.TrimSpace(req.EmailSubject),
		OrganizationClaimNumber: strings.TrimSpace(req.OrganizationClaimNumber),
		CustomerClaimDetail:     req.CustomerClaimDetail,
		InformationRequest:      req.InformationRequest,
		PNR:                     req.PNR,
		Status:                  req.Status,
		Priority:                req.Priority,
		AssignedTo:              req.AssignedTo,
	}
	if req.InitialDate != nil {
		claim.InitialDate = *req.InitialDate
	}

	created := s.repo.AddClaim(claim)
	log.Printf("[claims] Created %s (country=%s, type=%s)", created.ClaimNumber, created.Country, created.ClaimType)
	return created, nil
}

// NextClaimNumber previews the number the next CreateClaim will assign. Nothing is reserved.
func (s *ClaimService) NextClaimNumber() (string, error) {
	if err := s.require(models.ManagerRoles...); err != nil {
		return "", err
	}
	return s.repo.GetNextClaimNumber(), nil
}

// GetClaim returns a claim visible to the current operator.
// Analysts get ErrClaimNotFound for claims not assigned to them.
func (s *ClaimService) GetClaim(id string) (*models.Claim, error) {
	user := s.identity.CurrentUser()
	if user == nil {
		return nil, ErrNotAuthenticated
	}
	claim, ok := s.repo.GetClaim(id)
	if !ok || !canSee(user, claim) {
		return nil, ErrClaimNotFound
	}
	return claim, nil
}

// ListClaims returns the role-scoped, filtered and sorted claim view
func (s *ClaimService) ListClaims(filter models.ClaimFilter, sortBy models.SortField, desc bool) ([]models.Claim, error) {
	user := s.identity.CurrentUser()
	if user == nil {
		return nil, ErrNotAuthenticated
	}
	claims := FilterClaims(s.repo.ListClaims(), user, filter, s.now())
	SortClaims(claims, sortBy, desc)
	return claims, nil
}

// Dashboard summarizes the claims visible to the current operator
func (s *ClaimService) Dashboard() (*models.DashboardSummary, error) {
	user := s.identity.CurrentUser()
	if user == nil {
		return nil, ErrNotAuthenticated
	}
	summary := Summarize(s.repo.ListClaims(), user)
	return &summary, nil
}

// BeginManagement performs the automatic new -> en-gestion transition on first
// management access. Claims in any other status are returned unchanged.
func (s *ClaimService) BeginManagement(id string) (*models.Claim, error) {
	claim, err := s.GetClaim(id)
	if err != nil {
		return nil, err
	}
	if claim.Status != models.StatusNew {
		return claim, nil
	}

	claim, found, err := s.repo.ApplyChange(id, func(current *models.Claim) (models.ClaimUpdate, []models.HistoryNote, error) {
		if current.Status != models.StatusNew {
			return models.ClaimUpdate{}, nil, nil
		}
		status := models.StatusEnGestion
		notes := []models.HistoryNote{{
			Action:  "Estado cambiado a En Gestión",
			Comment: "El analista comenzó la gestión del caso",
			Area:    "Estado",
		}}
		return models.ClaimUpdate{Status: &status}, notes, nil
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrClaimNotFound
	}
	log.Printf("[claims] %s moved to %s", claim.ClaimNumber, claim.Status)
	return claim, nil
}

// SaveManagement validates the management form and, when valid, records one
// history entry per tracked field that changed, then applies the form.
// On any validation error nothing is persisted.
func (s *ClaimService) SaveManagement(id string, form *models.ManagementForm) (*models.Claim, error) {
	if _, err := s.GetClaim(id); err != nil {
		return nil, err
	}
	if verr := ValidateManagement(form); verr != nil {
		return nil, verr
	}
	if verr := validateEnums(form); verr != nil {
		return nil, verr
	}
	if verr := validateAgainstCatalog(form, s.catalog); verr != nil {
		return nil, verr
	}

	updated, found, err := s.repo.ApplyChange(id, func(current *models.Claim) (models.ClaimUpdate, []models.HistoryNote, error) {
		return updateFromForm(form), diffManagement(current, form), nil
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrClaimNotFound
	}

	log.Printf("[claims] Management saved for %s (status=%s, final=%s)", updated.ClaimNumber, updated.Status, updated.FinalStatus)
	return updated, nil
}

// AddComment appends a free-text note to the claim's history
func (s *ClaimService) AddComment(id, comment, area string) (*models.Claim, error) {
	if _, err := s.GetClaim(id); err != nil {
		return nil, err
	}
	if strings.TrimSpace(comment) == "" {
		return nil, invalid("comment", "El comentario no puede estar vacío")
	}
	s.repo.AddClaimHistory(id, "Comentario agregado", strings.TrimSpace(comment), area)
	claim, _ := s.repo.GetClaim(id)
	return claim, nil
}

// AssignClaims reassigns the listed claims to a catalog agent. Unknown ids are skipped.
func (s *ClaimService) AssignClaims(ids []string, agent string) (int, error) {
	if err := s.require(models.ManagerRoles...); err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, invalid("claimIds", "Debe seleccionar al menos un reclamo")
	}
	if !s.catalog.IsAgent(agent) {
		return 0, ErrUnknownAgent
	}
	n := s.repo.AssignMultipleClaims(ids, agent)
	log.Printf("[claims] Assigned %d claim(s) to %s", n, agent)
	return n, nil
}

// DeleteClaim permanently removes a claim and its history (admin only)
func (s *ClaimService) DeleteClaim(id string) error {
	if err := s.require(models.AdminRoles...); err != nil {
		return err
	}
	claim, ok := s.repo.GetClaim(id)
	if !ok || !s.repo.DeleteClaim(id) {
		return ErrClaimNotFound
	}
	log.Printf("[claims] Deleted %s", claim.ClaimNumber)
	return nil
}

func (s *ClaimService) require(roles ...models.Role) error {
	if s.identity.CurrentUser() == nil {
		return ErrNotAuthenticated
	}
	if !s.identity.HasRole(roles...) {
		return ErrForbidden
	}
	return nil
}

// diffManagement compares the tracked fields of the stored claim against the form
func diffManagement(c *models.Claim, f *models.ManagementForm) []models.HistoryNote {
	var out []models.HistoryNote
	add := func(action, comment, area string) {
		out = append(out, models.HistoryNote{Action: action, Comment: comment, Area: area})
	}

	if c.Status != f.Status {
		add("Estado actualizado", fmt.Sprintf("Cambió a: %s", f.Status), "Estado")
	}
	if c.Priority != f.Priority {
		add("Prioridad actualizada", fmt.Sprintf("Cambió a: %s", f.Priority), "Prioridad")
	}
	if c.FinalStatus != f.FinalStatus {
		add("Estado final actualizado", fmt.Sprintf("Cambió a: %s", f.FinalStatus), "Estado Final")
	}
	if c.ClosureReason != f.ClosureReason && f.ClosureReason != "" {
		add("Motivo de cierre actualizado", fmt.Sprintf("Cambió a: %s", f.ClosureReason), "Cierre")
	}
	if c.WasCompensated != f.WasCompensated {
		answer := "No"
		if f.WasCompensated {
			answer = "Sí"
		}
		add("Compensación actualizada", "Se compensó: "+answer, "Compensación")
	}
	if f.WasCompensated && c.PaymentType != f.PaymentType {
		add("Tipo de pago actualizado", fmt.Sprintf("Tipo: %s", f.PaymentType), "Compensación")
	}
	if c.Reason != f.Reason {
		add("Motivo actualizado", fmt.Sprintf("Cambió de \"%s\" a \"%s\"", orDefault(string(c.Reason), "Sin definir"), f.Reason), "Categorización")
	}
	if c.SubReason != f.SubReason {
		add("Sub Motivo actualizado", fmt.Sprintf("Cambió de \"%s\" a \"%s\"", orDefault(c.SubReason, "Sin definir"), f.SubReason), "Categorización")
	}
	if c.PNR != f.PNR {
		add("PNR actualizado", fmt.Sprintf("Cambió de \"%s\" a \"%s\"", orDefault(c.PNR, "Sin PNR"), f.PNR), "Datos de Vuelo")
	}
	if c.OutboundFlightNumber != f.OutboundFlightNumber && f.OutboundFlightNumber != "" {
		add("Vuelo IDA actualizado", "Número: "+f.OutboundFlightNumber, "Datos de Vuelo")
	}
	if c.ReturnFlightNumber != f.ReturnFlightNumber && f.ReturnFlightNumber != "" {
		add("Vuelo VUELTA actualizado", "Número: "+f.ReturnFlightNumber, "Datos de Vuelo")
	}
	return out
}

// updateFromForm maps every management field onto a partial update
func updateFromForm(f *models.ManagementForm) models.ClaimUpdate {
	outbound := copyTime(f.OutboundFlightDate)
	ret := copyTime(f.ReturnFlightDate)
	areas := append([]string(nil), f.EscalatedAreas...)

	upd := models.ClaimUpdate{
		ClaimantName:           &f.ClaimantName,
		IdentityDocument:       &f.IdentityDocument,
		Email:                  &f.Email,
		Phone:                  &f.Phone,
		Reason:                 &f.Reason,
		SubReason:              &f.SubReason,
		PNR:                    &f.PNR,
		OutboundFlightDate:     &outbound,
		OutboundFlightNumber:   &f.OutboundFlightNumber,
		OutboundOperator:       &f.OutboundOperator,
		OutboundRoute:          &f.OutboundRoute,
		ReturnFlightDate:       &ret,
		ReturnFlightNumber:     &f.ReturnFlightNumber,
		ReturnOperator:         &f.ReturnOperator,
		ReturnRoute:            &f.ReturnRoute,
		AffectedFlight:         &f.AffectedFlight,
		Status:                 &f.Status,
		Priority:               &f.Priority,
		EscalatedAreas:         &areas,
		OtherEscalationArea:    &f.OtherEscalationArea,
		LawyerInfoRequested:    &f.LawyerInfoRequested,
		LawyerPaymentSentence:  &f.LawyerPaymentSentence,
		LawyerPaymentAgreement: &f.LawyerPaymentAgreement,
		FinalStatus:            &f.FinalStatus,
		ClosureReason:          &f.ClosureReason,
		WasCompensated:         &f.WasCompensated,
		PaymentType:            &f.PaymentType,
		TransferAmount:         &f.TransferAmount,
		TransferCurrency:       &f.TransferCurrency,
		TransferCustomCurrency: &f.TransferCustomCurrency,
		GCAmount:               &f.GCAmount,
		GCCurrency:             &f.GCCurrency,
		GCCustomCurrency:       &f.GCCustomCurrency,
	}
	if f.InitialDate != nil {
		initial := *f.InitialDate
		upd.InitialDate = &initial
	}
	return upd
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
