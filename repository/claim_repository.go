package repository

import (
	"claimdesk/models"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Actor resolves the operator recorded as author of history entries
type Actor interface {
	CurrentUser() *models.User
}

// ClaimRepository is the single source of truth for claims.
// Claims live in memory only; order is newest first.
type ClaimRepository struct {
	mu      sync.RWMutex
	claims  []*models.Claim
	catalog *models.Catalog
	actor   Actor
	now     func() time.Time
}

// NewClaimRepository creates an empty claim repository.
// catalog drives the dependent-field reset on update; actor may be nil.
func NewClaimRepository(catalog *models.Catalog, actor Actor) *ClaimRepository {
	return &ClaimRepository{
		catalog: catalog,
		actor:   actor,
		now:     time.Now,
	}
}

// WithClock replaces the time source (tests)
func (r *ClaimRepository) WithClock(now func() time.Time) *ClaimRepository {
	r.now = now
	return r
}

// SetActor sets the identity consulted for history authorship
func (r *ClaimRepository) SetActor(actor Actor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actor = actor
}

// GetNextClaimNumber previews the number AddClaim would assign.
// Format: NIC-{8-digit sequence}-{year}; the sequence follows the highest live one for the year.
func (r *ClaimRepository) GetNextClaimNumber() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.nextClaimNumber()
}

func (r *ClaimRepository) nextClaimNumber() string {
	year := strconv.Itoa(r.now().Year())
	highest := 0
	for _, c := range r.claims {
		parts := strings.Split(c.ClaimNumber, "-")
		if len(parts) < 3 || parts[2] != year {
			continue
		}
		if seq, err := strconv.Atoi(parts[1]); err == nil && seq > highest {
			highest = seq
		}
	}
	return fmt.Sprintf("NIC-%08d-%s", highest+1, year)
}

// AddClaim stores a new claim built from data and returns a copy of it.
// Identity, number, final status, timestamps and history are always assigned here.
func (r *ClaimRepository) AddClaim(data models.Claim) *models.Claim {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	claim := data.Clone()
	claim.ID = uuid.New().String()
	claim.ClaimNumber = r.nextClaimNumber()
	claim.FinalStatus = models.FinalStatusPendiente
	claim.CreatedAt = now
	claim.UpdatedAt = now
	if claim.Status == "" {
		claim.Status = models.StatusNew
	}
	if claim.Priority == "" {
		claim.Priority = models.PriorityMedium
	}
	if claim.InitialDate.IsZero() {
		claim.InitialDate = now
	}
	claim.History = []models.HistoryEntry{{
		ID:     uuid.New().String(),
		Date:   now,
		Action: models.ActionClaimCreated,
		User:   models.SystemActor,
	}}

	r.claims = append([]*models.Claim{claim}, r.claims...)
	return claim.Clone()
}

// GetClaim returns a copy of the claim with the given id
func (r *ClaimRepository) GetClaim(id string) (*models.Claim, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c := r.find(id)
	if c == nil {
		return nil, false
	}
	return c.Clone(), true
}

// ListClaims returns copies of all claims, newest first
func (r *ClaimRepository) ListClaims() []models.Claim {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Claim, 0, len(r.claims))
	for _, c := range r.claims {
		out = append(out, *c.Clone())
	}
	return out
}

// Len returns the number of stored claims
func (r *ClaimRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.claims)
}

// UpdateClaim merges the set fields of upd into the claim and refreshes UpdatedAt.
// It never writes history. Returns false when the id is unknown.
func (r *ClaimRepository) UpdateClaim(id string, upd models.ClaimUpdate) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.find(id)
	if c == nil {
		return false
	}
	r.apply(c, upd)
	r.touch(c)
	return true
}

// ApplyChange runs build against a copy of the stored claim and, unless it
// fails, appends the returned notes to history and merges the update, all
// under one lock. found is false when the id is unknown.
func (r *ClaimRepository) ApplyChange(id string, build func(current *models.Claim) (models.ClaimUpdate, []models.HistoryNote, error)) (claim *models.Claim, found bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.find(id)
	if c == nil {
		return nil, false, nil
	}
	upd, notes, err := build(c.Clone())
	if err != nil {
		return nil, true, err
	}
	for _, n := range notes {
		r.appendHistory(c, n.Action, n.Comment, n.Area)
	}
	r.apply(c, upd)
	r.touch(c)
	return c.Clone(), true, nil
}

// DeleteClaim removes the claim and its history permanently
func (r *ClaimRepository) DeleteClaim(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.claims {
		if c.ID == id {
			r.claims = append(r.claims[:i], r.claims[i+1:]...)
			return true
		}
	}
	return false
}

// AddClaimHistory appends one entry authored by the current operator ("Sistema" when none)
func (r *ClaimRepository) AddClaimHistory(id, action, comment, area string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.find(id)
	if c == nil {
		return false
	}
	r.appendHistory(c, action, comment, area)
	return true
}

// AssignMultipleClaims assigns every listed claim to agent, one history entry per claim.
// Unknown ids are skipped; returns the number of claims reassigned.
func (r *ClaimRepository) AssignMultipleClaims(ids []string, agent string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	assigned := 0
	for _, c := range r.claims {
		if _, ok := wanted[c.ID]; !ok {
			continue
		}
		c.AssignedTo = agent
		r.appendHistory(c, "Reasignado a "+agent, "Asignación masiva", "Asignación")
		assigned++
	}
	return assigned
}

func (r *ClaimRepository) find(id string) *models.Claim {
	for _, c := range r.claims {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (r *ClaimRepository) appendHistory(c *models.Claim, action, comment, area string) {
	now := r.now()
	c.History = append(c.History, models.HistoryEntry{
		ID:      uuid.New().String(),
		Date:    now,
		Action:  action,
		User:    r.author(),
		Comment: comment,
		Area:    area,
	})
	c.UpdatedAt = now
}

// touch refreshes UpdatedAt and stamps ResolvedAt the first time the claim is closed
func (r *ClaimRepository) touch(c *models.Claim) {
	now := r.now()
	c.UpdatedAt = now
	if c.IsClosed() && c.ResolvedAt == nil {
		c.ResolvedAt = &now
	}
}

func (r *ClaimRepository) author() string {
	if r.actor == nil {
		return models.SystemActor
	}
	if u := r.actor.CurrentUser(); u != nil && u.Name != "" {
		return u.Name
	}
	return models.SystemActor
}

// apply merges upd into c, then clears dependent fields whose parent changed
// and no longer admits them: subReason under reason, organization under (country, claimType).
func (r *ClaimRepository) apply(c *models.Claim, upd models.ClaimUpdate) {
	oldReason := c.Reason
	oldCountry, oldType := c.Country, c.ClaimType

	setString(&c.Organization, upd.Organization)
	setString(&c.SubReason, upd.SubReason)
	setString(&c.EmailSubject, upd.EmailSubject)
	setString(&c.OrganizationClaimNumber, upd.OrganizationClaimNumber)
	setString(&c.CustomerClaimDetail, upd.CustomerClaimDetail)
	setString(&c.InformationRequest, upd.InformationRequest)
	setString(&c.ClaimantName, upd.ClaimantName)
	setString(&c.IdentityDocument, upd.IdentityDocument)
	setString(&c.Email, upd.Email)
	setString(&c.Phone, upd.Phone)
	setString(&c.PNR, upd.PNR)
	setString(&c.OutboundFlightNumber, upd.OutboundFlightNumber)
	setString(&c.OutboundRoute, upd.OutboundRoute)
	setString(&c.ReturnFlightNumber, upd.ReturnFlightNumber)
	setString(&c.ReturnRoute, upd.ReturnRoute)
	setString(&c.AssignedTo, upd.AssignedTo)
	setString(&c.OtherEscalationArea, upd.OtherEscalationArea)
	setString(&c.TransferAmount, upd.TransferAmount)
	setString(&c.TransferCustomCurrency, upd.TransferCustomCurrency)
	setString(&c.GCAmount, upd.GCAmount)
	setString(&c.GCCustomCurrency, upd.GCCustomCurrency)

	if upd.Country != nil {
		c.Country = *upd.Country
	}
	if upd.ClaimType != nil {
		c.ClaimType = *upd.ClaimType
	}
	if upd.Reason != nil {
		c.Reason = *upd.Reason
	}
	if upd.InitialDate != nil {
		c.InitialDate = *upd.InitialDate
	}
	if upd.OutboundFlightDate != nil {
		c.OutboundFlightDate = *upd.OutboundFlightDate
	}
	if upd.OutboundOperator != nil {
		c.OutboundOperator = *upd.OutboundOperator
	}
	if upd.ReturnFlightDate != nil {
		c.ReturnFlightDate = *upd.ReturnFlightDate
	}
	if upd.ReturnOperator != nil {
		c.ReturnOperator = *upd.ReturnOperator
	}
	if upd.AffectedFlight != nil {
		c.AffectedFlight = *upd.AffectedFlight
	}
	if upd.Status != nil {
		c.Status = *upd.Status
	}
	if upd.Priority != nil {
		c.Priority = *upd.Priority
	}
	if upd.EscalatedAreas != nil {
		c.EscalatedAreas = append([]string(nil), (*upd.EscalatedAreas)...)
	}
	if upd.LawyerInfoRequested != nil {
		c.LawyerInfoRequested = *upd.LawyerInfoRequested
	}
	if upd.LawyerPaymentSentence != nil {
		c.LawyerPaymentSentence = *upd.LawyerPaymentSentence
	}
	if upd.LawyerPaymentAgreement != nil {
		c.LawyerPaymentAgreement = *upd.LawyerPaymentAgreement
	}
	if upd.FinalStatus != nil {
		c.FinalStatus = *upd.FinalStatus
	}
	if upd.ClosureReason != nil {
		c.ClosureReason = *upd.ClosureReason
	}
	if upd.WasCompensated != nil {
		c.WasCompensated = *upd.WasCompensated
	}
	if upd.PaymentType != nil {
		c.PaymentType = *upd.PaymentType
	}
	if upd.TransferCurrency != nil {
		c.TransferCurrency = *upd.TransferCurrency
	}
	if upd.GCCurrency != nil {
		c.GCCurrency = *upd.GCCurrency
	}
	if r.catalog == nil {
		return
	}
	if c.Reason != oldReason && c.SubReason != "" && !r.catalog.HasSubReason(c.Reason, c.SubReason) {
		c.SubReason = ""
	}
	if (c.Country != oldCountry || c.ClaimType != oldType) && c.Organization != "" &&
		!r.catalog.HasOrganization(c.Country, c.ClaimType, c.Organization) {
		c.Organization = ""
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
