package service

import (
	"claimdesk/models"
	"claimdesk/repository"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const testPassword = "password123"

var testSecret = []byte("test-secret")

type testEnv struct {
	users    *repository.UserRepository
	identity *IdentityService
	repo     *repository.ClaimRepository
	claims   *ClaimService
}

// newTestEnv wires an in-memory desk with a clock starting at start
func newTestEnv(t *testing.T, start time.Time, sessions SessionStore) *testEnv {
	t.Helper()
	users, err := repository.NewUserRepository(repository.DemoUsers(), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("NewUserRepository: %v", err)
	}
	identity := NewIdentityService(users, sessions, testSecret, time.Hour)
	catalog := models.DefaultCatalog()
	clock := stepClock(start)
	repo := repository.NewClaimRepository(catalog, identity).WithClock(clock)
	return &testEnv{
		users:    users,
		identity: identity,
		repo:     repo,
		claims:   NewClaimService(repo, identity, catalog).WithClock(clock),
	}
}

func (e *testEnv) login(t *testing.T, email string) {
	t.Helper()
	if !e.identity.Login(email, testPassword) {
		t.Fatalf("login as %s failed", email)
	}
}

func stepClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		current = current.Add(time.Second)
		return current
	}
}

func anacRequest() *models.CreateClaimRequest {
	return &models.CreateClaimRequest{
		Country:             models.CountryAR,
		ClaimType:           models.ClaimTypeOfficial,
		Organization:        "ANAC",
		EmailSubject:        "X",
		CustomerClaimDetail: "Y",
		Status:              models.StatusNew,
	}
}

// validForm is a management form that passes every rule
func validForm(c *models.Claim) models.ManagementForm {
	f := models.ManagementFormFromClaim(c)
	f.ClaimantName = "Juan Pérez"
	f.Email = "juan@example.com"
	return f
}

const (
	adminEmail      = "admin@jetsmart.com"
	supervisorEmail = "supervisor@jetsmart.com"
	analystEmail    = "analista@jetsmart.com"
)
