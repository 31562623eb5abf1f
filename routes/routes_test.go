package routes

import (
	"bytes"
	"claimdesk/models"
	"claimdesk/repository"
	"claimdesk/service"
	"claimdesk/utils"
	"encoding/csv"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type testServer struct {
	*httptest.Server
	token string
}

func newTestServer(t *testing.T, seed bool) *testServer {
	t.Helper()
	catalog := models.DefaultCatalog()
	users, err := repository.NewUserRepository(repository.DemoUsers(), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("NewUserRepository: %v", err)
	}
	identity := service.NewIdentityService(users, nil, []byte("routes-test"), time.Hour)
	claimRepo := repository.NewClaimRepository(catalog, identity)
	if seed {
		repository.SeedMockClaims(claimRepo)
	}
	exportService, err := service.NewExportService("UTC")
	if err != nil {
		t.Fatalf("NewExportService: %v", err)
	}
	router := SetupRoutes(
		identity,
		service.NewClaimService(claimRepo, identity, catalog),
		exportService,
		service.NewUserService(users, identity),
	)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return &testServer{Server: srv}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, s.URL+path, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func (s *testServer) login(t *testing.T, email string) {
	t.Helper()
	s.token = ""
	resp := s.do(t, "POST", "/api/v1/session/login", models.LoginRequest{Email: email, Password: "password123"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login %s: status %d", email, resp.StatusCode)
	}
	var out models.LoginResponse
	decode(t, resp, &out)
	s.token = out.Token
}

func decode(t *testing.T, resp *http.Response, dst interface{}) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		t.Fatalf("decode: %v", err)
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, false)
	if resp := srv.do(t, "GET", "/health", nil); resp.StatusCode != http.StatusOK {
		t.Errorf("health status = %d", resp.StatusCode)
	}
}

func TestLoginFailureIsUniform(t *testing.T) {
	srv := newTestServer(t, false)
	for _, req := range []models.LoginRequest{
		{Email: "admin@jetsmart.com", Password: "bad"},
		{Email: "ghost@jetsmart.com", Password: "password123"},
	} {
		resp := srv.do(t, "POST", "/api/v1/session/login", req)
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("%s: status %d, want 401", req.Email, resp.StatusCode)
		}
		var e models.ErrorResponse
		decode(t, resp, &e)
		if e.Message != "Invalid credentials" {
			t.Errorf("%s: message %q", req.Email, e.Message)
		}
	}
}

func TestClaimsRequireSession(t *testing.T) {
	srv := newTestServer(t, true)
	if resp := srv.do(t, "GET", "/api/v1/claims", nil); resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("no token: status %d", resp.StatusCode)
	}
	srv.token = "not-a-token"
	if resp := srv.do(t, "GET", "/api/v1/claims", nil); resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("bad token: status %d", resp.StatusCode)
	}
}

func TestClaimLifecycleOverHTTP(t *testing.T) {
	srv := newTestServer(t, false)
	srv.login(t, "supervisor@jetsmart.com")

	var next models.NextNumberResponse
	decode(t, srv.do(t, "GET", "/api/v1/claims/next-number", nil), &next)

	resp := srv.do(t, "POST", "/api/v1/claims", models.CreateClaimRequest{
		Country:             models.CountryAR,
		ClaimType:           models.ClaimTypeOfficial,
		Organization:        "ANAC",
		EmailSubject:        "X",
		CustomerClaimDetail: "Y",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d", resp.StatusCode)
	}
	var created models.Claim
	decode(t, resp, &created)
	if created.ClaimNumber != next.ClaimNumber {
		t.Errorf("assigned %s, preview was %s", created.ClaimNumber, next.ClaimNumber)
	}

	resp = srv.do(t, "POST", "/api/v1/claims/"+created.ID+"/manage", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("begin management status = %d", resp.StatusCode)
	}
	var opened struct {
		Claim models.Claim          `json:"claim"`
		Form  models.ManagementForm `json:"form"`
	}
	decode(t, resp, &opened)
	if opened.Claim.Status != models.StatusEnGestion {
		t.Errorf("status after open = %s", opened.Claim.Status)
	}

	form := opened.Form
	form.ClaimantName = "Ana"
	form.Email = "ana@example.com"
	form.Status = models.StatusEscalado
	resp = srv.do(t, "PUT", "/api/v1/claims/"+created.ID+"/manage", form)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("invalid save status = %d, want 400", resp.StatusCode)
	}
	var verr models.ErrorResponse
	decode(t, resp, &verr)
	if verr.Field != "escalatedAreas" {
		t.Errorf("validation field = %q", verr.Field)
	}

	form.EscalatedAreas = []string{"Finanzas"}
	resp = srv.do(t, "PUT", "/api/v1/claims/"+created.ID+"/manage", form)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("save status = %d", resp.StatusCode)
	}
	var saved models.Claim
	decode(t, resp, &saved)
	if saved.Status != models.StatusEscalado || saved.ClaimantName != "Ana" {
		t.Errorf("saved claim = %+v", saved)
	}

	resp = srv.do(t, "DELETE", "/api/v1/claims/"+created.ID, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("supervisor delete status = %d, want 403", resp.StatusCode)
	}
}

func TestAnalystCannotCreateOrAssign(t *testing.T) {
	srv := newTestServer(t, true)
	srv.login(t, "analista@jetsmart.com")

	if resp := srv.do(t, "POST", "/api/v1/claims", models.CreateClaimRequest{}); resp.StatusCode != http.StatusForbidden {
		t.Errorf("create status = %d, want 403", resp.StatusCode)
	}
	if resp := srv.do(t, "POST", "/api/v1/claims/assign", models.AssignRequest{ClaimIDs: []string{"x"}, Agent: "Carlos Lopez"}); resp.StatusCode != http.StatusForbidden {
		t.Errorf("assign status = %d, want 403", resp.StatusCode)
	}

	var list models.ClaimListResponse
	decode(t, srv.do(t, "GET", "/api/v1/claims", nil), &list)
	for _, c := range list.Claims {
		if c.AssignedTo != "Carlos Lopez" {
			t.Errorf("analyst sees claim assigned to %q", c.AssignedTo)
		}
	}
}

func TestListFiltersFromQuery(t *testing.T) {
	srv := newTestServer(t, true)
	srv.login(t, "admin@jetsmart.com")

	var list models.ClaimListResponse
	decode(t, srv.do(t, "GET", "/api/v1/claims?assignedTo=sin-asignar&sort=claimNumber&order=asc", nil), &list)
	if list.Total == 0 {
		t.Fatal("no unassigned seed claims")
	}
	for i, c := range list.Claims {
		if c.AssignedTo != "" {
			t.Errorf("assigned claim %s in unassigned view", c.ClaimNumber)
		}
		if i > 0 && list.Claims[i-1].ClaimNumber > c.ClaimNumber {
			t.Error("not sorted by claim number")
		}
	}

	if resp := srv.do(t, "GET", "/api/v1/claims?dateFrom=yesterday", nil); resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bad date status = %d", resp.StatusCode)
	}
}

func TestExportEndpoint(t *testing.T) {
	srv := newTestServer(t, true)
	srv.login(t, "admin@jetsmart.com")

	resp := srv.do(t, "GET", "/api/v1/claims/export", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("export status = %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if got := resp.Header.Get("X-Content-SHA256"); got != utils.ExportChecksum(body) {
		t.Errorf("checksum header %s does not match body", got)
	}
	disposition := resp.Header.Get("Content-Disposition")
	if !strings.Contains(disposition, "reclamos_") || !strings.HasSuffix(disposition, `.csv"`) {
		t.Errorf("Content-Disposition = %s", disposition)
	}
	records, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
	if err != nil {
		t.Fatalf("csv: %v", err)
	}
	var list models.ClaimListResponse
	decode(t, srv.do(t, "GET", "/api/v1/claims", nil), &list)
	if len(records)-1 != list.Total {
		t.Errorf("export rows = %d, list total = %d", len(records)-1, list.Total)
	}
}

func TestAdminUsers(t *testing.T) {
	srv := newTestServer(t, false)
	srv.login(t, "supervisor@jetsmart.com")
	if resp := srv.do(t, "GET", "/api/v1/admin/users", nil); resp.StatusCode != http.StatusForbidden {
		t.Errorf("supervisor status = %d, want 403", resp.StatusCode)
	}

	srv.login(t, "admin@jetsmart.com")
	resp := srv.do(t, "PUT", "/api/v1/admin/users/3/active", models.SetActiveRequest{IsActive: false})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("deactivate status = %d", resp.StatusCode)
	}
	if resp := srv.do(t, "PUT", "/api/v1/admin/users/1/active", models.SetActiveRequest{IsActive: false}); resp.StatusCode != http.StatusBadRequest {
		t.Errorf("self-deactivation status = %d, want 400", resp.StatusCode)
	}

	srv.token = ""
	resp = srv.do(t, "POST", "/api/v1/session/login", models.LoginRequest{Email: "analista@jetsmart.com", Password: "password123"})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("deactivated login status = %d, want 401", resp.StatusCode)
	}
}
