package config

import (
	"claimdesk/models"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"SESSION_DB_DRIVER", "TOKEN_TTL", "SEED_MOCK_CLAIMS", "EXPORT_TIMEZONE"} {
		t.Setenv(key, "")
	}
	cfg := LoadConfig()
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("driver = %s", cfg.Database.Driver)
	}
	if cfg.Auth.TokenTTL != 12*time.Hour {
		t.Errorf("token ttl = %v", cfg.Auth.TokenTTL)
	}
	if !cfg.Claims.SeedMockClaims {
		t.Error("seeding should default to on")
	}
	if cfg.Export.Timezone != "America/Argentina/Buenos_Aires" {
		t.Errorf("timezone = %s", cfg.Export.Timezone)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("TOKEN_TTL", "90m")
	t.Setenv("SEED_MOCK_CLAIMS", "false")
	t.Setenv("SESSION_CHECK_INTERVAL", "not-a-duration")
	cfg := LoadConfig()
	if cfg.Auth.TokenTTL != 90*time.Minute {
		t.Errorf("token ttl = %v", cfg.Auth.TokenTTL)
	}
	if cfg.Claims.SeedMockClaims {
		t.Error("SEED_MOCK_CLAIMS=false ignored")
	}
	if cfg.Worker.SessionCheckInterval != time.Minute {
		t.Errorf("bad duration should fall back, got %v", cfg.Worker.SessionCheckInterval)
	}
}

func TestParseCatalogRejectsUnknownKeys(t *testing.T) {
	cases := map[string]string{
		"country":    "organizations:\n  XX:\n    official: [ANAC]\n",
		"claim type": "organizations:\n  AR:\n    judicial: [ANAC]\n",
		"reason":     "subReasons:\n  inventado: [Algo]\n",
		"currency":   "currencies: [\"\"]\n",
		"yaml":       "agents: [unterminated\n",
	}
	for name, doc := range cases {
		if _, err := ParseCatalog([]byte(doc)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestLoadCatalogOverridesOnlyPresentTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	doc := "agents:\n  - Agente Uno\n  - Agente Dos\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	catalog, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if !catalog.IsAgent("Agente Dos") || catalog.IsAgent("Carlos Lopez") {
		t.Errorf("agents = %v", catalog.Agents)
	}
	if !catalog.HasOrganization(models.CountryAR, models.ClaimTypeOfficial, "ANAC") {
		t.Error("default organizations lost")
	}
}

func TestLoadCatalogDefaults(t *testing.T) {
	catalog, err := LoadCatalog("")
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if len(catalog.EscalationAreas) == 0 {
		t.Error("default escalation areas missing")
	}
	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
