package config

import (
	"claimdesk/models"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadCatalog returns the built-in lookup tables, with any table present in
// the YAML file at path replacing the default one. Empty path means defaults only.
func LoadCatalog(path string) (*models.Catalog, error) {
	catalog := models.DefaultCatalog()
	if path == "" {
		return catalog, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	override, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}

	if len(override.Organizations) > 0 {
		catalog.Organizations = override.Organizations
	}
	if len(override.SubReasons) > 0 {
		catalog.SubReasons = override.SubReasons
	}
	if len(override.Agents) > 0 {
		catalog.Agents = override.Agents
	}
	if len(override.EscalationAreas) > 0 {
		catalog.EscalationAreas = override.EscalationAreas
	}
	if len(override.Currencies) > 0 {
		catalog.Currencies = override.Currencies
	}
	if len(override.FlightOperators) > 0 {
		catalog.FlightOperators = override.FlightOperators
	}
	log.Printf("[catalog] Loaded overrides from %s", path)
	return catalog, nil
}

// ParseCatalog decodes a YAML catalog and rejects keys outside the closed enums
func ParseCatalog(data []byte) (*models.Catalog, error) {
	var c models.Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	for country, byType := range c.Organizations {
		if !country.Valid() {
			return nil, fmt.Errorf("unknown country %q", country)
		}
		for claimType := range byType {
			if !claimType.Valid() {
				return nil, fmt.Errorf("unknown claim type %q for country %s", claimType, country)
			}
		}
	}
	for reason := range c.SubReasons {
		if !reason.Valid() {
			return nil, fmt.Errorf("unknown reason %q", reason)
		}
	}
	for _, cur := range c.Currencies {
		if cur == "" {
			return nil, fmt.Errorf("empty currency code")
		}
	}
	return &c, nil
}
