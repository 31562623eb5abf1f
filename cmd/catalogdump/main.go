// catalogdump prints the effective lookup catalog (built-in tables plus any CATALOG_FILE
// override) as YAML, ready to be edited and fed back through CATALOG_FILE.
// Usage: go run ./cmd/catalogdump [--catalog path] [--check]
package main

import (
	"claimdesk/config"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

func main() {
	var catalogPath string
	var check bool
	flagSet := pflag.NewFlagSet("catalogdump", pflag.ExitOnError)
	flagSet.StringVar(&catalogPath, "catalog", "", "catalog override file (default: CATALOG_FILE)")
	flagSet.BoolVar(&check, "check", false, "only validate the override file")
	flagSet.Parse(os.Args[1:])

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env not found")
	}
	if catalogPath == "" {
		catalogPath = config.LoadConfig().Claims.CatalogFile
	}

	catalog, err := config.LoadCatalog(catalogPath)
	if err != nil {
		log.Fatalf("Catalog: %v", err)
	}
	if check {
		fmt.Printf("OK: %d countries, %d reasons, %d agents, %d escalation areas\n",
			len(catalog.Organizations), len(catalog.SubReasons), len(catalog.Agents), len(catalog.EscalationAreas))
		return
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(catalog); err != nil {
		log.Fatalf("Encode: %v", err)
	}
	enc.Close()
}
