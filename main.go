package main

import (
	"claimdesk/config"
	"claimdesk/repository"
	"claimdesk/routes"
	"claimdesk/schema"
	"claimdesk/service"
	"claimdesk/worker"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	_ "modernc.org/sqlite"
)

func main() {
	var envFile, addr string
	var noSeed bool
	flagSet := pflag.NewFlagSet("claimdesk", pflag.ExitOnError)
	flagSet.StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	flagSet.StringVar(&addr, "addr", "", "listen address (overrides SERVER_HOST/PORT)")
	flagSet.BoolVar(&noSeed, "no-seed", false, "start with an empty claim store")
	flagSet.Parse(os.Args[1:])

	// Load .env file
	if err := godotenv.Load(envFile); err != nil {
		log.Printf("Warning: %s not found, using environment variables", envFile)
	}

	// Load configuration
	cfg := config.LoadConfig()
	if noSeed {
		cfg.Claims.SeedMockClaims = false
	}
	if addr == "" {
		addr = fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	}

	catalog, err := config.LoadCatalog(cfg.Claims.CatalogFile)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	// Session store connection
	db, err := openSessionDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to open database connection: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	log.Printf("Database connection established (driver=%s)", cfg.Database.Driver)

	if err := schema.InitializeDatabase(db); err != nil {
		log.Fatalf("[SCHEMA] %v", err)
	}
	if err := schema.ValidateRequiredColumns(db, nil); err != nil {
		log.Fatalf("[SCHEMA] %v", err)
	}

	// Initialize repositories
	userRepo, err := repository.NewUserRepository(repository.DemoUsers(), cfg.Auth.BcryptCost)
	if err != nil {
		log.Fatalf("Failed to build user list: %v", err)
	}
	sessionRepo := repository.NewSessionRepository(db)
	claimRepo := repository.NewClaimRepository(catalog, nil)
	if cfg.Claims.SeedMockClaims {
		repository.SeedMockClaims(claimRepo)
	}

	// Initialize services
	identityService := service.NewIdentityService(userRepo, sessionRepo, []byte(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL)
	identityService.Restore()
	claimRepo.SetActor(identityService)

	claimService := service.NewClaimService(claimRepo, identityService, catalog)
	userService := service.NewUserService(userRepo, identityService)
	exportService, err := service.NewExportService(cfg.Export.Timezone)
	if err != nil {
		log.Fatalf("Failed to configure export: %v", err)
	}

	if cfg.Worker.SessionCheckInterval > 0 {
		sessionWorker := worker.NewSessionWorker(identityService, cfg.Worker.SessionCheckInterval)
		sessionWorker.Start()
		defer sessionWorker.Stop()
	}

	// Setup routes
	router := routes.SetupRoutes(identityService, claimService, exportService, userService)

	// Add CORS middleware
	corsHandler := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Expose-Headers", "Content-Disposition, X-Content-SHA256")
			w.Header().Set("Access-Control-Max-Age", "3600")

			// Handle preflight requests
			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}

	// Start server
	log.Printf("Server starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, corsHandler(router)))
}

// openSessionDB opens the session store for the configured driver
func openSessionDB(cfg *config.DatabaseConfig) (*sql.DB, error) {
	switch cfg.Driver {
	case "sqlite":
		return sql.Open("sqlite", cfg.SQLitePath)
	case "mysql":
		dsn := cfg.DSN
		if dsn == "" {
			// UTC for consistent timestamps
			dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
				cfg.User,
				cfg.Password,
				cfg.Host,
				cfg.Port,
				cfg.DBName,
			)
		}
		return sql.Open("mysql", dsn)
	}
	return nil, fmt.Errorf("unsupported SESSION_DB_DRIVER %q (want sqlite or mysql)", cfg.Driver)
}
