package routes

import (
	"claimdesk/handler"
	"claimdesk/middleware"
	"claimdesk/models"
	"claimdesk/service"
	"net/http"

	"github.com/gorilla/mux"
)

// SetupRoutes configures all API routes
func SetupRoutes(
	identityService *service.IdentityService,
	claimService *service.ClaimService,
	exportService *service.ExportService,
	userService *service.UserService,
) *mux.Router {
	router := mux.NewRouter()

	// Initialize handlers
	sessionHandler := handler.NewSessionHandler(identityService)
	claimHandler := handler.NewClaimHandler(claimService)
	exportHandler := handler.NewExportHandler(claimService, exportService)
	adminHandler := handler.NewAdminHandler(userService)

	auth := middleware.NewSessionAuth(identityService)
	managers := middleware.RequireRole(models.ManagerRoles...)
	admins := middleware.RequireRole(models.AdminRoles...)

	// API v1 routes
	apiV1 := router.PathPrefix("/api/v1").Subrouter()

	// Session routes
	session := apiV1.PathPrefix("/session").Subrouter()
	// POST /api/v1/session/login - Email+password login; returns a token bound to the new session
	session.HandleFunc("/login", sessionHandler.Login).Methods("POST")
	session.Handle("/logout", auth.RequireSession(http.HandlerFunc(sessionHandler.Logout))).Methods("POST")
	session.Handle("/me", auth.RequireSession(http.HandlerFunc(sessionHandler.Me))).Methods("GET")

	// Claim routes (all require a session; fixed paths before /{id})
	claims := apiV1.PathPrefix("/claims").Subrouter()
	claims.Use(auth.RequireSession)

	claims.HandleFunc("", claimHandler.ListClaims).Methods("GET")
	claims.Handle("", managers(http.HandlerFunc(claimHandler.CreateClaim))).Methods("POST")
	claims.Handle("/next-number", managers(http.HandlerFunc(claimHandler.NextNumber))).Methods("GET")
	// GET /api/v1/claims/export - CSV of the filtered, sorted view
	claims.HandleFunc("/export", exportHandler.ExportClaims).Methods("GET")
	// POST /api/v1/claims/assign - Mass assignment to one agent
	claims.Handle("/assign", managers(http.HandlerFunc(claimHandler.AssignClaims))).Methods("POST")

	claims.HandleFunc("/{id}", claimHandler.GetClaim).Methods("GET")
	claims.Handle("/{id}", admins(http.HandlerFunc(claimHandler.DeleteClaim))).Methods("DELETE")
	// POST opens management (new -> en-gestion), PUT saves the management form
	claims.HandleFunc("/{id}/manage", claimHandler.BeginManagement).Methods("POST")
	claims.HandleFunc("/{id}/manage", claimHandler.SaveManagement).Methods("PUT")
	claims.HandleFunc("/{id}/comments", claimHandler.AddComment).Methods("POST")

	apiV1.Handle("/dashboard", auth.RequireSession(http.HandlerFunc(claimHandler.Dashboard))).Methods("GET")
	apiV1.Handle("/catalog", auth.RequireSession(http.HandlerFunc(claimHandler.Catalog))).Methods("GET")

	// Admin routes
	admin := apiV1.PathPrefix("/admin").Subrouter()
	admin.Use(auth.RequireSession, admins)
	admin.HandleFunc("/users", adminHandler.ListUsers).Methods("GET")
	admin.HandleFunc("/users/{id}/active", adminHandler.SetUserActive).Methods("PUT")

	// Health check
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	return router
}
