package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/blogem/user-management/controllers"
	"github.com/blogem/user-management/database"
	"github.com/blogem/user-management/repositories"
	"github.com/blogem/user-management/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func main() {
	// Load environment variables from .env file, if present
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	// Initialize database
	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = "user_management.db"
	}
	if err := database.InitializeDatabase(dbPath); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.CloseDB()

	// Get database connection
	db := database.GetDB()

	// Initialize repositories
	repos := repositories.NewRepositories(db)

	// Initialize services
	srvs := services.NewServices(repos)

	// Initialize controllers
	ctrl := controllers.NewControllers(srvs)

	// Set up router
	r := setupRouter(ctrl)

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("🚀 User Management starting on port %s\n", port)
	fmt.Printf("📂 Visit: http://localhost:%s/users\n", port)
	fmt.Printf("🗃️  Database: %s\n", dbPath)

	log.Fatal(http.ListenAndServe(":"+port, r))
}

// setupRouter configures all routes
func setupRouter(ctrl *controllers.Controllers) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.Compress(5))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/users", http.StatusSeeOther)
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status": "healthy", "service": "user-management"}`)
	})

	// User management routes
	r.Route("/users", func(r chi.Router) {
		r.Get("/", ctrl.Users.Index)
		r.Post("/", ctrl.Users.Create)
		r.Get("/active", ctrl.Users.ListActive)
		r.Get("/inactive", ctrl.Users.ListInactive)
		r.Get("/new", ctrl.Users.New)
		r.Get("/{id}", ctrl.Users.View)
		r.Post("/{id}", ctrl.Users.Update)
		r.Get("/{id}/edit", ctrl.Users.Edit)
		r.Post("/{id}/delete", ctrl.Users.Delete)
	})

	// Audit log routes
	r.Route("/logs", func(r chi.Router) {
		r.Get("/", ctrl.Logs.Index)
		r.Get("/user/{id}", ctrl.Logs.ForUser)
		r.Get("/{id}", ctrl.Logs.View)
		r.Post("/{id}/delete", ctrl.Logs.Delete)
	})

	return r
}
