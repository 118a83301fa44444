package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/northavenue/dealership-backend/internal/modules/auth"
	"github.com/northavenue/dealership-backend/internal/modules/customer"
	"github.com/northavenue/dealership-backend/internal/modules/parts"
	"github.com/northavenue/dealership-backend/internal/modules/report"
	"github.com/northavenue/dealership-backend/internal/modules/sale"
	"github.com/northavenue/dealership-backend/internal/modules/user"
	"github.com/northavenue/dealership-backend/internal/modules/vehicle"
	"github.com/northavenue/dealership-backend/internal/modules/vendor"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}

	db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Successfully connected to the database!")

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Phase 1: Identity & Accounts ────────────────────────
	userRepo := user.NewPostgresRepository(db)
	userService := user.NewService(userRepo)

	authService := auth.NewService(userRepo, secret)
	router.Use(auth.Authenticate(authService))

	auth.NewHandler(authService).RegisterRoutes(router)
	user.NewHandler(userService, auth.RequireRole(user.RoleOwner)).RegisterRoutes(router)

	// ── Phase 2: Customers & Vendors ────────────────────────
	customerRepo := customer.NewPostgresRepository(db)
	customerService := customer.NewService(customerRepo)
	customer.NewHandler(customerService).RegisterRoutes(router)

	vendorRepo := vendor.NewPostgresRepository(db)
	vendorService := vendor.NewService(vendorRepo)
	vendor.NewHandler(vendorService).RegisterRoutes(router)

	// ── Phase 3: Vehicle Inventory ──────────────────────────
	vehicleRepo := vehicle.NewPostgresRepository(db)
	vehicleService := vehicle.NewService(vehicleRepo, customerRepo)
	vehicle.NewHandler(vehicleService).RegisterRoutes(router)

	partsRepo := parts.NewPostgresRepository(db)
	partsService := parts.NewService(partsRepo)
	parts.NewHandler(partsService).RegisterRoutes(router)

	// ── Phase 4: Sales ──────────────────────────────────────
	saleRepo := sale.NewPostgresRepository(db)
	saleService := sale.NewService(saleRepo, customerRepo)
	sale.NewHandler(saleService).RegisterRoutes(router)

	// ── Phase 5: Reports ────────────────────────────────────
	reportRepo := report.NewPostgresRepository(db)
	reportService := report.NewService(reportRepo)
	report.NewHandler(reportService).RegisterRoutes(router)

	// ── Start Server ─────────────────────────────────────────
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("Dealership API server starting on :%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
