package main

import (
	"context"
	"log"
	"os"
	"time"

	"nutriplan/internal/admin"
	"nutriplan/internal/auth"
	"nutriplan/internal/cart"
	"nutriplan/internal/catalog"
	"nutriplan/internal/creations"
	"nutriplan/internal/db"
	"nutriplan/internal/diet"
	"nutriplan/internal/export"
	"nutriplan/internal/logger"
	"nutriplan/internal/middleware"
	"nutriplan/internal/patients"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	appLog, err := logger.New(os.Getenv("APP_ENV"))
	if err != nil {
		log.Fatal("❌ Logger init failed:", err)
	}
	defer appLog.Sync()

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── EXPORT (optional) ─────────────────────────
	var exporter creations.Exporter
	if export.Enabled() {
		r2Client, err := export.NewR2Client(context.Background())
		if err != nil {
			log.Fatal("❌ R2 init failed:", err)
		}
		exporter = r2Client
		appLog.Info("deliverable export enabled")
	} else {
		appLog.Info("deliverable export disabled, no R2 bucket configured")
	}

	// ───────────────────────── AUTH ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	authService := auth.NewService(userRepo)
	authHandler := auth.NewHandler(authService)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// ───────────────────────── CORE REPOS ─────────────────────────
	catalogRepo := catalog.NewPostgresRepository(pgDB)
	patientRepo := patients.NewPostgresRepository(pgDB)
	creationRepo := creations.NewPostgresRepository(pgDB)

	if err := catalogRepo.SeedDefaults(context.Background(), catalog.DefaultCatalog()); err != nil {
		log.Fatal("❌ Catalog seed failed:", err)
	}

	// ───────────────────────── SERVICES (ORDER MATTERS) ─────────────────────────
	patientService := patients.NewService(patientRepo)
	creationService := creations.NewService(creationRepo, exporter, appLog)

	registry := diet.NewRegistry()
	cartService := cart.NewService(registry, patientService)
	adminService := admin.NewService(pgDB, appLog)

	// ───────────────────────── HANDLERS ─────────────────────────
	catalogHandler := catalog.NewHandler(catalogRepo)
	patientHandler := patients.NewHandler(patientService)
	creationHandler := creations.NewHandler(creationService)
	dietHandler := diet.NewHandler(registry, catalogRepo, patientService)
	cartHandler := cart.NewHandler(cartService, registry)
	adminHandler := admin.NewHandler(adminService)

	// ───────────────────────── CATALOG ROUTES ─────────────────────────
	foods := r.Group("/foods")
	foods.Use(middleware.AuthMiddleware())
	{
		foods.GET("", catalogHandler.ListFoods)
		foods.POST("", catalogHandler.CreateFood)
	}

	// ───────────────────────── PATIENT ROUTES ─────────────────────────
	patientsGroup := r.Group("/patients")
	patientsGroup.Use(middleware.AuthMiddleware())
	{
		patientsGroup.POST("", patientHandler.Create)
		patientsGroup.GET("", patientHandler.List)
		patientsGroup.GET("/:id", patientHandler.Get)
	}

	// ───────────────────────── DIET ROUTES ─────────────────────────
	dietGroup := r.Group("/diet/sessions")
	dietGroup.Use(middleware.AuthMiddleware())
	{
		dietGroup.POST("", dietHandler.CreateSession)
		dietGroup.GET("/:id", dietHandler.GetSession)
		dietGroup.POST("/:id/favorites", dietHandler.ToggleFavorite)
		dietGroup.POST("/:id/removals", dietHandler.RemoveItem)
		dietGroup.POST("/:id/restore", dietHandler.RestoreItem)
		dietGroup.POST("/:id/items", dietHandler.AddManualItem)
		dietGroup.POST("/:id/groups", dietHandler.CreateGroup)
		dietGroup.DELETE("/:id/groups/:name", dietHandler.DeleteGroup)
		dietGroup.PATCH("/:id/constraints", dietHandler.SetConstraint)
		dietGroup.POST("/:id/constraints", dietHandler.AddCustomConstraint)
		dietGroup.PATCH("/:id/config", dietHandler.UpdateConfig)
		dietGroup.POST("/:id/patient", dietHandler.LinkPatient)
		dietGroup.POST("/:id/reset", dietHandler.ResetSession)
		dietGroup.GET("/:id/snapshot", dietHandler.GetSnapshot)
		dietGroup.POST("/:id/import", dietHandler.ImportDocument)
	}

	// ───────────────────────── CART ROUTES ─────────────────────────
	cartGroup := r.Group("/cart/sessions")
	cartGroup.Use(middleware.AuthMiddleware())
	{
		cartGroup.GET("/:id/totals", cartHandler.GetTotals)
		cartGroup.PATCH("/:id/items", cartHandler.UpdateQuantity)
		cartGroup.GET("/:id/suggestion", cartHandler.GetSuggestion)
	}

	// ───────────────────────── CREATION ROUTES ─────────────────────────
	creationsGroup := r.Group("/creations")
	creationsGroup.Use(middleware.AuthMiddleware())
	{
		creationsGroup.POST("", creationHandler.Save)
		creationsGroup.GET("", creationHandler.List)
		creationsGroup.GET("/:id", creationHandler.Get)
	}

	// ───────────────────────── ADMIN ROUTES ─────────────────────────
	adminGroup := r.Group("/admin")
	adminGroup.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleAdmin),
	)
	{
		adminGroup.GET("/overview", adminHandler.GetOverview)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}
