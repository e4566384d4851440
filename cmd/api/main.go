package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"postpilot-api/internal/api/handlers"
	"postpilot-api/internal/config"
	"postpilot-api/internal/database"
	"postpilot-api/internal/llm"
	"postpilot-api/internal/middleware"
	"postpilot-api/internal/repository"
	"postpilot-api/internal/services"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	// Initialize database connection
	db, err := database.Connect()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Get underlying *sql.DB instance for connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("Failed to get underlying *sql.DB instance:", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	topicRepo := repository.NewTopicRepository(db)
	contentRepo := repository.NewContentRepository(db)
	usageRepo := repository.NewUsageRepository(db)
	systemLogRepo := repository.NewSystemLogRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	adminTokenRepo := repository.NewAdminTokenRepository(db)

	// Initialize services
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable is required")
	}
	if os.Getenv("ADMIN_PASSWORD") == "" {
		log.Fatal("ADMIN_PASSWORD environment variable is required")
	}

	logService := services.NewSystemLogService(systemLogRepo)
	authService := services.NewAuthService(userRepo, jwtSecret)
	userService := services.NewUserService(userRepo)
	projectService := services.NewProjectService(projectRepo)
	topicService := services.NewTopicService(topicRepo)
	contentService := services.NewContentService(contentRepo)
	usageService := services.NewUsageService(usageRepo, config.NewUsageLimits())
	feedbackService := services.NewFeedbackService(feedbackRepo, logService)
	adminTokenService := services.NewAdminTokenService(adminTokenRepo)

	llmClient := llm.NewClient(config.NewLLMConfig())
	aiService := services.NewAIService(llmClient, logService)

	var cacheService services.CacheService
	if redisCache, err := services.NewRedisCacheService(config.NewCacheConfig()); err != nil {
		log.Printf("Warning: Redis unavailable, topic caching disabled: %v", err)
	} else {
		cacheService = redisCache
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, logService)
	projectHandler := handlers.NewProjectHandler(projectService)
	topicHandler := handlers.NewTopicHandler(topicService, projectService, usageService, contentService, aiService, cacheService)
	contentHandler := handlers.NewContentHandler(contentService)
	usageHandler := handlers.NewUsageHandler(usageService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)
	adminHandler := handlers.NewAdminHandler(adminTokenService, logService, feedbackService, userService)

	// Initialize router
	router := mux.NewRouter()
	router.Use(middleware.LoggingMiddleware)

	// Public routes
	router.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	router.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	router.HandleFunc("/auth/forgot-password", authHandler.ForgotPassword).Methods("POST")
	router.HandleFunc("/admin/login", adminHandler.Login).Methods("POST")
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	}).Methods("GET")

	// API routes (protected)
	apiRouter := router.PathPrefix("/api/v1").Subrouter()
	apiRouter.Use(middleware.AuthMiddleware(authService))

	apiRouter.HandleFunc("/projects", projectHandler.ListProjects).Methods("GET")
	apiRouter.HandleFunc("/projects", projectHandler.CreateProject).Methods("POST")
	apiRouter.HandleFunc("/projects/{id}", projectHandler.DeleteProject).Methods("DELETE")

	apiRouter.HandleFunc("/topics", topicHandler.ListTopics).Methods("GET")
	apiRouter.HandleFunc("/topics", topicHandler.ResearchTopics).Methods("POST")
	apiRouter.HandleFunc("/topics/{id}", topicHandler.UpdateTopic).Methods("PATCH")
	apiRouter.HandleFunc("/topics/{id}", topicHandler.DeleteTopic).Methods("DELETE")

	apiRouter.HandleFunc("/posts", contentHandler.ListPosts).Methods("GET")
	apiRouter.HandleFunc("/posts/{id}", contentHandler.GetPost).Methods("GET")

	apiRouter.HandleFunc("/usage", usageHandler.GetUsageStats).Methods("GET")
	apiRouter.HandleFunc("/user/niche", authHandler.UpdateNiche).Methods("PATCH")
	apiRouter.HandleFunc("/feedback", feedbackHandler.Submit).Methods("POST")

	// Admin routes (cookie protected)
	adminRouter := router.PathPrefix("/admin/v1").Subrouter()
	adminRouter.Use(middleware.AdminMiddleware(adminTokenService))

	adminRouter.HandleFunc("/logs", adminHandler.GetLogs).Methods("GET")
	adminRouter.HandleFunc("/logs", adminHandler.DeleteLogs).Methods("DELETE")
	adminRouter.HandleFunc("/users", adminHandler.GetUsers).Methods("GET")
	adminRouter.HandleFunc("/feedback", adminHandler.GetFeedback).Methods("GET")
	adminRouter.HandleFunc("/feedback", adminHandler.UpdateFeedback).Methods("PATCH")
	adminRouter.HandleFunc("/feedback", adminHandler.DeleteFeedback).Methods("DELETE")

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins: []string{getFrontendOrigin()},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"X-CSRF-Token",
		},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	})

	// Create server with timeouts
	srv := &http.Server{
		Handler:      corsMiddleware.Handler(router),
		Addr:         ":" + getPort(),
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	// Start server
	log.Printf("Server starting on port %s...", getPort())
	log.Fatal(srv.ListenAndServe())
}

func getPort() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "5050"
	}
	return port
}

func getFrontendOrigin() string {
	origin := os.Getenv("FRONTEND_ORIGIN")
	if origin == "" {
		origin = "http://localhost:3000"
	}
	return origin
}
