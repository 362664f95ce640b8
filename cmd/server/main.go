package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/vidyapath/planner-api/internal/config"
	"github.com/vidyapath/planner-api/internal/database"
	"github.com/vidyapath/planner-api/internal/handlers"
	"github.com/vidyapath/planner-api/internal/middleware"
	"github.com/vidyapath/planner-api/internal/repository"
	"github.com/vidyapath/planner-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	sessionRepo := repository.NewStudySessionRepository(db)
	marketRepo := repository.NewMarketItemRepository(db)
	articleRepo := repository.NewArticleRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg.JWTSecret)
	plannerService := services.NewPlannerService(taskRepo)
	statsService := services.NewStatsService(sessionRepo)
	marketService := services.NewMarketService(marketRepo, userRepo)
	articleService := services.NewArticleService(articleRepo)

	var aiService *services.AIService
	if cfg.OpenAIAPIKey != "" {
		aiService = services.NewAIService(cfg.OpenAIAPIKey)
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	plannerHandler := handlers.NewPlannerHandler(plannerService, statsService)
	sessionHandler := handlers.NewSessionHandler(statsService)
	studyHandler := handlers.NewStudyHandler(aiService)
	marketHandler := handlers.NewMarketHandler(marketService)
	articleHandler := handlers.NewArticleHandler(articleService)

	// Initialize Gin router
	r := gin.Default()

	// CORS for the browser client
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.CORSOrigin}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "x-auth-token")
	r.Use(cors.New(corsConfig))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Study Planner API is running",
		})
	})

	requireAuth := middleware.RequireAuth(cfg.JWTSecret)
	requireTaskOwner := middleware.RequireTaskOwner(plannerService)

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/user", requireAuth, authHandler.GetCurrentUser)
		}

		// Planner routes (protected)
		planner := api.Group("/planner")
		planner.Use(requireAuth)
		{
			planner.GET("", plannerHandler.ListTasks)
			planner.POST("", plannerHandler.CreateTask)
			planner.DELETE("", plannerHandler.DeleteAllTasks)
			planner.GET("/matrix", plannerHandler.GetMatrix)
			planner.GET("/stats", plannerHandler.GetStats)
			planner.POST("/habit/toggle", plannerHandler.ToggleHabit)
			planner.PUT("/:id", requireTaskOwner, plannerHandler.UpdateTask)
			planner.DELETE("/:id", requireTaskOwner, plannerHandler.DeleteTask)
		}

		// Focus timer routes (protected)
		timer := api.Group("/timer")
		timer.Use(requireAuth)
		{
			timer.POST("/save", sessionHandler.SaveSession)
			timer.GET("/sessions", sessionHandler.ListSessions)
		}

		// Marketplace routes (browsing is public)
		market := api.Group("/market")
		{
			market.GET("", marketHandler.ListItems)
			market.POST("", requireAuth, marketHandler.CreateItem)
			market.DELETE("/:id", requireAuth, marketHandler.DeleteItem)
		}

		// Peer article routes (public)
		articles := api.Group("/articles")
		{
			articles.GET("", articleHandler.ListArticles)
			articles.POST("", articleHandler.CreateArticle)
		}

		// Study tool routes (protected)
		study := api.Group("/study")
		study.Use(requireAuth)
		{
			study.POST("/summarize", studyHandler.Summarize)
			study.POST("/quiz", studyHandler.GenerateQuiz)
		}
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
