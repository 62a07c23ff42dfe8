package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"reviewdb/config"
	"reviewdb/handlers"
	"reviewdb/helper"
	"reviewdb/mailer"
	"reviewdb/middleware"
	"reviewdb/policy"
	"reviewdb/repositories"
	"reviewdb/services"
)

func main() {
	cfg := config.Load()
	logger := newLogger(cfg.App.LogLevel)

	// Initialize database
	db := config.InitDB(cfg)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	genreRepo := repositories.NewGenreRepository(db)
	titleRepo := repositories.NewTitleRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	commentRepo := repositories.NewCommentRepository(db)

	// Initialize services
	smtpMailer := mailer.NewSMTPMailer(&cfg.Email, logger)
	authService := services.NewAuthService(userRepo, smtpMailer, &cfg.Security, logger)
	userService := services.NewUserService(userRepo, &cfg.Security)
	categoryService := services.NewCategoryService(categoryRepo)
	genreService := services.NewGenreService(genreRepo)
	titleService := services.NewTitleService(titleRepo, categoryRepo, genreRepo)
	reviewService := services.NewReviewService(reviewRepo, titleRepo)
	commentService := services.NewCommentService(commentRepo, reviewRepo)

	// Initialize handlers
	httpHelper := helper.NewHTTPHelper()
	authHandler := handlers.NewAuthHandler(authService, httpHelper)
	userHandler := handlers.NewUserHandler(userService, httpHelper)
	categoryHandler := handlers.NewCategoryHandler(categoryService, httpHelper)
	genreHandler := handlers.NewGenreHandler(genreService, httpHelper)
	titleHandler := handlers.NewTitleHandler(titleService, httpHelper)
	reviewHandler := handlers.NewReviewHandler(reviewService, httpHelper)
	commentHandler := handlers.NewCommentHandler(commentService, httpHelper)

	// Setup router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check and metrics
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	requireAuth := middleware.RequireAuth(cfg.Security.JWTSecret)
	manageCatalog := middleware.RequireOperation(policy.OpManageCatalog)
	manageUsers := middleware.RequireOperation(policy.OpManageUsers)
	writeContent := middleware.RequireOperation(policy.OpWriteContent)

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/token", authHandler.Token)
		}

		// Categories: open reads, admin writes
		categories := v1.Group("/categories")
		{
			categories.GET("", categoryHandler.GetCategories)
			categories.POST("", requireAuth, manageCatalog, categoryHandler.CreateCategory)
			categories.DELETE("/:slug", requireAuth, manageCatalog, categoryHandler.DeleteCategory)
		}

		// Genres: open reads, admin writes
		genres := v1.Group("/genres")
		{
			genres.GET("", genreHandler.GetGenres)
			genres.POST("", requireAuth, manageCatalog, genreHandler.CreateGenre)
			genres.DELETE("/:slug", requireAuth, manageCatalog, genreHandler.DeleteGenre)
		}

		// Titles with nested reviews and comments
		titles := v1.Group("/titles")
		{
			titles.GET("", titleHandler.GetTitles)
			titles.GET("/:id", titleHandler.GetTitle)
			titles.POST("", requireAuth, manageCatalog, titleHandler.CreateTitle)
			titles.PATCH("/:id", requireAuth, manageCatalog, titleHandler.UpdateTitle)
			titles.DELETE("/:id", requireAuth, manageCatalog, titleHandler.DeleteTitle)

			titles.GET("/:id/reviews", reviewHandler.GetReviews)
			titles.GET("/:id/reviews/:review_id", reviewHandler.GetReview)
			titles.POST("/:id/reviews", requireAuth, writeContent, reviewHandler.CreateReview)
			titles.PATCH("/:id/reviews/:review_id", requireAuth, writeContent, reviewHandler.UpdateReview)
			titles.DELETE("/:id/reviews/:review_id", requireAuth, writeContent, reviewHandler.DeleteReview)

			titles.GET("/:id/reviews/:review_id/comments", commentHandler.GetComments)
			titles.GET("/:id/reviews/:review_id/comments/:comment_id", commentHandler.GetComment)
			titles.POST("/:id/reviews/:review_id/comments", requireAuth, writeContent, commentHandler.CreateComment)
			titles.PATCH("/:id/reviews/:review_id/comments/:comment_id", requireAuth, writeContent, commentHandler.UpdateComment)
			titles.DELETE("/:id/reviews/:review_id/comments/:comment_id", requireAuth, writeContent, commentHandler.DeleteComment)
		}

		// Users: self-profile for any authenticated caller, everything else admin
		users := v1.Group("/users", requireAuth)
		{
			users.GET("/me", userHandler.GetMe)
			users.PATCH("/me", userHandler.UpdateMe)

			users.GET("", manageUsers, userHandler.GetUsers)
			users.POST("", manageUsers, userHandler.CreateUser)
			users.GET("/:username", manageUsers, userHandler.GetUser)
			users.PATCH("/:username", manageUsers, userHandler.UpdateUser)
			users.DELETE("/:username", manageUsers, userHandler.DeleteUser)
		}
	}

	logger.Info("server starting", slog.String("addr", cfg.App.HTTPAddr))
	log.Fatal(http.ListenAndServe(cfg.App.HTTPAddr, router))
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
