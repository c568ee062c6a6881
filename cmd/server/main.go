package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/crossplay/backend/internal/api"
	"github.com/crossplay/backend/internal/auth"
	"github.com/crossplay/backend/internal/config"
	"github.com/crossplay/backend/internal/dictionary"
	"github.com/crossplay/backend/internal/middleware"
	"github.com/crossplay/backend/internal/store"
	"github.com/crossplay/backend/pkg/generator"
)

func main() {
	cfg := config.Load()

	dict, err := dictionary.Load(cfg.DictionaryPath)
	if err != nil {
		log.Fatalf("Failed to load dictionary: %v", err)
	}
	log.Printf("Loaded dictionary with %d categories", len(dict))

	gen := generator.NewWithGridSize(dict, cfg.DefaultGridSize)

	st, err := store.Open(cfg.DatabaseURL, cfg.RedisURL)
	if err != nil {
		log.Printf("Warning: store connection failed: %v", err)
		log.Println("Running in demo mode without persistence or duplicate exclusion...")
		st = nil
	} else {
		if err := st.InitSchema(); err != nil {
			log.Fatalf("Failed to initialize schema: %v", err)
		}
		log.Println("Store connected and schema initialized")
	}

	authService, err := auth.New(cfg.JWTSecret, cfg.AdminSecret)
	if err != nil {
		log.Fatalf("Failed to initialize auth service: %v", err)
	}
	authMiddleware := middleware.NewAuth(authService)

	handlers := api.NewHandlers(gen, authService, st, cfg.MaxGenerationTries)

	router := gin.Default()
	router.Use(middleware.CORS())
	router.Use(middleware.PerformanceMonitor())

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/health", handlers.Health)
		apiGroup.GET("/categories", handlers.GetCategories)
		apiGroup.GET("/categories/:category/stats", handlers.GetCategoryStats)
		apiGroup.GET("/history", handlers.History)
		apiGroup.POST("/crossword", handlers.GenerateCrossword)
		apiGroup.POST("/admin/login", handlers.AdminLogin)

		adminGroup := apiGroup.Group("/admin")
		adminGroup.Use(authMiddleware.RequireAuth())
		{
			adminGroup.POST("/validate-dictionary", handlers.ValidateDictionary)
			adminGroup.GET("/stats", handlers.AdminStats)
		}

		apiGroup.NoRoute(func(c *gin.Context) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "Not Found",
				"message": "API endpoint does not exist",
				"path":    c.Request.URL.Path,
			})
		})
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Printf("Server started on port %s", cfg.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if st != nil {
		st.Close()
	}

	log.Println("Server exited")
}
