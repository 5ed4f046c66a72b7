package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const maxRequestBody = 1 << 20 // 1 MiB

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("no .env file loaded: %v", err)
	}

	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"JWT_SECRET_KEY",
	}
	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	utils.InitJWT()
	if os.Getenv("GO_ENV") != "test" {
		utils.InitMongoClient()
	}
}

func setupRouter(authHandler *handler.AuthHandler, noteHandler *handler.NoteHandler) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestSizeLimiter(maxRequestBody))
	router.Use(middleware.MetricsMiddleware())

	router.GET("/system-info", handler.SystemInfo)
	router.GET("/health", handler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes (no authentication required)
	public := router.Group("/api")
	{
		public.POST("/register", authHandler.Register)
		public.POST("/login", authHandler.Login)
	}

	// Protected routes (bearer token required)
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		notes := protected.Group("/notes")
		{
			notes.GET("", noteHandler.List)
			notes.POST("", noteHandler.Create)
			notes.GET("/:id", noteHandler.Get)
			notes.PUT("/:id", noteHandler.Update)
			notes.DELETE("/:id", noteHandler.Delete)
		}
	}

	return router
}

func main() {
	userRepo := repository.GetUserRepo(utils.MongoClient)
	noteRepo := repository.GetNoteRepo(utils.MongoClient)

	var noteCache *services.NoteCache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		cache, err := services.NewNoteCache(redisURL, utils.GetEnvAsDuration("NOTE_CACHE_TTL", 5*time.Minute))
		if err != nil {
			log.Printf("note cache disabled: %v", err)
		} else {
			noteCache = cache
			defer noteCache.Close()
		}
	}

	userService := &usecase.UserService{Users: userRepo}
	noteService := &usecase.NoteService{
		Notes: noteRepo,
		Users: userRepo,
		Cache: noteCache,
	}

	router := setupRouter(
		handler.NewAuthHandler(userService),
		handler.NewNoteHandler(noteService),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	serverAddr := fmt.Sprintf(":%s", port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
