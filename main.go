package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"fluffyrudy-blog-api/config"
	"fluffyrudy-blog-api/handlers"
	"fluffyrudy-blog-api/middleware"
	"fluffyrudy-blog-api/repositories"
	"fluffyrudy-blog-api/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found")
	}

	if os.Getenv("APP_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Initialize database
	db := config.InitDB()
	defer config.CloseDB(db)

	// Initialize repositories
	postRepo := repositories.NewPostRepository(db)
	tagRepo := repositories.NewTagRepository(db)

	// Initialize services
	postService := services.NewPostService(postRepo)
	tagService := services.NewTagService(tagRepo)
	statsService := services.NewStatsService(postRepo, tagRepo)

	// Initialize handlers
	postHandler := handlers.NewPostHandler(postService)
	tagHandler := handlers.NewTagHandler(tagService)
	statsHandler := handlers.NewStatsHandler(statsService)

	// Setup router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(os.Getenv("ALLOW_ORIGIN")))
	router.Use(middleware.APIKeyAuth())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Posts
	router.POST("/post", postHandler.CreatePost)
	posts := router.Group("/posts")
	{
		posts.GET("", postHandler.GetPosts)
		posts.GET("/:id", postHandler.GetPost)
		posts.GET("/slug/:slug", postHandler.GetPostBySlug)
		posts.PUT("/:id", postHandler.UpdatePost)
		posts.DELETE("/:id", postHandler.DeletePost)
	}

	// Tags
	tags := router.Group("/tags")
	{
		tags.GET("", tagHandler.GetTags)
		tags.POST("", tagHandler.CreateTag)
		tags.PUT("/:id", tagHandler.RenameTag)
		tags.DELETE("/:id", tagHandler.DeleteTag)
	}

	// Stats
	router.GET("/stats", statsHandler.GetStats)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Info().Str("port", port).Msg("server starting")
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
