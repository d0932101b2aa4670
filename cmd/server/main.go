package main

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"leetmentor/config"
	"leetmentor/controllers"
	"leetmentor/routes"
	"leetmentor/services"
	"leetmentor/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load the configuration from the specified YAML file
	cfg, err := config.LoadConfig("./config/config.prod.yml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	client, err := services.NewGeminiClient(context.Background(), cfg.Gemini.ApiKey)
	if err != nil {
		log.Fatalf("Failed to initialize Gemini client: %v", err)
	}
	log.Printf("Using Gemini model %s", cfg.Gemini.Model)

	httpClient := &http.Client{Timeout: cfg.Timeout()}
	ac := &controllers.AssistantController{
		Assistant: services.NewAssistant(client.Models, cfg.Gemini.Model),
		Leetcode: services.NewLeetcodeClient(services.LeetcodeConfig{
			Endpoint:      cfg.Leetcode.Endpoint,
			RecentAcLimit: cfg.Leetcode.RecentAcLimit,
		}, httpClient),
		Lottie: services.NewLottieLoader(httpClient),
		Defaults: services.QueryOptions{
			Retries:  cfg.Gemini.Retries,
			Delay:    cfg.Delay(),
			MaxChars: cfg.Gemini.MaxChars,
		},
		MaxRetries: cfg.Gemini.MaxRetries,
	}

	router := setupRouter(cfg, ac)
	port := strconv.Itoa(cfg.Server.Port)
	log.Printf("Server starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter(cfg *config.Config, ac *controllers.AssistantController) *gin.Engine {
	router := gin.Default()

	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	router.GET("/health", routes.HealthHandler)

	api := router.Group("/api")
	routes.SetupAssistantRoutes(api, ac)

	router.GET("/ws/chat", websocket.ChatHandler(ac.Assistant, ac.Defaults, cfg.Server.AllowOrigins))

	return router
}
