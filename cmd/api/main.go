package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"samscout/contract-agent/internal/config"
	"samscout/contract-agent/internal/handlers"
	"samscout/contract-agent/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	printBanner(cfg)

	// Initialize LLM providers
	geminiGenerator, err := services.NewGeminiGenerator(cfg.Google.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	openAIGenerator := services.NewOpenAIGenerator(cfg.OpenAI.APIKey)
	log.Println("✅ LLM providers initialized successfully")

	// Initialize acquisition pipeline
	extractor := services.NewHeuristicExtractor()
	scraper := services.NewPlaywrightScraper(
		extractor,
		cfg.Scraper.NavigationTimeout,
		cfg.Scraper.SelectorTimeout,
	)
	apiClient := services.NewSamAPIClient(cfg.Scraper.HTTPTimeout)
	feedClient := services.NewRSSFeedClient(cfg.Scraper.HTTPTimeout)
	fetcher := services.NewFetcherService(scraper, apiClient, feedClient)
	log.Println("✅ Acquisition pipeline initialized successfully")

	// Initialize presenter and handlers
	presenter := services.NewResultPresenter(
		fetcher,
		geminiGenerator,
		openAIGenerator,
		cfg.Scraper.ResultLimit,
	)
	searchHandler := handlers.NewSearchHandler(presenter)
	log.Println("✅ Handlers initialized")

	// Create Fiber app. Write timeout is generous because one search may sit
	// behind a full browser render before anything is written back.
	app := fiber.New(fiber.Config{
		AppName:      "SAM.gov Contract Agent",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 3 * time.Minute,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Routes
	app.Get("/", searchHandler.HandleIndex)

	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/search", searchHandler.HandleSearch)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)
	log.Printf("🌐 Search form: http://localhost%s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func printBanner(cfg *config.Config) {
	log.Println("🚀 Starting SAM.gov Contract Intelligence Agent...")
	log.Println("📋 Required API keys (check your .env file):")
	logKeyStatus("GOOGLE_API_KEY", cfg.Google.APIKey)
	logKeyStatus("OPENAI_API_KEY", cfg.OpenAI.APIKey)
	log.Println("🎯 Features:")
	log.Println("   • Attempts to scrape live contracts from SAM.gov")
	log.Println("   • Falls back to realistic sample data if needed")
	log.Println("   • Personalized proposals based on your company profile")
	log.Println("   • Dual AI analysis (Google Gemini + GPT-4)")
}

func logKeyStatus(name, value string) {
	if value == "" {
		log.Printf("   ⚠️  %s is not set\n", name)
		return
	}
	log.Printf("   ✓ %s\n", name)
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
