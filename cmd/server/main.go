package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	json "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/rupeerewind/backend/internal/delivery/http"
	"github.com/rupeerewind/backend/internal/refdata"
	"github.com/rupeerewind/backend/internal/repository/postgres"
	"github.com/rupeerewind/backend/internal/service"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	// Configuration
	cfg := loadConfig()

	// Reference data is required; bad override files stop startup
	store, err := refdata.Load(cfg.ReferenceDataFile)
	if err != nil {
		log.Fatalf("Failed to load reference data: %v", err)
	}
	log.Printf("Reference data loaded (%d-%d, %d cities)", store.MinYear, store.CurrentYear, len(store.Cities))

	// Database connection
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var dataRepo service.DataRepository
	pool, err := connectDatabase(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Printf("Warning: Could not connect to database: %v", err)
		log.Println("Running with in-memory storage only")
		dataRepo = postgres.NewMemoryRepository()
	} else {
		defer pool.Close()
		log.Println("Connected to PostgreSQL")
		pgRepo := postgres.NewPostgresRepository(pool)
		if err := pgRepo.EnsureSchema(ctx); err != nil {
			log.Printf("Warning: %v", err)
		}
		dataRepo = pgRepo
	}

	// Dependency Injection: Services
	var generator service.TextGenerator
	if cfg.GeminiAPIKey != "" {
		gemini, err := service.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Printf("Warning: %v", err)
		} else {
			generator = gemini
		}
	}
	if generator == nil {
		log.Println("No Gemini API key, insights will use templated fallbacks")
	}

	liveRates := service.NewLiveRateService(cfg.LiveInflationURL, cfg.LiveGoldURL)
	insightSvc := service.NewInsightService(generator)
	calculatorSvc := service.NewCalculatorService(store, liveRates, dataRepo, cfg.StressInflationRate)
	assetSvc := service.NewAssetService(store, insightSvc)
	preferenceSvc := service.NewPreferenceService(dataRepo)

	// Warm the live rates once in the background
	go func() {
		rateCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		liveRates.Rates(rateCtx)
	}()

	// Fiber App
	app := fiber.New(fiber.Config{
		AppName:      "RupeeRewind API v1.0",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorHandler: http.ErrorHandler,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))

	// Routes
	handler := http.NewHandler(calculatorSvc, assetSvc, insightSvc, preferenceSvc, dataRepo)
	http.SetupRoutes(app, handler)

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on :%s (%s)", cfg.Port, cfg.Env)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	calculatorSvc.WaitBackground()
	log.Println("Server exited gracefully")
}

// connectDatabase returns nil and an error when no URL is set or the ping fails
func connectDatabase(ctx context.Context, url string) (*pgxpool.Pool, error) {
	if url == "" {
		return nil, errNoDatabaseURL
	}
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
