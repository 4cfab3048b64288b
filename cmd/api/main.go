package main

import (
	"context"
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

	"alfredoptarigan/interview-coach/internal/config"
	"alfredoptarigan/interview-coach/internal/handlers"
	"alfredoptarigan/interview-coach/internal/repositories"
	"alfredoptarigan/interview-coach/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database (optional)
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	practiceRepo := repositories.NewPracticeRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath, cfg.Storage.ExportPath)
	if err := storageService.EnsureDirs(); err != nil {
		log.Fatalf("❌ Failed to create storage directories: %v", err)
	}

	pdfParser := services.NewPDFParserService()

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(cfg.Gemini)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	completion := services.NewCompletionClient(geminiService)
	interviewService := services.NewInterviewService(completion)
	transcriber := services.NewTranscriptionAdapter(
		geminiService,
		services.NewFFmpegTranscoder(cfg.Speech.FFmpegPath),
		storageService,
	)
	synthesizer := services.NewSynthesisAdapter(geminiService)
	renderer := services.NewSummaryRenderer(storageService)
	log.Println("✅ Services initialized successfully")

	// Initialize Qdrant (optional)
	questionIndex := initQuestionIndex(cfg, geminiService)

	// Start export janitor
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	janitor := services.NewExportJanitor(storageService, cfg.Storage.ExportTTL, cfg.Storage.SweepInterval)
	janitor.Start(ctx)

	// Initialize Handlers
	sessions := handlers.NewSessionStore(cfg.Session)
	routes := &handlers.Handlers{
		Analysis:  handlers.NewAnalysisHandler(interviewService, sessions),
		Question:  handlers.NewQuestionHandler(interviewService, questionIndex, sessions),
		Answer:    handlers.NewAnswerHandler(interviewService, practiceRepo, sessions),
		Interview: handlers.NewInterviewHandler(interviewService, sessions),
		Speech:    handlers.NewSpeechHandler(transcriber, synthesizer, cfg.Speech.DefaultVoice),
		Export:    handlers.NewExportHandler(renderer, storageService, sessions),
		Resume:    handlers.NewResumeHandler(storageService, pdfParser, sessions, cfg.Storage.MaxFileSize),
	}
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Interview Coach API",
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: handlers.ErrorHandler,
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

	routes.Register(app)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message":   "Interview Coach API",
			"version":   "1.0.0",
			"endpoints": handlers.Endpoints(),
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		janitor.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initQuestionIndex connects to Qdrant. It returns nil when the index is
// disabled or unreachable; recommendations then fall back to catalog order.
// The catalog itself is indexed by scripts/index_questions.go.
func initQuestionIndex(cfg *config.Config, embedder services.Embedder) services.QuestionIndex {
	if !cfg.Qdrant.Enabled {
		log.Println("⚠️  Qdrant disabled, question recommendations use catalog order")
		return nil
	}

	index, err := services.NewQdrantQuestionIndex(cfg.Qdrant.URL, cfg.Qdrant.APIKey, cfg.Qdrant.Collection, embedder)
	if err != nil {
		log.Printf("⚠️  Failed to initialize Qdrant: %v", err)
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := index.InitCollection(ctx); err != nil {
		log.Printf("⚠️  Failed to initialize Qdrant collection: %v", err)
		return nil
	}

	log.Println("✅ Qdrant initialized successfully")
	return index
}
