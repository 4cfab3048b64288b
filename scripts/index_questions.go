package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"alfredoptarigan/interview-coach/internal/config"
	"alfredoptarigan/interview-coach/internal/services"
)

func main() {
	log.Println("🚀 Starting question catalog indexing...")

	// Load configuration
	cfg := config.Load()

	// Initialize services
	geminiService, err := services.NewGeminiService(cfg.Gemini)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini: %v", err)
	}

	index, err := services.NewQdrantQuestionIndex(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
		geminiService,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := index.InitCollection(ctx); err != nil {
		log.Fatalf("❌ Failed to initialize collection: %v", err)
	}

	catalog := services.FullCatalog()
	hints := services.QuestionHints()

	total := 0
	for _, category := range services.Categories {
		total += len(catalog[category])
	}
	log.Printf("📄 %d questions across %d categories", total, len(services.Categories))

	count, err := index.IndexCatalog(ctx, catalog, hints)

	log.Println("\n" + strings.Repeat("=", 60))
	log.Printf("📊 Indexing Summary:")
	log.Printf("   ✅ Indexed: %d questions", count)
	log.Println(strings.Repeat("=", 60))

	if err != nil {
		log.Printf("❌ Indexing failed: %v", err)
		os.Exit(1)
	}

	log.Println("✅ Question catalog indexed successfully!")
}
