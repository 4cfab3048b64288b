package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
)

const embeddingSize = 768 // text-embedding-004

type RecommendedQuestion struct {
	Question string  `json:"question"`
	Category string  `json:"category"`
	Hint     string  `json:"hint,omitempty"`
	Score    float32 `json:"score"`
}

// QuestionIndex ranks catalog questions by semantic similarity to a job posting.
type QuestionIndex interface {
	InitCollection(ctx context.Context) error
	IndexCatalog(ctx context.Context, questions QuestionSet, hints map[string]string) (int, error)
	Recommend(ctx context.Context, jobDescription string, limit int) ([]RecommendedQuestion, error)
}

type qdrantQuestionIndex struct {
	client         *qdrant.Client
	embedder       Embedder
	collectionName string
	vectorSize     uint64
}

func NewQdrantQuestionIndex(urlStr, apiKey, collectionName string, embedder Embedder) (QuestionIndex, error) {
	// Parse URL to extract host, port, and TLS usage
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// gRPC port
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &qdrantQuestionIndex{
		client:         client,
		embedder:       embedder,
		collectionName: collectionName,
		vectorSize:     embeddingSize,
	}, nil
}

// InitCollection implements QuestionIndex.
func (q *qdrantQuestionIndex) InitCollection(ctx context.Context) error {
	exists, err := q.client.CollectionExists(ctx, q.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		log.Println("✅ Question collection already exists")
		return nil
	}

	err = q.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: q.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     q.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	log.Printf("✅ Qdrant collection '%s' created successfully\n", q.collectionName)
	return nil
}

// IndexCatalog implements QuestionIndex. Point ids are derived from the
// question text, so re-indexing overwrites instead of duplicating.
func (q *qdrantQuestionIndex) IndexCatalog(ctx context.Context, questions QuestionSet, hints map[string]string) (int, error) {
	var points []*qdrant.PointStruct

	for _, category := range Categories {
		for _, question := range questions[category] {
			embedding, err := q.embedder.GenerateEmbedding(ctx, question)
			if err != nil {
				return 0, fmt.Errorf("failed to embed question %q: %w", question, err)
			}

			points = append(points, &qdrant.PointStruct{
				Id:      qdrant.NewID(QuestionPointID(question)),
				Vectors: qdrant.NewVectors(embedding...),
				Payload: qdrant.NewValueMap(map[string]any{
					"question": question,
					"category": category,
					"hint":     hints[question],
				}),
			})
		}
	}

	if len(points) == 0 {
		return 0, nil
	}

	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collectionName,
		Points:         points,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to upsert questions: %w", err)
	}

	return len(points), nil
}

// Recommend implements QuestionIndex.
func (q *qdrantQuestionIndex) Recommend(ctx context.Context, jobDescription string, limit int) ([]RecommendedQuestion, error) {
	embedding, err := q.embedder.GenerateEmbedding(ctx, jobDescription)
	if err != nil {
		return nil, fmt.Errorf("failed to embed job description: %w", err)
	}

	points, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.collectionName,
		Query:          qdrant.NewQuery(embedding...),
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	results := make([]RecommendedQuestion, 0, len(points))
	for _, point := range points {
		results = append(results, RecommendedQuestion{
			Question: payloadString(point.Payload, "question"),
			Category: payloadString(point.Payload, "category"),
			Hint:     payloadString(point.Payload, "hint"),
			Score:    point.Score,
		})
	}

	return results, nil
}

func QuestionPointID(question string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("interview-question:"+question)).String()
}

func payloadString(payload map[string]*qdrant.Value, key string) string {
	if v, ok := payload[key]; ok {
		if val, ok := v.GetKind().(*qdrant.Value_StringValue); ok {
			return val.StringValue
		}
	}
	return ""
}

// CatalogRecommendations is used when no vector index is configured: the
// catalog order, truncated to limit.
func CatalogRecommendations(questions QuestionSet, hints map[string]string, limit int) []RecommendedQuestion {
	results := []RecommendedQuestion{}
	for _, category := range Categories {
		for _, question := range questions[category] {
			if len(results) == limit {
				return results
			}
			results = append(results, RecommendedQuestion{
				Question: question,
				Category: category,
				Hint:     hints[question],
			})
		}
	}
	return results
}
