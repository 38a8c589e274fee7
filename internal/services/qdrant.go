package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
	"go.uber.org/zap"
)

// IndexedQuestion is the payload stored next to each question vector.
type IndexedQuestion struct {
	QuestionID uuid.UUID
	SessionID  uuid.UUID
	OwnerID    uuid.UUID
	JobID      uuid.UUID
	Category   string
	Text       string
}

type SearchResult struct {
	QuestionID string
	Score      float32
	Text       string
	Category   string
}

type QuestionIndex interface {
	InitCollection(ctx context.Context) error
	UpsertQuestion(ctx context.Context, q IndexedQuestion, embedding []float32) error
	SearchSimilar(ctx context.Context, embedding []float32, ownerID, jobID uuid.UUID, limit int) ([]SearchResult, error)
}

type qdrantIndex struct {
	client         *qdrant.Client
	collectionName string
	vectorSize     uint64
	log            *zap.Logger
}

func NewQdrantIndex(urlStr, apiKey, collectionName string, log *zap.Logger) (QuestionIndex, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	// gRPC port unless the URL names one.
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   parsed.Hostname(),
		Port:   port,
		APIKey: apiKey,
		UseTLS: parsed.Scheme == "https",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &qdrantIndex{
		client:         client,
		collectionName: collectionName,
		vectorSize:     768, // text-embedding-004
		log:            log,
	}, nil
}

// InitCollection implements QuestionIndex.
func (q *qdrantIndex) InitCollection(ctx context.Context) error {
	exists, err := q.client.CollectionExists(ctx, q.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}
	if exists {
		q.log.Info("✅ Qdrant collection already exists", zap.String("collection", q.collectionName))
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

	q.log.Info("✅ Qdrant collection created", zap.String("collection", q.collectionName))
	return nil
}

// UpsertQuestion implements QuestionIndex. The question id doubles as the
// point id so re-indexing a session overwrites instead of duplicating.
func (q *qdrantIndex) UpsertQuestion(ctx context.Context, question IndexedQuestion, embedding []float32) error {
	point := &qdrant.PointStruct{
		Id:      qdrant.NewID(question.QuestionID.String()),
		Vectors: qdrant.NewVectors(embedding...),
		Payload: qdrant.NewValueMap(map[string]any{
			"question_id": question.QuestionID.String(),
			"session_id":  question.SessionID.String(),
			"owner_id":    question.OwnerID.String(),
			"job_id":      question.JobID.String(),
			"category":    question.Category,
			"text":        question.Text,
		}),
	}

	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert point: %w", err)
	}
	return nil
}

// SearchSimilar implements QuestionIndex.
func (q *qdrantIndex) SearchSimilar(ctx context.Context, embedding []float32, ownerID, jobID uuid.UUID, limit int) ([]SearchResult, error) {
	filter := &qdrant.Filter{
		Must: []*qdrant.Condition{
			qdrant.NewMatch("owner_id", ownerID.String()),
			qdrant.NewMatch("job_id", jobID.String()),
		},
	}

	points, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.collectionName,
		Query:          qdrant.NewQuery(embedding...),
		Filter:         filter,
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	results := make([]SearchResult, 0, len(points))
	for _, point := range points {
		results = append(results, SearchResult{
			QuestionID: payloadString(point.Payload, "question_id"),
			Score:      point.Score,
			Text:       payloadString(point.Payload, "text"),
			Category:   payloadString(point.Payload, "category"),
		})
	}
	return results, nil
}

func payloadString(payload map[string]*qdrant.Value, key string) string {
	v, ok := payload[key]
	if !ok {
		return ""
	}
	if s, ok := v.GetKind().(*qdrant.Value_StringValue); ok {
		return s.StringValue
	}
	return ""
}
