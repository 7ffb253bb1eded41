package policy

import (
	"context"
	"fmt"
	"strings"

	"hr-assistant/internal/oracle"

	"gorm.io/gorm"
)

const (
	defaultMatchCount     = 4
	defaultEmbeddingModel = "text-embedding-3-large"
)

// Embedder is the vector-generation side of the retrieval service.
type Embedder interface {
	CreateEmbeddings(ctx context.Context, model string, input []string) ([][]float32, error)
}

var _ Embedder = (*oracle.Client)(nil)

// vectorRetriever does nearest-neighbour lookup over pgvector-indexed
// policy chunks.
type vectorRetriever struct {
	db         *gorm.DB
	embedder   Embedder
	model      string
	matchCount int
}

func NewVectorRetriever(db *gorm.DB, embedder Embedder) Retriever {
	return &vectorRetriever{
		db:         db,
		embedder:   embedder,
		model:      defaultEmbeddingModel,
		matchCount: defaultMatchCount,
	}
}

func (r *vectorRetriever) Retrieve(ctx context.Context, question string) (string, error) {
	vectors, err := r.embedder.CreateEmbeddings(ctx, r.model, []string{question})
	if err != nil {
		return "", fmt.Errorf("embed question: %w", err)
	}
	if len(vectors) == 0 || len(vectors[0]) == 0 {
		return "", nil
	}

	var contents []string
	err = r.db.WithContext(ctx).
		Raw(
			`SELECT content FROM policy_chunks ORDER BY embedding <=> ?::vector LIMIT ?`,
			vectorLiteral(vectors[0]),
			r.matchCount,
		).
		Scan(&contents).Error
	if err != nil {
		return "", fmt.Errorf("match policy chunks: %w", err)
	}

	return strings.Join(contents, " "), nil
}

// vectorLiteral renders a pgvector input literal: [0.1,0.2,...].
func vectorLiteral(v []float32) string {
	parts := make([]string, len(v))
	for i, f := range v {
		parts[i] = fmt.Sprintf("%g", f)
	}
	return "[" + strings.Join(parts, ",") + "]"
}
