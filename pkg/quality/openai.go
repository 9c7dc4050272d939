package quality

import (
	"context"
	"math"

	openai "github.com/sashabaranov/go-openai"
	"gitlab.com/tozd/go/errors"
)

// 🌐 EmbeddingScorer scores similarity with sentence embeddings from the
// OpenAI embeddings API. It trades determinism and offline use for a much
// better notion of meaning than the lexical scorer; wire it in with
// quality.WithSimilarityScorer when an API key is available.
type EmbeddingScorer struct {
	client *openai.Client
	model  openai.EmbeddingModel
}

// 🏭 NewEmbeddingScorer creates an embedding scorer from an API key
func NewEmbeddingScorer(apiKey string) *EmbeddingScorer {
	return &EmbeddingScorer{
		client: openai.NewClient(apiKey),
		model:  openai.SmallEmbedding3,
	}
}

// WithModel overrides the embedding model.
func (s *EmbeddingScorer) WithModel(model openai.EmbeddingModel) *EmbeddingScorer {
	s.model = model
	return s
}

// Similarity implements SimilarityScorer.Similarity
func (s *EmbeddingScorer) Similarity(ctx context.Context, a, b string) (float64, error) {
	if a == b {
		return 1, nil
	}

	resp, err := s.client.CreateEmbeddings(ctx, openai.EmbeddingRequestStrings{
		Input: []string{a, b},
		Model: s.model,
	})
	if err != nil {
		return 0, errors.Errorf("requesting embeddings: %w", err)
	}
	if len(resp.Data) != 2 {
		return 0, errors.Errorf("expected 2 embeddings, got %d", len(resp.Data))
	}

	return cosineVec(resp.Data[0].Embedding, resp.Data[1].Embedding), nil
}

func cosineVec(a, b []float32) float64 {
	var dot, normA, normB float64
	for i := range a {
		if i >= len(b) {
			break
		}
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	// Clamp: embedding cosine can land a hair outside [0,1]
	return math.Max(0, math.Min(1, sim))
}
