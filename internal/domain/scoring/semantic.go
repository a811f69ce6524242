package scoring

import (
	"context"
	"math"

	openai "github.com/sashabaranov/go-openai"

	platformerrors "voxterview-server-go/internal/platform/errors"
)

// Embedder produces a sentence embedding for a text.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// SemanticScorer maps embedding cosine similarity onto [0,10] with a slightly
// superlinear curve: min(scale-adjusted, 10). Negative similarity clamps to 0.
type SemanticScorer struct {
	embedder Embedder
	exponent float64
	scale    float64
}

// NewSemanticScorer builds a semantic scorer. A nil embedder makes the scorer
// permanently not applicable so the cascade falls through.
func NewSemanticScorer(embedder Embedder, exponent, scale float64) *SemanticScorer {
	return &SemanticScorer{embedder: embedder, exponent: exponent, scale: scale}
}

func (s *SemanticScorer) Name() string { return "semantic" }

func (s *SemanticScorer) Score(ctx context.Context, reference, candidate string) (float64, error) {
	if s.embedder == nil {
		return 0, ErrNotApplicable
	}

	refVec, err := s.embedder.Embed(ctx, reference)
	if err != nil {
		return 0, platformerrors.Wrap(platformerrors.KindScoring, "semantic", "embed reference", err)
	}
	candVec, err := s.embedder.Embed(ctx, candidate)
	if err != nil {
		return 0, platformerrors.Wrap(platformerrors.KindScoring, "semantic", "embed candidate", err)
	}

	sim := CosineSimilarity(refVec, candVec)
	if sim < 0 {
		sim = 0
	}
	return math.Min(10.0, math.Pow(sim, s.exponent)*s.scale), nil
}

// CosineSimilarity computes the cosine of the angle between two vectors.
// Mismatched or zero-magnitude vectors yield 0.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// OpenAIEmbedder implements Embedder with the OpenAI embeddings API.
type OpenAIEmbedder struct {
	client *openai.Client
	model  openai.EmbeddingModel
}

// NewOpenAIEmbedder builds an embedder. Returns nil when no API key is set,
// which disables the semantic tier without failing anything.
func NewOpenAIEmbedder(apiKey, baseURL, model string) *OpenAIEmbedder {
	if apiKey == "" {
		return nil
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIEmbedder{
		client: openai.NewClientWithConfig(cfg),
		model:  openai.EmbeddingModel(model),
	}
}

func (e *OpenAIEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: e.model,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, platformerrors.New(platformerrors.KindScoring, "embed", "empty embedding response")
	}
	return resp.Data[0].Embedding, nil
}
