package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/strainwise/strainwise/internal/domain"
	"github.com/strainwise/strainwise/internal/metrics"
)

// batchResponse mirrors the JSON object the model is instructed to produce.
type batchResponse struct {
	Recommendations    []string           `json:"recommendations"`
	Reasons            map[string]string  `json:"reasons"`
	PerfectMatchScore  map[string]float64 `json:"perfect_match_score"`
	UsageTips          map[string]string  `json:"usage_tips"`
	EffectsExplanation map[string]string  `json:"effects_explanation"`
}

// BatchReranker re-ranks a candidate pool in a single JSON-mode chat call.
type BatchReranker struct {
	client *openai.Client
	model  string
	stage  string
	logger *zap.Logger
}

// RerankerConfig holds the chat provider settings for a re-ranking stage.
type RerankerConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Stage   string
	Logger  *zap.Logger
}

// NewBatchReranker creates a batched re-ranker over an OpenAI-compatible chat API.
func NewBatchReranker(cfg *RerankerConfig) *BatchReranker {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &BatchReranker{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
		stage:  cfg.Stage,
		logger: cfg.Logger,
	}
}

// Rank sends the whole pool to the model and parses the structured response.
// A response that is not valid JSON or names no known candidate is reported
// as domain.ErrMalformedRerankResponse.
func (r *BatchReranker) Rank(
	ctx context.Context,
	req domain.RecommendationRequest,
	pool []domain.Strain,
) (domain.BatchRanking, error) {
	start := time.Now()

	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: r.model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0.3,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: batchSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildBatchPrompt(req, pool)},
		},
	})
	duration := time.Since(start)

	if err != nil {
		metrics.RerankStageAttemptsTotal.WithLabelValues(r.stage, "error").Inc()
		return domain.BatchRanking{}, parseChatError(err)
	}
	if len(resp.Choices) == 0 {
		metrics.RerankStageAttemptsTotal.WithLabelValues(r.stage, "error").Inc()
		return domain.BatchRanking{}, fmt.Errorf("empty chat response: %w", domain.ErrRerankerUnavailable)
	}

	result, err := parseBatchResponse(resp.Choices[0].Message.Content, pool)
	if err != nil {
		metrics.RerankStageAttemptsTotal.WithLabelValues(r.stage, "error").Inc()
		r.logger.Warn("Unparsable batch rerank response",
			zap.String("model", r.model),
			zap.Error(err))
		return domain.BatchRanking{}, err
	}

	metrics.RerankStageAttemptsTotal.WithLabelValues(r.stage, "success").Inc()
	metrics.RerankStageDuration.WithLabelValues(r.stage).Observe(duration.Seconds())

	return result, nil
}

const batchSystemPrompt = "You are a cannabis sommelier helping customers pick strains. " +
	"Respond with a single JSON object and nothing else."

func buildBatchPrompt(req domain.RecommendationRequest, pool []domain.Strain) string {
	var b strings.Builder

	b.WriteString("Customer profile:\n")
	fmt.Fprintf(&b, "- Desired mood: %s\n", req.Mood)
	fmt.Fprintf(&b, "- Experience level: %s\n", req.ExperienceLevel)
	if len(req.Effects) > 0 {
		fmt.Fprintf(&b, "- Wanted effects: %s\n", strings.Join(req.Effects, ", "))
	}
	if len(req.Flavors) > 0 {
		fmt.Fprintf(&b, "- Preferred flavors: %s\n", strings.Join(req.Flavors, ", "))
	}
	if len(req.ConsumptionMethod) > 0 {
		fmt.Fprintf(&b, "- Consumption method: %s\n", strings.Join(req.ConsumptionMethod, ", "))
	}

	b.WriteString("\nCandidate strains:\n")
	for _, s := range pool {
		fmt.Fprintf(&b, "- id=%s name=%q type=%s thc=%s effects=[%s] flavors=[%s] rating=%.1f\n",
			s.ID, s.Name, s.Type, s.THCContent,
			strings.Join(s.Effects, ", "), strings.Join(s.Flavors, ", "), s.Rating)
	}

	b.WriteString(`
Pick the 3 to 5 best matches for this customer, best first. Use only the ids listed above.
Respond with JSON of this exact shape:
{
  "recommendations": ["id", ...],
  "reasons": {"id": "why this strain fits the customer", ...},
  "perfect_match_score": {"id": 0-100, ...},
  "usage_tips": {"id": "dosing and timing advice for this experience level", ...},
  "effects_explanation": {"id": "what the customer will feel", ...}
}`)

	return b.String()
}

func parseBatchResponse(content string, pool []domain.Strain) (domain.BatchRanking, error) {
	var parsed batchResponse
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &parsed); err != nil {
		return domain.BatchRanking{}, fmt.Errorf("decode rerank response: %v: %w", err, domain.ErrMalformedRerankResponse)
	}
	if len(parsed.Recommendations) == 0 {
		return domain.BatchRanking{}, fmt.Errorf("no recommendations in response: %w", domain.ErrMalformedRerankResponse)
	}

	known := make(map[string]struct{}, len(pool))
	for _, s := range pool {
		known[s.ID] = struct{}{}
	}

	result := domain.BatchRanking{
		Annotations: make(map[string]domain.Annotation, len(parsed.Recommendations)),
	}
	seen := make(map[string]struct{}, len(parsed.Recommendations))
	for _, id := range parsed.Recommendations {
		if _, ok := known[id]; !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		result.RankedIDs = append(result.RankedIDs, id)
		result.Annotations[id] = domain.Annotation{
			MatchScore:         clampScore(parsed.PerfectMatchScore[id]),
			MatchReason:        parsed.Reasons[id],
			UsageTips:          parsed.UsageTips[id],
			EffectsExplanation: parsed.EffectsExplanation[id],
		}
	}

	if len(result.RankedIDs) == 0 {
		return domain.BatchRanking{}, fmt.Errorf("no known candidate ids in response: %w", domain.ErrMalformedRerankResponse)
	}
	return result, nil
}

// stripCodeFence removes a markdown code fence some models wrap JSON in
// despite JSON mode.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func clampScore(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(v)
}

// parseChatError wraps chat API failures with domain.ErrRerankerUnavailable.
func parseChatError(err error) error {
	wrap := domain.ErrRerankerUnavailable

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Errorf("chat API error %d: %s: %w",
			reqErr.HTTPStatusCode, string(reqErr.Body), wrap)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("chat API error %d: %s: %w",
			apiErr.HTTPStatusCode, apiErr.Message, wrap)
	}

	return fmt.Errorf("chat request failed: %w", wrap)
}
