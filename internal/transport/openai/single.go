package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/strainwise/strainwise/internal/domain"
	"github.com/strainwise/strainwise/internal/metrics"
)

// singleResponse mirrors the per-strain JSON object the model produces.
type singleResponse struct {
	MatchScore         float64 `json:"matchScore"`
	MatchReason        string  `json:"matchReason"`
	UsageTips          string  `json:"usageTips"`
	EffectsExplanation string  `json:"effectsExplanation"`
}

// SingleScorer scores one strain per chat call. Used by the fallback
// re-ranking stage, where per-item failures must stay isolated.
type SingleScorer struct {
	client *openai.Client
	model  string
	stage  string
	logger *zap.Logger
}

// NewSingleScorer creates a per-strain scorer over an OpenAI-compatible chat API.
func NewSingleScorer(cfg *RerankerConfig) *SingleScorer {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &SingleScorer{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
		stage:  cfg.Stage,
		logger: cfg.Logger,
	}
}

// Score asks the model how well one strain fits the request.
func (s *SingleScorer) Score(
	ctx context.Context,
	req domain.RecommendationRequest,
	strain domain.Strain,
) (domain.Annotation, error) {
	start := time.Now()

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0.3,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: batchSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildSinglePrompt(req, strain)},
		},
	})
	duration := time.Since(start)

	if err != nil {
		metrics.RerankStageAttemptsTotal.WithLabelValues(s.stage, "error").Inc()
		return domain.Annotation{}, parseChatError(err)
	}
	if len(resp.Choices) == 0 {
		metrics.RerankStageAttemptsTotal.WithLabelValues(s.stage, "error").Inc()
		return domain.Annotation{}, fmt.Errorf("empty chat response: %w", domain.ErrRerankerUnavailable)
	}

	var parsed singleResponse
	if err := json.Unmarshal([]byte(stripCodeFence(resp.Choices[0].Message.Content)), &parsed); err != nil {
		metrics.RerankStageAttemptsTotal.WithLabelValues(s.stage, "error").Inc()
		return domain.Annotation{}, fmt.Errorf("decode score response: %v: %w", err, domain.ErrMalformedRerankResponse)
	}

	metrics.RerankStageAttemptsTotal.WithLabelValues(s.stage, "success").Inc()
	metrics.RerankStageDuration.WithLabelValues(s.stage).Observe(duration.Seconds())

	return domain.Annotation{
		MatchScore:         clampScore(parsed.MatchScore),
		MatchReason:        parsed.MatchReason,
		UsageTips:          parsed.UsageTips,
		EffectsExplanation: parsed.EffectsExplanation,
	}, nil
}

func buildSinglePrompt(req domain.RecommendationRequest, strain domain.Strain) string {
	var b strings.Builder

	fmt.Fprintf(&b, "A customer wants to feel %s. Experience level: %s.\n",
		req.Mood, req.ExperienceLevel)
	if len(req.Effects) > 0 {
		fmt.Fprintf(&b, "Wanted effects: %s.\n", strings.Join(req.Effects, ", "))
	}
	if len(req.Flavors) > 0 {
		fmt.Fprintf(&b, "Preferred flavors: %s.\n", strings.Join(req.Flavors, ", "))
	}
	if len(req.ConsumptionMethod) > 0 {
		fmt.Fprintf(&b, "Consumption method: %s.\n", strings.Join(req.ConsumptionMethod, ", "))
	}

	fmt.Fprintf(&b, "\nStrain under review: %s (%s), THC %s, effects [%s], flavors [%s].\n",
		strain.Name, strain.Type, strain.THCContent,
		strings.Join(strain.Effects, ", "), strings.Join(strain.Flavors, ", "))

	b.WriteString(`
Rate how well this strain fits the customer. Respond with JSON of this exact shape:
{"matchScore": 0-100, "matchReason": "...", "usageTips": "...", "effectsExplanation": "..."}`)

	return b.String()
}
