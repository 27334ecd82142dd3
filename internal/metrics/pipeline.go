package metrics

import "github.com/prometheus/client_golang/prometheus"

// Recommendation pipeline Prometheus metrics.
var (
	EmbeddingRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "strainwise",
			Name:      "embedding_requests_total",
			Help:      "Total number of embedding requests",
		},
		[]string{"provider", "model", "status"},
	)

	EmbeddingRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "strainwise",
			Name:      "embedding_request_duration_seconds",
			Help:      "Embedding request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"provider", "model"},
	)

	EmbeddingTokensTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "strainwise",
			Name:      "embedding_tokens_total",
			Help:      "Total embedding tokens consumed",
		},
		[]string{"provider", "model", "type"},
	)

	EmbeddingCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "strainwise",
			Name:      "embedding_cache_total",
			Help:      "Embedding cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)

	EmbeddingDegradeTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "strainwise",
			Name:      "embedding_degrade_total",
			Help:      "Queries answered with the degrade vector after an embedding failure",
		},
	)

	RerankStageAttemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "strainwise",
			Name:      "rerank_stage_attempts_total",
			Help:      "Re-ranker stage attempts by outcome",
		},
		[]string{"stage", "status"}, // status: "success" / "error"
	)

	RerankStageDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "strainwise",
			Name:      "rerank_stage_duration_seconds",
			Help:      "Re-ranker stage duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"stage"},
	)

	RecommendationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "strainwise",
			Name:      "recommendations_total",
			Help:      "Recommendation requests by the stage that produced the result",
		},
		[]string{"stage"},
	)
)

var pipelineMetricsRegistered bool

// RegisterPipelineMetrics registers pipeline Prometheus metrics. Must be called once from main.
func RegisterPipelineMetrics() {
	if pipelineMetricsRegistered {
		return
	}
	prometheus.MustRegister(EmbeddingRequestsTotal)
	prometheus.MustRegister(EmbeddingRequestDuration)
	prometheus.MustRegister(EmbeddingTokensTotal)
	prometheus.MustRegister(EmbeddingCacheTotal)
	prometheus.MustRegister(EmbeddingDegradeTotal)
	prometheus.MustRegister(RerankStageAttemptsTotal)
	prometheus.MustRegister(RerankStageDuration)
	prometheus.MustRegister(RecommendationsTotal)
	pipelineMetricsRegistered = true
}
