package domain

// BatchRanking is a generative re-ranker's verdict over a candidate pool.
// RankedIDs preserves the model's preference order; Annotations are keyed by
// strain id and cover exactly the ranked ids.
type BatchRanking struct {
	RankedIDs   []string
	Annotations map[string]Annotation
}
