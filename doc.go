// Package strainwise provides an embedded Go client for the strainwise
// cannabis strain recommendation pipeline.
//
// The pipeline combines a rule-based filter, vector similarity over strain
// descriptions, and a generative re-ranker with a fallback chain, so a
// recommendation call always returns results even when every external
// provider is down.
//
//	client, _ := strainwise.New(ctx,
//	    strainwise.WithOpenAI(os.Getenv("OPENAI_API_KEY")),
//	)
//	defer client.Close()
//
//	recs, _ := client.GetRecommendations(ctx, strainwise.Request{
//	    Mood:            "relaxed",
//	    ExperienceLevel: "beginner",
//	})
//
// Without WithOpenAI the client still works: similarity falls back to
// deterministic vectors and ranking falls back to the heuristic scorer.
package strainwise
