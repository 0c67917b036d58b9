package llm

import "context"

// SamplingConfig bounds one completion call. Low temperature keeps the
// output deterministic-leaning, not literally deterministic.
type SamplingConfig struct {
	Temperature float32
	MaxTokens   int
	TopP        float32
}

// Completer is the text-generation collaborator the classification
// engine depends on.
type Completer interface {
	Complete(ctx context.Context, system, prompt string, cfg SamplingConfig) (string, error)
}
