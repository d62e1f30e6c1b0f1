package ports

import "context"

// TextCompleter sends a system+user prompt pair to a language model and
// returns its free-form reply.
type TextCompleter interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
