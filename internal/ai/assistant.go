// Package ai defines the contract between the recommendation pipeline
// and the configured language model provider.
package ai

import "context"

// ContentGenerator produces a single textual completion for a system
// instruction and user message. Providers live in subpackages; callers
// treat any error as "collaborator unavailable" and fall back.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, system, user string) (string, error)
}
