package service

import "context"

// ChatModel defines the interface for the external text-generation service
// backing the catalog recommendation endpoint. The call is synchronous and
// failures surface to the caller without retry.
type ChatModel interface {
	// GenerateContent sends a prompt and returns the model's reply text.
	GenerateContent(ctx context.Context, prompt string) (string, error)
}
