// Package usecase contains the application-specific business rules.
package usecase

import "context"

// ChatInput carries the shopper's free-form question.
type ChatInput struct {
	Message string `json:"message" validate:"required"`
}

// ChatOutput carries the model's reply and the catalog items it mentioned.
type ChatOutput struct {
	Reply    string         `json:"reply"`
	Products []*ProductView `json:"products"`
}

// ChatUsecase defines the interface for the AI-assisted recommendation chat.
type ChatUsecase interface {
	// Chat answers a shopper question grounded on the active catalog and
	// returns the products referenced in the reply.
	Chat(ctx context.Context, input *ChatInput) (*ChatOutput, error)
}
