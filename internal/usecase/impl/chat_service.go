// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

// Prompt context limits. The catalog excerpt is capped to keep the prompt
// within the model's token budget, and suggestions stay short enough for the
// storefront's chat widget.
const (
	promptProductLimit = 20
	suggestionLimit    = 5
)

const chatFallbackReply = "Sorry, I cannot answer right now. Please try again later."

// chatService implements the ChatUsecase interface. It grounds the model on
// an excerpt of the active catalog and pairs the reply with products matched
// from the shopper's own words.
type chatService struct {
	model        service.ChatModel
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	brandRepo    repository.BrandRepository
	logger       *slog.Logger
}

// ChatServiceParams holds dependencies for chatService, injected by Fx.
type ChatServiceParams struct {
	fx.In

	Model        service.ChatModel
	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	BrandRepo    repository.BrandRepository
	Logger       *slog.Logger
}

// NewChatService is the constructor for chatService.
func NewChatService(params ChatServiceParams) usecase.ChatUsecase {
	return &chatService{
		model:        params.Model,
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		brandRepo:    params.BrandRepo,
		logger:       params.Logger,
	}
}

func (srv *chatService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Chat answers a shopper question. A model failure degrades to a canned reply
// instead of failing the request; the catalog suggestions are computed locally
// and survive model outages.
func (srv *chatService) Chat(ctx context.Context, input *usecase.ChatInput) (*usecase.ChatOutput, error) {
	products, err := srv.productRepo.ListActive(ctx, repository.ProductFilter{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active products")
	}
	categories, err := srv.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}
	brands, err := srv.brandRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list brands")
	}

	prompt := buildChatPrompt(input.Message, products, categories, brands)

	reply, err := srv.model.GenerateContent(ctx, prompt)
	if err != nil {
		srv.log(ctx).Error("Chat model call failed", slog.Any("error", err))
		reply = chatFallbackReply
	}

	return &usecase.ChatOutput{
		Reply:    reply,
		Products: matchProducts(input.Message, products),
	}, nil
}

// buildChatPrompt assembles the store-assistant prompt: role, catalog
// excerpt, then the shopper's question.
func buildChatPrompt(message string, products []*entity.Product, categories []*entity.Category, brands []*entity.Brand) string {
	var sb strings.Builder

	sb.WriteString("You are the AI shopping assistant of an online store. ")
	sb.WriteString("Below is the store's current catalog information.\n\n")

	sb.WriteString("CATEGORIES:\n")
	for _, category := range categories {
		sb.WriteString("- ")
		sb.WriteString(category.Name)
		sb.WriteString("\n")
	}
	sb.WriteString("\nBRANDS:\n")
	for _, brand := range brands {
		sb.WriteString("- ")
		sb.WriteString(brand.Name)
		sb.WriteString("\n")
	}

	sb.WriteString("\nAVAILABLE PRODUCTS:\n")
	for i, product := range products {
		if i >= promptProductLimit {
			break
		}
		sb.WriteString("- ")
		sb.WriteString(product.Name)
		sb.WriteString(" (")
		sb.WriteString(product.EffectivePrice().String())
		sb.WriteString(")")
		if product.Category != nil {
			sb.WriteString(" - category: ")
			sb.WriteString(product.Category.Name)
		}
		if product.Brand != nil {
			sb.WriteString(" - brand: ")
			sb.WriteString(product.Brand.Name)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\nAnswer the customer's question in a friendly, helpful tone. ")
	sb.WriteString("When the customer asks about products, recommend suitable items from the list above.\n\n")
	sb.WriteString("CUSTOMER QUESTION: ")
	sb.WriteString(message)
	sb.WriteString("\n\nANSWER:")

	return sb.String()
}

// matchProducts selects active products whose name, description, category or
// brand overlaps the shopper's message.
func matchProducts(message string, products []*entity.Product) []*usecase.ProductView {
	lowerMessage := strings.ToLower(message)

	matched := make([]*usecase.ProductView, 0, suggestionLimit)
	for _, product := range products {
		if len(matched) >= suggestionLimit {
			break
		}
		if productMatches(lowerMessage, product) {
			matched = append(matched, usecase.NewProductView(product))
		}
	}

	return matched
}

func productMatches(lowerMessage string, product *entity.Product) bool {
	name := strings.ToLower(product.Name)
	if strings.Contains(name, lowerMessage) || strings.Contains(lowerMessage, name) {
		return true
	}
	if product.Description != "" && strings.Contains(strings.ToLower(product.Description), lowerMessage) {
		return true
	}
	if product.Category != nil && strings.Contains(lowerMessage, strings.ToLower(product.Category.Name)) {
		return true
	}
	if product.Brand != nil && strings.Contains(lowerMessage, strings.ToLower(product.Brand.Name)) {
		return true
	}

	return false
}
