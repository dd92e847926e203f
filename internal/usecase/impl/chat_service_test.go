package impl

import (
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"
)

func newChatService(t *testing.T) (usecase.ChatUsecase, *mockSvc.MockChatModel, *mockRepo.MockProductRepository, *mockRepo.MockCategoryRepository, *mockRepo.MockBrandRepository) {
	t.Helper()

	mockModel := mockSvc.NewMockChatModel(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)
	mockBrandRepo := mockRepo.NewMockBrandRepository(t)

	service := NewChatService(ChatServiceParams{
		Model:        mockModel,
		ProductRepo:  mockProductRepo,
		CategoryRepo: mockCategoryRepo,
		BrandRepo:    mockBrandRepo,
		Logger:       testLogger(),
	})

	return service, mockModel, mockProductRepo, mockCategoryRepo, mockBrandRepo
}

func chatCatalog() []*entity.Product {
	return []*entity.Product{
		{ID: 1, Name: "Aurora Keyboard", Description: "mechanical keyboard", Price: dec("89.00"), IsActive: true,
			Category: &entity.Category{Name: "Keyboards"}, Brand: &entity.Brand{Name: "Aurora"}},
		{ID: 2, Name: "Drift Mouse", Description: "wireless mouse", Price: dec("49.00"), IsActive: true,
			Category: &entity.Category{Name: "Mice"}},
		{ID: 3, Name: "Halo Headset", Description: "over-ear audio", Price: dec("120.00"), IsActive: true},
	}
}

func TestChatService_Chat_GroundsPromptOnCatalog(t *testing.T) {
	service, mockModel, mockProductRepo, mockCategoryRepo, mockBrandRepo := newChatService(t)
	ctx := context.Background()

	mockProductRepo.EXPECT().ListActive(ctx, repository.ProductFilter{}).Return(chatCatalog(), nil)
	mockCategoryRepo.EXPECT().List(ctx).Return([]*entity.Category{{Name: "Keyboards"}}, nil)
	mockBrandRepo.EXPECT().List(ctx).Return([]*entity.Brand{{Name: "Aurora"}}, nil)

	mockModel.EXPECT().
		GenerateContent(ctx, mock.AnythingOfType("string")).
		RunAndReturn(func(_ context.Context, prompt string) (string, error) {
			assert.Contains(t, prompt, "CATEGORIES:")
			assert.Contains(t, prompt, "- Keyboards")
			assert.Contains(t, prompt, "BRANDS:")
			assert.Contains(t, prompt, "Aurora Keyboard")
			assert.Contains(t, prompt, "which keyboard should I buy?")
			return "Try the Aurora Keyboard.", nil
		})

	output, err := service.Chat(ctx, &usecase.ChatInput{Message: "which keyboard should I buy?"})
	require.NoError(t, err)
	assert.Equal(t, "Try the Aurora Keyboard.", output.Reply)
}

func TestChatService_Chat_ModelFailureDegradesToFallback(t *testing.T) {
	service, mockModel, mockProductRepo, mockCategoryRepo, mockBrandRepo := newChatService(t)
	ctx := context.Background()

	mockProductRepo.EXPECT().ListActive(ctx, repository.ProductFilter{}).Return(chatCatalog(), nil)
	mockCategoryRepo.EXPECT().List(ctx).Return(nil, nil)
	mockBrandRepo.EXPECT().List(ctx).Return(nil, nil)

	mockModel.EXPECT().
		GenerateContent(ctx, mock.AnythingOfType("string")).
		Return("", errors.New("upstream timeout"))

	output, err := service.Chat(ctx, &usecase.ChatInput{Message: "is the drift mouse in stock?"})
	require.NoError(t, err, "model outages must not fail the request")
	assert.Equal(t, chatFallbackReply, output.Reply)
	// Suggestions are computed locally and survive the outage.
	require.Len(t, output.Products, 1)
	assert.Equal(t, "Drift Mouse", output.Products[0].Name)
}

func TestChatService_Chat_MatchesProductsFromMessage(t *testing.T) {
	service, mockModel, mockProductRepo, mockCategoryRepo, mockBrandRepo := newChatService(t)
	ctx := context.Background()

	mockProductRepo.EXPECT().ListActive(ctx, repository.ProductFilter{}).Return(chatCatalog(), nil)
	mockCategoryRepo.EXPECT().List(ctx).Return(nil, nil)
	mockBrandRepo.EXPECT().List(ctx).Return(nil, nil)
	mockModel.EXPECT().GenerateContent(ctx, mock.Anything).Return("sure", nil)

	output, err := service.Chat(ctx, &usecase.ChatInput{Message: "I want a KEYBOARD from aurora"})
	require.NoError(t, err)

	names := make([]string, 0, len(output.Products))
	for _, p := range output.Products {
		names = append(names, p.Name)
	}
	assert.Contains(t, names, "Aurora Keyboard")
	assert.NotContains(t, names, "Halo Headset")
}

func TestChatService_Chat_SuggestionsAreCapped(t *testing.T) {
	service, mockModel, mockProductRepo, mockCategoryRepo, mockBrandRepo := newChatService(t)
	ctx := context.Background()

	keyboards := &entity.Category{Name: "Keyboards"}
	many := make([]*entity.Product, 0, 8)
	for i := 0; i < 8; i++ {
		many = append(many, &entity.Product{
			ID:       int64(i + 1),
			Name:     "Keyboard " + strings.Repeat("X", i+1),
			Price:    dec("10.00"),
			IsActive: true,
			Category: keyboards,
		})
	}

	mockProductRepo.EXPECT().ListActive(ctx, repository.ProductFilter{}).Return(many, nil)
	mockCategoryRepo.EXPECT().List(ctx).Return(nil, nil)
	mockBrandRepo.EXPECT().List(ctx).Return(nil, nil)
	mockModel.EXPECT().GenerateContent(ctx, mock.Anything).Return("sure", nil)

	output, err := service.Chat(ctx, &usecase.ChatInput{Message: "show me all the keyboards you have"})
	require.NoError(t, err)
	assert.Len(t, output.Products, suggestionLimit)
}
