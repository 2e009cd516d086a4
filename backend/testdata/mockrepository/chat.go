package mockrepository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"courtside/backend/models"
	"courtside/backend/repository"
)

type ChatRepository struct {
	mock.Mock
}

var _ repository.ChatRepository = &ChatRepository{}

func (m *ChatRepository) CreateChat(ctx context.Context, chat *models.Chat) error {
	return m.Called(ctx, chat).Error(0)
}

func (m *ChatRepository) FindChat(ctx context.Context, id string) (*models.Chat, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*models.Chat)
	return c, args.Error(1)
}

func (m *ChatRepository) ListChats(ctx context.Context, userID string) ([]models.Chat, error) {
	args := m.Called(ctx, userID)
	c, _ := args.Get(0).([]models.Chat)
	return c, args.Error(1)
}

func (m *ChatRepository) UpdateTitle(ctx context.Context, chatID, title string) error {
	return m.Called(ctx, chatID, title).Error(0)
}

func (m *ChatRepository) DeleteChat(ctx context.Context, chatID string) error {
	return m.Called(ctx, chatID).Error(0)
}

func (m *ChatRepository) CreateMessage(ctx context.Context, msg *models.ChatMessage) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *ChatRepository) ListMessages(ctx context.Context, chatID string) ([]models.ChatMessage, error) {
	args := m.Called(ctx, chatID)
	msgs, _ := args.Get(0).([]models.ChatMessage)
	return msgs, args.Error(1)
}

func (m *ChatRepository) CountMessages(ctx context.Context, chatID string) (int64, error) {
	args := m.Called(ctx, chatID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ChatRepository) SaveConversation(ctx context.Context, conv *models.Conversation) error {
	return m.Called(ctx, conv).Error(0)
}

func (m *ChatRepository) ListConversations(ctx context.Context, userID string) ([]models.Conversation, error) {
	args := m.Called(ctx, userID)
	c, _ := args.Get(0).([]models.Conversation)
	return c, args.Error(1)
}
