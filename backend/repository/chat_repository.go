package repository

import (
	"context"

	"gorm.io/gorm"

	"courtside/backend/models"
)

type ChatRepository interface {
	CreateChat(ctx context.Context, chat *models.Chat) error
	FindChat(ctx context.Context, id string) (*models.Chat, error)
	ListChats(ctx context.Context, userID string) ([]models.Chat, error)
	UpdateTitle(ctx context.Context, chatID, title string) error
	DeleteChat(ctx context.Context, chatID string) error

	CreateMessage(ctx context.Context, msg *models.ChatMessage) error
	ListMessages(ctx context.Context, chatID string) ([]models.ChatMessage, error)
	CountMessages(ctx context.Context, chatID string) (int64, error)

	SaveConversation(ctx context.Context, conv *models.Conversation) error
	ListConversations(ctx context.Context, userID string) ([]models.Conversation, error)
}

type chatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) CreateChat(ctx context.Context, chat *models.Chat) error {
	return wrap("create chat", r.db.WithContext(ctx).Create(chat).Error)
}

func (r *chatRepository) FindChat(ctx context.Context, id string) (*models.Chat, error) {
	var chat models.Chat
	if err := r.db.WithContext(ctx).First(&chat, "id = ?", id).Error; err != nil {
		return nil, wrap("find chat", err)
	}
	return &chat, nil
}

func (r *chatRepository) ListChats(ctx context.Context, userID string) ([]models.Chat, error) {
	var chats []models.Chat
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&chats).Error
	return chats, wrap("list chats", err)
}

func (r *chatRepository) UpdateTitle(ctx context.Context, chatID, title string) error {
	return wrap("update chat title", r.db.WithContext(ctx).
		Model(&models.Chat{}).
		Where("id = ?", chatID).
		Update("title", title).Error)
}

func (r *chatRepository) DeleteChat(ctx context.Context, chatID string) error {
	return wrap("delete chat", r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("chat_id = ?", chatID).Delete(&models.ChatMessage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Chat{}, "id = ?", chatID).Error
	}))
}

func (r *chatRepository) CreateMessage(ctx context.Context, msg *models.ChatMessage) error {
	return wrap("create chat message", r.db.WithContext(ctx).Create(msg).Error)
}

func (r *chatRepository) ListMessages(ctx context.Context, chatID string) ([]models.ChatMessage, error) {
	var msgs []models.ChatMessage
	err := r.db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Order("timestamp ASC").
		Find(&msgs).Error
	return msgs, wrap("list chat messages", err)
}

func (r *chatRepository) CountMessages(ctx context.Context, chatID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.ChatMessage{}).Where("chat_id = ?", chatID).Count(&n).Error
	return n, wrap("count chat messages", err)
}

func (r *chatRepository) SaveConversation(ctx context.Context, conv *models.Conversation) error {
	return wrap("save conversation", r.db.WithContext(ctx).Save(conv).Error)
}

func (r *chatRepository) ListConversations(ctx context.Context, userID string) ([]models.Conversation, error) {
	var convs []models.Conversation
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&convs).Error
	return convs, wrap("list conversations", err)
}
