package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"courtside/backend/llm"
	"courtside/backend/models"
	"courtside/backend/repository"
	"courtside/backend/validation"
)

const (
	assistantSender   = "Assistant"
	newChatTitle      = "New Chat"
	chatTitleRunes    = 50
	chatMaxOutputToks = 1000
)

const coachPersona = `Your name is Coach Robert. You are a friendly and supportive virtual assistant focused solely on basketball topics.
Respond to questions about basketball in a conversational and relatable manner.
Avoid discussing non-basketball subjects, and refrain from technical jargon.
Provide clear and simple explanations, encouraging curiosity and learning about basketball.
Always maintain a polite and respectful tone, ensuring users feel comfortable asking basketball-related questions.
For more information about basketball rules, visit: https://www.ducksters.com/sports/basketballrules.php

User's message: %s`

var coachSafety = []llm.SafetySetting{
	{Category: "HARM_CATEGORY_HARASSMENT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
}

type AskInput struct {
	Messages []llm.Message `json:"messages" validate:"required,min=1,dive"`
	ChatID   string        `json:"chatId"`
}

type AskResult struct {
	ChatID  string `json:"chatId"`
	Message string `json:"message"`
}

type ConverseInput struct {
	Messages       []llm.Message `json:"messages" validate:"required,min=1,dive"`
	ConversationID string        `json:"conversationId"`
}

type ConverseResult struct {
	ConversationID string `json:"-"`
	Message        string `json:"message"`
}

type ConversationView struct {
	ID       string        `json:"id"`
	Messages []llm.Message `json:"messages"`
}

type ChatSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type AssistantService interface {
	// Ask answers the last message as Coach Robert and records both turns in
	// the chat, creating the chat when needed.
	Ask(ctx context.Context, userID string, in AskInput) (*AskResult, error)
	Messages(ctx context.Context, userID, chatID string) ([]models.ChatMessage, error)
	Chats(ctx context.Context, userID string) ([]ChatSummary, error)
	DeleteChat(ctx context.Context, userID, chatID string) error

	// Converse runs a multi-turn exchange and stores the submitted history.
	Converse(ctx context.Context, userID string, in ConverseInput) (*ConverseResult, error)
	Conversations(ctx context.Context, userID string) ([]ConversationView, error)
}

type assistantService struct {
	chats     repository.ChatRepository
	generator llm.Generator
	logger    *log.Logger
}

func NewAssistantService(chats repository.ChatRepository, generator llm.Generator, logger *log.Logger) AssistantService {
	return &assistantService{chats: chats, generator: generator, logger: logger}
}

func (s *assistantService) Ask(ctx context.Context, userID string, in AskInput) (*AskResult, error) {
	if err := invalidFields(validation.Struct(in)); err != nil {
		return nil, err
	}
	question := in.Messages[len(in.Messages)-1].Content

	chatID, err := s.activeChat(ctx, userID, in.ChatID)
	if err != nil {
		return nil, err
	}

	reply, err := s.generator.Generate(ctx, llm.Request{
		Contents:       []llm.Content{llm.UserText(fmt.Sprintf(coachPersona, question))},
		SafetySettings: coachSafety,
	})
	if err != nil {
		s.logger.Printf("[AI] generate: %v", err)
		return nil, err
	}

	if err := s.chats.CreateMessage(ctx, &models.ChatMessage{
		ChatID: chatID, UserID: userID, Sender: userID, Message: question,
	}); err != nil {
		s.logger.Printf("[AI] save user message: %v", err)
		return nil, err
	}

	formatted := llm.FormatResponse(reply)
	if err := s.chats.CreateMessage(ctx, &models.ChatMessage{
		ChatID: chatID, UserID: userID, Sender: assistantSender, Message: formatted,
	}); err != nil {
		s.logger.Printf("[AI] save assistant message: %v", err)
		return nil, err
	}

	count, err := s.chats.CountMessages(ctx, chatID)
	if err != nil {
		s.logger.Printf("[AI] count messages: %v", err)
		return nil, err
	}
	if count <= 2 {
		if err := s.chats.UpdateTitle(ctx, chatID, chatTitle(question)); err != nil {
			s.logger.Printf("[AI] update title: %v", err)
			return nil, err
		}
	}

	return &AskResult{ChatID: chatID, Message: formatted}, nil
}

func (s *assistantService) Messages(ctx context.Context, userID, chatID string) ([]models.ChatMessage, error) {
	if chatID == "" {
		return nil, invalid("Chat ID is required")
	}
	if _, err := s.ownedChat(ctx, userID, chatID); err != nil {
		return nil, err
	}
	msgs, err := s.chats.ListMessages(ctx, chatID)
	if err != nil {
		s.logger.Printf("[AI] list messages: %v", err)
		return nil, err
	}
	if msgs == nil {
		msgs = []models.ChatMessage{}
	}
	return msgs, nil
}

func (s *assistantService) Chats(ctx context.Context, userID string) ([]ChatSummary, error) {
	chats, err := s.chats.ListChats(ctx, userID)
	if err != nil {
		s.logger.Printf("[CHAT] list: %v", err)
		return nil, err
	}
	out := make([]ChatSummary, 0, len(chats))
	for _, c := range chats {
		out = append(out, ChatSummary{ID: c.ID, Title: c.Title})
	}
	return out, nil
}

func (s *assistantService) DeleteChat(ctx context.Context, userID, chatID string) error {
	if _, err := s.ownedChat(ctx, userID, chatID); err != nil {
		return err
	}
	if err := s.chats.DeleteChat(ctx, chatID); err != nil {
		s.logger.Printf("[CHAT] delete %s: %v", chatID, err)
		return err
	}
	return nil
}

func (s *assistantService) Converse(ctx context.Context, userID string, in ConverseInput) (*ConverseResult, error) {
	if err := invalidFields(validation.Struct(in)); err != nil {
		return nil, err
	}

	reply, err := s.generator.Generate(ctx, llm.Request{
		Contents:        llm.ContentsFromHistory(in.Messages),
		MaxOutputTokens: chatMaxOutputToks,
	})
	if err != nil {
		s.logger.Printf("[CHAT] generate: %v", err)
		return nil, err
	}

	history, err := json.Marshal(in.Messages)
	if err != nil {
		return nil, fmt.Errorf("encode conversation: %w", err)
	}
	id := in.ConversationID
	if id == "" {
		id = uuid.NewString()
	}
	if err := s.chats.SaveConversation(ctx, &models.Conversation{
		Base: models.Base{ID: id}, UserID: userID, Messages: string(history),
	}); err != nil {
		s.logger.Printf("[CHAT] save conversation %s: %v", id, err)
		return nil, err
	}

	return &ConverseResult{ConversationID: id, Message: reply}, nil
}

func (s *assistantService) Conversations(ctx context.Context, userID string) ([]ConversationView, error) {
	convs, err := s.chats.ListConversations(ctx, userID)
	if err != nil {
		s.logger.Printf("[CHAT] list conversations: %v", err)
		return nil, err
	}
	out := make([]ConversationView, 0, len(convs))
	for _, c := range convs {
		view := ConversationView{ID: c.ID, Messages: []llm.Message{}}
		if c.Messages != "" {
			if err := json.Unmarshal([]byte(c.Messages), &view.Messages); err != nil {
				s.logger.Printf("[CHAT] conversation %s is corrupt: %v", c.ID, err)
				continue
			}
		}
		out = append(out, view)
	}
	return out, nil
}

func (s *assistantService) activeChat(ctx context.Context, userID, chatID string) (string, error) {
	if chatID != "" {
		if _, err := s.ownedChat(ctx, userID, chatID); err != nil {
			return "", err
		}
		return chatID, nil
	}

	chat := &models.Chat{UserID: userID, Title: newChatTitle}
	if err := s.chats.CreateChat(ctx, chat); err != nil {
		s.logger.Printf("[AI] create chat: %v", err)
		return "", err
	}
	return chat.ID, nil
}

func (s *assistantService) ownedChat(ctx context.Context, userID, chatID string) (*models.Chat, error) {
	chat, err := s.chats.FindChat(ctx, chatID)
	if err != nil {
		return nil, notFound(err)
	}
	if chat.UserID != userID {
		return nil, ErrForbidden
	}
	return chat, nil
}

func chatTitle(question string) string {
	r := []rune(question)
	if len(r) > chatTitleRunes {
		r = r[:chatTitleRunes]
	}
	return string(r) + "..."
}
