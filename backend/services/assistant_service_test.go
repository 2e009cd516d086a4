package services

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"courtside/backend/llm"
	"courtside/backend/models"
	"courtside/backend/repository"
	"courtside/backend/testdata/mockllm"
	"courtside/backend/testdata/mockrepository"
)

type AssistantServiceTestSuite struct {
	suite.Suite

	chats     *mockrepository.ChatRepository
	generator *mockllm.Generator
	logs      *bytes.Buffer
	service   AssistantService
}

func TestAssistantServiceSuite(t *testing.T) {
	suite.Run(t, new(AssistantServiceTestSuite))
}

func (s *AssistantServiceTestSuite) SetupTest() {
	s.chats = &mockrepository.ChatRepository{}
	s.generator = &mockllm.Generator{}
	s.logs = &bytes.Buffer{}
	s.service = NewAssistantService(s.chats, s.generator, log.New(s.logs, "", 0))
}

func (s *AssistantServiceTestSuite) TestAsk_NewChat() {
	question := "How do I shoot a better free throw when I get nervous at the line?"
	s.chats.On("CreateChat", mock.Anything, mock.MatchedBy(func(c *models.Chat) bool {
		return c.UserID == "u1" && c.Title == "New Chat"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Chat).ID = "chat-1"
	}).Return(nil)
	s.generator.On("Generate", mock.Anything, mock.MatchedBy(func(req llm.Request) bool {
		text := req.Contents[0].Parts[0].Text
		return len(req.Contents) == 1 &&
			req.Contents[0].Role == llm.RoleUser &&
			strings.HasPrefix(text, "Your name is Coach Robert.") &&
			strings.HasSuffix(text, "User's message: "+question) &&
			req.SafetySettings[0].Threshold == "BLOCK_MEDIUM_AND_ABOVE"
	})).Return("Breathe and bend your knees.", nil)
	s.chats.On("CreateMessage", mock.Anything, mock.MatchedBy(func(m *models.ChatMessage) bool {
		return m.Sender == "u1" && m.Message == question && m.ChatID == "chat-1"
	})).Return(nil).Once()
	s.chats.On("CreateMessage", mock.Anything, mock.MatchedBy(func(m *models.ChatMessage) bool {
		return m.Sender == "Assistant" && m.Message == "Breathe and bend your knees."
	})).Return(nil).Once()
	s.chats.On("CountMessages", mock.Anything, "chat-1").Return(int64(2), nil)
	s.chats.On("UpdateTitle", mock.Anything, "chat-1", question[:50]+"...").Return(nil)

	res, err := s.service.Ask(context.Background(), "u1", AskInput{Messages: []llm.Message{
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "hello"},
		{Role: "user", Content: question},
	}})

	s.Require().NoError(err)
	s.Equal(&AskResult{ChatID: "chat-1", Message: "Breathe and bend your knees."}, res)
	s.chats.AssertExpectations(s.T())
}

func (s *AssistantServiceTestSuite) TestAsk_ExistingChatKeepsTitle() {
	s.chats.On("FindChat", mock.Anything, "chat-1").Return(&models.Chat{UserID: "u1"}, nil)
	s.generator.On("Generate", mock.Anything, mock.Anything).Return("1. Dribble\n2. Pass", nil)
	s.chats.On("CreateMessage", mock.Anything, mock.Anything).Return(nil)
	s.chats.On("CountMessages", mock.Anything, "chat-1").Return(int64(4), nil)

	res, err := s.service.Ask(context.Background(), "u1", AskInput{ChatID: "chat-1", Messages: []llm.Message{{Role: "user", Content: "drills?"}}})

	s.Require().NoError(err)
	s.Equal("- Dribble\n- Pass", res.Message)
	s.chats.AssertNotCalled(s.T(), "UpdateTitle", mock.Anything, mock.Anything, mock.Anything)
	s.chats.AssertNotCalled(s.T(), "CreateChat", mock.Anything, mock.Anything)
}

func (s *AssistantServiceTestSuite) TestAsk_ForeignChat() {
	s.chats.On("FindChat", mock.Anything, "chat-1").Return(&models.Chat{UserID: "u2"}, nil)

	_, err := s.service.Ask(context.Background(), "u1", AskInput{ChatID: "chat-1", Messages: []llm.Message{{Role: "user", Content: "hi"}}})

	s.ErrorIs(err, ErrForbidden)
	s.generator.AssertNotCalled(s.T(), "Generate", mock.Anything, mock.Anything)
}

func (s *AssistantServiceTestSuite) TestAsk_NoMessages() {
	_, err := s.service.Ask(context.Background(), "u1", AskInput{})

	var verr *ValidationError
	s.ErrorAs(err, &verr)
}

func (s *AssistantServiceTestSuite) TestAsk_GeneratorFailureIsLogged() {
	s.chats.On("CreateChat", mock.Anything, mock.Anything).Return(nil)
	s.generator.On("Generate", mock.Anything, mock.Anything).Return("", llm.ErrBlocked)

	_, err := s.service.Ask(context.Background(), "u1", AskInput{Messages: []llm.Message{{Role: "user", Content: "hi"}}})

	s.ErrorIs(err, llm.ErrBlocked)
	s.Contains(s.logs.String(), "[AI]")
	s.chats.AssertNotCalled(s.T(), "CreateMessage", mock.Anything, mock.Anything)
}

func (s *AssistantServiceTestSuite) TestMessages() {
	s.chats.On("FindChat", mock.Anything, "chat-1").Return(&models.Chat{UserID: "u1"}, nil)
	s.chats.On("ListMessages", mock.Anything, "chat-1").Return(nil, nil)

	msgs, err := s.service.Messages(context.Background(), "u1", "chat-1")
	s.Require().NoError(err)
	s.NotNil(msgs)

	_, err = s.service.Messages(context.Background(), "u1", "")
	var verr *ValidationError
	s.Require().ErrorAs(err, &verr)
	s.Equal("Chat ID is required", verr.Message)
}

func (s *AssistantServiceTestSuite) TestChats() {
	s.chats.On("ListChats", mock.Anything, "u1").Return([]models.Chat{
		{Base: models.Base{ID: "b"}, Title: "Zone defense..."},
		{Base: models.Base{ID: "a"}, Title: "New Chat"},
	}, nil)

	chats, err := s.service.Chats(context.Background(), "u1")

	s.Require().NoError(err)
	s.Equal([]ChatSummary{{ID: "b", Title: "Zone defense..."}, {ID: "a", Title: "New Chat"}}, chats)
}

func (s *AssistantServiceTestSuite) TestDeleteChat() {
	s.chats.On("FindChat", mock.Anything, "chat-1").Return(&models.Chat{UserID: "u1"}, nil)
	s.chats.On("FindChat", mock.Anything, "missing").Return(nil, repository.ErrNotFound)
	s.chats.On("DeleteChat", mock.Anything, "chat-1").Return(nil)

	s.NoError(s.service.DeleteChat(context.Background(), "u1", "chat-1"))
	s.ErrorIs(s.service.DeleteChat(context.Background(), "u1", "missing"), ErrNotFound)
}

func (s *AssistantServiceTestSuite) TestConverse_AssignsConversationID() {
	history := []llm.Message{{Role: "user", Content: "What is a travel?"}, {Role: "assistant", Content: "Too many steps."}, {Role: "user", Content: "And a carry?"}}
	s.generator.On("Generate", mock.Anything, llm.Request{
		Contents:        llm.ContentsFromHistory(history),
		MaxOutputTokens: 1000,
	}).Return("Palming the ball.", nil)
	var saved *models.Conversation
	s.chats.On("SaveConversation", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*models.Conversation)
	}).Return(nil)

	res, err := s.service.Converse(context.Background(), "u1", ConverseInput{Messages: history})

	s.Require().NoError(err)
	s.Equal("Palming the ball.", res.Message)
	s.NotEmpty(res.ConversationID)
	s.Require().NotNil(saved)
	s.Equal(res.ConversationID, saved.ID)
	s.JSONEq(`[{"role":"user","content":"What is a travel?"},{"role":"assistant","content":"Too many steps."},{"role":"user","content":"And a carry?"}]`, saved.Messages)
}

func (s *AssistantServiceTestSuite) TestConverse_KeepsConversationID() {
	s.generator.On("Generate", mock.Anything, mock.Anything).Return("ok", nil)
	s.chats.On("SaveConversation", mock.Anything, mock.MatchedBy(func(c *models.Conversation) bool { return c.ID == "conv-9" })).Return(nil)

	res, err := s.service.Converse(context.Background(), "u1", ConverseInput{ConversationID: "conv-9", Messages: []llm.Message{{Role: "user", Content: "hi"}}})

	s.Require().NoError(err)
	s.Equal("conv-9", res.ConversationID)
}

func (s *AssistantServiceTestSuite) TestConverse_GeneratorFailure() {
	s.generator.On("Generate", mock.Anything, mock.Anything).Return("", errors.New("quota"))

	_, err := s.service.Converse(context.Background(), "u1", ConverseInput{Messages: []llm.Message{{Role: "user", Content: "hi"}}})

	s.Error(err)
	s.chats.AssertNotCalled(s.T(), "SaveConversation", mock.Anything, mock.Anything)
}

func (s *AssistantServiceTestSuite) TestConversations_SkipsCorruptRows() {
	s.chats.On("ListConversations", mock.Anything, "u1").Return([]models.Conversation{
		{Base: models.Base{ID: "c1"}, Messages: `[{"role":"user","content":"hi"}]`},
		{Base: models.Base{ID: "c2"}, Messages: `not json`},
	}, nil)

	convs, err := s.service.Conversations(context.Background(), "u1")

	s.Require().NoError(err)
	s.Equal([]ConversationView{{ID: "c1", Messages: []llm.Message{{Role: "user", Content: "hi"}}}}, convs)
	s.Contains(s.logs.String(), "c2")
}

func (s *AssistantServiceTestSuite) TestChatTitle() {
	s.Equal("short...", chatTitle("short"))
	s.Equal(strings.Repeat("é", 50)+"...", chatTitle(strings.Repeat("é", 60)))
}
