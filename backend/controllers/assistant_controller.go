package controllers

import (
	"github.com/gofiber/fiber/v2"

	"courtside/backend/middleware"
	"courtside/backend/services"
	"courtside/backend/utils"
)

type AssistantController struct {
	Assistant services.AssistantService
}

func NewAssistantController(assistant services.AssistantService) *AssistantController {
	return &AssistantController{Assistant: assistant}
}

// Ask answers one question as the basketball coach.
func (ac *AssistantController) Ask(c *fiber.Ctx) error {
	var input services.AskInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	res, err := ac.Assistant.Ask(c.UserContext(), middleware.UserID(c), input)
	if err != nil {
		return respondError(c, err, "Internal Server Error")
	}
	return c.JSON(res)
}

func (ac *AssistantController) GetMessages(c *fiber.Ctx) error {
	msgs, err := ac.Assistant.Messages(c.UserContext(), middleware.UserID(c), c.Query("chatId"))
	if err != nil {
		return respondError(c, err, "Failed to fetch messages")
	}
	return c.JSON(msgs)
}

func (ac *AssistantController) ListChats(c *fiber.Ctx) error {
	chats, err := ac.Assistant.Chats(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return respondError(c, err, "Failed to fetch chats")
	}
	return c.JSON(chats)
}

func (ac *AssistantController) DeleteChat(c *fiber.Ctx) error {
	if err := ac.Assistant.DeleteChat(c.UserContext(), middleware.UserID(c), c.Params("chatId")); err != nil {
		return respondError(c, err, "Failed to delete chat")
	}
	return c.JSON(fiber.Map{"success": true})
}

func (ac *AssistantController) Chat(c *fiber.Ctx) error {
	var input services.ConverseInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	res, err := ac.Assistant.Converse(c.UserContext(), middleware.UserID(c), input)
	if err != nil {
		return respondError(c, err, "An error occurred during the chat process")
	}
	c.Set("X-Conversation-Id", res.ConversationID)
	return c.JSON(res)
}

func (ac *AssistantController) Conversations(c *fiber.Ctx) error {
	convs, err := ac.Assistant.Conversations(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return respondError(c, err, "An error occurred while fetching conversations")
	}
	return c.JSON(convs)
}
