// Package llm talks to the hosted text-generation API behind the assistant.
package llm

import (
	"context"
	"errors"
)

var (
	ErrMissingAPIKey = errors.New("GEMINI_API_KEY is not set")
	ErrBlocked       = errors.New("prompt blocked by safety filters")
	ErrEmptyResponse = errors.New("model returned no candidates")
)

const (
	RoleUser  = "user"
	RoleModel = "model"
)

type Part struct {
	Text string `json:"text"`
}

type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

type SafetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

// Request is one generateContent call.
type Request struct {
	Contents        []Content
	SafetySettings  []SafetySetting
	MaxOutputTokens int
}

// Generator produces a single text completion.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Message is a chat turn as the browser sends it.
type Message struct {
	Role    string `json:"role" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// UserText wraps text as a single user turn.
func UserText(text string) Content {
	return Content{Role: RoleUser, Parts: []Part{{Text: text}}}
}

// ContentsFromHistory maps chat turns to model contents. Only "user" keeps
// its role, every other sender is treated as the model.
func ContentsFromHistory(messages []Message) []Content {
	contents := make([]Content, 0, len(messages))
	for _, m := range messages {
		role := RoleModel
		if m.Role == RoleUser {
			role = RoleUser
		}
		contents = append(contents, Content{Role: role, Parts: []Part{{Text: m.Content}}})
	}
	return contents
}
