package llm

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// GeminiClient calls the Gemini REST API through fiber's HTTP client.
type GeminiClient struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

func NewGeminiClient(apiKey, model, baseURL string, timeout time.Duration) *GeminiClient {
	return &GeminiClient{
		APIKey:  apiKey,
		Model:   model,
		BaseURL: strings.TrimRight(baseURL, "/"),
		Timeout: timeout,
	}
}

type generationConfig struct {
	MaxOutputTokens int `json:"maxOutputTokens,omitempty"`
}

type generateRequest struct {
	Contents         []Content         `json:"contents"`
	SafetySettings   []SafetySetting   `json:"safetySettings,omitempty"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content      Content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func (g *GeminiClient) endpoint() string {
	return fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		g.BaseURL, url.PathEscape(g.Model), url.QueryEscape(g.APIKey))
}

func (g *GeminiClient) Generate(ctx context.Context, req Request) (string, error) {
	if g.APIKey == "" {
		return "", ErrMissingAPIKey
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	body := generateRequest{Contents: req.Contents, SafetySettings: req.SafetySettings}
	if req.MaxOutputTokens > 0 {
		body.GenerationConfig = &generationConfig{MaxOutputTokens: req.MaxOutputTokens}
	}

	timeout := g.Timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); timeout <= 0 || left < timeout {
			timeout = left
		}
	}

	agent := fiber.Post(g.endpoint()).JSON(body)
	if timeout > 0 {
		agent.Timeout(timeout)
	}

	var resp generateResponse
	status, _, errs := agent.Struct(&resp)
	if len(errs) > 0 {
		return "", fmt.Errorf("gemini request: %w", errs[0])
	}
	if resp.Error != nil {
		return "", fmt.Errorf("gemini: %d %s: %s", resp.Error.Code, resp.Error.Status, resp.Error.Message)
	}
	if status >= fiber.StatusBadRequest {
		return "", fmt.Errorf("gemini: unexpected status %d", status)
	}
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: %s", ErrBlocked, resp.PromptFeedback.BlockReason)
	}
	if len(resp.Candidates) == 0 {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}
