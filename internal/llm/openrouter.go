package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"smart-meal-planner/internal/config"
)

const openRouterAPIURL = "https://openrouter.ai/api/v1/chat/completions"

// openRouterClient is a client for the OpenRouter chat completions API.
type openRouterClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
}

// NewOpenRouterClient creates a new OpenRouter API client.
func NewOpenRouterClient(cfg *config.Config) TextGenerator {
	return &openRouterClient{
		apiKey:  cfg.OpenRouterAPIKey,
		model:   cfg.OpenRouterModel,
		baseURL: openRouterAPIURL,
		httpClient: &http.Client{
			Timeout: 90 * time.Second,
		},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "openrouter",
			Timeout: 60 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		}),
	}
}

type openRouterRequest struct {
	Model          string              `json:"model"`
	Messages       []openRouterMessage `json:"messages"`
	ResponseFormat map[string]string   `json:"response_format"`
	Temperature    float64             `json:"temperature"`
}

type openRouterMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openRouterResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// GenerateContent sends the instruction pair to OpenRouter and returns
// the raw JSON-formatted completion. A single request is made per call.
func (c *openRouterClient) GenerateContent(ctx context.Context, system, user string, temperature float64) (ContentResponse, error) {
	if c.apiKey == "" {
		return ContentResponse{}, &AuthError{Reason: "OPENROUTER_API_KEY is not configured"}
	}

	reqBody := openRouterRequest{
		Model: c.model,
		Messages: []openRouterMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		ResponseFormat: map[string]string{"type": "json_object"},
		Temperature:    temperature,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return ContentResponse{}, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return ContentResponse{}, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("HTTP-Referer", "Smart-Meal-Planner")
	req.Header.Set("X-Title", "Smart Meal Planner")

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.httpClient.Do(req)
	})
	if err != nil {
		return ContentResponse{}, fmt.Errorf("failed to send request: %w", err)
	}
	resp := result.(*http.Response)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return ContentResponse{}, &TransportError{StatusCode: resp.StatusCode, Body: string(bodyBytes)}
	}

	var orResp openRouterResponse
	if err := json.NewDecoder(resp.Body).Decode(&orResp); err != nil {
		return ContentResponse{}, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(orResp.Choices) == 0 || orResp.Choices[0].Message.Content == "" {
		return ContentResponse{}, &EmptyResponseError{}
	}

	return ContentResponse{
		Content: orResp.Choices[0].Message.Content,
		Usage: TokenUsage{
			PromptTokens:     orResp.Usage.PromptTokens,
			CompletionTokens: orResp.Usage.CompletionTokens,
			TotalTokens:      orResp.Usage.TotalTokens,
			Model:            c.model,
		},
	}, nil
}
