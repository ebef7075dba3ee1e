package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"leadadapter/errs"
)

const defaultBaseURL = "https://api.openai.com/v1"

// OpenAIClient talks to the OpenAI chat completions API.
type OpenAIClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewOpenAIClient builds a client for the given key and model. A zero
// timeout falls back to 30 seconds.
func NewOpenAIClient(apiKey, model string, timeout time.Duration) *OpenAIClient {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &OpenAIClient{
		apiKey:     apiKey,
		model:      model,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
}

// Complete implements Client.
func (c *OpenAIClient) Complete(ctx context.Context, prompt, systemPrompt string, temperature float64, maxOutputTokens int) (Response, error) {
	req := chatRequest{
		Model:       c.model,
		Messages:    buildMessages(prompt, systemPrompt),
		Temperature: temperature,
		MaxTokens:   maxOutputTokens,
	}
	return c.send(ctx, req)
}

// CompleteJSON implements Client. JSON mode is enforced both via the API's
// response format and a reinforcing system instruction.
func (c *OpenAIClient) CompleteJSON(ctx context.Context, prompt, systemPrompt string, temperature float64) (Response, error) {
	system := systemPrompt
	if system != "" {
		system += "\n"
	}
	system += "Respond only with valid JSON"

	req := chatRequest{
		Model:          c.model,
		Messages:       buildMessages(prompt, system),
		Temperature:    temperature,
		ResponseFormat: &responseFormat{Type: "json_object"},
	}
	return c.send(ctx, req)
}

// CountTokens approximates the token count at four characters per token,
// the usual rule of thumb for GPT-family tokenizers.
func (c *OpenAIClient) CountTokens(text string) int {
	return (len(text) + 3) / 4
}

func buildMessages(prompt, systemPrompt string) []chatMessage {
	var msgs []chatMessage
	if systemPrompt != "" {
		msgs = append(msgs, chatMessage{Role: "system", Content: systemPrompt})
	}
	return append(msgs, chatMessage{Role: "user", Content: prompt})
}

func (c *OpenAIClient) send(ctx context.Context, req chatRequest) (Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return Response{}, fmt.Errorf("failed to encode completion request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return Response{}, fmt.Errorf("failed to build completion request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Response{}, errs.NewLLM("request", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, errs.NewLLM("read response", err)
	}
	if resp.StatusCode != http.StatusOK {
		return Response{}, errs.NewLLM("request", fmt.Errorf("status %d: %s", resp.StatusCode, respBody))
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return Response{}, errs.NewLLM("decode response", err)
	}
	if len(parsed.Choices) == 0 {
		return Response{}, errs.NewLLM("decode response", fmt.Errorf("no choices returned"))
	}

	return Response{
		Content:        parsed.Choices[0].Message.Content,
		PromptTokens:   parsed.Usage.PromptTokens,
		ResponseTokens: parsed.Usage.CompletionTokens,
		Model:          parsed.Model,
	}, nil
}
