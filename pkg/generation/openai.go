package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultOpenAIModel balances quality and cost for short-form copy.
	DefaultOpenAIModel = "gpt-4o-mini"

	openAIChatCompletionsURL = "https://api.openai.com/v1/chat/completions"

	defaultTimeout = 60 * time.Second
)

// lengthTokens maps the requested length to the provider's completion
// token budget.
var lengthTokens = map[string]int{
	LengthShort:  200,
	LengthMedium: 350,
	LengthLong:   600,
}

// The product generates Russian-language social media copy; the labels
// below are interpolated into the system prompt.
var toneLabels = map[string]string{
	ToneFriendly: "дружелюбном",
	ToneExpert:   "экспертном",
	ToneSales:    "продающем",
}

var typeLabels = map[string]string{
	TypePost:        "пост",
	TypeDescription: "описание",
	TypeHashtags:    "список хэштегов",
	TypeHeadline:    "заголовок",
}

// Completer produces text for a validated generation request.
type Completer interface {
	Complete(ctx context.Context, req Request) (*Result, error)
}

// OpenAIClient implements Completer using OpenAI's chat completions API.
type OpenAIClient struct {
	apiKey string
	model  string
	url    string
	client *http.Client
}

// OpenAIConfig configures the OpenAI client.
type OpenAIConfig struct {
	// APIKey is required for authentication with OpenAI.
	APIKey string `env:"OPENAI_API_KEY"`

	// Model overrides the default completion model.
	Model string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`

	// BaseURL overrides the completions endpoint. Tests point it at a
	// fake server.
	BaseURL string `env:"OPENAI_API_URL"`

	// HTTPClient allows custom HTTP client configuration.
	// Default: http.Client with 60s timeout.
	HTTPClient *http.Client
}

// NewOpenAIClient creates a chat completions client.
func NewOpenAIClient(config OpenAIConfig) (*OpenAIClient, error) {
	if config.APIKey == "" {
		return nil, ErrAPIKeyRequired
	}

	model := config.Model
	if model == "" {
		model = DefaultOpenAIModel
	}

	url := config.BaseURL
	if url == "" {
		url = openAIChatCompletionsURL
	}

	client := config.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}

	return &OpenAIClient{
		apiKey: config.APIKey,
		model:  model,
		url:    url,
		client: client,
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// systemPrompt frames the model as an SMM copywriter and pins the content
// type, topic, and tone.
func systemPrompt(req Request) string {
	return fmt.Sprintf("Ты опытный SMM-копирайтер. Сгенерируй %s по теме %q в %s тоне.",
		typeLabels[req.Type], req.Prompt, toneLabels[req.Tone])
}

// Complete sends one chat completion request and returns the trimmed text
// with the provider's token usage.
func (c *OpenAIClient) Complete(ctx context.Context, req Request) (*Result, error) {
	body, err := json.Marshal(chatCompletionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt(req)},
			{Role: "user", Content: req.Prompt},
		},
		MaxTokens: lengthTokens[req.Length],
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(respBody, &completion); err != nil {
		return nil, fmt.Errorf("%w: status %d: %s", ErrGenerationFailed, resp.StatusCode, respBody)
	}

	if resp.StatusCode != http.StatusOK {
		if completion.Error != nil {
			return nil, fmt.Errorf("%w: %s (%s)", ErrGenerationFailed, completion.Error.Message, completion.Error.Type)
		}
		return nil, fmt.Errorf("%w: status %d", ErrGenerationFailed, resp.StatusCode)
	}

	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty completion", ErrGenerationFailed)
	}

	text := strings.TrimSpace(completion.Choices[0].Message.Content)
	if text == "" {
		return nil, fmt.Errorf("%w: empty completion", ErrGenerationFailed)
	}

	return &Result{
		Text:       text,
		TokensUsed: completion.Usage.TotalTokens,
	}, nil
}
