// Package groq is a client for the OpenAI compatible chat completion endpoint of Groq.
package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/samandr77/microservices/erp/internal/entity"
	"github.com/samandr77/microservices/erp/pkg/config"
	"github.com/samandr77/microservices/erp/pkg/transport"
)

const completionsPath = "/openai/v1/chat/completions"

type Client struct {
	http    *http.Client
	stream  *http.Client
	baseURL string
	apiKey  string
	model   string
}

func NewClient(cfg config.Groq) *Client {
	return &Client{
		http: transport.NewRetryClient(1, cfg.Timeout),
		// Streams stay open as long as the model writes, the request context bounds them.
		stream:  transport.NewRetryClient(1, 0),
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
	}
}

func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type Request struct {
	Messages    []entity.ChatMessage
	Model       string
	Temperature float64
	MaxTokens   int
	JSONObject  bool
}

type completionRequest struct {
	Model          string               `json:"model"`
	Messages       []entity.ChatMessage `json:"messages"`
	Temperature    float64              `json:"temperature"`
	MaxTokens      int                  `json:"max_tokens"`
	Stream         bool                 `json:"stream,omitempty"`
	ResponseFormat *responseFormat      `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete returns the content of the first choice.
func (c *Client) Complete(ctx context.Context, r Request) (string, error) {
	resp, err := c.send(ctx, c.http, r, false)
	if err != nil {
		return "", err
	}

	defer resp.Body.Close()

	var out completionResponse

	err = json.NewDecoder(resp.Body).Decode(&out)
	if err != nil {
		return "", fmt.Errorf("%w: decode completion: %w", entity.ErrProvider, err)
	}

	if len(out.Choices) == 0 {
		return "", nil
	}

	return out.Choices[0].Message.Content, nil
}

// Stream starts a streaming completion. The caller owns the returned body, which is the raw
// server-sent event stream.
func (c *Client) Stream(ctx context.Context, r Request) (*Stream, error) {
	resp, err := c.send(ctx, c.stream, r, true)
	if err != nil {
		return nil, err
	}

	return NewStream(resp.Body), nil
}

func (c *Client) send(ctx context.Context, client *http.Client, r Request, stream bool) (*http.Response, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("%w: GROQ_API_KEY ayarlanmadı", entity.ErrNotConfigured)
	}

	body := completionRequest{
		Model:       r.Model,
		Messages:    r.Messages,
		Temperature: r.Temperature,
		MaxTokens:   r.MaxTokens,
		Stream:      stream,
	}

	if body.Model == "" {
		body.Model = c.model
	}

	if r.JSONObject {
		body.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	j, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+completionsPath, bytes.NewReader(j))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: send request: %w", entity.ErrProvider, err)
	}

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		_ = resp.Body.Close()

		return nil, &StatusError{Code: resp.StatusCode}
	}

	return resp, nil
}

// StatusError is a non-200 answer of the API.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Groq API error: %d", e.Code)
}

func (e *StatusError) Unwrap() error {
	return entity.ErrProvider
}
