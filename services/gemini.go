package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-1.5-flash"

// Generator is the part of the Gemini SDK the assistant depends on.
// (*genai.Client).Models satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// NewGeminiClient builds a Gemini API client. An empty key lets the SDK fall
// back to GEMINI_API_KEY / GOOGLE_API_KEY from the environment.
func NewGeminiClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	config := &genai.ClientConfig{Backend: genai.BackendGeminiAPI}
	if apiKey != "" {
		config.APIKey = apiKey
	}
	return genai.NewClient(ctx, config)
}

// Assistant answers questions through a Gemini model.
type Assistant struct {
	generator Generator
	model     string
	sleep     func(context.Context, time.Duration) error
}

type AssistantOption func(*Assistant)

// WithSleep replaces the function used to wait between quota retries.
func WithSleep(sleep func(context.Context, time.Duration) error) AssistantOption {
	return func(a *Assistant) {
		a.sleep = sleep
	}
}

func NewAssistant(generator Generator, model string, opts ...AssistantOption) *Assistant {
	if model == "" {
		model = defaultGeminiModel
	}
	a := &Assistant{
		generator: generator,
		model:     model,
		sleep:     sleepContext,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Model returns the model name used for every call.
func (a *Assistant) Model() string {
	return a.model
}

func (a *Assistant) generate(ctx context.Context, operation string, attempt int, contents []*genai.Content) (string, error) {
	return traceGenerate(ctx, a.model, operation, attempt, func(ctx context.Context) (string, error) {
		resp, err := a.generator.GenerateContent(ctx, a.model, contents, nil)
		if err != nil {
			return "", err
		}
		return responseText(resp), nil
	})
}

// responseText prefers the candidate text and falls back to the raw response.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	if text := resp.Text(); text != "" {
		return text
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return fmt.Sprintf("%+v", *resp)
	}
	return string(raw)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
