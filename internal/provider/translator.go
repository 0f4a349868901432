package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error)
}

// OpenAITranslator translates display text with a chat model.
type OpenAITranslator struct {
	client chatCompleter
	model  string
	tracer trace.Tracer
}

// NewOpenAITranslator returns nil when no API key is configured.
func NewOpenAITranslator(apiKey, model string, tracer trace.Tracer) *OpenAITranslator {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil
	}
	if strings.TrimSpace(model) == "" {
		model = "gpt-4o-mini"
	}
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAITranslator{
		client: &openAIClient{client: client},
		model:  model,
		tracer: tracer,
	}
}

// Translate returns text rendered in lang. Callers fall back to the original on error.
func (t *OpenAITranslator) Translate(ctx context.Context, text, lang string) (string, error) {
	if t == nil {
		return text, nil
	}
	ctx, span := t.tracer.Start(ctx, "openai.translate")
	defer span.End()
	span.SetAttributes(attribute.String("lang", lang))

	if strings.TrimSpace(text) == "" || strings.TrimSpace(lang) == "" {
		return text, nil
	}

	completion, err := t.client.CreateChatCompletion(ctx, openai.ChatCompletionNewParams{
		Model: t.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(fmt.Sprintf("Translate the user's text to the language with code %q. Reply with the translation only, no quotes, no commentary.", lang)),
			openai.UserMessage(text),
		},
	})
	if err != nil {
		return "", fmt.Errorf("translate: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("translate: empty completion")
	}
	out := strings.TrimSpace(completion.Choices[0].Message.Content)
	if out == "" {
		return "", fmt.Errorf("translate: blank translation")
	}
	return out, nil
}

type openAIClient struct {
	client openai.Client
}

func (c *openAIClient) CreateChatCompletion(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error) {
	return c.client.Chat.Completions.New(ctx, params)
}
