package provider

import (
	"context"
	"errors"
	"testing"

	"github.com/openai/openai-go"
	"go.opentelemetry.io/otel/trace"
)

type fakeCompleter struct {
	reply string
	err   error
	got   openai.ChatCompletionNewParams
}

func (f *fakeCompleter) CreateChatCompletion(_ context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error) {
	f.got = params
	if f.err != nil {
		return nil, f.err
	}
	return &openai.ChatCompletion{
		Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Content: f.reply}}},
	}, nil
}

func newTestTranslator(c chatCompleter) *OpenAITranslator {
	return &OpenAITranslator{client: c, model: "test-model", tracer: trace.NewNoopTracerProvider().Tracer("test")}
}

func TestNewOpenAITranslatorRequiresKey(t *testing.T) {
	if NewOpenAITranslator("  ", "", trace.NewNoopTracerProvider().Tracer("test")) != nil {
		t.Fatal("expected nil translator without api key")
	}
}

func TestOpenAITranslatorTranslate(t *testing.T) {
	fake := &fakeCompleter{reply: "  Биткоин растёт \n"}
	tr := newTestTranslator(fake)

	out, err := tr.Translate(context.Background(), "Bitcoin rises", "ru")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Биткоин растёт" {
		t.Fatalf("unexpected translation %q", out)
	}
	if fake.got.Model != "test-model" || len(fake.got.Messages) != 2 {
		t.Fatalf("unexpected request: %+v", fake.got)
	}
}

func TestOpenAITranslatorSkipsEmpty(t *testing.T) {
	fake := &fakeCompleter{err: errors.New("should not be called")}
	tr := newTestTranslator(fake)

	out, err := tr.Translate(context.Background(), "hello", "")
	if err != nil || out != "hello" {
		t.Fatalf("expected passthrough, got %q %v", out, err)
	}
}

func TestOpenAITranslatorErrors(t *testing.T) {
	tr := newTestTranslator(&fakeCompleter{err: errors.New("quota")})
	if _, err := tr.Translate(context.Background(), "hello", "de"); err == nil {
		t.Fatal("expected error")
	}

	tr = newTestTranslator(&fakeCompleter{reply: "   "})
	if _, err := tr.Translate(context.Background(), "hello", "de"); err == nil {
		t.Fatal("expected blank translation error")
	}
}
