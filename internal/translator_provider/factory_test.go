package translator_provider

import (
	"context"
	"testing"

	"translate-bridge/pkg/types"
)

func TestCreateProviderUnsupported(t *testing.T) {
	f := NewFactory(&types.Config{Translator: types.TranslatorConfig{Provider: "marian"}})

	if _, err := f.CreateConfigured(context.Background()); err == nil {
		t.Fatal("expected an error for an unknown provider")
	}
}

func TestCreateProviderOpenAI(t *testing.T) {
	f := NewFactory(&types.Config{OpenAI: types.OpenAIConfig{APIKey: "sk-test"}})

	p, err := f.CreateProvider(context.Background(), ProviderOpenAI)
	if err != nil {
		t.Fatalf("CreateProvider(openai) error: %v", err)
	}
	if p == nil {
		t.Fatal("CreateProvider(openai) returned nil provider")
	}
}
