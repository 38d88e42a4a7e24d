package translate_openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"

	"translate-bridge/pkg/types"
)

const defaultModel = "gpt-5-nano"

type Client struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(openAIConfig types.OpenAIConfig) *Client {
	c := openai.NewClient(option.WithAPIKey(openAIConfig.APIKey))

	model := openAIConfig.Model
	if model == "" {
		model = defaultModel
	}
	return &Client{client: &c, model: model}
}

// Complete sends the prompt through the Responses API and returns the output text
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Responses.New(ctx, responses.ResponseNewParams{
		Model: c.model,
		Input: responses.ResponseNewParamsInputUnion{OfString: openai.String(prompt)},
	})
	if err != nil {
		return "", fmt.Errorf("openai response: %w", err)
	}

	text := strings.TrimSpace(resp.OutputText())
	if text == "" {
		return "", errors.New("openai returned an empty answer")
	}
	return text, nil
}
