package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"translate-bridge/pkg/types"
)

const defaultModel = "gemini-2.5-flash"

type Client struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, geminiConfig types.GeminiConfig) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  geminiConfig.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := geminiConfig.Model
	if model == "" {
		model = defaultModel
	}
	return &Client{
		client: client,
		model:  model,
	}, nil
}

// Complete sends a single-turn prompt to Gemini and returns the text of the answer
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx,
		c.model,
		[]*genai.Content{
			{
				Role: "user",
				Parts: []*genai.Part{
					{
						Text: prompt,
					},
				},
			},
		},
		&genai.GenerateContentConfig{},
	)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errors.New("gemini returned an empty answer")
	}
	return text, nil
}
