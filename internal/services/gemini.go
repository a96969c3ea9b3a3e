package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiCompleter serves completions from Google's Gemini API.
type GeminiCompleter struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	modelName string
}

func NewGeminiCompleter(ctx context.Context, apiKey, modelName string) (*GeminiCompleter, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.3)
	model.SetTopP(0.95)

	return &GeminiCompleter{
		client:    client,
		model:     model,
		modelName: modelName,
	}, nil
}

func (g *GeminiCompleter) Close() {
	g.client.Close()
}

func (g *GeminiCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", &ErrProviderUnavailable{Err: fmt.Errorf("Gemini API error: %w", err)}
	}

	return completionText(resp)
}

// completionText joins the text parts of every candidate.
func completionText(resp *genai.GenerateContentResponse) (string, error) {
	for i, cand := range resp.Candidates {
		if cand.FinishReason != genai.FinishReasonStop {
			log.Printf("WARNING: Gemini candidate %d stopped due to %s", i, cand.FinishReason)
		}
	}

	text := extractText(resp)
	if text == "" {
		return "", &ErrInvalidResponse{Err: fmt.Errorf("Gemini returned no text")}
	}
	return text, nil
}

func (g *GeminiCompleter) ModelID() string {
	return g.modelName
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
