package services

import (
	"errors"
	"testing"

	"github.com/google/generative-ai-go/genai"
)

func TestCompletionText_JoinsTextParts(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Role:  "model",
					Parts: []genai.Part{genai.Text("Step 1: add.\n"), genai.Text("Difficulty Level: Easy")},
				},
				FinishReason: genai.FinishReasonStop,
			},
		},
	}

	got, err := completionText(resp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Step 1: add.\nDifficulty Level: Easy" {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestCompletionText_SkipsNonTextParts(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: nil, FinishReason: genai.FinishReasonSafety},
			{
				Content: &genai.Content{
					Parts: []genai.Part{genai.Blob{MIMEType: "image/png", Data: []byte{1}}, genai.Text("ok")},
				},
				FinishReason: genai.FinishReasonStop,
			},
		},
	}

	got, err := completionText(resp)
	if err != nil || got != "ok" {
		t.Fatalf("expected \"ok\", got %q (%v)", got, err)
	}
}

func TestCompletionText_NoCandidates(t *testing.T) {
	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
	}{
		{"no candidates", &genai.GenerateContentResponse{}},
		{"blocked candidate", &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonSafety}},
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := completionText(tc.resp)
			var ir *ErrInvalidResponse
			if !errors.As(err, &ir) {
				t.Fatalf("expected ErrInvalidResponse, got %T (%v)", err, err)
			}
		})
	}
}
