package responder

import (
	"context"
	"fmt"
	"strings"

	"collab-assistant/pkg/gemini"
)

// Converse sends the persona prompt, the fixed priming exchange, and the
// user's message to the LLM and returns the first candidate's text.
func (r *GeminiResponder) Converse(ctx context.Context, message string) (string, error) {
	req := gemini.GenerateRequest{
		SystemInstruction: &gemini.Content{
			Parts: []gemini.Part{{Text: PersonaPrompt}},
		},
		Contents: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: PrimingUserTurn}}},
			{Role: "model", Parts: []gemini.Part{{Text: PrimingModelTurn}}},
			{Role: "user", Parts: []gemini.Part{{Text: message}}},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature: responderTemperature,
		},
	}

	resp, err := r.llm.GenerateContent(ctx, req)
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from LLM")
	}

	return resp.Candidates[0].Content.Parts[0].Text, nil
}

// Apology maps a conversational failure to a static user-facing message.
// The unreachable variant is chosen by inspecting the error text.
func Apology(err error) string {
	if err == nil {
		return MsgGenericFailure
	}
	msg := err.Error()
	for _, marker := range unreachableMarkers {
		if strings.Contains(msg, marker) {
			return MsgServiceUnreachable
		}
	}
	return MsgGenericFailure
}
