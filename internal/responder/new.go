package responder

import (
	"context"

	"collab-assistant/pkg/gemini"
	"collab-assistant/pkg/log"
)

// Responder is the conversational fallback for unclassified messages.
type Responder interface {
	// Converse forwards the message to the text-generation collaborator and
	// returns its reply verbatim. Stateless per call: only the fixed priming
	// exchange is carried, never prior command history.
	Converse(ctx context.Context, message string) (string, error)
}

// GeminiResponder answers free conversation through the Gemini API.
type GeminiResponder struct {
	llm *gemini.Client
	l   log.Logger
}

// Ensure GeminiResponder implements Responder interface
var _ Responder = (*GeminiResponder)(nil)

// New creates a new GeminiResponder.
func New(llm *gemini.Client, l log.Logger) *GeminiResponder {
	return &GeminiResponder{llm: llm, l: l}
}
