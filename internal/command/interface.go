package command

import (
	"context"

	"collab-assistant/internal/model"
)

// UseCase is the business logic interface for the assistant command domain.
type UseCase interface {
	// Interpret classifies a chat message, resolves temporal expressions,
	// dispatches the matching store operation, and returns a display-ready
	// reply. Downstream failures are converted to user-facing text; the only
	// error surfaced to the caller is empty input.
	Interpret(ctx context.Context, sc model.Scope, input InterpretInput) (InterpretOutput, error)
}
