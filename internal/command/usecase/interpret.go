package usecase

import (
	"context"
	"strings"

	"collab-assistant/internal/command"
	"collab-assistant/internal/model"
	"collab-assistant/internal/responder"
	"collab-assistant/internal/router"
)

// Interpret is the sole entry point for one chat message. It always returns
// a display-ready string; the only surfaced error is empty input.
func (uc *implUseCase) Interpret(ctx context.Context, sc model.Scope, input command.InterpretInput) (command.InterpretOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		uc.l.Warnf(ctx, "%s: empty message", LogPrefixInterpret)
		return command.InterpretOutput{}, command.ErrEmptyMessage
	}

	out := uc.router.Classify(ctx, message)
	if out.Action == router.ActionChat {
		return uc.converse(ctx, message), nil
	}

	cmd := &command.ParsedCommand{
		Action:       out.Action,
		Entity:       out.Entity,
		Title:        uc.extractTitle(message),
		OriginalText: message,
	}
	if resolved, ok := uc.parser.Resolve(message, uc.now()); ok {
		cmd.ResolvedDate = &resolved.Time
		cmd.HasTime = resolved.HasClock
	}
	if cmd.Entity == router.EntityMemo {
		cmd.Content = uc.stripToResidue(message)
	}

	return command.InterpretOutput{
		ResponseText: uc.dispatch(ctx, sc, cmd),
		Command:      cmd,
	}, nil
}

// converse forwards the message verbatim to the conversational fallback.
// A failed call degrades to a static apology instead of an error.
func (uc *implUseCase) converse(ctx context.Context, message string) command.InterpretOutput {
	reply, err := uc.responder.Converse(ctx, message)
	if err != nil {
		uc.l.Errorf(ctx, "%s: conversational fallback failed: %v", LogPrefixInterpret, err)
		return command.InterpretOutput{ResponseText: responder.Apology(err)}
	}
	return command.InterpretOutput{ResponseText: reply}
}
