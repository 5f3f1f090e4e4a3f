package http

import (
	"collab-assistant/internal/command"
	"collab-assistant/pkg/log"
)

type handler struct {
	l  log.Logger
	uc command.UseCase
}

// New creates a new HTTP handler for the assistant command domain.
func New(l log.Logger, uc command.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
