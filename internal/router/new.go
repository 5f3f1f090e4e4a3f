package router

import (
	"context"

	"collab-assistant/pkg/log"
)

// Router is the interface for command classification.
type Router interface {
	Classify(ctx context.Context, message string) RouterOutput
}

// KeywordRouter classifies user intent with closed keyword vocabularies.
// The command surface is narrow (four actions, three entity types), so an
// ordered rule table is enough; no model call is involved.
type KeywordRouter struct {
	l log.Logger
}

// Ensure KeywordRouter implements Router interface
var _ Router = (*KeywordRouter)(nil)

// New creates a new KeywordRouter.
func New(l log.Logger) *KeywordRouter {
	return &KeywordRouter{l: l}
}
