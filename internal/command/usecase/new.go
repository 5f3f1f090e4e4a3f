package usecase

import (
	"time"

	"collab-assistant/internal/command"
	"collab-assistant/internal/command/repository"
	"collab-assistant/internal/responder"
	"collab-assistant/internal/router"
	"collab-assistant/pkg/datemath"
	"collab-assistant/pkg/log"
)

type implUseCase struct {
	l         log.Logger
	router    router.Router
	parser    *datemath.Parser
	eventRepo repository.EventRepository
	taskRepo  repository.TaskRepository
	noteRepo  repository.NoteRepository
	responder responder.Responder
	now       func() time.Time
}

var _ command.UseCase = &implUseCase{}

// New creates a new command use case.
func New(
	l log.Logger,
	rt router.Router,
	parser *datemath.Parser,
	eventRepo repository.EventRepository,
	taskRepo repository.TaskRepository,
	noteRepo repository.NoteRepository,
	rsp responder.Responder,
) command.UseCase {
	return &implUseCase{
		l:         l,
		router:    rt,
		parser:    parser,
		eventRepo: eventRepo,
		taskRepo:  taskRepo,
		noteRepo:  noteRepo,
		responder: rsp,
		now:       time.Now,
	}
}
