package workspace

import (
	"context"
	"fmt"

	"collab-assistant/internal/command/repository"
	"collab-assistant/internal/model"
	pkgLog "collab-assistant/pkg/log"
)

// noteRow is the notes table wire representation.
type noteRow struct {
	ID      string   `json:"id,omitempty"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags,omitempty"`
	Pinned  bool     `json:"pinned"`
	Author  string   `json:"author,omitempty"`
}

type implNoteRepository struct {
	client *Client
	l      pkgLog.Logger
}

// NewNoteRepository creates a note repository over the workspace backend.
func NewNoteRepository(client *Client, l pkgLog.Logger) repository.NoteRepository {
	return &implNoteRepository{client: client, l: l}
}

func (r *implNoteRepository) Create(ctx context.Context, opt repository.CreateNoteOptions) (model.Note, error) {
	row := noteRow{
		Title:   opt.Title,
		Content: opt.Content,
		Tags:    opt.Tags,
		Pinned:  opt.Pinned,
		Author:  opt.Author,
	}

	var created []noteRow
	if err := r.client.post(ctx, "notes", row, &created); err != nil {
		r.l.Errorf(ctx, "workspace repository: failed to create note %q: %v", opt.Title, err)
		return model.Note{}, err
	}
	if len(created) == 0 {
		return model.Note{}, fmt.Errorf("workspace API returned no note row")
	}

	c := created[0]
	return model.Note{
		ID:      c.ID,
		Title:   c.Title,
		Content: c.Content,
		Tags:    c.Tags,
		Pinned:  c.Pinned,
		Author:  c.Author,
	}, nil
}
