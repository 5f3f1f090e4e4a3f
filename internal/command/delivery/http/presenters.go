package http

import (
	"collab-assistant/internal/command"
	"collab-assistant/internal/router"
	"collab-assistant/pkg/response"
)

// Identity headers set by the chat frontend.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserName = "X-User-Name"
)

// --- Request DTOs ---

type interpretReq struct {
	Message string `json:"message" binding:"required,max=2000"`
}

func (r interpretReq) toInput() command.InterpretInput {
	return command.InterpretInput{Message: r.Message}
}

// --- Response DTOs ---

type parsedCommandResp struct {
	Action       router.Action      `json:"action"`
	Entity       router.Entity      `json:"entity"`
	Title        string             `json:"title,omitempty"`
	ResolvedDate *response.DateTime `json:"resolved_date,omitempty"`
	HasTime      bool               `json:"has_time,omitempty"`
	Content      string             `json:"content,omitempty"`
	OriginalText string             `json:"original_text"`
}

type interpretResp struct {
	ResponseText string             `json:"response_text"`
	Command      *parsedCommandResp `json:"command,omitempty"`
}

func newParsedCommandResp(cmd *command.ParsedCommand) *parsedCommandResp {
	if cmd == nil {
		return nil
	}
	resp := &parsedCommandResp{
		Action:       cmd.Action,
		Entity:       cmd.Entity,
		Title:        cmd.Title,
		HasTime:      cmd.HasTime,
		Content:      cmd.Content,
		OriginalText: cmd.OriginalText,
	}
	if cmd.ResolvedDate != nil {
		dt := response.DateTime(*cmd.ResolvedDate)
		resp.ResolvedDate = &dt
	}
	return resp
}

func (h *handler) newInterpretResp(out command.InterpretOutput) interpretResp {
	return interpretResp{
		ResponseText: out.ResponseText,
		Command:      newParsedCommandResp(out.Command),
	}
}
