package command

import (
	"time"

	"collab-assistant/internal/router"
)

// ParsedCommand is the transient result of interpreting one utterance.
// Constructed fresh per message, consumed synchronously, then discarded;
// no conversational memory is carried between commands.
type ParsedCommand struct {
	Action       router.Action `json:"action"`
	Entity       router.Entity `json:"entity"`
	Title        string        `json:"title,omitempty"`
	ResolvedDate *time.Time    `json:"resolved_date,omitempty"`
	// HasTime is true when the message named an explicit clock time, so a
	// resolved midnight is not mistaken for a date-only command.
	HasTime      bool   `json:"has_time,omitempty"`
	Content      string `json:"content,omitempty"`
	OriginalText string `json:"original_text"`
}

// InterpretInput is the inbound payload for one chat message.
type InterpretInput struct {
	Message string
}

// InterpretOutput is the result of interpreting one chat message.
// Command is nil when the message fell through to conversation.
type InterpretOutput struct {
	ResponseText string
	Command      *ParsedCommand
}
