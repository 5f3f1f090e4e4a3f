package command

import "errors"

// Domain-specific errors for the command package.
var (
	ErrEmptyMessage = errors.New("message is empty")
)
