package model

// Note is a memo stored in the workspace backend.
type Note struct {
	ID      string
	Title   string
	Content string
	Tags    []string
	Pinned  bool
	Author  string
}
