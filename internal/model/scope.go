package model

// Scope carries the authenticated user identity through a request.
// It is built by the delivery layer from gateway headers; nothing below
// the delivery layer may assume a fixed user.
type Scope struct {
	UserID      string
	DisplayName string
}
