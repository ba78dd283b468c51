package model

// Scope carries per-request caller identity through use cases.
type Scope struct {
	UserID   string
	Username string
}
