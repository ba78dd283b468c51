package model

// ChatMember is one entry of the conversation roster eligible for name
// resolution. It is supplied per call and never retained by the engine.
type ChatMember struct {
	ID   string // Opaque identifier owned by the caller
	Name string // Display name as stored in the workspace
}
