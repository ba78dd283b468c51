package parser

import (
	"time"

	"collab-command-engine/internal/model"
)

// ParseInput is one inbound chat message plus the context needed to
// resolve it: the conversation roster and the reference clock.
type ParseInput struct {
	Content   string
	Members   []model.ChatMember // Roster eligible for name resolution
	ProjectID string             // Passed through to produced actions unchanged
	Now       time.Time          // Reference "now"; zero means wall clock
}

// ParseOutput is the full extraction result for one message. Actions keep
// matcher-then-reconciliation order: task, event, location, with the
// location dropped when it was absorbed into the event.
type ParseOutput struct {
	HasAction    bool
	ReplyMessage string // One summary line per action; empty when no actions
	Actions      []model.ParsedAction
}
