package parser

import (
	"context"

	"collab-command-engine/internal/model"
)

// UseCase is the command-extraction engine: it reads one free-form chat
// message and decides whether it contains an actionable request.
type UseCase interface {
	// ParseMessage runs the guard/matcher/reconcile pipeline over a single
	// message. It is pure: for a fixed (content, members, now) the result is
	// identical on every call. Unparseable input degrades to an empty
	// result, never an error; the only error is an empty content string.
	ParseMessage(ctx context.Context, sc model.Scope, input ParseInput) (ParseOutput, error)
}
