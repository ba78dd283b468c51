package usecase

import (
	"context"
	"strings"

	"collab-command-engine/internal/model"
	"collab-command-engine/internal/parser"
)

// ParseMessage runs the full pipeline over one chat message: guards, the
// three matchers (independent, over the same input), reconciliation, and
// the summary line. It holds no state across calls and is safe to run
// concurrently; the roster is borrowed read-only for the duration.
func (uc *implUseCase) ParseMessage(ctx context.Context, sc model.Scope, input parser.ParseInput) (parser.ParseOutput, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return parser.ParseOutput{}, parser.ErrEmptyContent
	}

	now := input.Now
	if now.IsZero() {
		now = uc.nowFn()
	}
	now = now.In(uc.dates.Location())

	if uc.shouldSkip(content) {
		uc.l.Debugf(ctx, "ParseMessage: guard rejected message user=%s len=%d", sc.UserID, len(content))
		return parser.ParseOutput{}, nil
	}

	taskAct := uc.matchTask(content, input.Members, input.ProjectID, now)
	eventAct := uc.matchEvent(content, input.Members, input.ProjectID, now)
	locAct := uc.matchLocation(content)

	eventAct, locAct = uc.reconcile(eventAct, locAct, input.Members)

	actions := make([]model.ParsedAction, 0, 3)
	for _, a := range []*model.ParsedAction{taskAct, eventAct, locAct} {
		if a != nil {
			actions = append(actions, *a)
		}
	}

	if len(actions) == 0 {
		return parser.ParseOutput{}, nil
	}

	uc.l.Infof(ctx, "ParseMessage: extracted %d action(s) user=%s", len(actions), sc.UserID)

	return parser.ParseOutput{
		HasAction:    true,
		ReplyMessage: uc.summarize(actions),
		Actions:      actions,
	}, nil
}
