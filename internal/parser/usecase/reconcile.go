package usecase

import (
	"collab-command-engine/internal/model"
)

// reconcile merges a standalone location candidate into a co-occurring
// event: the location's title (address preferred when present) becomes the
// event's venue and the standalone candidate is dropped, since it was
// describing the same event. Event title cleaning runs here, after the
// merge, so it sees the final reconciled state.
func (uc *implUseCase) reconcile(event, loc *model.ParsedAction, members []model.ChatMember) (*model.ParsedAction, *model.ParsedAction) {
	if event != nil && loc != nil {
		venue := loc.Location.Title
		if loc.Location.Address != "" {
			venue = loc.Location.Address
		}
		event.Event.Location = venue
		loc = nil
	}

	if event != nil {
		event.Event.Title = uc.cleanEventTitle(event.Event.Title, members)
	}

	return event, loc
}
