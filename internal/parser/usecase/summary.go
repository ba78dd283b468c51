package usecase

import (
	"fmt"
	"strings"
	"time"

	"collab-command-engine/internal/model"
)

// summarize renders one human-readable line per surviving candidate, in
// action order. This becomes the reply message verbatim.
func (uc *implUseCase) summarize(actions []model.ParsedAction) string {
	lines := make([]string, 0, len(actions))
	for _, a := range actions {
		switch a.Kind {
		case model.ActionTask:
			lines = append(lines, taskLine(a.Task))
		case model.ActionEvent:
			lines = append(lines, eventLine(a.Event))
		case model.ActionLocation:
			lines = append(lines, locationLine(a.Location))
		}
	}
	return strings.Join(lines, "\n")
}

func taskLine(t *model.TaskData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📝 할 일: %s", t.Title)
	if len(t.AssigneeNames) > 0 {
		fmt.Fprintf(&b, " (담당: %s)", strings.Join(t.AssigneeNames, ", "))
	}
	if t.DueDate != nil {
		fmt.Fprintf(&b, " (기한: %d월 %d일)", int(t.DueDate.Month()), t.DueDate.Day())
	}
	switch t.Priority {
	case model.PriorityHigh:
		b.WriteString(" [긴급]")
	case model.PriorityLow:
		b.WriteString(" [여유]")
	}
	return b.String()
}

func eventLine(e *model.EventData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📅 일정: %s (%s)", e.Title, koreanClock(e.Start))
	if e.Location != "" {
		fmt.Fprintf(&b, " @ %s", e.Location)
	}
	if n := len(e.AttendeeIDs); n > 0 {
		fmt.Fprintf(&b, " (참석 %d명)", n)
	}
	return b.String()
}

func locationLine(l *model.LocationData) string {
	return fmt.Sprintf("📍 장소 공유: %s", l.Title)
}

// koreanClock formats a timestamp as "1월 17일 오후 3시" with minutes only
// when nonzero.
func koreanClock(t time.Time) string {
	period := "오전"
	hour := t.Hour()
	if hour >= 12 {
		period = "오후"
	}
	h12 := hour % 12
	if h12 == 0 {
		h12 = 12
	}

	s := fmt.Sprintf("%d월 %d일 %s %d시", int(t.Month()), t.Day(), period, h12)
	if t.Minute() > 0 {
		s += fmt.Sprintf(" %d분", t.Minute())
	}
	return s
}
