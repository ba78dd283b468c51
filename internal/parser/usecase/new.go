package usecase

import (
	"regexp"
	"strings"
	"time"

	"collab-command-engine/internal/lexicon"
	"collab-command-engine/internal/model"
	"collab-command-engine/internal/roster"
	"collab-command-engine/pkg/kdate"
	pkgLog "collab-command-engine/pkg/log"
)

// taskRule is one surface pattern of the task matcher. Rules run in slice
// order; the first match wins and the rest are skipped.
type taskRule struct {
	name  string
	match func(content string, members []model.ChatMember, now time.Time) (model.TaskData, bool)
}

// eventRule is one surface pattern of the event matcher. timeExpr is the
// verbatim time-expression capture, kept for inline location extraction;
// it is empty for rules that scan the full text.
type eventRule struct {
	name  string
	match func(content string, now time.Time) (data model.EventData, timeExpr string, ok bool)
}

// locationRule is one surface pattern of the standalone location matcher.
type locationRule struct {
	name  string
	match func(content string) (model.LocationData, bool)
}

type implUseCase struct {
	l     pkgLog.Logger
	dates *kdate.Resolver
	names *roster.Resolver
	lex   lexicon.Lexicon

	taskRules     []taskRule
	eventRules    []eventRule
	locationRules []locationRule

	// Compiled from the lexicon's meeting keywords at construction.
	eventTitleRE *regexp.Regexp

	nowFn func() time.Time
}

// New creates the command-extraction engine.
func New(l pkgLog.Logger, dates *kdate.Resolver, names *roster.Resolver, lex lexicon.Lexicon) *implUseCase {
	uc := &implUseCase{
		l:     l,
		dates: dates,
		names: names,
		lex:   lex,
		nowFn: time.Now,
	}

	uc.eventTitleRE = compileEventTitleRE(lex.MeetingKeywords)

	uc.taskRules = []taskRule{
		{name: "assignee-request", match: uc.taskFromAssigneeRequest},
		{name: "deadline", match: uc.taskFromDeadline},
		{name: "label", match: uc.taskFromLabel},
		{name: "trailing-verb", match: uc.taskFromTrailingVerb},
	}

	uc.eventRules = []eventRule{
		{name: "time-title", match: uc.eventFromTimeTitle},
		{name: "informal-meet", match: uc.eventFromInformalMeet},
		{name: "keyword-fallback", match: uc.eventFromKeywordFallback},
	}

	uc.locationRules = []locationRule{
		{name: "meet-at", match: locationFromMeetAt},
		{name: "label", match: locationFromLabel},
	}

	return uc
}

// compileEventTitleRE builds the primary event pattern:
// "<time-expr>(에|날) <title containing a meeting keyword>".
func compileEventTitleRE(meetingKeywords []string) *regexp.Regexp {
	quoted := make([]string, 0, len(meetingKeywords))
	for _, kw := range meetingKeywords {
		if kw != "" {
			quoted = append(quoted, regexp.QuoteMeta(kw))
		}
	}
	return regexp.MustCompile(`^\s*(.+?)(?:에|날)\s+(.*(?:` + strings.Join(quoted, "|") + `).*)$`)
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
