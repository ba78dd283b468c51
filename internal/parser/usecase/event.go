package usecase

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"collab-command-engine/internal/model"
)

const eventConfidence = 0.75

var (
	// "<H>시에 만나자" style informal meet proposals.
	eventInformalRE = regexp.MustCompile(`(\d{1,2})시에?\s*(?:만나자|만나요|모이자|모여요|만날까요|만날까|봐요|보자)`)

	// "<names> 참석" secondary attendee clause.
	attendeeClauseRE = regexp.MustCompile(`([가-힣A-Za-z0-9,\s]+?)\s*(?:참석|참여|포함)`)
	attendeeSplitRE  = regexp.MustCompile(`\s*(?:,|이랑|하고|그리고|와|과|랑)\s*|\s+`)

	// Inline-location stripping, applied to the captured time clause.
	stripMonthDayRE = regexp.MustCompile(`\d{1,2}월\s*\d{1,2}일`)
	stripSlashRE    = regexp.MustCompile(`\d{1,2}/\d{1,2}`)
	stripWeekdayRE  = regexp.MustCompile(`[월화수목금토일]요일`)
)

var relativeDayWords = []string{"오늘", "내일", "모레", "다음 주", "다음주", "이번 주", "이번주"}

// matchEvent runs the event rules in priority order. The event kind is
// classified from the whole message before pattern matching so deadline
// and delivery phrasings keep their kind whichever rule fires.
func (uc *implUseCase) matchEvent(content string, members []model.ChatMember, projectID string, now time.Time) *model.ParsedAction {
	for _, rule := range uc.eventRules {
		data, timeExpr, ok := rule.match(content, now)
		if !ok {
			continue
		}

		if data.End.IsZero() {
			data.End = data.Start.Add(time.Hour)
		}

		_, ids := uc.names.ExtractMentions(content, members)
		if len(ids) == 0 {
			ids = uc.attendeesFromClause(content, members)
		}
		data.AttendeeIDs = ids

		if timeExpr != "" {
			if loc := uc.inlineLocation(timeExpr, members); loc != "" {
				data.Location = loc
			}
		}

		data.Kind = uc.classifyEventKind(content)
		data.ProjectID = projectID

		return &model.ParsedAction{
			Kind:       model.ActionEvent,
			Confidence: eventConfidence,
			Event:      &data,
		}
	}
	return nil
}

// eventFromTimeTitle handles "<time-expr>(에|날) <title with meeting
// keyword>". The time expression is resolved on its own and kept verbatim
// for inline location extraction.
func (uc *implUseCase) eventFromTimeTitle(content string, now time.Time) (model.EventData, string, bool) {
	m := uc.eventTitleRE.FindStringSubmatch(content)
	if m == nil {
		return model.EventData{}, "", false
	}

	timeExpr := strings.TrimSpace(m[1])
	data := model.EventData{Title: strings.TrimSpace(m[2])}
	data.Start, data.End = resolveSpan(uc, timeExpr, now)
	return data, timeExpr, true
}

// eventFromInformalMeet handles "3시에 만나자"; the title falls back to the
// whole message since there is no separate title clause.
func (uc *implUseCase) eventFromInformalMeet(content string, now time.Time) (model.EventData, string, bool) {
	if !eventInformalRE.MatchString(content) {
		return model.EventData{}, "", false
	}

	data := model.EventData{Title: content}
	data.Start, data.End = resolveSpan(uc, content, now)
	return data, "", true
}

// eventFromKeywordFallback fires when a meeting keyword appears anywhere
// and the full text yields any date or time at all.
func (uc *implUseCase) eventFromKeywordFallback(content string, now time.Time) (model.EventData, string, bool) {
	if !containsAny(content, uc.lex.MeetingKeywords) {
		return model.EventData{}, "", false
	}

	start, end, ok := uc.dates.ResolveDateTime(content, now)
	if !ok {
		return model.EventData{}, "", false
	}

	data := model.EventData{Title: content, Start: start}
	if end != nil {
		data.End = *end
	}
	return data, "", true
}

func resolveSpan(uc *implUseCase, text string, now time.Time) (time.Time, time.Time) {
	start, end, _ := uc.dates.ResolveDateTime(text, now)
	if end != nil {
		return start, *end
	}
	return start, time.Time{}
}

func (uc *implUseCase) classifyEventKind(content string) model.EventKind {
	switch {
	case containsAny(content, uc.lex.DeadlineKeywords):
		return model.EventDeadline
	case containsAny(content, uc.lex.DeliveryKeywords):
		return model.EventDelivery
	default:
		return model.EventMeeting
	}
}

// attendeesFromClause is the secondary attendee source: a name list ending
// in 참석/참여/포함, split on commas and connective particles, each token
// resolved on its own.
func (uc *implUseCase) attendeesFromClause(content string, members []model.ChatMember) []string {
	m := attendeeClauseRE.FindStringSubmatch(content)
	if m == nil {
		return nil
	}

	tokens := attendeeSplitRE.Split(strings.TrimSpace(m[1]), -1)
	ids, _ := uc.names.Resolve(tokens, members)
	return ids
}

// inlineLocation extracts a venue embedded in the event's time clause:
// the text before a locative 에서, with dates, relative day words, weekday
// names, and every member name variant stripped out. Variants go
// longest-first so a short given name cannot shadow a longer
// honorific-decorated form.
func (uc *implUseCase) inlineLocation(timeExpr string, members []model.ChatMember) string {
	idx := strings.Index(timeExpr, "에서")
	if idx < 0 {
		return ""
	}

	cand := timeExpr[:idx]
	cand = stripMonthDayRE.ReplaceAllString(cand, " ")
	cand = stripSlashRE.ReplaceAllString(cand, " ")
	for _, w := range relativeDayWords {
		cand = strings.ReplaceAll(cand, w, " ")
	}
	cand = stripWeekdayRE.ReplaceAllString(cand, " ")

	for _, m := range members {
		for _, v := range uc.names.Variants(m.Name) {
			cand = strings.ReplaceAll(cand, v, " ")
		}
	}

	cand = strings.Join(strings.Fields(cand), " ")
	cand = strings.Trim(cand, ",.!?~·")
	if utf8.RuneCountInString(cand) < 2 {
		return ""
	}
	return cand
}
