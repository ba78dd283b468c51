package usecase

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"collab-command-engine/internal/model"
)

var (
	sentenceSplitRE = regexp.MustCompile(`[.!?。\n]+`)

	politenessTailRE = regexp.MustCompile(`(?:해\s*주세요|해\s*줘|해줄래|부탁드립니다|부탁드려요|부탁합니다|부탁해요|부탁해|부탁|주세요|바랍니다|바래요|요망)\s*$`)
	connectiveTailRE = regexp.MustCompile(`(?:이랑|하고|그리고|와|과|랑)\s*$`)
)

var nameTailParticles = []string{"이랑", "하고", "그리고", "랑", "와", "과", "도"}

// cleanEventTitle scrubs attendee-inclusion residue out of a raw event
// title: a later sentence naming attendees is dropped, every member name
// variant is removed with its trailing particle, and trailing request
// phrasing is peeled off. Falls back to the first meeting keyword, then to
// the first sentence of the raw title, rather than returning empty.
func (uc *implUseCase) cleanEventTitle(raw string, members []model.ChatMember) string {
	title := strings.TrimSpace(raw)

	sentences := sentenceSplitRE.Split(title, -1)
	if len(sentences) > 1 {
		for _, later := range sentences[1:] {
			if containsAny(later, uc.lex.InclusionKeywords) {
				title = strings.TrimSpace(sentences[0])
				break
			}
		}
	}

	for _, v := range uc.memberVariants(members) {
		title = removeNameWithTail(title, v)
	}

	for {
		prev := title
		title = strings.TrimSpace(title)
		title = politenessTailRE.ReplaceAllString(title, "")
		title = connectiveTailRE.ReplaceAllString(title, "")
		title = strings.Trim(title, " \t,.!?~·")
		if title == prev {
			break
		}
	}
	title = strings.Join(strings.Fields(title), " ")

	if title != "" {
		return title
	}

	if kw := uc.firstMeetingKeyword(raw); kw != "" {
		return kw
	}
	if idx := strings.IndexAny(raw, ".!?。\n"); idx >= 0 {
		return strings.TrimSpace(raw[:idx])
	}
	return strings.TrimSpace(raw)
}

// memberVariants merges every member's name variants into one
// length-descending list so longer decorated forms are always removed
// before the bare given names they contain.
func (uc *implUseCase) memberVariants(members []model.ChatMember) []string {
	var variants []string
	for _, m := range members {
		variants = append(variants, uc.names.Variants(m.Name)...)
	}
	sort.SliceStable(variants, func(i, j int) bool {
		return utf8.RuneCountInString(variants[i]) > utf8.RuneCountInString(variants[j])
	})
	return variants
}

// removeNameWithTail removes every occurrence of a name variant together
// with the comma/whitespace/connective-particle tail that follows it.
func removeNameWithTail(s, variant string) string {
	for {
		idx := strings.Index(s, variant)
		if idx < 0 {
			return s
		}
		rest := trimNameTail(s[idx+len(variant):])
		s = s[:idx] + " " + rest
	}
}

func trimNameTail(s string) string {
	s = strings.TrimLeft(s, ", \t")
	for _, p := range nameTailParticles {
		if strings.HasPrefix(s, p) {
			s = strings.TrimPrefix(s, p)
			break
		}
	}
	return strings.TrimLeft(s, ", \t")
}

// firstMeetingKeyword returns the meeting keyword appearing earliest in
// the raw title.
func (uc *implUseCase) firstMeetingKeyword(raw string) string {
	best, bestIdx := "", -1
	for _, kw := range uc.lex.MeetingKeywords {
		if idx := strings.Index(raw, kw); idx >= 0 && (bestIdx < 0 || idx < bestIdx) {
			best, bestIdx = kw, idx
		}
	}
	return best
}
