package usecase

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const guardMinRunes = 4

// pastTenseRE matches messages that end in a completed-action verb form,
// optionally followed by filler laughter/emphasis and punctuation. Those
// are status reports, not commands.
var pastTenseRE = regexp.MustCompile(`(?:했|갔|왔|됐|끝났|끝냈|만났|다녀왔|보냈|마쳤)(?:어|다|네|지|죠|음|어요|네요|데요|습니다|었습니다)?[\s!.,~…ㅋㅎㅠㅜ^;]*$`)

// shouldSkip is the lexical guard stage. Any hit short-circuits the whole
// parse into an empty result; the bias is a deliberate false negative over
// surprising the user with an action card on ordinary conversation.
func (uc *implUseCase) shouldSkip(text string) bool {
	trimmed := strings.TrimSpace(text)

	if utf8.RuneCountInString(trimmed) < guardMinRunes {
		return true
	}

	if pastTenseRE.MatchString(trimmed) {
		return true
	}

	for _, starter := range uc.lex.RetrospectiveStarters {
		if strings.HasPrefix(trimmed, starter) {
			return true
		}
	}

	for _, marker := range uc.lex.GratitudeMarkers {
		if strings.Contains(trimmed, marker) {
			return true
		}
	}

	return false
}
