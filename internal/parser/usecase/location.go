package usecase

import (
	"regexp"
	"strings"

	"collab-command-engine/internal/model"
)

const locationConfidence = 0.7

var (
	// "<place>에서 만나자" style meet-at proposals.
	locationMeetAtRE = regexp.MustCompile(`^\s*(.+?)에서\s*(?:만나자|만나요|모이자|모여요|만날까요|만날까|봐요|보자)`)

	// "장소: <place>" explicit label.
	locationLabelRE = regexp.MustCompile(`(?:장소|위치)\s*[:：]\s*([^\n]+)`)

	// Optional address sub-pattern, anywhere in the message.
	locationAddrRE = regexp.MustCompile(`(?:주소|[Aa]ddress)\s*[:：]\s*([^\n]+)`)
)

// matchLocation runs the two standalone location rules. A third bare
// place-marker pattern is deliberately absent: standalone nouns like 카페
// fired on unrelated past-tense sentences.
func (uc *implUseCase) matchLocation(content string) *model.ParsedAction {
	for _, rule := range uc.locationRules {
		data, ok := rule.match(content)
		if !ok {
			continue
		}

		if m := locationAddrRE.FindStringSubmatch(content); m != nil {
			data.Address = strings.TrimSpace(m[1])
		}
		if data.SearchQuery == "" {
			data.SearchQuery = data.Title
		}

		return &model.ParsedAction{
			Kind:       model.ActionLocation,
			Confidence: locationConfidence,
			Location:   &data,
		}
	}
	return nil
}

func locationFromMeetAt(content string) (model.LocationData, bool) {
	m := locationMeetAtRE.FindStringSubmatch(content)
	if m == nil {
		return model.LocationData{}, false
	}
	return model.LocationData{Title: strings.TrimSpace(m[1])}, true
}

func locationFromLabel(content string) (model.LocationData, bool) {
	m := locationLabelRE.FindStringSubmatch(content)
	if m == nil {
		return model.LocationData{}, false
	}
	return model.LocationData{Title: strings.TrimSpace(m[1])}, true
}
