// Package lexicon holds the keyword sets the matchers scan for. The
// built-ins are compiled in; a YAML overlay file may append workspace
// specific vocabulary but can never remove a built-in entry.
package lexicon

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Lexicon is the full keyword vocabulary of the extraction engine.
type Lexicon struct {
	// Priority classification
	UrgentKeywords  []string
	RelaxedKeywords []string

	// Event matching and kind classification
	MeetingKeywords  []string
	DeadlineKeywords []string
	DeliveryKeywords []string

	// Lexical guards
	GratitudeMarkers      []string
	RetrospectiveStarters []string

	// Name handling
	Honorifics []string

	// Event title cleaning
	InclusionKeywords []string
}

// Default returns the built-in vocabulary.
func Default() Lexicon {
	return Lexicon{
		UrgentKeywords:  []string{"긴급", "급해", "급하게", "급함", "빨리", "즉시", "당장", "ASAP", "asap"},
		RelaxedKeywords: []string{"천천히", "여유", "급하지 않", "언제든", "시간 날 때", "시간날때"},

		MeetingKeywords: []string{
			"회의", "미팅", "킥오프", "스탠드업", "브리핑", "워크샵", "워크숍",
			"마감", "데드라인", "납품", "배송",
		},
		DeadlineKeywords: []string{"마감", "데드라인"},
		DeliveryKeywords: []string{"납품", "배송"},

		GratitudeMarkers:      []string{"감사합니다", "감사해요", "고마워", "고맙습니다", "수고하셨", "수고했", "수고 많으", "덕분에"},
		RetrospectiveStarters: []string{"어제", "그저께", "그제", "엊그제", "아까", "방금", "지난번", "지난 번", "저번에"},

		Honorifics: []string{
			"님", "씨",
			"선배님", "선배",
			"대표님", "이사님", "실장님",
			"부장님", "부장",
			"차장님", "차장",
			"과장님", "과장",
			"팀장님", "팀장",
			"대리님", "대리",
			"주임님", "주임",
			"사원님",
		},

		InclusionKeywords: []string{"포함", "참석", "참여", "초대", "같이", "함께"},
	}
}

// overlay is the YAML shape of an optional vocabulary extension file.
type overlay struct {
	Urgent        []string `yaml:"urgent"`
	Relaxed       []string `yaml:"relaxed"`
	Meeting       []string `yaml:"meeting"`
	Deadline      []string `yaml:"deadline"`
	Delivery      []string `yaml:"delivery"`
	Gratitude     []string `yaml:"gratitude"`
	Retrospective []string `yaml:"retrospective"`
	Honorifics    []string `yaml:"honorifics"`
	Inclusion     []string `yaml:"inclusion"`
}

// Load returns the default lexicon extended by the overlay at path.
// An empty path returns the defaults unchanged.
func Load(path string) (Lexicon, error) {
	lex := Default()
	if path == "" {
		return lex, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return lex, fmt.Errorf("read lexicon overlay: %w", err)
	}

	var o overlay
	if err := yaml.Unmarshal(raw, &o); err != nil {
		return lex, fmt.Errorf("decode lexicon overlay: %w", err)
	}

	lex.UrgentKeywords = appendUnique(lex.UrgentKeywords, o.Urgent)
	lex.RelaxedKeywords = appendUnique(lex.RelaxedKeywords, o.Relaxed)
	lex.MeetingKeywords = appendUnique(lex.MeetingKeywords, o.Meeting)
	lex.DeadlineKeywords = appendUnique(lex.DeadlineKeywords, o.Deadline)
	lex.DeliveryKeywords = appendUnique(lex.DeliveryKeywords, o.Delivery)
	lex.GratitudeMarkers = appendUnique(lex.GratitudeMarkers, o.Gratitude)
	lex.RetrospectiveStarters = appendUnique(lex.RetrospectiveStarters, o.Retrospective)
	lex.Honorifics = appendUnique(lex.Honorifics, o.Honorifics)
	lex.InclusionKeywords = appendUnique(lex.InclusionKeywords, o.Inclusion)
	return lex, nil
}

func appendUnique(base, extra []string) []string {
	seen := make(map[string]bool, len(base))
	for _, s := range base {
		seen[s] = true
	}
	for _, s := range extra {
		if s != "" && !seen[s] {
			base = append(base, s)
			seen[s] = true
		}
	}
	return base
}
