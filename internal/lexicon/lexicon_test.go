package lexicon_test

import (
	"os"
	"path/filepath"
	"testing"

	"collab-command-engine/internal/lexicon"
)

func TestDefaultNonEmpty(t *testing.T) {
	lex := lexicon.Default()

	sets := map[string][]string{
		"urgent":        lex.UrgentKeywords,
		"relaxed":       lex.RelaxedKeywords,
		"meeting":       lex.MeetingKeywords,
		"deadline":      lex.DeadlineKeywords,
		"delivery":      lex.DeliveryKeywords,
		"gratitude":     lex.GratitudeMarkers,
		"retrospective": lex.RetrospectiveStarters,
		"honorifics":    lex.Honorifics,
		"inclusion":     lex.InclusionKeywords,
	}
	for name, set := range sets {
		if len(set) == 0 {
			t.Errorf("default %s set is empty", name)
		}
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	lex, err := lexicon.Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lex.MeetingKeywords) != len(lexicon.Default().MeetingKeywords) {
		t.Errorf("empty path must return defaults unchanged")
	}
}

func TestLoadOverlayAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	content := "urgent:\n  - 초긴급\nmeeting:\n  - 회고\n  - 회의\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write overlay: %v", err)
	}

	lex, err := lexicon.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !contains(lex.UrgentKeywords, "초긴급") {
		t.Errorf("overlay keyword not appended: %v", lex.UrgentKeywords)
	}
	if !contains(lex.MeetingKeywords, "회고") {
		t.Errorf("overlay keyword not appended: %v", lex.MeetingKeywords)
	}
	// Duplicates collapse, built-ins survive.
	if count(lex.MeetingKeywords, "회의") != 1 {
		t.Errorf("duplicate built-in not collapsed: %v", lex.MeetingKeywords)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := lexicon.Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing overlay file")
	}
}

func contains(set []string, want string) bool {
	for _, s := range set {
		if s == want {
			return true
		}
	}
	return false
}

func count(set []string, want string) int {
	n := 0
	for _, s := range set {
		if s == want {
			n++
		}
	}
	return n
}
