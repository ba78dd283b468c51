// Package roster resolves free-text name mentions against the conversation
// roster. Matching is layered: exact display name, bidirectional substring
// containment, then a strict levenshtein fallback for near-miss typos.
// Unmatched mentions are dropped silently; absence is the only signal.
package roster

import (
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"collab-command-engine/internal/model"
)

// Particles that may follow a bare given name and still mark a mention
// boundary (subject/object/connective markers and vocatives).
const boundaryParticles = "이가은는을를과와도만께의랑아야에한"

const (
	variantCacheSize = 512
	variantCacheTTL  = 10 * time.Minute

	// levenshtein fallback bounds: short tokens produce too many
	// accidental distance-1 neighbors to be safe.
	fuzzyMinRunes    = 3
	fuzzyMaxDistance = 1
)

// Resolver matches name mentions against roster members. Honorific variant
// lists are memoized per display name; rosters repeat heavily across calls.
type Resolver struct {
	honorifics   []string // length-descending
	variantCache *expirable.LRU[string, []string]
}

// NewResolver creates a Resolver using the given honorific suffix set.
func NewResolver(honorifics []string) *Resolver {
	sorted := make([]string, len(honorifics))
	copy(sorted, honorifics)
	sort.SliceStable(sorted, func(i, j int) bool {
		return utf8.RuneCountInString(sorted[i]) > utf8.RuneCountInString(sorted[j])
	})

	return &Resolver{
		honorifics:   sorted,
		variantCache: expirable.NewLRU[string, []string](variantCacheSize, nil, variantCacheTTL),
	}
}

// Resolve matches pre-split raw name tokens against the roster. For each
// token the honorific is stripped, then exact match, then bidirectional
// containment, then the fuzzy fallback; first match wins. The returned
// matched slice holds the original tokens that resolved, parallel to ids.
func (r *Resolver) Resolve(tokens []string, members []model.ChatMember) (ids, matched []string) {
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		stripped := r.StripHonorific(token)
		if stripped == "" {
			continue
		}

		if m, ok := r.matchMember(stripped, members); ok {
			ids = append(ids, m.ID)
			matched = append(matched, token)
		}
	}
	return ids, matched
}

func (r *Resolver) matchMember(stripped string, members []model.ChatMember) (model.ChatMember, bool) {
	for _, m := range members {
		if m.Name == stripped {
			return m, true
		}
	}

	if utf8.RuneCountInString(stripped) >= 2 {
		for _, m := range members {
			if strings.Contains(m.Name, stripped) || strings.Contains(stripped, m.Name) {
				return m, true
			}
		}
	}

	if utf8.RuneCountInString(stripped) >= fuzzyMinRunes {
		for _, m := range members {
			if levenshtein.ComputeDistance(stripped, m.Name) <= fuzzyMaxDistance {
				return m, true
			}
		}
	}

	return model.ChatMember{}, false
}

// ExtractMentions scans a whole message for roster members. A full-name
// occurrence always counts. A bare given name only counts with an adjoining
// honorific, or at a word boundary followed by a particle, whitespace, or
// the end of text; otherwise a short given name would match inside
// unrelated common words.
func (r *Resolver) ExtractMentions(text string, members []model.ChatMember) (names, ids []string) {
	seen := make(map[string]bool, len(members))

	for _, m := range members {
		if m.Name == "" || seen[m.ID] {
			continue
		}

		if strings.Contains(text, m.Name) {
			names = append(names, m.Name)
			ids = append(ids, m.ID)
			seen[m.ID] = true
			continue
		}

		given := GivenName(m.Name)
		if given == m.Name || utf8.RuneCountInString(given) < 2 {
			continue
		}
		if r.mentionsGivenName(text, given) {
			names = append(names, given)
			ids = append(ids, m.ID)
			seen[m.ID] = true
		}
	}
	return names, ids
}

func (r *Resolver) mentionsGivenName(text, given string) bool {
	for offset := 0; ; {
		idx := strings.Index(text[offset:], given)
		if idx < 0 {
			return false
		}
		idx += offset
		rest := text[idx+len(given):]

		if r.hasHonorificPrefix(rest) {
			return true
		}
		if boundaryBefore(text, idx) && boundaryAfter(rest) {
			return true
		}
		offset = idx + len(given)
	}
}

func (r *Resolver) hasHonorificPrefix(s string) bool {
	for _, h := range r.honorifics {
		if strings.HasPrefix(s, h) {
			return true
		}
	}
	return false
}

func boundaryBefore(text string, idx int) bool {
	if idx == 0 {
		return true
	}
	prev, _ := utf8.DecodeLastRuneInString(text[:idx])
	return unicode.IsSpace(prev) || unicode.IsPunct(prev)
}

func boundaryAfter(rest string) bool {
	if rest == "" {
		return true
	}
	next, _ := utf8.DecodeRuneInString(rest)
	return unicode.IsSpace(next) || unicode.IsPunct(next) || strings.ContainsRune(boundaryParticles, next)
}
