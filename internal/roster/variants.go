package roster

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// GivenName returns the partial-match form of a stored display name: its
// last two runes. Names shorter than three runes are returned whole. This
// follows the local full-name convention (one-rune family name + two-rune
// given name) and is known to misfire on names outside it.
func GivenName(name string) string {
	runes := []rune(name)
	if len(runes) < 3 {
		return name
	}
	return string(runes[len(runes)-2:])
}

// StripHonorific removes at most one trailing honorific suffix from a name.
// Suffixes are tried longest-first so 선배님 is removed whole rather than
// leaving 선배 behind. Stripping an already-stripped name is a no-op.
func (r *Resolver) StripHonorific(name string) string {
	name = strings.TrimSpace(name)
	for _, h := range r.honorifics {
		if trimmed := strings.TrimSuffix(name, h); trimmed != name && trimmed != "" {
			return strings.TrimSpace(trimmed)
		}
	}
	return name
}

// Variants returns every honorific-decorated form of a member's full name,
// stripped name, and given name, deduplicated and sorted length-descending
// so a longer decorated form is always tried before the bare given name.
// The same generator backs resolution, inline-location stripping, and event
// title cleaning so the three can never diverge.
func (r *Resolver) Variants(name string) []string {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	if cached, ok := r.variantCache.Get(name); ok {
		return cached
	}

	bases := []string{name, r.StripHonorific(name), GivenName(name)}

	seen := make(map[string]bool)
	variants := make([]string, 0, len(bases)*(len(r.honorifics)+1))
	for _, base := range bases {
		if base == "" {
			continue
		}
		for _, candidate := range append([]string{base}, decorated(base, r.honorifics)...) {
			if !seen[candidate] {
				seen[candidate] = true
				variants = append(variants, candidate)
			}
		}
	}

	sort.SliceStable(variants, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(variants[i]), utf8.RuneCountInString(variants[j])
		if li != lj {
			return li > lj
		}
		return variants[i] < variants[j]
	})

	r.variantCache.Add(name, variants)
	return variants
}

func decorated(base string, honorifics []string) []string {
	out := make([]string, 0, len(honorifics))
	for _, h := range honorifics {
		out = append(out, base+h)
	}
	return out
}
