package registry

import (
	"sort"
	"strings"

	"github.com/pseudolint/plint/internal/cond"
)

const (
	// editDistanceThreshold is the maximum Levenshtein distance at which an
	// unregistered name counts as a misspelling of a registered one.
	editDistanceThreshold = 2

	// minTypoLength keeps short names out of typo matching, where one or two
	// edits can reach almost any other short name.
	minTypoLength = 5
)

// ResolutionKind classifies the outcome of resolving an identifier.
type ResolutionKind int

const (
	// ResolutionKnown: the canonical form (or an accepted spelling) is
	// already registered.
	ResolutionKnown ResolutionKind = iota
	// ResolutionNew: first sight of this name; it was registered as a
	// declaration.
	ResolutionNew
	// ResolutionTypo: unregistered, but within the edit-distance threshold
	// of a registered name.
	ResolutionTypo
)

// Resolution is the registry's answer for one identifier.
type Resolution struct {
	Kind      ResolutionKind
	Canonical string
	Nearest   string // the registered name a typo is close to
}

// Registry holds the variable names recognized during a run: canonical
// snake_case names mapped to the raw spellings seen for them. It is seeded
// from the synonym table and grows as new names appear; it never shrinks.
// Lines are processed sequentially, so no locking is needed.
type Registry struct {
	spellings  map[string]map[string]struct{}
	bySpelling map[string]string // lowercased raw spelling -> canonical
}

// New builds a registry seeded from a synonym table mapping canonical names
// to their accepted alternate spellings.
func New(synonyms map[string][]string) *Registry {
	r := &Registry{
		spellings:  make(map[string]map[string]struct{}),
		bySpelling: make(map[string]string),
	}
	for name, alts := range synonyms {
		canonical := cond.ToSnakeCase(name)
		r.register(canonical, name)
		for _, alt := range alts {
			r.spellings[canonical][alt] = struct{}{}
			r.bySpelling[strings.ToLower(alt)] = canonical
		}
	}
	return r
}

// Resolve classifies one raw identifier spelling. The first-ever appearance
// of a name is registered as a declaration and never flagged; only a later
// distinct spelling that lands within the edit-distance threshold of an
// already-registered name comes back as a typo.
func (r *Registry) Resolve(raw string) Resolution {
	canonical := cond.ToSnakeCase(raw)

	if _, ok := r.spellings[canonical]; ok {
		r.spellings[canonical][raw] = struct{}{}
		return Resolution{Kind: ResolutionKnown, Canonical: canonical}
	}
	if mapped, ok := r.bySpelling[strings.ToLower(raw)]; ok {
		r.spellings[mapped][raw] = struct{}{}
		return Resolution{Kind: ResolutionKnown, Canonical: mapped}
	}

	if len(raw) >= minTypoLength {
		if nearest, dist := r.nearest(canonical); dist <= editDistanceThreshold {
			return Resolution{Kind: ResolutionTypo, Canonical: canonical, Nearest: nearest}
		}
	}

	r.register(canonical, raw)
	return Resolution{Kind: ResolutionNew, Canonical: canonical}
}

// Known reports whether a canonical name is registered.
func (r *Registry) Known(canonical string) bool {
	_, ok := r.spellings[canonical]
	return ok
}

// Names returns the registered canonical names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.spellings))
	for name := range r.spellings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) register(canonical, raw string) {
	if _, ok := r.spellings[canonical]; !ok {
		r.spellings[canonical] = make(map[string]struct{})
	}
	r.spellings[canonical][raw] = struct{}{}
	r.bySpelling[strings.ToLower(raw)] = canonical
}

// nearest returns the registered canonical name with the smallest edit
// distance to the candidate; ties break lexicographically.
func (r *Registry) nearest(canonical string) (string, int) {
	best := ""
	bestDist := -1
	for _, name := range r.Names() {
		d := levenshtein(canonical, name)
		if bestDist < 0 || d < bestDist {
			best, bestDist = name, d
		}
	}
	if bestDist < 0 {
		return "", editDistanceThreshold + 1
	}
	return best, bestDist
}

// levenshtein computes the edit distance between a and b with the two-row
// dynamic program.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			m := prev[j] + 1
			if ins := curr[j-1] + 1; ins < m {
				m = ins
			}
			if sub := prev[j-1] + cost; sub < m {
				m = sub
			}
			curr[j] = m
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
