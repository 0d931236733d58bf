package detect

import (
	"strings"

	"github.com/pseudolint/plint/internal/registry"
	"github.com/pseudolint/plint/internal/types"
)

// DetectTypos resolves every identifier on the line against the variable
// registry and collects the likely misspellings into a single flag. New
// names register silently; only near-misses of established names are
// reported.
func DetectTypos(filename string, line types.Line, idents []string, reg *registry.Registry) []types.Flag {
	var typos []string
	seen := make(map[string]bool)
	for _, raw := range idents {
		if seen[raw] {
			continue
		}
		seen[raw] = true
		if reg.Resolve(raw).Kind == registry.ResolutionTypo {
			typos = append(typos, raw)
		}
	}
	if len(typos) == 0 {
		return nil
	}
	return []types.Flag{{
		Rule:     RuleTypo,
		Filename: filename,
		Line:     line.Number,
		Text:     line.Text,
		Message:  "Potential typo(s) in variable name(s): " + strings.Join(typos, ", "),
	}}
}
