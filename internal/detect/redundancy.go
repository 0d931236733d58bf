package detect

import (
	"fmt"

	"github.com/pseudolint/plint/internal/cond"
	"github.com/pseudolint/plint/internal/types"
)

// DetectRedundancy flags AND-joined comparisons that are the same semantic
// check written with different case or spelling. Pairs that are written
// identically are left alone; each distinct duplicated condition yields one
// flag naming its canonical form.
func DetectRedundancy(filename string, line types.Line, c *cond.Condition) []types.Flag {
	if c == nil {
		return nil
	}
	var flags []types.Flag
	for _, branch := range c.Branches {
		for _, group := range branch.ANDGroups() {
			byForm := make(map[string][]cond.Comparison)
			var order []string
			for _, comp := range group {
				form := comp.String()
				if _, seen := byForm[form]; !seen {
					order = append(order, form)
				}
				byForm[form] = append(byForm[form], comp)
			}
			for _, form := range order {
				dups := byForm[form]
				if len(dups) < 2 {
					continue
				}
				if allTokenIdentical(dups) {
					continue
				}
				flags = append(flags, types.Flag{
					Rule:     RuleRedundancy,
					Filename: filename,
					Line:     line.Number,
					Text:     line.Text,
					Message:  fmt.Sprintf("Redundant condition '%s'", form),
				})
			}
		}
	}
	return flags
}

func allTokenIdentical(comps []cond.Comparison) bool {
	for _, c := range comps[1:] {
		if c.RawText != comps[0].RawText {
			return false
		}
	}
	return true
}
