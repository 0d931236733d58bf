package detect

import (
	"fmt"
	"strings"

	"github.com/pseudolint/plint/internal/cond"
	"github.com/pseudolint/plint/internal/types"
)

// DetectTypeMismatch flags comparisons whose right-hand side is a quoted
// numeral, e.g. '10' or "5": the quotes make it a string even though the
// comparison reads as numeric. All occurrences on a line join into one flag.
func DetectTypeMismatch(filename string, line types.Line, c *cond.Condition) []types.Flag {
	if c == nil {
		return nil
	}
	var descs []string
	for _, branch := range c.Branches {
		for _, comp := range branch.Comparisons {
			if comp.Value.Kind == cond.ValueString && isAllDigits(comp.Value.Text) {
				descs = append(descs, fmt.Sprintf("Comparing string literal %q as number", comp.Value.Text))
			}
		}
	}
	if len(descs) == 0 {
		return nil
	}
	return []types.Flag{{
		Rule:     RuleTypeMismatch,
		Filename: filename,
		Line:     line.Number,
		Text:     line.Text,
		Message:  "Illogical comparison: " + strings.Join(descs, ", "),
	}}
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
