package detect

import (
	"github.com/pseudolint/plint/internal/cond"
	"github.com/pseudolint/plint/internal/types"
)

const contradictionMessage = "Contradictory/unreachable logic"

// DetectContradiction flags two line-local patterns: an IF branch restated by
// a later ELSE IF branch (the second branch is unreachable), and an AND of
// two comparisons on the same identifier and value with complementary
// operators. The check emits at most one flag per line.
func DetectContradiction(filename string, line types.Line, c *cond.Condition) []types.Flag {
	if c == nil {
		return nil
	}
	if !hasDuplicateBranch(c) && !hasComplementaryPair(c) {
		return nil
	}
	return []types.Flag{{
		Rule:     RuleContradiction,
		Filename: filename,
		Line:     line.Number,
		Text:     line.Text,
		Message:  contradictionMessage,
	}}
}

func hasDuplicateBranch(c *cond.Condition) bool {
	for i := 0; i < len(c.Branches); i++ {
		for j := i + 1; j < len(c.Branches); j++ {
			if c.Branches[i].Equivalent(c.Branches[j]) {
				return true
			}
		}
	}
	return false
}

func hasComplementaryPair(c *cond.Condition) bool {
	for _, branch := range c.Branches {
		for _, group := range branch.ANDGroups() {
			for i := 0; i < len(group); i++ {
				for j := i + 1; j < len(group); j++ {
					if contradicts(group[i], group[j]) {
						return true
					}
				}
			}
		}
	}
	return false
}

func contradicts(a, b cond.Comparison) bool {
	if a.Ident != b.Ident || !a.Value.Equal(b.Value) {
		return false
	}
	switch {
	case a.Op == "==" && b.Op == "!=", a.Op == "!=" && b.Op == "==":
		return true
	case a.Op == ">" && b.Op == "<", a.Op == "<" && b.Op == ">":
		return true
	}
	return false
}
