// Package detect holds the four line-level detectors. Each one consumes the
// normalized condition (and the variable registry where relevant) and yields
// zero or more flags; detectors are independent and purely additive.
package detect

// Rule names, as referenced in configuration and reports.
const (
	RuleRedundancy    = "redundant-condition"
	RuleContradiction = "contradictory-logic"
	RuleTypo          = "variable-typo"
	RuleTypeMismatch  = "illogical-comparison"
)
