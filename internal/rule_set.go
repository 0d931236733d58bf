package internal

import (
	"github.com/pseudolint/plint/internal/cond"
	"github.com/pseudolint/plint/internal/detect"
	"github.com/pseudolint/plint/internal/registry"
	"github.com/pseudolint/plint/internal/types"
)

/*
* Implement each detector as a separate struct
 */

// Detector is the interface every line-level detector implements.
type Detector interface {
	// Check runs the detector on one normalized line. The condition is nil
	// when the line failed to parse; idents are the raw identifier spellings
	// found on the line.
	Check(filename string, line types.Line, c *cond.Condition, idents []string, reg *registry.Registry) []types.Flag

	// Name returns the rule name of the detector.
	Name() string

	Severity() types.Severity
	SetSeverity(types.Severity)
}

type baseDetector struct {
	severity types.Severity
}

func (d *baseDetector) Severity() types.Severity     { return d.severity }
func (d *baseDetector) SetSeverity(s types.Severity) { d.severity = s }

// stamp applies the detector's severity to the flags it produced.
func (d *baseDetector) stamp(flags []types.Flag) []types.Flag {
	for i := range flags {
		flags[i].Severity = d.severity
	}
	return flags
}

type RedundancyDetector struct{ baseDetector }

func NewRedundancyDetector() Detector {
	return &RedundancyDetector{baseDetector{severity: types.SeverityWarning}}
}

func (d *RedundancyDetector) Check(filename string, line types.Line, c *cond.Condition, _ []string, _ *registry.Registry) []types.Flag {
	return d.stamp(detect.DetectRedundancy(filename, line, c))
}

func (d *RedundancyDetector) Name() string { return detect.RuleRedundancy }

type ContradictionDetector struct{ baseDetector }

func NewContradictionDetector() Detector {
	return &ContradictionDetector{baseDetector{severity: types.SeverityError}}
}

func (d *ContradictionDetector) Check(filename string, line types.Line, c *cond.Condition, _ []string, _ *registry.Registry) []types.Flag {
	return d.stamp(detect.DetectContradiction(filename, line, c))
}

func (d *ContradictionDetector) Name() string { return detect.RuleContradiction }

type TypoDetector struct{ baseDetector }

func NewTypoDetector() Detector {
	return &TypoDetector{baseDetector{severity: types.SeverityWarning}}
}

func (d *TypoDetector) Check(filename string, line types.Line, _ *cond.Condition, idents []string, reg *registry.Registry) []types.Flag {
	return d.stamp(detect.DetectTypos(filename, line, idents, reg))
}

func (d *TypoDetector) Name() string { return detect.RuleTypo }

type TypeMismatchDetector struct{ baseDetector }

func NewTypeMismatchDetector() Detector {
	return &TypeMismatchDetector{baseDetector{severity: types.SeverityWarning}}
}

func (d *TypeMismatchDetector) Check(filename string, line types.Line, c *cond.Condition, _ []string, _ *registry.Registry) []types.Flag {
	return d.stamp(detect.DetectTypeMismatch(filename, line, c))
}

func (d *TypeMismatchDetector) Name() string { return detect.RuleTypeMismatch }
