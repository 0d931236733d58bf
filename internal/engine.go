package internal

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/pseudolint/plint/internal/cond"
	"github.com/pseudolint/plint/internal/detect"
	"github.com/pseudolint/plint/internal/registry"
	"github.com/pseudolint/plint/internal/types"
)

// Engine manages the analysis of pseudo-code lines: it owns the detector set
// and drives each line through normalization and the detectors in a fixed
// order.
type Engine struct {
	ignoredRules map[string]bool
	rules        map[string]Detector
	synonyms     map[string][]string

	watcher    *fsnotify.Watcher
	isWatching bool
	report     func(filename string, flags []types.Flag)
}

// Detectors run in this order on every line; flags are additive, a finding
// never short-circuits the detectors after it.
var detectorOrder = []string{
	detect.RuleRedundancy,
	detect.RuleContradiction,
	detect.RuleTypo,
	detect.RuleTypeMismatch,
}

type detectorConstructor func() Detector

var allDetectorConstructors = map[string]detectorConstructor{
	detect.RuleRedundancy:    NewRedundancyDetector,
	detect.RuleContradiction: NewContradictionDetector,
	detect.RuleTypo:          NewTypoDetector,
	detect.RuleTypeMismatch:  NewTypeMismatchDetector,
}

// NewEngine creates an analysis engine seeded with the given variable synonym
// table and per-rule configuration. A nil synonym table falls back to the
// built-in dictionary.
func NewEngine(synonyms map[string][]string, rules map[string]types.ConfigRule) (*Engine, error) {
	if synonyms == nil {
		synonyms = registry.DefaultSynonyms()
	}
	engine := &Engine{synonyms: synonyms}
	engine.applyRules(rules)
	return engine, nil
}

func (e *Engine) applyRules(rules map[string]types.ConfigRule) {
	e.rules = make(map[string]Detector)
	for name, constructor := range allDetectorConstructors {
		e.rules[name] = constructor()
	}
	for name, rule := range rules {
		d, ok := e.rules[name]
		if !ok {
			// unknown rule, continue to the next one
			continue
		}
		if rule.Severity == types.SeverityOff {
			e.IgnoreRule(name)
			continue
		}
		d.SetSeverity(rule.Severity)
	}
}

// IgnoreRule disables a detector by name.
func (e *Engine) IgnoreRule(rule string) {
	if e.ignoredRules == nil {
		e.ignoredRules = make(map[string]bool)
	}
	e.ignoredRules[rule] = true
}

// Run analyzes the file at path and returns its flags in line order.
func (e *Engine) Run(filename string) ([]types.Flag, error) {
	src, err := ReadSourceCode(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", filename, err)
	}
	return e.runLines(filename, src.Lines), nil
}

// RunSource analyzes raw source bytes.
func (e *Engine) RunSource(source []byte) ([]types.Flag, error) {
	return e.runLines("", strings.Split(string(source), "\n")), nil
}

// runLines processes the lines sequentially. The variable registry is fresh
// per run and grows as lines introduce new names, so flags are deterministic
// for a given input and synonym table.
func (e *Engine) runLines(filename string, lines []string) []types.Flag {
	reg := registry.New(e.synonyms)
	var all []types.Flag
	for i, raw := range lines {
		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}
		line := types.Line{Number: i + 1, Text: text}

		c, err := cond.Parse(text)
		var idents []string
		if errors.Is(err, cond.ErrUnparseable) {
			// no conditional structure: fall through to typo-only scanning
			idents = cond.ScanIdentifiers(text)
		} else {
			idents = c.RawIdentifiers()
		}

		for _, name := range detectorOrder {
			d, ok := e.rules[name]
			if !ok || e.ignoredRules[name] {
				continue
			}
			all = append(all, e.checkSafely(d, filename, line, c, idents, reg)...)
		}
	}
	return all
}

// checkSafely isolates a detector fault: a panic inside one detector must not
// prevent the others from running on the same line.
func (e *Engine) checkSafely(d Detector, filename string, line types.Line, c *cond.Condition, idents []string, reg *registry.Registry) (flags []types.Flag) {
	defer func() {
		if r := recover(); r != nil {
			flags = nil
		}
	}()
	return d.Check(filename, line, c, idents, reg)
}

// SourceCode stores the content of a source file.
type SourceCode struct {
	Lines []string
}

// ReadSourceCode reads the content of a file and returns it as a `SourceCode` struct.
func ReadSourceCode(filename string) (*SourceCode, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return &SourceCode{Lines: strings.Split(string(content), "\n")}, nil
}
