package cond

import (
	"sort"
	"strings"
)

// ValueKind classifies the right-hand side of an atomic comparison.
type ValueKind int

const (
	ValueWord ValueKind = iota
	ValueNumber
	ValueString
)

// Value is the right-hand side of a comparison in canonical form: bare words
// are lowercased, numbers and quoted-string contents are kept exact.
type Value struct {
	Kind ValueKind
	Text string
}

func (v Value) Equal(o Value) bool {
	return v.Kind == o.Kind && v.Text == o.Text
}

func (v Value) String() string {
	if v.Kind == ValueString {
		return "'" + v.Text + "'"
	}
	return v.Text
}

// Comparison is one atomic (identifier, operator, value) triple.
type Comparison struct {
	Ident    string // canonical snake_case spelling
	RawIdent string // spelling as written
	Op       string // "==", "!=", ">" or "<"
	Value    Value
	RawText  string // source tokens of the atomic, for token-identity checks
}

// Equivalent reports whether two atomics are the same semantic check after
// canonicalization. A quoted "5" never equals a bare 5.
func (c Comparison) Equivalent(o Comparison) bool {
	return c.Ident == o.Ident && c.Op == o.Op && c.Value.Equal(o.Value)
}

func (c Comparison) String() string {
	return c.Ident + " " + c.Op + " " + c.Value.String()
}

// Branch is one IF or ELSE IF segment: atomic comparisons in source order,
// with the connective recorded between each neighbouring pair.
type Branch struct {
	Comparisons []Comparison
	Connectives []string // len(Comparisons)-1 entries, KeywordAnd or KeywordOr
}

// Equivalent reports whether two branches contain the same multiset of atomic
// comparisons joined by the same connectives, irrespective of operand order.
func (b Branch) Equivalent(o Branch) bool {
	if len(b.Comparisons) != len(o.Comparisons) {
		return false
	}
	if !sameSorted(b.Connectives, o.Connectives) {
		return false
	}
	return sameSorted(canonicalForms(b.Comparisons), canonicalForms(o.Comparisons))
}

// ANDGroups splits the branch at OR connectives, returning the runs of
// comparisons that are all joined by AND.
func (b Branch) ANDGroups() [][]Comparison {
	if len(b.Comparisons) == 0 {
		return nil
	}
	groups := [][]Comparison{{b.Comparisons[0]}}
	for i, conn := range b.Connectives {
		next := b.Comparisons[i+1]
		if conn == KeywordOr {
			groups = append(groups, []Comparison{next})
		} else {
			groups[len(groups)-1] = append(groups[len(groups)-1], next)
		}
	}
	return groups
}

func (b Branch) String() string {
	var sb strings.Builder
	for i, c := range b.Comparisons {
		if i > 0 {
			sb.WriteString(" " + b.Connectives[i-1] + " ")
		}
		sb.WriteString(c.String())
	}
	return sb.String()
}

// Condition is the normalized form of one line: the IF branch followed by any
// ELSE IF branches.
type Condition struct {
	Branches []Branch
}

// String renders the canonical form of the condition. Parsing the rendered
// form yields the same structure (normalization is idempotent).
func (c *Condition) String() string {
	parts := make([]string, 0, len(c.Branches))
	for _, b := range c.Branches {
		parts = append(parts, b.String())
	}
	return KeywordIf + " " + strings.Join(parts, " "+KeywordElseIf+" ")
}

// RawIdentifiers returns the left-hand-side spellings as written, in order.
func (c *Condition) RawIdentifiers() []string {
	var idents []string
	for _, b := range c.Branches {
		for _, comp := range b.Comparisons {
			idents = append(idents, comp.RawIdent)
		}
	}
	return idents
}

func canonicalForms(comps []Comparison) []string {
	forms := make([]string, 0, len(comps))
	for _, c := range comps {
		forms = append(forms, c.String())
	}
	return forms
}

func sameSorted(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]string(nil), a...)
	bs := append([]string(nil), b...)
	sort.Strings(as)
	sort.Strings(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}
