package cond

import (
	"errors"
	"strings"
	"unicode"
)

// ErrUnparseable reports a line with no recognizable conditional structure.
// It is line-local and non-fatal: callers fall back to scanning raw
// identifier tokens.
var ErrUnparseable = errors.New("line has no conditional structure")

// Parse normalizes one pseudo-code line into a Condition: keyword synonyms
// are canonicalized, the line is split into IF/ELSE IF branches, and each
// branch into atomic comparisons. A malformed atomic (operator without a
// right-hand side) is skipped; its siblings still parse.
func Parse(line string) (*Condition, error) {
	tokens := Canonicalize(Tokenize(line))

	var cnd Condition
	for _, region := range conditionRegions(tokens) {
		if b, ok := parseBranch(region); ok {
			cnd.Branches = append(cnd.Branches, b)
		}
	}
	if len(cnd.Branches) == 0 {
		return nil, ErrUnparseable
	}
	return &cnd, nil
}

// ScanIdentifiers returns the identifier-looking word tokens of a line that
// failed to parse, with keyword and literal synonyms already filtered out.
func ScanIdentifiers(line string) []string {
	var idents []string
	for _, t := range Canonicalize(Tokenize(line)) {
		if t.Kind != TokenWord {
			continue
		}
		if t.Text == "true" || t.Text == "false" {
			continue
		}
		idents = append(idents, t.Raw)
	}
	return idents
}

// conditionRegions extracts the token runs that form branch conditions.
// When the line carries no IF at all, the whole line is one region.
func conditionRegions(tokens []Token) [][]Token {
	hasIf := false
	for _, t := range tokens {
		if t.Kind == TokenKeyword && (t.Text == KeywordIf || t.Text == KeywordElseIf) {
			hasIf = true
			break
		}
	}
	if !hasIf {
		return [][]Token{tokens}
	}

	var regions [][]Token
	var cur []Token
	open := false
	flush := func() {
		if open && len(cur) > 0 {
			regions = append(regions, cur)
		}
		cur = nil
	}
	for _, t := range tokens {
		if t.Kind == TokenKeyword {
			switch t.Text {
			case KeywordIf, KeywordElseIf:
				flush()
				open = true
				continue
			case KeywordThen, KeywordElse:
				flush()
				open = false
				continue
			}
		}
		if open {
			cur = append(cur, t)
		}
	}
	flush()
	return regions
}

// parseBranch extracts the atomic comparisons of one condition region.
func parseBranch(region []Token) (Branch, bool) {
	var b Branch
	pendingConn := ""
	negate := false

	for i := 0; i < len(region); {
		t := region[i]
		if t.Kind == TokenKeyword {
			switch t.Text {
			case KeywordAnd, KeywordOr:
				pendingConn = t.Text
			case KeywordNot:
				negate = true
			}
			i++
			continue
		}

		if t.Kind == TokenWord && i+1 < len(region) && region[i+1].Kind == TokenOperator {
			op := region[i+1].Text
			if negate {
				op = flipOperator(op)
				negate = false
			}
			if i+2 < len(region) && isValueToken(region[i+2]) {
				rhs := region[i+2]
				comp := Comparison{
					Ident:    ToSnakeCase(t.Text),
					RawIdent: t.Raw,
					Op:       op,
					Value:    valueOf(rhs),
					RawText:  t.Raw + " " + region[i+1].Raw + " " + rhs.Raw,
				}
				if len(b.Comparisons) > 0 {
					if pendingConn == "" {
						pendingConn = KeywordAnd
					}
					b.Connectives = append(b.Connectives, pendingConn)
				}
				pendingConn = ""
				b.Comparisons = append(b.Comparisons, comp)
				i += 3
				continue
			}
			// operator with no right-hand side: malformed atomic, skip it
			i += 2
			continue
		}
		i++
	}
	return b, len(b.Comparisons) > 0
}

func isValueToken(t Token) bool {
	switch t.Kind {
	case TokenWord, TokenNumber, TokenString:
		return true
	}
	return false
}

func valueOf(t Token) Value {
	switch t.Kind {
	case TokenNumber:
		return Value{Kind: ValueNumber, Text: t.Text}
	case TokenString:
		return Value{Kind: ValueString, Text: t.Text}
	default:
		return Value{Kind: ValueWord, Text: strings.ToLower(t.Text)}
	}
}

// flipOperator negates an equality operator; NOT before other comparisons is
// ignored for structure.
func flipOperator(op string) string {
	switch op {
	case "==":
		return "!="
	case "!=":
		return "=="
	}
	return op
}

// ToSnakeCase converts an identifier-like token to canonical snake_case:
// a separator is inserted where a lowercase letter or digit is followed by an
// uppercase letter, whitespace and hyphen runs collapse to one underscore,
// and the result is lowercased.
func ToSnakeCase(s string) string {
	var b strings.Builder
	runes := []rune(s)
	pendingSep := false
	for i, r := range runes {
		if unicode.IsSpace(r) || r == '-' {
			pendingSep = true
			continue
		}
		if pendingSep {
			b.WriteRune('_')
			pendingSep = false
		}
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				b.WriteRune('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
