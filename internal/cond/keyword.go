package cond

import "strings"

// Canonical keyword tokens produced by the keyword pass.
const (
	KeywordIf     = "IF"
	KeywordElseIf = "ELSE IF"
	KeywordAnd    = "AND"
	KeywordOr     = "OR"
	KeywordNot    = "NOT"
	KeywordThen   = "THEN"
	KeywordElse   = "ELSE"
)

// phrase maps a case-insensitive word sequence onto its canonical token.
type phrase struct {
	words []string
	repl  Token
}

// keywordPhrases is ordered longest-match-first so that compound keywords
// win over their prefixes ("ELSE IF" before "IF", "IS NOT" before "IS").
var keywordPhrases = []phrase{
	{[]string{"in", "addition", "to"}, Token{Kind: TokenKeyword, Text: KeywordAnd}},
	{[]string{"is", "same", "as"}, Token{Kind: TokenOperator, Text: "=="}},
	{[]string{"provided", "that"}, Token{Kind: TokenKeyword, Text: KeywordIf}},
	{[]string{"only", "when"}, Token{Kind: TokenKeyword, Text: KeywordIf}},
	{[]string{"else", "if"}, Token{Kind: TokenKeyword, Text: KeywordElseIf}},
	{[]string{"is", "not"}, Token{Kind: TokenOperator, Text: "!="}},
	{[]string{"different", "from"}, Token{Kind: TokenOperator, Text: "!="}},
	{[]string{"greater", "than"}, Token{Kind: TokenOperator, Text: ">"}},
	{[]string{"less", "than"}, Token{Kind: TokenOperator, Text: "<"}},
	{[]string{"if"}, Token{Kind: TokenKeyword, Text: KeywordIf}},
	{[]string{"whenever"}, Token{Kind: TokenKeyword, Text: KeywordIf}},
	{[]string{"and"}, Token{Kind: TokenKeyword, Text: KeywordAnd}},
	{[]string{"also"}, Token{Kind: TokenKeyword, Text: KeywordAnd}},
	{[]string{"or"}, Token{Kind: TokenKeyword, Text: KeywordOr}},
	{[]string{"either"}, Token{Kind: TokenKeyword, Text: KeywordOr}},
	{[]string{"unless"}, Token{Kind: TokenKeyword, Text: KeywordOr}},
	{[]string{"not"}, Token{Kind: TokenKeyword, Text: KeywordNot}},
	{[]string{"equals"}, Token{Kind: TokenOperator, Text: "=="}},
	{[]string{"matches"}, Token{Kind: TokenOperator, Text: "=="}},
	{[]string{"is"}, Token{Kind: TokenOperator, Text: "=="}},
	{[]string{"above"}, Token{Kind: TokenOperator, Text: ">"}},
	{[]string{"below"}, Token{Kind: TokenOperator, Text: "<"}},
	{[]string{"true"}, Token{Kind: TokenWord, Text: "true"}},
	{[]string{"yes"}, Token{Kind: TokenWord, Text: "true"}},
	{[]string{"active"}, Token{Kind: TokenWord, Text: "true"}},
	{[]string{"false"}, Token{Kind: TokenWord, Text: "false"}},
	{[]string{"no"}, Token{Kind: TokenWord, Text: "false"}},
	{[]string{"inactive"}, Token{Kind: TokenWord, Text: "false"}},
	{[]string{"then"}, Token{Kind: TokenKeyword, Text: KeywordThen}},
	{[]string{"do"}, Token{Kind: TokenKeyword, Text: KeywordThen}},
	{[]string{"else"}, Token{Kind: TokenKeyword, Text: KeywordElse}},
}

// Canonicalize rewrites keyword and operator synonyms into their canonical
// tokens. Matching is case-insensitive and longest-match-first; the original
// spelling survives in Raw.
func Canonicalize(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	for i := 0; i < len(tokens); {
		p, n := matchPhrase(tokens[i:])
		if n == 0 {
			out = append(out, tokens[i])
			i++
			continue
		}
		raws := make([]string, 0, n)
		for _, t := range tokens[i : i+n] {
			raws = append(raws, t.Raw)
		}
		repl := p.repl
		repl.Raw = strings.Join(raws, " ")
		out = append(out, repl)
		i += n
	}
	return out
}

// matchPhrase returns the first phrase matching the token prefix and how many
// tokens it consumed, or a zero count when nothing matches.
func matchPhrase(tokens []Token) (phrase, int) {
	for _, p := range keywordPhrases {
		if len(tokens) < len(p.words) {
			continue
		}
		matched := true
		for j, w := range p.words {
			t := tokens[j]
			if t.Kind != TokenWord || strings.ToLower(t.Text) != w {
				matched = false
				break
			}
		}
		if matched {
			return p, len(p.words)
		}
	}
	return phrase{}, 0
}
