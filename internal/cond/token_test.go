package cond

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "words and double-equals",
			input: "user_type == admin",
			expected: []Token{
				{TokenWord, "user_type", "user_type"},
				{TokenOperator, "==", "=="},
				{TokenWord, "admin", "admin"},
			},
		},
		{
			name:  "single equals is tolerated",
			input: "count = 5",
			expected: []Token{
				{TokenWord, "count", "count"},
				{TokenOperator, "==", "="},
				{TokenNumber, "5", "5"},
			},
		},
		{
			name:  "not-equals and relational operators",
			input: "a != b > 10 < 2",
			expected: []Token{
				{TokenWord, "a", "a"},
				{TokenOperator, "!=", "!="},
				{TokenWord, "b", "b"},
				{TokenOperator, ">", ">"},
				{TokenNumber, "10", "10"},
				{TokenOperator, "<", "<"},
				{TokenNumber, "2", "2"},
			},
		},
		{
			name:  "greater-or-equal collapses to greater",
			input: "x >= 3",
			expected: []Token{
				{TokenWord, "x", "x"},
				{TokenOperator, ">", ">="},
				{TokenNumber, "3", "3"},
			},
		},
		{
			name:  "single and double quoted strings",
			input: `name == 'bob' OR name == "alice"`,
			expected: []Token{
				{TokenWord, "name", "name"},
				{TokenOperator, "==", "=="},
				{TokenString, "bob", "'bob'"},
				{TokenWord, "OR", "OR"},
				{TokenWord, "name", "name"},
				{TokenOperator, "==", "=="},
				{TokenString, "alice", `"alice"`},
			},
		},
		{
			name:  "unterminated quote consumes the rest",
			input: "v == 'oops",
			expected: []Token{
				{TokenWord, "v", "v"},
				{TokenOperator, "==", "=="},
				{TokenString, "oops", "'oops"},
			},
		},
		{
			name:  "punctuation is dropped",
			input: "(flag == 1)",
			expected: []Token{
				{TokenWord, "flag", "flag"},
				{TokenOperator, "==", "=="},
				{TokenNumber, "1", "1"},
			},
		},
		{
			name:  "decimal number",
			input: "weight > 2.5",
			expected: []Token{
				{TokenWord, "weight", "weight"},
				{TokenOperator, ">", ">"},
				{TokenNumber, "2.5", "2.5"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Tokenize(tt.input)
			require.Len(t, tokens, len(tt.expected))
			for i, want := range tt.expected {
				assert.Equal(t, want, tokens[i])
			}
		})
	}
}

func TestCanonicalizeKeywords(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "word operator synonyms",
			input: "a is b equals c matches d",
			expected: []Token{
				{TokenWord, "a", "a"},
				{TokenOperator, "==", "is"},
				{TokenWord, "b", "b"},
				{TokenOperator, "==", "equals"},
				{TokenWord, "c", "c"},
				{TokenOperator, "==", "matches"},
				{TokenWord, "d", "d"},
			},
		},
		{
			name:  "is not wins over is",
			input: "status is not closed",
			expected: []Token{
				{TokenWord, "status", "status"},
				{TokenOperator, "!=", "is not"},
				{TokenWord, "closed", "closed"},
			},
		},
		{
			name:  "else if wins over if",
			input: "ELSE IF x",
			expected: []Token{
				{TokenKeyword, KeywordElseIf, "ELSE IF"},
				{TokenWord, "x", "x"},
			},
		},
		{
			name:  "multi-word phrases",
			input: "provided that a is same as b in addition to c greater than 1",
			expected: []Token{
				{TokenKeyword, KeywordIf, "provided that"},
				{TokenWord, "a", "a"},
				{TokenOperator, "==", "is same as"},
				{TokenWord, "b", "b"},
				{TokenKeyword, KeywordAnd, "in addition to"},
				{TokenWord, "c", "c"},
				{TokenOperator, ">", "greater than"},
				{TokenNumber, "1", "1"},
			},
		},
		{
			name:  "boolean literal synonyms keep raw spelling",
			input: "ACTIVE yes INACTIVE",
			expected: []Token{
				{TokenWord, "true", "ACTIVE"},
				{TokenWord, "true", "yes"},
				{TokenWord, "false", "INACTIVE"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Canonicalize(Tokenize(tt.input))
			require.Len(t, tokens, len(tt.expected))
			for i, want := range tt.expected {
				assert.Equal(t, want, tokens[i])
			}
		})
	}
}
