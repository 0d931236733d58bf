package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pseudolint/plint/internal/cond"
	"github.com/pseudolint/plint/internal/types"
)

func parseLine(t *testing.T, text string) (types.Line, *cond.Condition) {
	t.Helper()
	line := types.Line{Number: 1, Text: text}
	c, err := cond.Parse(text)
	if err != nil {
		return line, nil
	}
	return line, c
}

func TestDetectRedundancy(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected []string
	}{
		{
			name:     "same check different spelling",
			line:     "If UserType is admin AND user_type is admin",
			expected: []string{"Redundant condition 'user_type == admin'"},
		},
		{
			name:     "token-identical duplicates are not flagged",
			line:     "If user_type == admin AND user_type == admin",
			expected: nil,
		},
		{
			name:     "order-swapped duplicates across AND",
			line:     "If a == 1 AND b == 2 AND A == 1",
			expected: []string{"Redundant condition 'a == 1'"},
		},
		{
			name: "two distinct duplicated conditions",
			line: "If UserType is admin AND user_type == admin AND itemCount == 5 AND item_count == 5",
			expected: []string{
				"Redundant condition 'user_type == admin'",
				"Redundant condition 'item_count == 5'",
			},
		},
		{
			name:     "duplicates across OR are not AND-joined",
			line:     "If UserType is admin OR user_type == admin",
			expected: nil,
		},
		{
			name:     "no duplicates",
			line:     "If user_type == admin AND user_role == editor",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, c := parseLine(t, tt.line)
			flags := DetectRedundancy("test.txt", line, c)
			require.Len(t, flags, len(tt.expected))
			for i, want := range tt.expected {
				assert.Equal(t, want, flags[i].Message)
				assert.Equal(t, RuleRedundancy, flags[i].Rule)
				assert.Equal(t, tt.line, flags[i].Text)
			}
		})
	}
}

func TestDetectRedundancyNilCondition(t *testing.T) {
	line, c := parseLine(t, "nothing to see here")
	require.Nil(t, c)
	assert.Empty(t, DetectRedundancy("test.txt", line, c))
}
