package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectContradiction(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected int
	}{
		{
			name:     "else if repeats the if branch",
			line:     "If user_status == active THEN do something ELSE IF user_status == active",
			expected: 1,
		},
		{
			name:     "repeated branch with different spelling",
			line:     "If UserStatus is ACTIVE THEN x ELSE IF user_status == active",
			expected: 1,
		},
		{
			name:     "complementary equality operators",
			line:     "If account_status == closed AND account_status != closed",
			expected: 1,
		},
		{
			name:     "complementary relational operators",
			line:     "If item_count > 5 AND item_count < 5",
			expected: 1,
		},
		{
			name:     "both patterns still yield one flag",
			line:     "If a == 1 AND a != 1 THEN x ELSE IF a == 1 AND a != 1",
			expected: 1,
		},
		{
			name:     "distinct branches",
			line:     "If user_status == active THEN x ELSE IF user_status == inactive",
			expected: 0,
		},
		{
			name:     "complementary operators on different values",
			line:     "If item_count > 5 AND item_count < 9",
			expected: 0,
		},
		{
			name:     "complementary pair split by OR",
			line:     "If a == 1 OR a != 1",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, c := parseLine(t, tt.line)
			flags := DetectContradiction("test.txt", line, c)
			require.Len(t, flags, tt.expected)
			if tt.expected > 0 {
				assert.Equal(t, "Contradictory/unreachable logic", flags[0].Message)
				assert.Equal(t, RuleContradiction, flags[0].Rule)
			}
		})
	}
}
