// Package formatter renders flags for terminal output. The report format is
// fixed: one line per flag, `FLAG: <message> in line: <original line text>`.
// Styles only add color on terminals; piped output stays plain.
package formatter

import (
	"strings"

	"github.com/fatih/color"

	"github.com/pseudolint/plint/internal/types"
)

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	warningStyle = color.New(color.FgHiYellow, color.Bold)
	infoStyle    = color.New(color.FgHiBlue, color.Bold)
	fileStyle    = color.New(color.FgCyan, color.Bold)
	lineStyle    = color.New(color.FgHiBlue, color.Bold)
)

// GenerateFormattedFlags renders flags in the fixed report format, one line
// per flag, in the order given.
func GenerateFormattedFlags(flags []types.Flag) string {
	var builder strings.Builder
	for _, f := range flags {
		builder.WriteString(prefixStyle(f.Severity).Sprint("FLAG:"))
		builder.WriteString(" " + f.Message + " in line: " + f.Text + "\n")
	}
	return builder.String()
}

// GenerateFileHeader renders the per-file heading printed before a file's
// flags when more than one file is reported.
func GenerateFileHeader(filename string, count int) string {
	return fileStyle.Sprint(filename) + lineStyle.Sprintf(": %d flag(s)\n", count)
}

func prefixStyle(s types.Severity) *color.Color {
	switch s {
	case types.SeverityWarning:
		return warningStyle
	case types.SeverityInfo:
		return infoStyle
	default:
		return errorStyle
	}
}
