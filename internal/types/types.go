package types

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Severity is the reporting level of a detector.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
	SeverityOff
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "ERROR"
	case SeverityWarning:
		return "WARNING"
	case SeverityInfo:
		return "INFO"
	case SeverityOff:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

func parseSeverity(raw string) (Severity, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "ERROR":
		return SeverityError, nil
	case "WARNING":
		return SeverityWarning, nil
	case "INFO":
		return SeverityInfo, nil
	case "OFF":
		return SeverityOff, nil
	default:
		return SeverityError, fmt.Errorf("unknown severity %q", raw)
	}
}

func (s Severity) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

func (s *Severity) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := parseSeverity(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", s.String())), nil
}

func (s *Severity) UnmarshalJSON(data []byte) error {
	parsed, err := parseSeverity(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ConfigRule holds the user-supplied settings for a single detector.
type ConfigRule struct {
	Severity Severity `yaml:"severity"`
}

// Line is one raw input line together with its 1-based position in the source.
type Line struct {
	Number int
	Text   string
}

// Flag represents one finding reported for an input line.
type Flag struct {
	Rule     string   `json:"rule"`
	Severity Severity `json:"severity"`
	Filename string   `json:"filename,omitempty"`
	Line     int      `json:"line"`
	Message  string   `json:"message"`
	Text     string   `json:"text"`
}

// String renders the flag in the fixed single-line report format.
func (f Flag) String() string {
	return fmt.Sprintf("FLAG: %s in line: %s", f.Message, f.Text)
}
