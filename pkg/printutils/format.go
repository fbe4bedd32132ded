package printutils

import (
	"errors"
	"fmt"
	"strings"
)

type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
)

var ErrInvalidFormat = errors.New("invalid output format")

// Formats lists the accepted --output values
var Formats = []Format{FormatText, FormatTable, FormatYAML, FormatJSON}

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatText:
		return FormatText, nil
	case FormatTable:
		return FormatTable, nil
	case FormatYAML:
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w %q, use one of %s", ErrInvalidFormat, s, formatNames())
}

// Structured reports whether the format is meant for machines rather than humans
func (f Format) Structured() bool {
	return f == FormatYAML || f == FormatJSON
}

func formatNames() string {
	names := make([]string, 0, len(Formats))
	for _, f := range Formats {
		names = append(names, "'"+string(f)+"'")
	}
	return strings.Join(names, ", ")
}
