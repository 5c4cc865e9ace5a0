package almanac

import (
	"fmt"
	"path/filepath"
	"strings"
)

//go:generate go tool stringer -type=Format -trimprefix=Format -output=format_string.go

// Format is the encoding of an almanac file.
type Format int

const (
	// FormatAuto picks the format from the file extension.
	FormatAuto Format = iota
	FormatText
	FormatYAML
)

// ParseFormat parses a format name as printed by Format.String, ignoring case.
func ParseFormat(s string) (Format, error) {
	for f := FormatAuto; f <= FormatYAML; f++ {
		if strings.EqualFold(s, f.String()) {
			return f, nil
		}
	}

	return FormatAuto, fmt.Errorf("unknown almanac format %q", s)
}

// DetectFormat returns FormatYAML for .yaml and .yml files and FormatText
// for everything else.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}

func (f Format) resolve(path string) Format {
	if f == FormatAuto {
		return DetectFormat(path)
	}

	return f
}
