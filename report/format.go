package report

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCBOR Format = "cbor"
)

var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatCBOR}

// ParseFormat accepts a format name case-insensitively. "yml" is an alias
// for yaml.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "yml" {
		name = string(FormatYAML)
	}
	if f := Format(name); slices.Contains(Formats, f) {
		return f, nil
	}
	return "", errors.Errorf("unknown format %q (want text, json, yaml or cbor)", s)
}
