// Package render turns decoded Java serialization streams, and byte strings
// that merely might be one, into readable text.
package render

import (
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/ghodss/yaml"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/lujjjh/go-jserial"
)

// Format selects the output notation.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	// FormatDump prints the Go values themselves, for debugging.
	FormatDump Format = "dump"
	// FormatText is a compact Java-like notation, eg
	// com.example.Point{x=1, y=2}.
	FormatText Format = "text"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var dumper = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// ParseFormat parses the name of a format, ignoring case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatYAML, FormatDump, FormatText:
		return f, nil
	case "":
		return FormatJSON, nil
	default:
		return "", errors.Errorf("unknown format %q", s)
	}
}

// Render formats one decoded item.
func Render(c jserial.Content, f Format) (string, error) {
	switch f {
	case FormatText:
		return Text(c), nil
	case FormatDump:
		return dumper.Sdump(c), nil
	default:
		return encode(Tree(c), f)
	}
}

// encode writes a tree built of maps and slices as JSON or YAML.
func encode(tree interface{}, f Format) (string, error) {
	switch f {
	case FormatJSON, "":
		p, err := json.MarshalIndent(tree, "", "  ")
		if err != nil {
			return "", errors.Wrap(err, "encode json")
		}
		return string(p), nil
	case FormatYAML:
		p, err := yaml.Marshal(tree)
		if err != nil {
			return "", errors.Wrap(err, "encode yaml")
		}
		return string(p), nil
	case FormatDump:
		return dumper.Sdump(tree), nil
	default:
		return "", errors.Errorf("unknown format %q", string(f))
	}
}
