// Package render turns synthesized route groups into text a host
// application can consume.
package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Aman-s12345/go-routegen/internal/synth"
)

var ErrUnsupportedFormat = errors.New("unsupported output format")

type Format string

const (
	FormatLaravel Format = "laravel"
	FormatGo      Format = "go"
	FormatYAML    Format = "yaml"
	FormatJSON    Format = "json"
)

// Formats lists every format New accepts.
var Formats = []Format{FormatLaravel, FormatGo, FormatYAML, FormatJSON}

// Renderer produces the text for a batch of groups. Identical input always
// yields identical bytes.
type Renderer interface {
	Render(groups []synth.ControllerGroup) ([]byte, error)
}

func New(format Format) (Renderer, error) {
	switch format {
	case FormatLaravel:
		return laravelRenderer{}, nil
	case FormatGo:
		return goRenderer{pkg: "routes"}, nil
	case FormatYAML:
		return yamlRenderer{}, nil
	case FormatJSON:
		return jsonRenderer{}, nil
	default:
		return nil, fmt.Errorf("%w: %s (supported: %s)", ErrUnsupportedFormat, format, supported())
	}
}

func supported() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// comment renders text as line comments, one per line of text.
func comment(text string) string {
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		if line = strings.TrimSpace(line); line == "" {
			b.WriteString("//\n")
			continue
		}
		b.WriteString("// " + line + "\n")
	}
	return b.String()
}
