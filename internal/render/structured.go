package render

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/Aman-s12345/go-routegen/internal/synth"
	"gopkg.in/yaml.v3"
)

// Document is the structured form of a batch, shared by the YAML and JSON
// renderers.
type Document struct {
	Groups []synth.ControllerGroup `json:"groups" yaml:"groups"`
}

func document(groups []synth.ControllerGroup) Document {
	if groups == nil {
		groups = []synth.ControllerGroup{}
	}
	return Document{Groups: groups}
}

type yamlRenderer struct{}

func (yamlRenderer) Render(groups []synth.ControllerGroup) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(document(groups)); err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	return buf.Bytes(), nil
}

type jsonRenderer struct{}

func (jsonRenderer) Render(groups []synth.ControllerGroup) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(document(groups)); err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}
	return buf.Bytes(), nil
}
