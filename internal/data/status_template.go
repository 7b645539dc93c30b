package data

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// StatusTemplate describes a designer-authored secondary status: which
// registered effect builds it, how long it lasts, and the effect params.
type StatusTemplate struct {
	Name     string            `yaml:"name"`
	Effect   string            `yaml:"effect"`
	Duration time.Duration     `yaml:"duration"`
	Params   map[string]string `yaml:"params"`
}

// Validate checks the fields every template needs.
func (t StatusTemplate) Validate() error {
	if t.Name == "" {
		return errors.New("status template without name")
	}
	if t.Effect == "" {
		return fmt.Errorf("status template %q: effect is required", t.Name)
	}
	if t.Duration <= 0 {
		return fmt.Errorf("status template %q: duration must be positive, got %s", t.Name, t.Duration)
	}
	return nil
}

type statusTemplateFile struct {
	Statuses []StatusTemplate `yaml:"statuses"`
}

// ParseStatusTemplates decodes a YAML template list.
func ParseStatusTemplates(raw []byte) ([]StatusTemplate, error) {
	var f statusTemplateFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parsing status templates: %w", err)
	}

	seen := make(map[string]struct{}, len(f.Statuses))
	for _, t := range f.Statuses {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[t.Name]; dup {
			return nil, fmt.Errorf("duplicate status template %q", t.Name)
		}
		seen[t.Name] = struct{}{}
	}
	return f.Statuses, nil
}

// LoadStatusTemplates reads status templates from a YAML file.
// A missing file yields DefaultStatusTemplates.
func LoadStatusTemplates(path string) ([]StatusTemplate, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultStatusTemplates(), nil
		}
		return nil, fmt.Errorf("reading status templates %s: %w", path, err)
	}
	tmpls, err := ParseStatusTemplates(raw)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return tmpls, nil
}

// DefaultStatusTemplates is the built-in catalog used when no file is
// configured.
func DefaultStatusTemplates() []StatusTemplate {
	return []StatusTemplate{
		{Name: "Haste", Effect: "SpeedChange", Duration: 30 * time.Second, Params: map[string]string{"value": "25"}},
		{Name: "Slow", Effect: "SpeedChange", Duration: 10 * time.Second, Params: map[string]string{"value": "-40"}},
		{Name: "Might", Effect: "StatUp", Duration: 60 * time.Second, Params: map[string]string{"stat": "attackDamage", "type": "PERCENT", "value": "15"}},
		{Name: "Weakness", Effect: "StatUp", Duration: 20 * time.Second, Params: map[string]string{"stat": "armor", "type": "ADD", "value": "-5", "harmful": "true"}},
		{Name: "StoneSkin", Effect: "DamageShield", Duration: 15 * time.Second, Params: map[string]string{"reduction": "50"}},
		{Name: "Entangle", Effect: "Root", Duration: 4 * time.Second},
		{Name: "Burning", Effect: "DamageOverTime", Duration: 6 * time.Second, Params: map[string]string{"power": "20", "intervalMs": "1000", "burstOnExpire": "40"}},
		{Name: "Polymorph", Effect: "Transform", Duration: 20 * time.Second, Params: map[string]string{"transformID": "1", "scale": "0.8"}},
		{Name: "DivineShield", Effect: "Invincible", Duration: 5 * time.Second},
	}
}
