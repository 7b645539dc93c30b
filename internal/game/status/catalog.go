package status

import (
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/udisondev/statusfx/internal/data"
)

// Catalog builds secondary statuses from named templates.
// Immutable after NewCatalog; safe for concurrent use.
type Catalog struct {
	templates map[string]data.StatusTemplate
}

// NewCatalog indexes templates by name. Every template must reference a
// registered effect.
func NewCatalog(templates []data.StatusTemplate) (*Catalog, error) {
	c := &Catalog{templates: make(map[string]data.StatusTemplate, len(templates))}
	for _, t := range templates {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if !IsRegistered(t.Effect) {
			return nil, fmt.Errorf("status template %q: unknown effect type: %s", t.Name, t.Effect)
		}
		c.templates[t.Name] = t
	}
	return c, nil
}

// New creates a fresh status from the named template, cast by casterID
// at started.
func (c *Catalog) New(name string, casterID uint32, started time.Time) (Status, error) {
	t, ok := c.templates[name]
	if !ok {
		return nil, fmt.Errorf("unknown status template: %s", name)
	}
	return CreateEffect(t.Effect, Params{
		Name:     t.Name,
		CasterID: casterID,
		Started:  started,
		Until:    started.Add(t.Duration),
		Values:   t.Params,
	})
}

// Template returns the named template.
func (c *Catalog) Template(name string) (data.StatusTemplate, bool) {
	t, ok := c.templates[name]
	return t, ok
}

// Names returns template names, sorted.
func (c *Catalog) Names() []string {
	return slices.Sorted(maps.Keys(c.templates))
}
