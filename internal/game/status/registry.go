package status

import (
	"fmt"
	"slices"
	"strconv"
	"sync"
	"time"
)

// Params are the inputs a secondary effect factory receives.
type Params struct {
	// Name is the kind name reported by Status.Name. Defaults to the
	// registered effect name.
	Name     string
	CasterID uint32
	Started  time.Time
	Until    time.Time
	Values   map[string]string
}

func (p Params) name(def string) string {
	if p.Name != "" {
		return p.Name
	}
	return def
}

func (p Params) timing() Timing {
	return Timing{Started: p.Started, Until: p.Until}
}

// Float returns Values[key] as float64, or def if missing or malformed.
func (p Params) Float(key string, def float64) float64 {
	v, err := strconv.ParseFloat(p.Values[key], 64)
	if err != nil {
		return def
	}
	return v
}

// Int returns Values[key] as int32, or def if missing or malformed.
func (p Params) Int(key string, def int32) int32 {
	v, err := strconv.ParseInt(p.Values[key], 10, 32)
	if err != nil {
		return def
	}
	return int32(v)
}

// Bool returns Values[key] as bool, or def if missing or malformed.
func (p Params) Bool(key string, def bool) bool {
	v, err := strconv.ParseBool(p.Values[key])
	if err != nil {
		return def
	}
	return v
}

// Factory builds a secondary status from params.
type Factory func(p Params) Status

// registry maps effect name → factory. Built-ins are registered in init();
// external kinds call RegisterEffect before the first tick.
var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{}
)

// RegisterEffect registers a secondary effect factory. A later
// registration under the same name replaces the earlier one.
func RegisterEffect(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = factory
}

// CreateEffect builds a status through the registered factory.
func CreateEffect(name string, p Params) (Status, error) {
	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown effect type: %s", name)
	}
	return factory(p), nil
}

// IsRegistered reports whether an effect factory exists for name.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := registry[name]
	return ok
}

// RegisteredEffects returns registered effect names, sorted.
func RegisteredEffects() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func init() {
	RegisterEffect("SpeedChange", NewSpeedChange)
	RegisterEffect("StatUp", NewStatUp)
	RegisterEffect("DamageShield", NewDamageShield)
	RegisterEffect("Root", NewRoot)
	RegisterEffect("DamageOverTime", NewDamageOverTime)
	RegisterEffect("Transform", NewTransform)
	RegisterEffect("Invincible", NewInvincible)
}
