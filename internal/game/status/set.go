package status

import (
	"log/slog"
	"sync"
	"time"
)

// SlotCount is the fixed capacity of a Set, reserved main slots included.
const SlotCount = 32

// Set holds the active statuses of one character.
//
// Slots [0, MainKindCount) are reserved: slot i holds only MainKind(i).
// Secondary statuses are appended at the high-water mark (hwm), which only
// grows on insert and shrinks past trailing empty slots after Tick.
//
// Thread-safe: one mutex guards the whole set, effects included.
type Set struct {
	mu    sync.Mutex
	slots [SlotCount]Status
	hwm   int

	// Reused by Attributes; refilled on every call.
	mods *Modifiers
}

// NewSet creates an empty Set.
func NewSet() *Set {
	return &Set{
		hwm:  MainKindCount,
		mods: NewModifiers(),
	}
}

// Add stores a secondary status at the high-water mark.
// Built-in main statuses are routed to their reserved slot instead.
// Returns false if the set is full; the status is dropped and logged.
func (s *Set) Add(st Status) bool {
	if st == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addLocked(st)
}

func (s *Set) addLocked(st Status) bool {
	if kind, ok := mainKindOf(st); ok {
		s.setMainLocked(kind, st)
		return true
	}
	if s.hwm >= SlotCount {
		slog.Error("no free status slot",
			"status", st.Name(),
			"capacity", SlotCount)
		return false
	}
	s.slots[s.hwm] = st
	s.hwm++
	return true
}

// setMainLocked writes a built-in into its reserved slot. Poison keeps the
// later expiry, everything else is a plain replace.
func (s *Set) setMainLocked(kind MainKind, st Status) {
	if p, ok := st.(*Poison); ok {
		s.addPoisonLocked(p.casterID, p.started, p.until)
		return
	}
	s.slots[kind] = st
}

// Merge applies st honouring the stacking policy: if an active status of
// the same kind exists, its Merge decides whether st is appended or
// dropped. Returns true if st was stored.
func (s *Set) Merge(st Status) bool {
	if st == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := mainKindOf(st); !ok {
		name := st.Name()
		for i := MainKindCount; i < s.hwm; i++ {
			existing := s.slots[i]
			if existing == nil || existing.Name() != name {
				continue
			}
			if existing.Merge(st) == DropIncoming {
				slog.Debug("status merged into active instance", "status", name, "slot", i)
				return false
			}
			break
		}
	}
	return s.addLocked(st)
}

// AddPoison (re)applies poison. An active poison is replaced by a fresh
// instance carrying the new caster, with expiry max(current, until) and the
// next damage one tick after started.
func (s *Set) AddPoison(casterID uint32, started, until time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addPoisonLocked(casterID, started, until)
}

func (s *Set) addPoisonLocked(casterID uint32, started, until time.Time) {
	if current, ok := s.slots[MainPoison].(*Poison); ok && current.Until().After(until) {
		until = current.Until()
	}
	s.slots[MainPoison] = NewPoison(casterID, started, until)
}

// AddStun writes a fresh stun into the reserved slot.
func (s *Set) AddStun(started, until time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[MainStun] = NewStun(started, until)
}

// SwitchMounted toggles the mount on or off.
func (s *Set) SwitchMounted() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.slots[MainMounted] != nil {
		s.slots[MainMounted] = nil
		return
	}
	s.slots[MainMounted] = NewMounted()
}

// RemoveMain clears a reserved slot. No-op if it is already empty.
func (s *Set) RemoveMain(kind MainKind) {
	if !kind.Valid() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[kind] = nil
}

// Remove clears every secondary status of classification c.
// Reserved slots are untouched. The high-water mark is compacted on the
// next Tick.
func (s *Set) Remove(c Classification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := MainKindCount; i < s.hwm; i++ {
		if st := s.slots[i]; st != nil && st.Classification() == c {
			s.slots[i] = nil
		}
	}
}

// RemoveAll clears every slot.
func (s *Set) RemoveAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.slots {
		s.slots[i] = nil
	}
	s.hwm = MainKindCount
}

// Tick advances every active status once. Statuses returning Remove are
// cleared, then trailing empty slots are reclaimed.
// Returns true if any slot changed.
func (s *Set) Tick(tc TickContext) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for i := 0; i < s.hwm; i++ {
		st := s.slots[i]
		if st == nil {
			continue
		}
		if st.Tick(&tc) == Remove {
			s.slots[i] = nil
			changed = true
		}
	}
	for s.hwm > MainKindCount && s.slots[s.hwm-1] == nil {
		s.hwm--
	}
	return changed
}

// IsMounted reports whether the mount slot is occupied.
func (s *Set) IsMounted() bool { return s.hasMain(MainMounted) }

// IsStunned reports whether the stun slot is occupied.
func (s *Set) IsStunned() bool { return s.hasMain(MainStun) }

// IsPoisoned reports whether the poison slot is occupied.
func (s *Set) IsPoisoned() bool { return s.hasMain(MainPoison) }

func (s *Set) hasMain(kind MainKind) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.slots[kind] != nil
}

// Has reports whether any active status has the given name.
func (s *Set) Has(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, st := range s.slots[:s.hwm] {
		if st != nil && st.Name() == name {
			return true
		}
	}
	return false
}

// Main returns a copy of the status in a reserved slot.
func (s *Set) Main(kind MainKind) (Status, bool) {
	if !kind.Valid() {
		return nil, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.slots[kind]
	if st == nil {
		return nil, false
	}
	return st.Duplicate(), true
}

// Snapshot returns copies of all active statuses in slot order.
func (s *Set) Snapshot() []Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Status, 0, s.hwm)
	for _, st := range s.slots[:s.hwm] {
		if st != nil {
			out = append(out, st.Duplicate())
		}
	}
	return out
}

// Len returns the number of active statuses, reserved slots included.
func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, st := range s.slots[:s.hwm] {
		if st != nil {
			n++
		}
	}
	return n
}

// SecondaryLen returns the number of active secondary statuses.
func (s *Set) SecondaryLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, st := range s.slots[MainKindCount:s.hwm] {
		if st != nil {
			n++
		}
	}
	return n
}

// HighWaterMark returns the index of the first slot never used since the
// last compaction.
func (s *Set) HighWaterMark() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hwm
}

// mainKindOf maps the built-in main statuses to their reserved slot.
func mainKindOf(st Status) (MainKind, bool) {
	switch st.(type) {
	case *Mounted:
		return MainMounted, true
	case *Stun:
		return MainStun, true
	case *Poison:
		return MainPoison, true
	default:
		return 0, false
	}
}
