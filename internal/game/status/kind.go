package status

import "fmt"

// MainKind is a status kind with a permanently reserved slot in every Set.
// The slot index equals the kind ordinal.
type MainKind uint8

const (
	MainMounted MainKind = iota
	MainStun
	MainPoison
)

// MainKindCount is the size of the reserved region at the front of a Set.
const MainKindCount = int(MainPoison) + 1

func (k MainKind) String() string {
	switch k {
	case MainMounted:
		return "mounted"
	case MainStun:
		return "stun"
	case MainPoison:
		return "poison"
	default:
		return fmt.Sprintf("MainKind(%d)", uint8(k))
	}
}

// Valid reports whether k addresses a reserved slot.
func (k MainKind) Valid() bool {
	return int(k) < MainKindCount
}
