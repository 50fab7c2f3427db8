// Package pairing builds the bout pairings for one category group. It is
// pure: callers feed ordered entry ids and get pair lists back, with no
// repository or clock involvement.
package pairing

import "github.com/google/uuid"

// Structure identifies the tournament shape used for a category group.
type Structure string

const (
	StructureSingle           Structure = "SINGLE"
	StructureRoundRobin       Structure = "ROUND_ROBIN"
	StructurePoolsPlusBracket Structure = "POOLS_PLUS_BRACKET"
	StructureBracket          Structure = "BRACKET"
	StructureNone             Structure = "NONE"
)

// MaxPoolSize caps pool membership when a group is split into pools.
const MaxPoolSize = 4

// StructureFor selects the tournament structure for n entrants.
func StructureFor(n int) Structure {
	switch {
	case n < 2:
		return StructureNone
	case n == 2:
		return StructureSingle
	case n <= 5:
		return StructureRoundRobin
	case n <= 10:
		return StructurePoolsPlusBracket
	default:
		return StructureBracket
	}
}

// Pair is one bout pairing. Either slot may be nil, which is a bye; the
// generators never produce a pair with both slots nil.
type Pair struct {
	Red  *uuid.UUID
	Blue *uuid.UUID
}
