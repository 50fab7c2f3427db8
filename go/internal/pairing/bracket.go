package pairing

import "github.com/google/uuid"

// NextPowerOfTwo rounds n up to the nearest power of two. Zero stays zero.
func NextPowerOfTwo(n int) int {
	if n <= 0 {
		return 0
	}
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}

// BracketPairs builds the opening-round pairings of a single-elimination
// bracket. The field is padded to the next power of two, introducing exactly
// NextPowerOfTwo(n)-n byes. Byes are consumed left to right, one per pair,
// so the leading pairs carry the byes and no pair is empty on both sides
// (the bye count is always below half the bracket size).
func BracketPairs(entries []uuid.UUID) []Pair {
	n := len(entries)
	if n < 2 {
		return nil
	}
	size := NextPowerOfTwo(n)
	byes := size - n

	pairs := make([]Pair, 0, size/2)
	idx := 0
	for len(pairs) < size/2 {
		red := entries[idx]
		idx++
		p := Pair{Red: &red}
		if byes > 0 {
			byes--
		} else {
			blue := entries[idx]
			idx++
			p.Blue = &blue
		}
		pairs = append(pairs, p)
	}
	return pairs
}
