package pairing

import "github.com/google/uuid"

// SplitPools splits entries into consecutive groups of at most maxPerPool,
// preserving input order. The last pool may be smaller.
func SplitPools(entries []uuid.UUID, maxPerPool int) [][]uuid.UUID {
	if maxPerPool <= 0 || len(entries) == 0 {
		return nil
	}
	pools := make([][]uuid.UUID, 0, (len(entries)+maxPerPool-1)/maxPerPool)
	for start := 0; start < len(entries); start += maxPerPool {
		end := start + maxPerPool
		if end > len(entries) {
			end = len(entries)
		}
		pools = append(pools, entries[start:end])
	}
	return pools
}

// RoundRobinPairs pairs every entry against every other entry once, in
// stable (i, j) order.
func RoundRobinPairs(entries []uuid.UUID) []Pair {
	if len(entries) < 2 {
		return nil
	}
	pairs := make([]Pair, 0, len(entries)*(len(entries)-1)/2)
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			red, blue := entries[i], entries[j]
			pairs = append(pairs, Pair{Red: &red, Blue: &blue})
		}
	}
	return pairs
}
