package inventory

// NextFreePosition returns the smallest position in [1, capacity] that is
// not present in occupied. When every position up to capacity is taken it
// returns capacity+1 as an explicit over-capacity signal; callers decide
// whether that fails the relocation.
//
// Deterministic and side-effect free; O(capacity).
func NextFreePosition(occupied []int, capacity int) int {
	taken := make(map[int]bool, len(occupied))
	for _, p := range occupied {
		taken[p] = true
	}

	for pos := 1; pos <= capacity; pos++ {
		if !taken[pos] {
			return pos
		}
	}

	return capacity + 1
}
