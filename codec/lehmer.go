package codec

// factorial returns n! for small n (n <= 12, which covers every domain
// size this package needs: 8! and 12!).
func factorial(n int) uint64 {
	result := uint64(1)
	for i := 2; i <= n; i++ {
		result *= uint64(i)
	}
	return result
}

// lehmerEncode ranks the first len(items) entries of a permutation of
// {0..totalSlots-1} into a mixed-radix integer: at step i, it counts how
// many not-yet-used values are smaller than items[i], then folds that
// count into the running hash with radix (totalSlots-i). This is the
// standard Lehmer-code rank, generalized to a prefix shorter than the full
// permutation (the corner codec only ranks 7 of 8 corners; the trailing
// one is implied).
func lehmerEncode(items []uint8, totalSlots int) uint64 {
	accessed := make([]bool, totalSlots)
	var hash uint64
	for i, p := range items {
		hash *= uint64(totalSlots - i)
		var rank uint64
		for j := uint8(0); j < p; j++ {
			if !accessed[j] {
				rank++
			}
		}
		accessed[p] = true
		hash += rank
	}
	return hash
}

// lehmerDecode inverts lehmerEncode for a FULL permutation of totalSlots
// items (i.e. len(items) == totalSlots at encode time, or one fewer with
// the last slot implied — either way the rank was built from
// totalSlots!-many possibilities). It returns the totalSlots-length
// permutation; callers that ranked only totalSlots-1 entries get the final
// slot back "for free" since only one candidate remains at that point.
func lehmerDecode(hash uint64, totalSlots int) []uint8 {
	accessed := make([]bool, totalSlots)
	result := make([]uint8, totalSlots)

	shift := factorial(totalSlots)
	for i := 0; i < totalSlots; i++ {
		shift /= uint64(totalSlots - i)
		rank := hash / shift
		hash %= shift

		count := -1
		for j := 0; j < totalSlots; j++ {
			if !accessed[j] {
				count++
			}
			if int64(count) == int64(rank) {
				result[i] = uint8(j)
				accessed[j] = true
				break
			}
		}
	}
	return result
}
