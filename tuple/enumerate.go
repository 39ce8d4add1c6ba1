package tuple

// Enumerate calls fn once for every tuple addressed by counts, in increasing
// index order: the outer recursion level walks the most significant
// dimension and the innermost loop walks dimension 0. The index passed to fn
// equals ToIndexCounts(t, counts).
//
// The slice t is reused between calls; fn must copy it to retain it.
//
// Errors: ErrEmpty, ErrInvalidCount.
// Complexity: O(Π counts) calls, O(D) extra memory.
func Enumerate(counts []int, fn func(index int, t []int)) error {
	if err := validateCounts(counts); err != nil {
		return err
	}

	t := make([]int, len(counts))
	index := 0
	var walk func(d int)
	walk = func(d int) {
		if d == 0 {
			for k := 0; k < counts[0]; k++ {
				t[0] = k
				fn(index, t)
				index++
			}
			return
		}
		for l := 0; l < counts[d]; l++ {
			t[d] = l
			walk(d - 1)
		}
	}
	walk(len(counts) - 1)

	return nil
}

// Binary returns the 2^dim binary tuples (each component in {0,1}) in
// Enumerate order. These are the corner offsets of a dim-dimensional cell:
//
//	dim=1: (0) (1)
//	dim=2: (0,0) (1,0) (0,1) (1,1)
//	dim=3: (0,0,0) (1,0,0) (0,1,0) (1,1,0) (0,0,1) (1,0,1) (0,1,1) (1,1,1)
//
// Bit d of the position p equals component d of Binary(dim)[p].
// Returns nil for dim < 1.
func Binary(dim int) [][]int {
	if dim < 1 {
		return nil
	}
	counts := make([]int, dim)
	for d := range counts {
		counts[d] = 2
	}
	perms := make([][]int, 1<<dim)
	_ = Enumerate(counts, func(index int, t []int) {
		perms[index] = append([]int(nil), t...)
	})

	return perms
}
