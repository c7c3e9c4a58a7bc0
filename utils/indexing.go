package utils

import "sort"

type Index []int

func NewIndex(N int) (I Index) {
	return make(Index, N)
}

func NewRange(rmin, rmax int) (r Index) {
	var (
		size = rmax - rmin + 1 // INCLUSIVE RANGE
	)
	r = make(Index, size)
	for i := range r {
		r[i] = i + rmin
	}
	return
}

func (I Index) Copy() (r Index) {
	r = make(Index, len(I))
	copy(r, I)
	return
}

func (I Index) Contains(i int) bool {
	for _, val := range I {
		if val == i {
			return true
		}
	}
	return false
}

// SortUnique returns the ascending de-duplicated version of I.
func (I Index) SortUnique() (r Index) {
	seen := make(map[int]struct{}, len(I))
	for _, val := range I {
		seen[val] = struct{}{}
	}
	r = make(Index, 0, len(seen))
	for val := range seen {
		r = append(r, val)
	}
	sort.Ints(r)
	return
}
