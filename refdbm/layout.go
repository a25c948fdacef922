package refdbm

import "fmt"

// RefClockID is the sentinel target clock index meaning "the reference
// clock that owns this offset clock", used in clock constraints and resets
// that are expressed relative to a process's own reference clock rather
// than a fixed global index (spec.md §4.2 "reference clock constraints").
const RefClockID = -1

// Layout describes a network of reference clocks and the offset clocks
// each one owns. RefMap has one entry per clock (dimension RefMap's
// length): for i < RefCount, RefMap[i] == i (every reference clock owns
// itself); for i >= RefCount, RefMap[i] is the reference clock that owns
// offset clock i.
type Layout struct {
	RefCount int
	RefMap   []int
}

// Dim returns the total number of clocks (reference clocks plus offset
// clocks).
func (l Layout) Dim() int { return len(l.RefMap) }

// OffsetCount returns the number of offset (non-reference) clocks.
func (l Layout) OffsetCount() int { return len(l.RefMap) - l.RefCount }

// IsReference reports whether clock i is a reference clock.
func (l Layout) IsReference(i int) bool { return i < l.RefCount }

// Owner returns the reference clock owning clock i. For a reference clock
// this is i itself.
func (l Layout) Owner(i int) int {
	if i < 0 || i >= len(l.RefMap) {
		panic(fmt.Sprintf("refdbm: clock index %d out of range [0,%d)", i, len(l.RefMap)))
	}
	return l.RefMap[i]
}

// resolve maps a clock index, with RefClockID standing for the reference
// clock owning base, to a concrete clock index.
func (l Layout) resolve(idx, base int) int {
	if idx == RefClockID {
		return l.Owner(base)
	}
	return idx
}

func defaultRefSet(l Layout) []int {
	all := make([]int, l.RefCount)
	for i := range all {
		all[i] = i
	}
	return all
}
