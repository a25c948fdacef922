package intvar

import "fmt"

// Declaration describes one declared integer-variable slot: its size (1 for
// a scalar, >1 for an array, flattened into that many consecutive slots),
// inclusive bounds, and initial value.
type Declaration struct {
	Name    string
	Size    int
	Min     int32
	Max     int32
	Initial int32
}

// System is the ordered list of declared integer-variable slots a process
// network shares; slot indices into IntVal are assigned by flattening each
// Declaration's Size consecutive entries in declaration order.
type System struct {
	decls []Declaration
	slots int
}

// NewSystem builds a System from decls, validating that every bound and
// initial value is consistent.
func NewSystem(decls []Declaration) (*System, error) {
	slots := 0
	for _, d := range decls {
		if d.Min > d.Max {
			return nil, fmt.Errorf("intvar: %w: %q has Min %d > Max %d", ErrOutOfRange, d.Name, d.Min, d.Max)
		}
		if d.Initial < d.Min || d.Initial > d.Max {
			return nil, fmt.Errorf("intvar: %w: %q initial %d outside [%d,%d]", ErrOutOfRange, d.Name, d.Initial, d.Min, d.Max)
		}
		if d.Size <= 0 {
			d.Size = 1
		}
		slots += d.Size
	}
	return &System{decls: append([]Declaration(nil), decls...), slots: slots}, nil
}

// Slots returns the total number of flattened integer-variable slots.
func (s *System) Slots() int { return s.slots }

// Bounds returns the inclusive [min,max] range for slot i.
func (s *System) Bounds(i int) (min, max int32, err error) {
	idx := 0
	for _, d := range s.decls {
		if i < idx+d.Size {
			return d.Min, d.Max, nil
		}
		idx += d.Size
	}
	return 0, 0, fmt.Errorf("intvar: %w: %d", ErrBadSlot, i)
}

// Initial returns IntVal's value at construction time: every slot set to
// its declared initial value.
func (s *System) Initial() IntVal {
	v := make(IntVal, s.slots)
	idx := 0
	for _, d := range s.decls {
		for k := 0; k < d.Size; k++ {
			v[idx] = d.Initial
			idx++
		}
	}
	return v
}

// IntVal is an immutable ordered sequence of bounded integer values indexed
// by declared integer-variable slots (spec.md §3). Values are never
// mutated in place; With returns a modified copy.
type IntVal []int32

// At returns v[i].
func (v IntVal) At(i int) int32 { return v[i] }

// With returns a copy of v with slot i set to val, validated against sys's
// declared bounds for that slot.
func (v IntVal) With(sys *System, i int, val int32) (IntVal, error) {
	min, max, err := sys.Bounds(i)
	if err != nil {
		return nil, err
	}
	if val < min || val > max {
		return nil, fmt.Errorf("intvar: %w: slot %d value %d outside [%d,%d]", ErrOutOfRange, i, val, min, max)
	}
	out := make(IntVal, len(v))
	copy(out, v)
	out[i] = val
	return out, nil
}

// Equal reports whether a and b hold identical values slot for slot.
func Equal(a, b IntVal) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of v.
func (v IntVal) Clone() IntVal {
	out := make(IntVal, len(v))
	copy(out, v)
	return out
}
