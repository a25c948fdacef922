package ta

import (
	"github.com/tchecker-go/tchecker/dbm"
	"github.com/tchecker-go/tchecker/refdbm"
)

// ClockLayout resolves process-local clock indices (0 == RefClock, 1..n ==
// the process's own declared clocks) to the global clock numbering a
// particular zone flavour uses. Built once from a System's processes; every
// System.Initial / System.Next call reuses it (spec.md §4.2, §4.4).
type ClockLayout struct {
	// plainBase[p] is the global plain-DBM index of process p's local
	// clock 1; clock 0 of every process resolves to the single shared
	// plain reference clock index 0.
	plainBase []int
	// refBase[p] is the global RefDBM index of process p's local clock 1;
	// local clock 0 of process p resolves to RefDBM reference clock p.
	refBase []int
	ref     refdbm.Layout
}

// NewClockLayout builds the layout from the clock count each process
// declares, in process order.
func NewClockLayout(procs []Process) ClockLayout {
	n := len(procs)
	plainBase := make([]int, n)
	refBase := make([]int, n)
	refMap := make([]int, n)
	for p := 0; p < n; p++ {
		refMap[p] = p
	}

	plainCum := 0
	refCum := 0
	for p, proc := range procs {
		plainBase[p] = 1 + plainCum
		refBase[p] = n + refCum
		for k := 0; k < proc.ClockCount; k++ {
			refMap = append(refMap, p)
		}
		plainCum += proc.ClockCount
		refCum += proc.ClockCount
	}

	return ClockLayout{
		plainBase: plainBase,
		refBase:   refBase,
		ref:       refdbm.Layout{RefCount: n, RefMap: refMap},
	}
}

// PlainDim returns the dimension of the plain-DBM zone representation: one
// shared reference clock plus every process's offset clocks.
func (cl ClockLayout) PlainDim() int {
	return cl.ref.Dim() - cl.ref.RefCount + 1
}

// PlainIndex resolves process p's local clock index (0 == RefClock) to its
// global plain-DBM index.
func (cl ClockLayout) PlainIndex(p, local int) int {
	if local == RefClock {
		return 0
	}
	return cl.plainBase[p] + local - 1
}

// RefIndex resolves process p's local clock index (0 == RefClock) to its
// global RefDBM index.
func (cl ClockLayout) RefIndex(p, local int) int {
	if local == RefClock {
		return p
	}
	return cl.refBase[p] + local - 1
}

// RefLayout returns the refdbm.Layout describing the reference-clock/
// offset-clock structure of the network.
func (cl ClockLayout) RefLayout() refdbm.Layout {
	return cl.ref
}

// PlainConstraint resolves a process-local ClockConstraint to a global
// dbm.Constraint under plain-DBM numbering.
func (cl ClockLayout) PlainConstraint(p int, c ClockConstraint) dbm.Constraint {
	return dbm.Constraint{I: cl.PlainIndex(p, c.X), J: cl.PlainIndex(p, c.Y), Cmp: c.Cmp, K: c.K}
}

// PlainReset resolves a process-local ClockReset to a global dbm.Reset
// under plain-DBM numbering.
func (cl ClockLayout) PlainReset(p int, r ClockReset) dbm.Reset {
	return dbm.Reset{X: cl.PlainIndex(p, r.X), Y: cl.PlainIndex(p, r.Y), K: r.K}
}

// RefConstraint resolves a process-local ClockConstraint to a global
// refdbm.ClockConstraint under RefDBM numbering.
func (cl ClockLayout) RefConstraint(p int, c ClockConstraint) refdbm.ClockConstraint {
	return refdbm.ClockConstraint{I: cl.RefIndex(p, c.X), J: cl.RefIndex(p, c.Y), Cmp: c.Cmp, K: c.K}
}

// RefReset resolves a process-local ClockReset to a global
// refdbm.ClockReset under RefDBM numbering.
func (cl ClockLayout) RefReset(p int, r ClockReset) refdbm.ClockReset {
	return refdbm.ClockReset{X: cl.RefIndex(p, r.X), Y: cl.RefIndex(p, r.Y), K: r.K}
}
