package arena

// Sweeper is the non-generic view of Pool.Sweep a GC enrolls and
// round-robins across, since a collector manages pools of many different
// element types at once and cannot itself be generic over T.
type Sweeper interface {
	Sweep() int
}

var _ Sweeper = (*Pool[int])(nil)
