package dbm

import (
	"fmt"
	"strings"
)

// ToConstraints renders d as a conjunction of constraints: one per pair
// (i,j), i != j, whose bound is not LTInfinity. Since d is tight, each
// emitted bound is the tightest one for its pair; constraints implied by
// the others are not removed. At most dim*(dim-1) constraints are produced
// (spec.md §4.1).
func (d *DBM) ToConstraints() []Constraint {
	if d.IsEmpty() {
		return nil
	}
	var out []Constraint
	for i := 0; i < d.dim; i++ {
		for j := 0; j < d.dim; j++ {
			if i == j {
				continue
			}
			b := d.At(i, j)
			if b.IsInfinity() {
				continue
			}
			out = append(out, Constraint{I: i, J: j, Cmp: b.Cmp, K: b.K})
		}
	}
	return out
}

// String renders d as the conjunction described in spec.md §6: bounds
// against clock 0 are written as "x_i <cmp> k" or "-x_i <cmp> k"; all other
// pairs as "x_i - x_j <cmp> k". An empty zone prints as "false".
func (d *DBM) String() string {
	if d.IsEmpty() {
		return "false"
	}
	var parts []string
	for _, c := range d.ToConstraints() {
		parts = append(parts, formatConstraint(c))
	}
	if len(parts) == 0 {
		return "true"
	}
	return strings.Join(parts, " && ")
}

func formatConstraint(c Constraint) string {
	switch {
	case c.J == 0:
		return fmt.Sprintf("x%d %s %d", c.I, c.Cmp, c.K)
	case c.I == 0:
		return fmt.Sprintf("-x%d %s %d", c.J, c.Cmp, c.K)
	default:
		return fmt.Sprintf("x%d - x%d %s %d", c.I, c.J, c.Cmp, c.K)
	}
}
