// Package dot renders graphs, counter-examples, and zones in the textual
// and DOT forms spec.md §6 describes.
package dot

import (
	"fmt"
	"strings"

	"github.com/tchecker-go/tchecker/dbm"
)

// clockName returns names[i-1] if present, else a synthesized "x<i>"; i==0
// always names the reference clock.
func clockName(names []string, i int) string {
	if i == 0 {
		return "0"
	}
	if i-1 < len(names) && names[i-1] != "" {
		return names[i-1]
	}
	return fmt.Sprintf("x%d", i)
}

// ZoneString renders a tight DBM as the conjunction of every non-infinity
// bound (spec.md §6 "Zone printing"): bounds against clock 0 print as
// `xᵢ cmp k` or `−xᵢ cmp k`; every other pair prints as `xᵢ − xⱼ cmp k`.
// Because d is assumed already in canonical/tight form (every DBM produced
// by package dbm is closed before being handed to a caller), every
// non-infinity off-diagonal entry is, by construction, not implied by a
// tighter combination of the others — closure already removed anything
// that would be.
func ZoneString(d *dbm.DBM, names []string) string {
	dim := d.Dim()
	var parts []string
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			if i == j {
				continue
			}
			b := d.At(i, j)
			if b.IsInfinity() {
				continue
			}
			switch {
			case j == 0:
				parts = append(parts, fmt.Sprintf("%s %s %d", clockName(names, i), b.Cmp, b.K))
			case i == 0:
				parts = append(parts, fmt.Sprintf("-%s %s %d", clockName(names, j), b.Cmp, b.K))
			default:
				parts = append(parts, fmt.Sprintf("%s - %s %s %d", clockName(names, i), clockName(names, j), b.Cmp, b.K))
			}
		}
	}
	if len(parts) == 0 {
		return "true"
	}
	return strings.Join(parts, " && ")
}
