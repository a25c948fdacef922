package dot

import (
	"fmt"
	"io"

	"github.com/tchecker-go/tchecker/covreach"
)

// DumpStats writes s as key-value pairs, one per line (spec.md §6
// "Statistics: key-value pairs").
func DumpStats(w io.Writer, s covreach.Stats, elapsed string) error {
	rows := []struct {
		Key string
		Val string
	}{
		{"visited", fmt.Sprint(s.Visited)},
		{"covered-on-push", fmt.Sprint(s.CoveredOnPush)},
		{"covered-on-pop", fmt.Sprint(s.CoveredOnPop)},
		{"actual-edges", fmt.Sprint(s.ActualEdges)},
		{"subsumption-edges", fmt.Sprint(s.SubsumptionEdges)},
		{"peak-worklist-size", fmt.Sprint(s.PeakWorklistSize)},
		{"reached", yesNo(s.Reached)},
		{"cancelled", yesNo(s.Cancelled)},
		{"time", elapsed},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%s: %s\n", r.Key, r.Val); err != nil {
			return err
		}
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "y"
	}
	return "n"
}
