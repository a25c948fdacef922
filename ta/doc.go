// Package ta is the timed-automaton front-end: networks of processes, each
// with locations and edges, composed by synchronisation vectors. It
// enumerates initial and outgoing values and, for a chosen outgoing value,
// evaluates the integer-VM (package vmeval) to produce the flat clock-
// constraint and clock-reset containers that the semantics layer (package
// semantics) applies to a zone (spec.md §4.4).
//
// Clock addressing. Every process declares its own clocks, indexed 1..n
// within the process; index 0 always means "this process's reference
// clock" in a clock constraint or reset (spec.md §3's refmap). System.Layout
// resolves process-local clock indices to the global numbering the chosen
// zone flavour uses: plain-DBM numbering shares one reference clock 0
// across the whole network, RefDBM numbering gives each process its own
// reference clock.
package ta
