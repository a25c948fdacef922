// Package modelfile loads a network of timed automata from the JSON
// serialisation this module uses in place of the textual modelling
// language spec.md §1 places out of scope ("The concrete serialisation is
// opaque to the core", spec.md §6). It covers clocks, locations, edges,
// synchronisation vectors and labels; integer-variable guard/invariant/
// statement expressions (the bytecode VM's domain, package vmeval) are not
// expressible in this format and are simply left unset on every location
// and edge it builds.
package modelfile
