// Package refzg is the reference-clock (local-time) zone-graph transition
// system: it composes package ta's front-end with semantics' RefNext/
// RefInitial over a refdbm.Layout. Unlike package zg it never
// extrapolates — spec.md §4.3 scopes extrapolation to ZG only — and its
// zones carry one reference clock per process rather than a single shared
// one, enabling the asynchronous/local-time exploration spec.md §4.2
// introduces RefDBM for.
package refzg
