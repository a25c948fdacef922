// Package hashtable implements the position-stamped collision table
// spec.md's SPEC_FULL.md supplement grounds on
// original_source/include/tchecker/utils/hashtable.hh: a fixed number of
// buckets, each a slice of entries in insertion order, where every stored
// entry remembers its own (bucket, index) so it can be removed in O(1) by
// swapping with the bucket's last element and popping.
//
// CollisionTable only hashes; it never compares for equality, so entries
// with equal hashes simply share a bucket (mirroring hashtable.hh's
// collision_table_t); CoverGraph's discrete-state buckets (package
// covergraph) use it directly. Hashtable layers an equality predicate on
// top for Find/Intern, serving the optional zone sharing cache of package
// zg (spec.md §4.5 "Sharing fast path").
package hashtable
