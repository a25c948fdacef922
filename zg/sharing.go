package zg

import (
	"github.com/tchecker-go/tchecker/dbm"
	"github.com/tchecker-go/tchecker/hashtable"
)

// sharedZone is the hashtable.Positioned wrapper a sharedZones interner
// stores: one entry per structurally distinct zone (spec.md §4.5 "Sharing
// fast path").
type sharedZone struct {
	zone *dbm.DBM
	pos  hashtable.Position
}

func (z *sharedZone) SetPosition(p hashtable.Position) { z.pos = p }
func (z *sharedZone) Position() hashtable.Position     { return z.pos }

const sharedZonesTableSize = 1024

func hashZone(z *sharedZone) uint64 {
	var h uint64 = 1469598103934665603
	const prime = 1099511628211
	d := z.zone
	for i := 0; i < d.Dim(); i++ {
		for j := 0; j < d.Dim(); j++ {
			b := d.At(i, j)
			h ^= uint64(b.K)
			h *= prime
			h ^= uint64(b.Cmp)
			h *= prime
		}
	}
	return h
}

func equalZone(a, b *sharedZone) bool {
	if a.zone.Dim() != b.zone.Dim() {
		return false
	}
	return dbm.IsEqual(a.zone, b.zone)
}

// sharedZones interns zones by structural equality so equal DBMs collapse
// to a single shared *dbm.DBM, the way a System built with Sharing true
// deduplicates state-space memory (spec.md §4.5).
type sharedZones struct {
	table *hashtable.Hashtable[*sharedZone]
}

func newSharedZones() *sharedZones {
	return &sharedZones{table: hashtable.NewHashtable[*sharedZone](sharedZonesTableSize, hashZone, equalZone)}
}

func (s *sharedZones) intern(d *dbm.DBM) *dbm.DBM {
	canonical, _ := s.table.Intern(&sharedZone{zone: d})
	return canonical.zone
}
