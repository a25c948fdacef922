// Package hashtable: sentinel errors.
package hashtable

import "errors"

// ErrNotStored indicates an operation (Remove, position lookup) on an
// entry that is not currently stored in any CollisionTable.
var ErrNotStored = errors.New("hashtable: entry not stored")
