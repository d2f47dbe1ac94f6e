package types

import (
	"cmp"
	"fmt"
)

// Name32 is a 32-bit hashed name with an optional recovered label. Field,
// entry, type and hash-value names use it.
//
// Equality and ordering consider only Hash; a name with a label equals the
// same hash without one.
type Name32 struct {
	Hash  uint32
	Label string // empty when the hash is not in the dictionary
}

// Name64 is the 64-bit counterpart used for file-path references.
type Name64 struct {
	Hash  uint64
	Label string
}

// Resolved reports whether a label was recovered for the hash.
func (n Name32) Resolved() bool { return n.Label != "" }

// Equal compares by hash only.
func (n Name32) Equal(o Name32) bool { return n.Hash == o.Hash }

// Compare orders by hash only.
func (n Name32) Compare(o Name32) int { return cmp.Compare(n.Hash, o.Hash) }

// Hex returns the fixed-width hex form, e.g. 0x0000ABCD.
func (n Name32) Hex() string { return fmt.Sprintf("0x%08X", n.Hash) }

// String returns the label, or the hex form when no label is known.
func (n Name32) String() string {
	if n.Label != "" {
		return n.Label
	}
	return n.Hex()
}

// Resolved reports whether a label was recovered for the hash.
func (n Name64) Resolved() bool { return n.Label != "" }

// Equal compares by hash only.
func (n Name64) Equal(o Name64) bool { return n.Hash == o.Hash }

// Compare orders by hash only.
func (n Name64) Compare(o Name64) int { return cmp.Compare(n.Hash, o.Hash) }

// Hex returns the fixed-width hex form, e.g. 0x00000000DEADBEEF.
func (n Name64) Hex() string { return fmt.Sprintf("0x%016X", n.Hash) }

// String returns the label, or the hex form when no label is known.
func (n Name64) String() string {
	if n.Label != "" {
		return n.Label
	}
	return n.Hex()
}

// NameResolver maps raw hashes to names. Each method consults the dictionary
// for one role; a hash missing from it comes back without a label.
// Implementations must be safe for concurrent reads.
type NameResolver interface {
	FieldName(hash uint32) Name32
	EntryName(hash uint32) Name32
	TypeName(hash uint32) Name32
	HashName(hash uint32) Name32
	PathName(hash uint64) Name64
}
