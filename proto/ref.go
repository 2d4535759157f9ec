package proto

import "fmt"

// MenuRef addresses a menu in the arena by slot and generation.
//
// The zero value is invalid. Static menus always carry generation 1.
type MenuRef struct {
	Slot uint16
	Gen  uint16
}

func (r MenuRef) Valid() bool { return r.Gen != 0 }

func (r MenuRef) String() string { return fmt.Sprintf("menu#%d.%d", r.Slot, r.Gen) }

// NetworkRef addresses one scan record: batch slot, batch generation, index.
//
// It packs into a single 64-bit word so it can be swapped atomically.
type NetworkRef struct {
	Batch uint16
	Gen   uint16
	Index uint32
}

func (r NetworkRef) Valid() bool { return r.Gen != 0 }

// Pack encodes the reference into one word.
func (r NetworkRef) Pack() uint64 {
	return uint64(r.Batch)<<48 | uint64(r.Gen)<<32 | uint64(r.Index)
}

// UnpackNetworkRef decodes a word produced by Pack.
func UnpackNetworkRef(w uint64) NetworkRef {
	return NetworkRef{
		Batch: uint16(w >> 48),
		Gen:   uint16(w >> 32),
		Index: uint32(w),
	}
}

func (r NetworkRef) String() string {
	return fmt.Sprintf("net#%d.%d[%d]", r.Batch, r.Gen, r.Index)
}
