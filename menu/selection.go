package menu

import (
	"sync/atomic"

	"pocket/proto"
)

// Selection is the process-wide "selected network" slot.
//
// The reference is one machine word: writers swap it whole, readers get
// either the old or the new reference. Resolving it against the Arena may
// find a stale (retired) batch, which reads as "no selection".
type Selection struct {
	w atomic.Uint64
}

func (s *Selection) Store(ref proto.NetworkRef) { s.w.Store(ref.Pack()) }

func (s *Selection) Clear() { s.w.Store(0) }

// Load returns the selected reference, if any.
func (s *Selection) Load() (proto.NetworkRef, bool) {
	ref := proto.UnpackNetworkRef(s.w.Load())
	return ref, ref.Valid()
}

// Is reports whether ref is the current selection.
func (s *Selection) Is(ref proto.NetworkRef) bool {
	return ref.Valid() && s.w.Load() == ref.Pack()
}

// Resolve returns the selected record if its batch is still alive.
func (s *Selection) Resolve(a *Arena) (proto.WirelessNetworkInfo, bool) {
	ref, ok := s.Load()
	if !ok {
		return proto.WirelessNetworkInfo{}, false
	}
	return a.Network(ref)
}
