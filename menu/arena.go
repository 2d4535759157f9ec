package menu

import (
	"sync"

	"pocket/proto"
)

const (
	// DynamicSlots bounds how many runtime-built menus (and their scan
	// batches) are alive at once. Mounting one more retires the oldest.
	DynamicSlots = 8

	dynamicBase uint16 = 0x8000
	staticGen   uint16 = 1
)

type dynamicMenu struct {
	gen  uint16
	menu *Menu
}

type batch struct {
	gen  uint16
	nets []proto.WirelessNetworkInfo
}

// BatchRef addresses one stored scan result set.
type BatchRef struct {
	Slot uint16
	Gen  uint16
}

// Network returns the reference of the i-th record of the batch.
func (b BatchRef) Network(i int) proto.NetworkRef {
	return proto.NetworkRef{Batch: b.Slot, Gen: b.Gen, Index: uint32(i)}
}

// Arena owns every menu and scan batch. Everything is addressed by slot and
// generation, so a reference to a retired entry resolves to "missing"
// instead of to whatever reuses the slot.
//
// Static menus live forever. Dynamic menus and batches occupy a ring of
// DynamicSlots entries each, which bounds memory growth for the device's
// uptime.
type Arena struct {
	mu sync.RWMutex

	static []*Menu

	menus    [DynamicSlots]dynamicMenu
	nextMenu int

	batches   [DynamicSlots]batch
	nextBatch int
}

func NewArena() *Arena {
	return &Arena{}
}

// AddStatic registers a permanent menu. The items slice is copied.
func (a *Arena) AddStatic(title string, items []Item) proto.MenuRef {
	m := &Menu{Title: title, Items: append([]Item(nil), items...)}

	a.mu.Lock()
	defer a.mu.Unlock()
	slot := uint16(len(a.static))
	a.static = append(a.static, m)
	return proto.MenuRef{Slot: slot, Gen: staticGen}
}

// Mount stores a runtime-built menu in the dynamic ring. The items slice is
// copied.
func (a *Arena) Mount(title string, items []Item) proto.MenuRef {
	m := &Menu{Title: title, Items: append([]Item(nil), items...)}

	a.mu.Lock()
	defer a.mu.Unlock()
	i := a.nextMenu
	a.nextMenu = (a.nextMenu + 1) % DynamicSlots
	gen := nextGen(a.menus[i].gen)
	a.menus[i] = dynamicMenu{gen: gen, menu: m}
	return proto.MenuRef{Slot: dynamicBase + uint16(i), Gen: gen}
}

// Menu resolves a reference.
func (a *Arena) Menu(ref proto.MenuRef) (*Menu, bool) {
	if !ref.Valid() {
		return nil, false
	}

	a.mu.RLock()
	defer a.mu.RUnlock()
	if ref.Slot >= dynamicBase {
		i := int(ref.Slot - dynamicBase)
		if i >= DynamicSlots || a.menus[i].gen != ref.Gen || a.menus[i].menu == nil {
			return nil, false
		}
		return a.menus[i].menu, true
	}
	if ref.Gen != staticGen || int(ref.Slot) >= len(a.static) {
		return nil, false
	}
	return a.static[ref.Slot], true
}

// AddBatch stores a scan result set. The slice is copied.
func (a *Arena) AddBatch(nets []proto.WirelessNetworkInfo) BatchRef {
	cp := append([]proto.WirelessNetworkInfo(nil), nets...)

	a.mu.Lock()
	defer a.mu.Unlock()
	i := a.nextBatch
	a.nextBatch = (a.nextBatch + 1) % DynamicSlots
	gen := nextGen(a.batches[i].gen)
	a.batches[i] = batch{gen: gen, nets: cp}
	return BatchRef{Slot: uint16(i), Gen: gen}
}

// Network resolves a scan record. Records of retired batches are missing.
func (a *Arena) Network(ref proto.NetworkRef) (proto.WirelessNetworkInfo, bool) {
	if !ref.Valid() || int(ref.Batch) >= DynamicSlots {
		return proto.WirelessNetworkInfo{}, false
	}

	a.mu.RLock()
	defer a.mu.RUnlock()
	b := &a.batches[ref.Batch]
	if b.gen != ref.Gen || int(ref.Index) >= len(b.nets) {
		return proto.WirelessNetworkInfo{}, false
	}
	return b.nets[ref.Index], true
}

func nextGen(g uint16) uint16 {
	g++
	if g == 0 {
		g = 1
	}
	return g
}
