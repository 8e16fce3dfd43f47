// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package prealloc

import (
	"fmt"

	"github.com/JohnCGriffin/overflow"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/graphrt/graphrt/internal/debug"
	"github.com/graphrt/graphrt/memory"
	"github.com/graphrt/graphrt/plan"
	"github.com/graphrt/graphrt/tensor"
)

// AllocatorRegistry resolves the allocator serving a memory location.
// *memory.Registry implements it.
type AllocatorRegistry interface {
	Allocator(loc memory.Location) (memory.Allocator, bool)
}

// BufferView is a borrowed view of a preallocated buffer. Buf is nil for
// slots whose size is zero.
type BufferView struct {
	Buf      []byte
	Location memory.Location
}

func (v BufferView) Len() int      { return len(v.Buf) }
func (v BufferView) IsNil() bool   { return v.Buf == nil }
func (v BufferView) Bytes() []byte { return v.Buf }

type slotStatus uint8

const (
	slotUnregistered slotStatus = iota
	slotRegistered
	slotAllocated
	slotFreed
)

type ownedBuffer struct {
	buf []byte
	mem memory.Allocator
	loc memory.Location
}

type slotState struct {
	status slotStatus
	desc   *tensor.Descriptor
	owned  ownedBuffer
}

// Allocator is the value buffer allocator of one preparation pass. It
// records the descriptor of every slot needing a preallocated buffer and
// allocates that buffer at most once.
type Allocator struct {
	plan     plan.MemoryPlan
	allocs   AllocatorRegistry
	align    int
	maxSlots int
	logger   log.Logger

	slots []slotState
	live  int

	fatal    error
	released bool
}

// New returns an Allocator that places slots according to p and allocates
// from the allocators in allocs.
func New(p plan.MemoryPlan, allocs AllocatorRegistry, opts ...Option) *Allocator {
	if p == nil || allocs == nil {
		panic("prealloc: nil memory plan or allocator registry")
	}

	cfg := newConfig(opts...)
	return &Allocator{
		plan:     p,
		allocs:   allocs,
		align:    cfg.align,
		maxSlots: cfg.maxSlots,
		logger:   cfg.logger,
	}
}

// Alignment returns the boundary buffer sizes are rounded up to.
func (a *Allocator) Alignment() int { return a.align }

// MaxSlots returns the bound on slot ids.
func (a *Allocator) MaxSlots() int { return a.maxSlots }

func (a *Allocator) check() error {
	if a.fatal != nil {
		return a.fatal
	}
	if a.released {
		return ErrReleased
	}
	return nil
}

func (a *Allocator) state(slot int) *slotState {
	if slot < 0 || slot >= len(a.slots) || a.slots[slot].status == slotUnregistered {
		return nil
	}
	return &a.slots[slot]
}

// Register records desc as the descriptor of slot. The Allocator keeps a
// reference to desc, which must not change until the slot's buffer has been
// requested.
//
// Registering a slot again replaces its descriptor, unless the slot already
// owns a buffer, in which case Register fails with ErrSlotAllocated. Slots
// outside [0, max slots) fail with an *UnknownSlotError.
func (a *Allocator) Register(slot int, desc *tensor.Descriptor) error {
	if err := a.check(); err != nil {
		return err
	}
	if slot < 0 || slot >= a.maxSlots {
		return &UnknownSlotError{Slot: slot}
	}
	if desc == nil {
		return fmt.Errorf("%w: nil descriptor for slot %d", tensor.ErrInvalidDescriptor, slot)
	}

	if slot >= len(a.slots) {
		a.slots = append(a.slots, make([]slotState, slot+1-len(a.slots))...)
	}

	st := &a.slots[slot]
	switch st.status {
	case slotAllocated, slotFreed:
		return fmt.Errorf("%w: slot %d", ErrSlotAllocated, slot)
	}

	st.status = slotRegistered
	st.desc = desc
	return nil
}

// RequestBuffer returns the preallocated buffer of slot. name identifies
// the value in error messages and logs.
//
// A slot whose descriptor has zero size yields a nil view at the slot's
// location without allocating; this may be repeated. Any other slot is
// allocated on the first request; a second request fails with a
// *DuplicateAllocationError, after which the Allocator refuses all work.
func (a *Allocator) RequestBuffer(slot int, name string) (BufferView, error) {
	if err := a.check(); err != nil {
		return BufferView{}, err
	}

	st := a.state(slot)
	if st == nil {
		return BufferView{}, &UnknownSlotError{Slot: slot}
	}

	size, err := tensor.SizeInBytes(st.desc, a.align)
	if err != nil {
		return BufferView{}, fmt.Errorf("prealloc: slot %d (%s): %w", slot, name, err)
	}

	loc := a.plan.Location(slot)
	if size == 0 {
		return BufferView{Location: loc}, nil
	}

	mem, ok := a.allocs.Allocator(loc)
	if !ok || mem == nil {
		return BufferView{}, &NoAllocatorError{Slot: slot, Name: name, Location: loc}
	}

	if st.status != slotRegistered {
		a.fatal = &DuplicateAllocationError{Slot: slot, Name: name}
		level.Error(a.logger).Log("msg", "duplicate buffer allocation", "slot", slot, "name", name, "err", a.fatal)
		return BufferView{}, a.fatal
	}

	buf := mem.Allocate(size)
	if len(buf) < size {
		mem.Free(buf)
		return BufferView{}, fmt.Errorf("%w: %d bytes for slot %d (%s) at %s", ErrAllocationFailed, size, slot, name, loc)
	}
	buf = buf[:size:size]

	st.status = slotAllocated
	st.owned = ownedBuffer{buf: buf, mem: mem, loc: loc}
	a.live += size

	level.Debug(a.logger).Log("msg", "allocated buffer", "slot", slot, "name", name, "bytes", size, "location", loc)
	return BufferView{Buf: buf, Location: loc}, nil
}

// Owned returns a view of the buffer slot owns, if any.
func (a *Allocator) Owned(slot int) (BufferView, bool) {
	st := a.state(slot)
	if st == nil || st.status != slotAllocated {
		return BufferView{}, false
	}
	return BufferView{Buf: st.owned.buf, Location: st.owned.loc}, true
}

// Free returns the buffer owned by slot to its allocator. Views of the
// buffer become invalid. The slot cannot be allocated again.
func (a *Allocator) Free(slot int) error {
	st := a.state(slot)
	if st == nil {
		return &UnknownSlotError{Slot: slot}
	}
	if st.status != slotAllocated {
		return fmt.Errorf("%w: slot %d", ErrNotAllocated, slot)
	}
	a.free(st)
	return nil
}

func (a *Allocator) free(st *slotState) {
	n := len(st.owned.buf)
	st.owned.mem.Free(st.owned.buf)
	st.owned = ownedBuffer{}
	st.status = slotFreed
	a.live -= n
	debug.Assert(a.live >= 0, "prealloc: negative live bytes")
}

// Release returns every owned buffer to its allocator. All views handed
// out become invalid and later requests fail with ErrReleased. Release may
// be called more than once.
func (a *Allocator) Release() {
	if a.released {
		return
	}
	a.released = true

	freed := 0
	for i := range a.slots {
		if st := &a.slots[i]; st.status == slotAllocated {
			a.free(st)
			freed++
		}
	}
	level.Debug(a.logger).Log("msg", "released preallocated buffers", "buffers", freed)
}

// PlannedMemorySizes returns the aligned number of bytes the registered
// slots need at each memory location.
func (a *Allocator) PlannedMemorySizes() (map[memory.Location]int, error) {
	out := make(map[memory.Location]int)
	for slot := range a.slots {
		st := &a.slots[slot]
		if st.status == slotUnregistered {
			continue
		}
		size, err := tensor.SizeInBytes(st.desc, a.align)
		if err != nil {
			return nil, fmt.Errorf("prealloc: slot %d: %w", slot, err)
		}
		if size == 0 {
			continue
		}

		loc := a.plan.Location(slot)
		total, ok := overflow.Add(out[loc], size)
		if !ok {
			return nil, fmt.Errorf("prealloc: planned size at %s overflows", loc)
		}
		out[loc] = total
	}
	return out, nil
}

// Stats summarizes the slots of an Allocator.
type Stats struct {
	Registered int // slots with a descriptor
	Allocated  int // slots currently owning a buffer
	Freed      int // slots whose buffer was returned
	LiveBytes  int // bytes currently owned
}

// Stats returns slot counts and the bytes currently owned.
func (a *Allocator) Stats() Stats {
	var s Stats
	for i := range a.slots {
		switch a.slots[i].status {
		case slotRegistered:
			s.Registered++
		case slotAllocated:
			s.Registered++
			s.Allocated++
		case slotFreed:
			s.Registered++
			s.Freed++
		}
	}
	s.LiveBytes = a.live
	return s
}
