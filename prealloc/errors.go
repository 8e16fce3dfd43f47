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
	"errors"
	"fmt"

	"github.com/graphrt/graphrt/memory"
	"golang.org/x/xerrors"
)

var (
	ErrUnknownSlot         = xerrors.New("prealloc: unknown slot")
	ErrNoAllocator         = xerrors.New("prealloc: no allocator for location")
	ErrDuplicateAllocation = xerrors.New("prealloc: duplicate allocation")
	ErrSlotAllocated       = xerrors.New("prealloc: slot already owns a buffer")
	ErrNotAllocated        = xerrors.New("prealloc: slot owns no buffer")
	ErrAllocationFailed    = xerrors.New("prealloc: allocation failed")
	ErrReleased            = xerrors.New("prealloc: allocator released")
)

// UnknownSlotError reports a request for a slot that was never registered.
type UnknownSlotError struct {
	Slot int
}

func (e *UnknownSlotError) Error() string {
	return fmt.Sprintf("prealloc: invalid value index: %d", e.Slot)
}

func (e *UnknownSlotError) Unwrap() error { return ErrUnknownSlot }

// NoAllocatorError reports that no allocator serves the location a slot
// was planned into.
type NoAllocatorError struct {
	Slot     int
	Name     string
	Location memory.Location
}

func (e *NoAllocatorError) Error() string {
	return fmt.Sprintf("prealloc: failed to get allocator for initializer %q, location: %s", e.Name, e.Location)
}

func (e *NoAllocatorError) Unwrap() error { return ErrNoAllocator }

// DuplicateAllocationError reports a second buffer request for a slot that
// already had one. It is fatal: it means the caller's slot accounting is
// broken, and the Allocator refuses all further work once it occurred.
type DuplicateAllocationError struct {
	Slot int
	Name string
}

func (e *DuplicateAllocationError) Error() string {
	return fmt.Sprintf("prealloc: duplicate allocation for value %d name: %s", e.Slot, e.Name)
}

func (e *DuplicateAllocationError) Unwrap() error { return ErrDuplicateAllocation }

// IsFatal reports whether err must halt the preparation pass.
func IsFatal(err error) bool {
	return errors.Is(err, ErrDuplicateAllocation)
}
