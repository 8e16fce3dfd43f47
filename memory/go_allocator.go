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

package memory

import "fmt"

// GoAllocator allocates from the Go heap. Every buffer starts on a
// boundary of Alignment bytes. Free is a no-op; memory is reclaimed by
// the garbage collector once no slice refers to it.
type GoAllocator struct {
	align int
}

func NewGoAllocator() *GoAllocator { return &GoAllocator{align: alignment} }

// NewGoAllocatorAligned returns a GoAllocator whose buffers start on an
// align-byte boundary. It panics if align is not a positive power of two.
func NewGoAllocatorAligned(align int) *GoAllocator {
	if !IsPowerOf2(align) {
		panic(fmt.Errorf("memory: invalid alignment %d", align))
	}
	return &GoAllocator{align: align}
}

// Alignment returns the boundary every returned buffer starts on.
func (a *GoAllocator) Alignment() int {
	if a.align == 0 {
		return alignment
	}
	return a.align
}

func (a *GoAllocator) Allocate(size int) []byte {
	align := a.Alignment()
	buf := make([]byte, size+align) // padding for alignment
	addr := int(addressOf(buf))
	next := roundToPowerOf2(addr, align)
	if addr != next {
		shift := next - addr
		return buf[shift : size+shift : size+shift]
	}
	return buf[:size:size]
}

func (a *GoAllocator) Reallocate(size int, b []byte) []byte {
	if size == len(b) {
		return b
	}

	newBuf := a.Allocate(size)
	copy(newBuf, b)
	return newBuf
}

func (a *GoAllocator) Free(b []byte) {}

var (
	_ Allocator = (*GoAllocator)(nil)
)
