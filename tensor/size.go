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

package tensor

import (
	"fmt"
	"math"

	"github.com/JohnCGriffin/overflow"
	"github.com/graphrt/graphrt"
	"github.com/graphrt/graphrt/memory"
)

// SizeInBytes returns the number of bytes a buffer holding the tensor
// described by d must have, rounded up to a multiple of alignment.
//
// The size is the element count times the element width; packed sub-byte
// types are rounded up to a whole byte before alignment. An empty tensor
// has size 0 whatever the alignment. SizeInBytes fails with
// ErrInvalidAlignment if alignment is not a positive power of two and with
// ErrInvalidDescriptor if the element type is unknown, a dimension is
// negative or the size overflows.
func SizeInBytes(d *Descriptor, alignment int) (int, error) {
	if !memory.IsPowerOf2(alignment) {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidAlignment, alignment)
	}

	dt, err := elementType(d)
	if err != nil {
		return 0, err
	}

	n, err := numElements(d)
	if err != nil {
		return 0, err
	}

	nbytes, ok := byteSize(dt, n)
	if !ok || nbytes > math.MaxInt {
		return 0, fmt.Errorf("%w: size of %s overflows", ErrInvalidDescriptor, d)
	}

	out, ok := memory.RoundUp(int(nbytes), alignment)
	if !ok {
		return 0, fmt.Errorf("%w: aligned size of %s overflows", ErrInvalidDescriptor, d)
	}
	return out, nil
}

func numElements(d *Descriptor) (int64, error) {
	if d == nil {
		return 0, fmt.Errorf("%w: nil descriptor", ErrInvalidDescriptor)
	}

	n := int64(1)
	for i, v := range d.Dims {
		if v < 0 {
			return 0, fmt.Errorf("%w: dim %d of %q is negative (%d)", ErrInvalidDescriptor, i, d.Name, v)
		}
		var ok bool
		if n, ok = overflow.Mul64(n, v); !ok {
			return 0, fmt.Errorf("%w: element count of %s overflows", ErrInvalidDescriptor, d)
		}
	}
	return n, nil
}

// byteSize mirrors graphrt.ByteSize with overflow checks.
func byteSize(dt graphrt.FixedWidthDataType, n int64) (int64, bool) {
	bw := int64(dt.BitWidth())
	if bw%8 == 0 {
		return overflow.Mul64(n, bw/8)
	}

	bits, ok := overflow.Mul64(n, bw)
	if !ok {
		return 0, false
	}
	bits, ok = overflow.Add64(bits, 7)
	return bits / 8, ok
}
