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

// Package tensor describes the shape and element type of graph tensors and
// computes the size of the buffers that hold them.
package tensor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/graphrt/graphrt"
	"golang.org/x/xerrors"
)

var (
	ErrInvalidDescriptor = xerrors.New("tensor: invalid descriptor")
	ErrInvalidAlignment  = xerrors.New("tensor: alignment must be a positive power of two")
)

// Descriptor is the shape and element type of a tensor, such as a graph
// initializer. A nil or empty Dims describes a scalar.
type Descriptor struct {
	Name     string
	DataType graphrt.Type
	Dims     []int64
}

// NewDescriptor returns a descriptor for a tensor of element type dt and
// the given dimensions.
func NewDescriptor(name string, dt graphrt.Type, dims ...int64) *Descriptor {
	return &Descriptor{Name: name, DataType: dt, Dims: dims}
}

func (d *Descriptor) NumDims() int { return len(d.Dims) }

// NumElements returns the product of the dimensions. It fails with
// ErrInvalidDescriptor if a dimension is negative or the product
// overflows.
func (d *Descriptor) NumElements() (int64, error) {
	return numElements(d)
}

// Strides returns the number of bytes to step in each dimension when
// traversing the tensor in row-major order. Packed sub-byte element types
// have no byte strides and yield nil.
func (d *Descriptor) Strides() ([]int64, error) {
	dt, err := elementType(d)
	if err != nil {
		return nil, err
	}
	if _, err := numElements(d); err != nil {
		return nil, err
	}
	if dt.BitWidth()%8 != 0 {
		return nil, nil
	}
	return rowMajorStrides(int64(dt.BitWidth()/8), d.Dims), nil
}

func (d *Descriptor) String() string {
	var b strings.Builder
	if d.Name != "" {
		b.WriteString(d.Name)
		b.WriteByte(':')
	}
	b.WriteString(d.DataType.String())
	b.WriteByte('[')
	for i, v := range d.Dims {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatInt(v, 10))
	}
	b.WriteByte(']')
	return b.String()
}

func elementType(d *Descriptor) (graphrt.FixedWidthDataType, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: nil descriptor", ErrInvalidDescriptor)
	}
	dt, ok := graphrt.TypeFromID(d.DataType)
	if !ok {
		return nil, fmt.Errorf("%w: %q has unsupported element type %s", ErrInvalidDescriptor, d.Name, d.DataType)
	}
	return dt, nil
}

func rowMajorStrides(bw int64, shape []int64) []int64 {
	rem := bw
	for _, v := range shape {
		rem *= v
	}

	if rem == 0 {
		strides := make([]int64, len(shape))
		for i := range strides {
			strides[i] = bw
		}
		return strides
	}

	strides := make([]int64, 0, len(shape))
	for _, v := range shape {
		rem /= v
		strides = append(strides, rem)
	}
	return strides
}
