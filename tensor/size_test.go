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

package tensor_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/graphrt/graphrt"
	"github.com/graphrt/graphrt/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeInBytes(t *testing.T) {
	tests := []struct {
		name  string
		desc  *tensor.Descriptor
		align int
		exp   int
	}{
		{"f32_2x3_a16", tensor.NewDescriptor("W", graphrt.FLOAT, 2, 3), 16, 32},
		{"f32_2x3_a1", tensor.NewDescriptor("W", graphrt.FLOAT, 2, 3), 1, 24},
		{"f32_2x3_a256", tensor.NewDescriptor("W", graphrt.FLOAT, 2, 3), 256, 256},
		{"f64_4x4_a64", tensor.NewDescriptor("m", graphrt.DOUBLE, 4, 4), 64, 128},
		{"empty", tensor.NewDescriptor("empty", graphrt.FLOAT, 0), 16, 0},
		{"empty_inner", tensor.NewDescriptor("empty", graphrt.INT64, 5, 0, 3), 256, 0},
		{"scalar", tensor.NewDescriptor("s", graphrt.INT32), 16, 16},
		{"scalar_a1", tensor.NewDescriptor("s", graphrt.INT32), 1, 4},
		{"int4_odd", tensor.NewDescriptor("q", graphrt.INT4, 3), 1, 2},
		{"uint4_aligned", tensor.NewDescriptor("q", graphrt.UINT4, 3), 16, 16},
		{"bool", tensor.NewDescriptor("b", graphrt.BOOL, 10), 8, 16},
		{"string", tensor.NewDescriptor("str", graphrt.STRING, 2), 1, 2 * graphrt.StringHeaderSizeBytes},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := tensor.SizeInBytes(test.desc, test.align)
			require.NoError(t, err)
			assert.Equal(t, test.exp, got)
		})
	}
}

func TestSizeInBytesDeterministic(t *testing.T) {
	desc := tensor.NewDescriptor("W", graphrt.FLOAT16, 7, 13, 3)
	first, err := tensor.SizeInBytes(desc, 64)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		got, err := tensor.SizeInBytes(desc, 64)
		require.NoError(t, err)
		assert.Equal(t, first, got)
	}
}

func TestSizeInBytesInvalidAlignment(t *testing.T) {
	desc := tensor.NewDescriptor("W", graphrt.FLOAT, 2, 3)
	for _, align := range []int{0, -16, 3, 24} {
		t.Run(fmt.Sprint(align), func(t *testing.T) {
			_, err := tensor.SizeInBytes(desc, align)
			assert.ErrorIs(t, err, tensor.ErrInvalidAlignment)
		})
	}
}

func TestSizeInBytesInvalidDescriptor(t *testing.T) {
	tests := []struct {
		name string
		desc *tensor.Descriptor
	}{
		{"nil", nil},
		{"negative_dim", tensor.NewDescriptor("W", graphrt.FLOAT, 2, -1)},
		{"undefined_type", tensor.NewDescriptor("W", graphrt.UNDEFINED, 2)},
		{"unknown_type", tensor.NewDescriptor("W", graphrt.Type(1234), 2)},
		{"count_overflow", tensor.NewDescriptor("W", graphrt.FLOAT, math.MaxInt64, 2)},
		{"bytes_overflow", tensor.NewDescriptor("W", graphrt.DOUBLE, math.MaxInt64/4)},
		{"align_overflow", tensor.NewDescriptor("W", graphrt.UINT8, math.MaxInt64-3)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := tensor.SizeInBytes(test.desc, 64)
			assert.ErrorIs(t, err, tensor.ErrInvalidDescriptor)
		})
	}
}

func TestDescriptor(t *testing.T) {
	desc := tensor.NewDescriptor("W", graphrt.FLOAT, 2, 5)
	assert.Equal(t, 2, desc.NumDims())
	assert.Equal(t, "W:float32[2,5]", desc.String())

	n, err := desc.NumElements()
	require.NoError(t, err)
	assert.EqualValues(t, 10, n)

	strides, err := desc.Strides()
	require.NoError(t, err)
	assert.Equal(t, []int64{20, 4}, strides)

	scalar := &tensor.Descriptor{DataType: graphrt.INT64}
	assert.Equal(t, "int64[]", scalar.String())
	n, err = scalar.NumElements()
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestDescriptorStrides(t *testing.T) {
	tests := []struct {
		name string
		desc *tensor.Descriptor
		exp  []int64
	}{
		{"f64_2x5", tensor.NewDescriptor("", graphrt.DOUBLE, 2, 5), []int64{40, 8}},
		{"i16_3x2x4", tensor.NewDescriptor("", graphrt.INT16, 3, 2, 4), []int64{16, 8, 2}},
		{"zero_elems", tensor.NewDescriptor("", graphrt.FLOAT, 3, 0), []int64{4, 4}},
		{"scalar", tensor.NewDescriptor("", graphrt.FLOAT), []int64{}},
		{"packed", tensor.NewDescriptor("", graphrt.INT4, 8), nil},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := test.desc.Strides()
			require.NoError(t, err)
			assert.Equal(t, test.exp, got)
		})
	}

	_, err := tensor.NewDescriptor("", graphrt.FLOAT, -2).Strides()
	assert.ErrorIs(t, err, tensor.ErrInvalidDescriptor)
}
