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

package graphrt_test

import (
	"fmt"
	"testing"

	"github.com/graphrt/graphrt"
	"github.com/stretchr/testify/assert"
)

func TestTypeFromID(t *testing.T) {
	for _, tc := range []struct {
		id   graphrt.Type
		name string
		bits int
	}{
		{graphrt.FLOAT, "float32", 32},
		{graphrt.UINT8, "uint8", 8},
		{graphrt.INT64, "int64", 64},
		{graphrt.BOOL, "bool", 8},
		{graphrt.FLOAT16, "float16", 16},
		{graphrt.DOUBLE, "float64", 64},
		{graphrt.COMPLEX128, "complex128", 128},
		{graphrt.BFLOAT16, "bfloat16", 16},
		{graphrt.FLOAT8E5M2, "float8e5m2", 8},
		{graphrt.INT4, "int4", 4},
		{graphrt.STRING, "string", 8 * graphrt.StringHeaderSizeBytes},
	} {
		t.Run(tc.name, func(t *testing.T) {
			dt, ok := graphrt.TypeFromID(tc.id)
			assert.True(t, ok)
			assert.Equal(t, tc.id, dt.ID())
			assert.Equal(t, tc.name, dt.Name())
			assert.Equal(t, tc.bits, dt.BitWidth())
			assert.Equal(t, tc.name, tc.id.String())
		})
	}
}

func TestTypeFromIDInvalid(t *testing.T) {
	for _, id := range []graphrt.Type{graphrt.UNDEFINED, -1, graphrt.INT4 + 1, 1000} {
		t.Run(fmt.Sprint(int(id)), func(t *testing.T) {
			dt, ok := graphrt.TypeFromID(id)
			assert.False(t, ok)
			assert.Nil(t, dt)
		})
	}
	assert.Equal(t, "type(0)", graphrt.UNDEFINED.String())
	assert.Equal(t, "type(99)", graphrt.Type(99).String())
}

func TestParseType(t *testing.T) {
	for _, tc := range []struct {
		in  string
		exp graphrt.Type
		ok  bool
	}{
		{"float32", graphrt.FLOAT, true},
		{"FLOAT", graphrt.FLOAT, true},
		{" Double ", graphrt.DOUBLE, true},
		{"float64", graphrt.DOUBLE, true},
		{"uint4", graphrt.UINT4, true},
		{"undefined", graphrt.UNDEFINED, false},
		{"tensor", graphrt.UNDEFINED, false},
	} {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := graphrt.ParseType(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.exp, got)
		})
	}
}

func TestByteSize(t *testing.T) {
	assert.EqualValues(t, 24, graphrt.ByteSize(graphrt.PrimitiveTypes.Float32, 6))
	assert.EqualValues(t, 0, graphrt.ByteSize(graphrt.PrimitiveTypes.Float32, 0))
	assert.EqualValues(t, 2, graphrt.ByteSize(graphrt.PrimitiveTypes.Int4, 3))
	assert.EqualValues(t, 2, graphrt.ByteSize(graphrt.PrimitiveTypes.Uint4, 4))
	assert.EqualValues(t, 32, graphrt.ByteSize(graphrt.PrimitiveTypes.Complex128, 2))
}
