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

package graphrt

import (
	"strconv"
	"strings"
)

// Type is the element type of a tensor. The numbering follows the
// TensorProto.DataType enumeration used by serialized graphs.
type Type int32

const (
	// UNDEFINED is the zero value and is never a valid element type
	UNDEFINED Type = iota

	// FLOAT is a 4-byte IEEE-754 floating point value
	FLOAT

	// UINT8 is an unsigned 8-bit integer
	UINT8

	// INT8 is a signed 8-bit integer
	INT8

	// UINT16 is an unsigned 16-bit integer
	UINT16

	// INT16 is a signed 16-bit integer
	INT16

	// INT32 is a signed 32-bit integer
	INT32

	// INT64 is a signed 64-bit integer
	INT64

	// STRING is a variable-length string held by header
	STRING

	// BOOL is a 1-byte boolean
	BOOL

	// FLOAT16 is a 2-byte IEEE-754 half precision value
	FLOAT16

	// DOUBLE is an 8-byte IEEE-754 floating point value
	DOUBLE

	// UINT32 is an unsigned 32-bit integer
	UINT32

	// UINT64 is an unsigned 64-bit integer
	UINT64

	// COMPLEX64 is a pair of FLOAT values
	COMPLEX64

	// COMPLEX128 is a pair of DOUBLE values
	COMPLEX128

	// BFLOAT16 is a 2-byte brain floating point value
	BFLOAT16

	FLOAT8E4M3FN
	FLOAT8E4M3FNUZ
	FLOAT8E5M2
	FLOAT8E5M2FNUZ

	// UINT4 is an unsigned 4-bit integer, two per byte
	UINT4

	// INT4 is a signed 4-bit integer, two per byte
	INT4
)

// DataType is the representation of a tensor element type.
type DataType interface {
	ID() Type
	// Name is name of the data type.
	Name() string
}

// FixedWidthDataType is the representation of an element type that
// requires a fixed number of bits in memory for each element.
type FixedWidthDataType interface {
	DataType
	// BitWidth returns the number of bits required to store a single element of this data type in memory.
	BitWidth() int
}

func (t Type) String() string {
	if dt, ok := TypeFromID(t); ok {
		return dt.Name()
	}
	return "type(" + strconv.Itoa(int(t)) + ")"
}

// TypeFromID returns the data type registered for id. It reports false
// for UNDEFINED and for ids outside the known range.
func TypeFromID(id Type) (FixedWidthDataType, bool) {
	if id <= UNDEFINED || int(id) >= len(primitiveByID) {
		return nil, false
	}
	dt := primitiveByID[id]
	return dt, dt != nil
}

// ParseType returns the element type named name, matching either the
// data type name ("float16") or the enumeration name ("FLOAT16"), case
// insensitively.
func ParseType(name string) (Type, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for id, dt := range primitiveByID {
		if dt == nil {
			continue
		}
		if dt.Name() == name || strings.ToLower(enumNames[id]) == name {
			return Type(id), true
		}
	}
	return UNDEFINED, false
}

// ByteSize returns the number of bytes required to hold n elements of
// type dt. Sub-byte types are packed and rounded up to a whole byte.
func ByteSize(dt FixedWidthDataType, n int64) int64 {
	bw := int64(dt.BitWidth())
	if bw%8 == 0 {
		return n * (bw / 8)
	}
	return (n*bw + 7) / 8
}
