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

import "unsafe"

type primitive struct {
	id   Type
	name string
	bits int
}

func (t *primitive) ID() Type       { return t.id }
func (t *primitive) Name() string   { return t.name }
func (t *primitive) String() string { return t.name }

// BitWidth returns the number of bits required to store a single element of this data type in memory.
func (t *primitive) BitWidth() int { return t.bits }

// StringHeaderSizeBytes is the in-memory width of one STRING element.
const StringHeaderSizeBytes = int(unsafe.Sizeof(""))

var (
	PrimitiveTypes = struct {
		Float32        FixedWidthDataType
		Uint8          FixedWidthDataType
		Int8           FixedWidthDataType
		Uint16         FixedWidthDataType
		Int16          FixedWidthDataType
		Int32          FixedWidthDataType
		Int64          FixedWidthDataType
		String         FixedWidthDataType
		Bool           FixedWidthDataType
		Float16        FixedWidthDataType
		Float64        FixedWidthDataType
		Uint32         FixedWidthDataType
		Uint64         FixedWidthDataType
		Complex64      FixedWidthDataType
		Complex128     FixedWidthDataType
		BFloat16       FixedWidthDataType
		Float8E4M3FN   FixedWidthDataType
		Float8E4M3FNUZ FixedWidthDataType
		Float8E5M2     FixedWidthDataType
		Float8E5M2FNUZ FixedWidthDataType
		Uint4          FixedWidthDataType
		Int4           FixedWidthDataType
	}{
		Float32:        &primitive{FLOAT, "float32", 32},
		Uint8:          &primitive{UINT8, "uint8", 8},
		Int8:           &primitive{INT8, "int8", 8},
		Uint16:         &primitive{UINT16, "uint16", 16},
		Int16:          &primitive{INT16, "int16", 16},
		Int32:          &primitive{INT32, "int32", 32},
		Int64:          &primitive{INT64, "int64", 64},
		String:         &primitive{STRING, "string", 8 * StringHeaderSizeBytes},
		Bool:           &primitive{BOOL, "bool", 8},
		Float16:        &primitive{FLOAT16, "float16", 16},
		Float64:        &primitive{DOUBLE, "float64", 64},
		Uint32:         &primitive{UINT32, "uint32", 32},
		Uint64:         &primitive{UINT64, "uint64", 64},
		Complex64:      &primitive{COMPLEX64, "complex64", 64},
		Complex128:     &primitive{COMPLEX128, "complex128", 128},
		BFloat16:       &primitive{BFLOAT16, "bfloat16", 16},
		Float8E4M3FN:   &primitive{FLOAT8E4M3FN, "float8e4m3fn", 8},
		Float8E4M3FNUZ: &primitive{FLOAT8E4M3FNUZ, "float8e4m3fnuz", 8},
		Float8E5M2:     &primitive{FLOAT8E5M2, "float8e5m2", 8},
		Float8E5M2FNUZ: &primitive{FLOAT8E5M2FNUZ, "float8e5m2fnuz", 8},
		Uint4:          &primitive{UINT4, "uint4", 4},
		Int4:           &primitive{INT4, "int4", 4},
	}

	primitiveByID = [...]FixedWidthDataType{
		FLOAT:          PrimitiveTypes.Float32,
		UINT8:          PrimitiveTypes.Uint8,
		INT8:           PrimitiveTypes.Int8,
		UINT16:         PrimitiveTypes.Uint16,
		INT16:          PrimitiveTypes.Int16,
		INT32:          PrimitiveTypes.Int32,
		INT64:          PrimitiveTypes.Int64,
		STRING:         PrimitiveTypes.String,
		BOOL:           PrimitiveTypes.Bool,
		FLOAT16:        PrimitiveTypes.Float16,
		DOUBLE:         PrimitiveTypes.Float64,
		UINT32:         PrimitiveTypes.Uint32,
		UINT64:         PrimitiveTypes.Uint64,
		COMPLEX64:      PrimitiveTypes.Complex64,
		COMPLEX128:     PrimitiveTypes.Complex128,
		BFLOAT16:       PrimitiveTypes.BFloat16,
		FLOAT8E4M3FN:   PrimitiveTypes.Float8E4M3FN,
		FLOAT8E4M3FNUZ: PrimitiveTypes.Float8E4M3FNUZ,
		FLOAT8E5M2:     PrimitiveTypes.Float8E5M2,
		FLOAT8E5M2FNUZ: PrimitiveTypes.Float8E5M2FNUZ,
		UINT4:          PrimitiveTypes.Uint4,
		INT4:           PrimitiveTypes.Int4,
	}

	enumNames = [...]string{
		UNDEFINED:      "UNDEFINED",
		FLOAT:          "FLOAT",
		UINT8:          "UINT8",
		INT8:           "INT8",
		UINT16:         "UINT16",
		INT16:          "INT16",
		INT32:          "INT32",
		INT64:          "INT64",
		STRING:         "STRING",
		BOOL:           "BOOL",
		FLOAT16:        "FLOAT16",
		DOUBLE:         "DOUBLE",
		UINT32:         "UINT32",
		UINT64:         "UINT64",
		COMPLEX64:      "COMPLEX64",
		COMPLEX128:     "COMPLEX128",
		BFLOAT16:       "BFLOAT16",
		FLOAT8E4M3FN:   "FLOAT8E4M3FN",
		FLOAT8E4M3FNUZ: "FLOAT8E4M3FNUZ",
		FLOAT8E5M2:     "FLOAT8E5M2",
		FLOAT8E5M2FNUZ: "FLOAT8E5M2FNUZ",
		UINT4:          "UINT4",
		INT4:           "INT4",
	}
)
