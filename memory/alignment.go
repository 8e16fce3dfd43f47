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

import (
	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"
)

// DefaultAlignment returns the buffer alignment suited to the host CPU:
// its cache line size, at least 64 bytes when AVX-512 is available so a
// full vector load never straddles two lines.
func DefaultAlignment() int {
	align := cpuid.CPU.CacheLine
	if !IsPowerOf2(align) {
		align = alignment
	}
	if cpu.X86.HasAVX512F && align < 64 {
		align = 64
	}
	return align
}
