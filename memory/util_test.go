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
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundToPowerOf2(t *testing.T) {
	tests := []struct {
		v, round int
		exp      int
	}{
		{60, 64, 64},
		{122, 64, 128},
		{16, 64, 64},
		{64, 64, 64},
		{13, 8, 16},
		{24, 16, 32},
		{0, 256, 0},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("v%d_r%d", test.v, test.round), func(t *testing.T) {
			a := roundToPowerOf2(test.v, test.round)
			assert.Equal(t, test.exp, a)
		})
	}
}

func TestIsMultipleOfPowerOf2(t *testing.T) {
	tests := []struct {
		v, d int
		exp  bool
	}{
		{200, 256, false},
		{256, 256, true},
		{500, 256, false},
		{512, 256, true},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%d_%d_%t", test.v, test.d, test.exp), func(t *testing.T) {
			got := isMultipleOfPowerOf2(test.v, test.d)
			assert.Equal(t, test.exp, got)
		})
	}
}

func TestIsPowerOf2(t *testing.T) {
	for _, v := range []int{1, 2, 16, 64, 256, 1 << 20} {
		assert.True(t, IsPowerOf2(v), v)
	}
	for _, v := range []int{0, -1, -64, 3, 12, 100} {
		assert.False(t, IsPowerOf2(v), v)
	}
}

func TestRoundUp(t *testing.T) {
	got, ok := RoundUp(24, 16)
	assert.True(t, ok)
	assert.Equal(t, 32, got)

	_, ok = RoundUp(math.MaxInt-3, 64)
	assert.False(t, ok)
}

func TestDefaultAlignment(t *testing.T) {
	align := DefaultAlignment()
	assert.True(t, IsPowerOf2(align))
	assert.Equal(t, align, DefaultAlignment())
}
