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

package plan_test

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/graphrt/graphrt/memory"
	"github.com/graphrt/graphrt/plan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var gpu0 = memory.Location{Name: "Cuda", Device: memory.GPU, DeviceID: 0, Kind: memory.ArenaAllocator}

func TestPlanLocation(t *testing.T) {
	p := plan.New(memory.CPULocation).Set(7, gpu0).Set(2, gpu0)

	assert.Equal(t, gpu0, p.Location(7))
	assert.Equal(t, memory.CPULocation, p.Location(3))
	assert.Equal(t, memory.CPULocation, p.Default())
	assert.Equal(t, []int{2, 7}, p.Slots())
	assert.Equal(t, []memory.Location{memory.CPULocation, gpu0}, p.Locations())
}

func TestPlanZeroValue(t *testing.T) {
	var p plan.Plan
	assert.Equal(t, memory.Location{}, p.Location(1))
	p.Set(1, gpu0)
	assert.Equal(t, gpu0, p.Location(1))
}

func TestPlanJSON(t *testing.T) {
	const doc = `{
		"default": {"name": "Cpu"},
		"slots": {
			"7": {"name": "Cuda", "device": "gpu", "device_id": 1, "alloc": "arena"},
			"9": {"name": "CudaPinned", "device": "cpu", "mem_type": -1}
		}
	}`

	p, err := plan.FromJSON(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, memory.CPULocation, p.Location(0))
	assert.Equal(t, memory.Location{Name: "Cuda", Device: memory.GPU, DeviceID: 1, Kind: memory.ArenaAllocator}, p.Location(7))
	assert.Equal(t, memory.Location{Name: "CudaPinned", Device: memory.CPU, MemType: memory.MemTypeCPUOutput}, p.Location(9))

	out, err := json.Marshal(p)
	require.NoError(t, err)

	var back plan.Plan
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, p.Slots(), back.Slots())
	for _, slot := range p.Slots() {
		assert.Equal(t, p.Location(slot), back.Location(slot))
	}
}

func TestPlanJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{`},
		{"no default name", `{"default": {}}`},
		{"bad slot", `{"default": {"name": "Cpu"}, "slots": {"x": {"name": "Cpu"}}}`},
		{"negative slot", `{"default": {"name": "Cpu"}, "slots": {"-1": {"name": "Cpu"}}}`},
		{"bad device", `{"default": {"name": "Cpu", "device": "tpu"}}`},
		{"bad alloc", `{"default": {"name": "Cpu", "alloc": "bfc"}}`},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := plan.FromJSON(strings.NewReader(test.doc))
			assert.Error(t, err)
		})
	}
}
