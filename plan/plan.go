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

// Package plan assigns runtime value slots to the memory locations their
// buffers must live in.
package plan

import (
	"github.com/graphrt/graphrt/memory"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// MemoryPlan resolves the memory location of a value slot. Location is a
// pure function over the slots of one execution plan.
type MemoryPlan interface {
	Location(slot int) memory.Location
}

// Plan is a MemoryPlan built from explicit per-slot assignments. Slots
// without an assignment live at the default location.
type Plan struct {
	def   memory.Location
	slots map[int]memory.Location
}

// New returns a Plan whose unassigned slots live at def.
func New(def memory.Location) *Plan {
	return &Plan{def: def, slots: make(map[int]memory.Location)}
}

// Set assigns slot to loc.
func (p *Plan) Set(slot int, loc memory.Location) *Plan {
	if p.slots == nil {
		p.slots = make(map[int]memory.Location)
	}
	p.slots[slot] = loc
	return p
}

func (p *Plan) Default() memory.Location { return p.def }

func (p *Plan) Location(slot int) memory.Location {
	if loc, ok := p.slots[slot]; ok {
		return loc
	}
	return p.def
}

// Slots returns the explicitly assigned slots in ascending order.
func (p *Plan) Slots() []int {
	slots := maps.Keys(p.slots)
	slices.Sort(slots)
	return slots
}

// Locations returns the distinct locations referenced by the plan,
// default first.
func (p *Plan) Locations() []memory.Location {
	out := []memory.Location{p.def}
	for _, slot := range p.Slots() {
		if loc := p.slots[slot]; !slices.Contains(out, loc) {
			out = append(out, loc)
		}
	}
	return out
}

var (
	_ MemoryPlan = (*Plan)(nil)
)
