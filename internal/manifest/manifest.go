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

// Package manifest reads the JSON description of a graph preparation pass:
// the memory plan, the locations served by an allocator and the
// initializers needing preallocated buffers.
package manifest

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/graphrt/graphrt"
	"github.com/graphrt/graphrt/memory"
	"github.com/graphrt/graphrt/plan"
	"github.com/graphrt/graphrt/prealloc"
	"github.com/graphrt/graphrt/tensor"
)

// Initializer is a constant tensor of the graph bound to a value slot.
type Initializer struct {
	Slot    int     `json:"slot"`
	Name    string  `json:"name"`
	Type    string  `json:"type"`
	Dims    []int64 `json:"dims"`
	RawData []byte  `json:"raw_data,omitempty"`
}

// Manifest describes one preparation pass.
type Manifest struct {
	Alignment    int                 `json:"alignment,omitempty"`
	Plan         *plan.Plan          `json:"plan"`
	Allocators   []plan.LocationSpec `json:"allocators"`
	Initializers []Initializer       `json:"initializers"`
}

// Decode reads and validates a manifest from r.
func Decode(r io.Reader) (*Manifest, error) {
	var m Manifest
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Load reads and validates the manifest stored at path.
func Load(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

func (m *Manifest) validate() error {
	if m.Plan == nil {
		return fmt.Errorf("manifest: missing plan")
	}
	if m.Alignment != 0 && !memory.IsPowerOf2(m.Alignment) {
		return fmt.Errorf("manifest: invalid alignment %d", m.Alignment)
	}
	for i, spec := range m.Allocators {
		if _, err := spec.Location(); err != nil {
			return fmt.Errorf("manifest: allocator %d: %w", i, err)
		}
	}
	for i := range m.Initializers {
		in := &m.Initializers[i]
		if in.Slot < 0 || in.Slot >= prealloc.DefaultMaxSlots {
			return fmt.Errorf("manifest: initializer %q: slot %d out of range [0, %d)", in.Name, in.Slot, prealloc.DefaultMaxSlots)
		}
		if _, ok := graphrt.ParseType(in.Type); !ok {
			return fmt.Errorf("manifest: initializer %q: unknown type %q", in.Name, in.Type)
		}
	}
	return nil
}

// Descriptor returns the tensor descriptor of the initializer.
func (in *Initializer) Descriptor() *tensor.Descriptor {
	dt, _ := graphrt.ParseType(in.Type)
	return tensor.NewDescriptor(in.Name, dt, in.Dims...)
}

// Locations returns the locations served by an allocator.
func (m *Manifest) Locations() []memory.Location {
	out := make([]memory.Location, 0, len(m.Allocators))
	for _, spec := range m.Allocators {
		loc, _ := spec.Location()
		out = append(out, loc)
	}
	return out
}

// Registry builds an allocator registry with one allocator per listed
// location, each produced by newAllocator.
func (m *Manifest) Registry(newAllocator func(memory.Location) memory.Allocator) *memory.Registry {
	reg := memory.NewRegistry()
	for _, loc := range m.Locations() {
		reg.Register(loc, newAllocator(loc))
	}
	return reg
}
