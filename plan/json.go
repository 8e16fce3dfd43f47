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

package plan

import (
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/graphrt/graphrt/memory"
)

// LocationSpec is the JSON form of a memory.Location.
type LocationSpec struct {
	Name     string `json:"name"`
	Device   string `json:"device,omitempty"`
	DeviceID int    `json:"device_id,omitempty"`
	MemType  int8   `json:"mem_type,omitempty"`
	Kind     string `json:"alloc,omitempty"`
}

// Location converts s to a memory.Location.
func (s LocationSpec) Location() (memory.Location, error) {
	dev, err := memory.ParseDeviceType(s.Device)
	if err != nil {
		return memory.Location{}, err
	}
	kind, err := memory.ParseAllocKind(s.Kind)
	if err != nil {
		return memory.Location{}, err
	}
	if s.Name == "" {
		return memory.Location{}, fmt.Errorf("plan: location without a name")
	}
	return memory.Location{
		Name:     s.Name,
		Device:   dev,
		DeviceID: s.DeviceID,
		MemType:  memory.MemType(s.MemType),
		Kind:     kind,
	}, nil
}

// SpecOf returns the JSON form of loc.
func SpecOf(loc memory.Location) LocationSpec {
	return LocationSpec{
		Name:     loc.Name,
		Device:   loc.Device.String(),
		DeviceID: loc.DeviceID,
		MemType:  int8(loc.MemType),
		Kind:     loc.Kind.String(),
	}
}

type planJSON struct {
	Default LocationSpec            `json:"default"`
	Slots   map[string]LocationSpec `json:"slots,omitempty"`
}

func (p *Plan) MarshalJSON() ([]byte, error) {
	out := planJSON{Default: SpecOf(p.def), Slots: make(map[string]LocationSpec, len(p.slots))}
	for slot, loc := range p.slots {
		out.Slots[strconv.Itoa(slot)] = SpecOf(loc)
	}
	return json.Marshal(out)
}

func (p *Plan) UnmarshalJSON(data []byte) error {
	var in planJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("plan: %w", err)
	}

	def, err := in.Default.Location()
	if err != nil {
		return fmt.Errorf("plan: default location: %w", err)
	}

	out := New(def)
	for key, spec := range in.Slots {
		slot, err := strconv.Atoi(key)
		if err != nil || slot < 0 {
			return fmt.Errorf("plan: invalid slot %q", key)
		}
		loc, err := spec.Location()
		if err != nil {
			return fmt.Errorf("plan: slot %d: %w", slot, err)
		}
		out.Set(slot, loc)
	}
	*p = *out
	return nil
}

// FromJSON decodes a Plan from r.
func FromJSON(r io.Reader) (*Plan, error) {
	var p Plan
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}
