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
	"strings"
)

// DeviceType identifies the kind of device a buffer lives on.
type DeviceType uint8

const (
	CPU DeviceType = iota
	GPU
	FPGA
	NPU
)

func (d DeviceType) String() string {
	names := [...]string{"cpu", "gpu", "fpga", "npu"}
	if int(d) < len(names) {
		return names[d]
	}
	return fmt.Sprintf("device(%d)", d)
}

// MemType distinguishes the memory spaces of a device.
type MemType int8

const (
	MemTypeCPUInput  MemType = -2 // device memory readable by the CPU, used for inputs
	MemTypeCPUOutput MemType = -1 // device memory readable by the CPU, used for outputs
	MemTypeDefault   MemType = 0
)

func (m MemType) String() string {
	switch m {
	case MemTypeCPUInput:
		return "cpu-input"
	case MemTypeCPUOutput:
		return "cpu-output"
	case MemTypeDefault:
		return "default"
	default:
		return fmt.Sprintf("mem(%d)", m)
	}
}

// AllocKind is the allocation strategy of the allocator serving a location.
type AllocKind uint8

const (
	DeviceAllocator AllocKind = iota
	ArenaAllocator
)

func (k AllocKind) String() string {
	switch k {
	case DeviceAllocator:
		return "device"
	case ArenaAllocator:
		return "arena"
	default:
		return fmt.Sprintf("alloc(%d)", k)
	}
}

// Location identifies where a buffer lives: a named memory space on a
// device together with the kind of allocator serving it.
//
// Location is comparable and may be used as a map key.
type Location struct {
	Name     string
	Device   DeviceType
	DeviceID int
	MemType  MemType
	Kind     AllocKind
}

// CPULocation is the default memory space of the host.
var CPULocation = Location{Name: "Cpu", Device: CPU, Kind: DeviceAllocator}

func (l Location) String() string {
	var b strings.Builder
	b.WriteString("Location[name:")
	b.WriteString(l.Name)
	fmt.Fprintf(&b, " device:%s:%d mem:%s alloc:%s]", l.Device, l.DeviceID, l.MemType, l.Kind)
	return b.String()
}

// ParseDeviceType returns the device type named s.
func ParseDeviceType(s string) (DeviceType, error) {
	switch strings.ToLower(s) {
	case "", "cpu":
		return CPU, nil
	case "gpu", "cuda":
		return GPU, nil
	case "fpga":
		return FPGA, nil
	case "npu":
		return NPU, nil
	}
	return 0, fmt.Errorf("memory: unknown device type %q", s)
}

// ParseAllocKind returns the allocator kind named s.
func ParseAllocKind(s string) (AllocKind, error) {
	switch strings.ToLower(s) {
	case "", "device":
		return DeviceAllocator, nil
	case "arena":
		return ArenaAllocator, nil
	}
	return 0, fmt.Errorf("memory: unknown allocator kind %q", s)
}
