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

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"github.com/graphrt/graphrt"
	"github.com/graphrt/graphrt/internal/manifest"
	"github.com/graphrt/graphrt/memory"
	"github.com/graphrt/graphrt/prealloc"
	"github.com/zeebo/xxh3"
	"golang.org/x/exp/slices"
)

type passOptions struct {
	alignment int // 0 defers to the manifest
	checked   bool
}

type slotReport struct {
	Slot     int     `json:"slot"`
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Dims     []int64 `json:"dims"`
	Strides  []int64 `json:"strides,omitempty"`
	Bytes    int     `json:"bytes"`
	Location string  `json:"location"`
	Digest   string  `json:"xxh3,omitempty"`
}

type locationReport struct {
	Location string `json:"location"`
	Bytes    int    `json:"bytes"`
}

type passReport struct {
	Manifest  string           `json:"manifest"`
	Run       string           `json:"run"`
	Alignment int              `json:"alignment"`
	Slots     []slotReport     `json:"slots"`
	Planned   []locationReport `json:"planned"`
	LiveBytes int              `json:"live_bytes"`
}

// runPass registers every initializer of m with a fresh allocator, requests
// their buffers, copies the raw data in and releases the buffers.
func runPass(path string, m *manifest.Manifest, opts passOptions, logger log.Logger) (*passReport, error) {
	rep := &passReport{Manifest: path, Run: uuid.NewString(), Alignment: opts.alignment}
	if rep.Alignment == 0 {
		rep.Alignment = m.Alignment
	}
	if rep.Alignment == 0 {
		rep.Alignment = prealloc.DefaultAlignment
	}
	logger = log.With(logger, "run", rep.Run, "manifest", path)

	var checked []*memory.CheckedAllocator
	reg := m.Registry(func(memory.Location) memory.Allocator {
		var mem memory.Allocator = memory.NewGoAllocator()
		if opts.checked {
			ca := memory.NewCheckedAllocator(mem)
			checked = append(checked, ca)
			mem = ca
		}
		return mem
	})

	alloc := prealloc.New(m.Plan, reg, prealloc.WithAlignment(rep.Alignment), prealloc.WithLogger(logger))
	defer alloc.Release()

	for i := range m.Initializers {
		in := &m.Initializers[i]
		if err := alloc.Register(in.Slot, in.Descriptor()); err != nil {
			return nil, err
		}
	}

	planned, err := alloc.PlannedMemorySizes()
	if err != nil {
		return nil, err
	}
	for loc, n := range planned {
		rep.Planned = append(rep.Planned, locationReport{Location: loc.String(), Bytes: n})
	}
	slices.SortFunc(rep.Planned, func(a, b locationReport) int {
		return strings.Compare(a.Location, b.Location)
	})

	for i := range m.Initializers {
		in := &m.Initializers[i]
		view, err := alloc.RequestBuffer(in.Slot, in.Name)
		if err != nil {
			return nil, err
		}

		desc := in.Descriptor()
		strides, err := desc.Strides()
		if err != nil {
			return nil, err
		}
		sr := slotReport{
			Slot:     in.Slot,
			Name:     in.Name,
			Type:     desc.DataType.String(),
			Dims:     in.Dims,
			Strides:  strides,
			Bytes:    view.Len(),
			Location: view.Location.String(),
		}
		if len(in.RawData) > 0 {
			if err := fill(view, in); err != nil {
				return nil, err
			}
			sr.Digest = strconv.FormatUint(xxh3.Hash(view.Buf[:len(in.RawData)]), 16)
		}
		rep.Slots = append(rep.Slots, sr)
	}

	stats := alloc.Stats()
	rep.LiveBytes = stats.LiveBytes
	level.Info(logger).Log("msg", "pass prepared", "slots", stats.Registered, "allocated", stats.Allocated, "bytes", stats.LiveBytes)

	alloc.Release()
	for _, ca := range checked {
		if n := ca.CurrentAlloc(); n != 0 {
			return nil, fmt.Errorf("%d bytes in %d buffers still allocated after release", n, ca.Outstanding())
		}
	}
	return rep, nil
}

// fill copies the raw data of in into view and clears the alignment padding.
func fill(view prealloc.BufferView, in *manifest.Initializer) error {
	desc := in.Descriptor()
	n, err := desc.NumElements()
	if err != nil {
		return err
	}
	dt, _ := graphrt.TypeFromID(desc.DataType)
	if want := graphrt.ByteSize(dt, n); int64(len(in.RawData)) != want {
		return fmt.Errorf("initializer %q: raw data has %d bytes, want %d", in.Name, len(in.RawData), want)
	}

	copied := copy(view.Buf, in.RawData)
	memory.Set(view.Buf[copied:], 0)
	return nil
}
