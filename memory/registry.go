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

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Registry maps memory locations to the allocators serving them.
//
// Registry is not safe for concurrent mutation. Lookups may run
// concurrently once registration is complete.
type Registry struct {
	allocs map[Location]Allocator
}

func NewRegistry() *Registry {
	return &Registry{allocs: make(map[Location]Allocator)}
}

// Register makes mem the allocator for loc, replacing any previous one.
func (r *Registry) Register(loc Location, mem Allocator) {
	if mem == nil {
		panic(fmt.Errorf("memory: nil allocator for %s", loc))
	}
	if r.allocs == nil {
		r.allocs = make(map[Location]Allocator)
	}
	r.allocs[loc] = mem
}

// Allocator returns the allocator registered for loc.
func (r *Registry) Allocator(loc Location) (Allocator, bool) {
	mem, ok := r.allocs[loc]
	return mem, ok
}

// Locations returns the registered locations ordered by their string form.
func (r *Registry) Locations() []Location {
	locs := maps.Keys(r.allocs)
	slices.SortFunc(locs, func(a, b Location) int {
		return strings.Compare(a.String(), b.String())
	})
	return locs
}

func (r *Registry) Len() int { return len(r.allocs) }
