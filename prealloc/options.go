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

package prealloc

import (
	"fmt"

	"github.com/go-kit/log"
	"github.com/graphrt/graphrt/memory"
)

// DefaultAlignment is the boundary buffer sizes are rounded up to unless
// WithAlignment overrides it.
const DefaultAlignment = 256

// DefaultMaxSlots bounds the slot ids an Allocator accepts unless
// WithMaxSlots overrides it.
const DefaultMaxSlots = 1 << 24

type config struct {
	align    int
	maxSlots int
	logger   log.Logger
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		align:    DefaultAlignment,
		maxSlots: DefaultMaxSlots,
		logger:   log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Option configures an Allocator.
type Option func(*config)

// WithAlignment rounds every buffer size up to a multiple of n, which
// must be a positive power of two.
func WithAlignment(n int) Option {
	return func(cfg *config) {
		if !memory.IsPowerOf2(n) {
			panic(fmt.Errorf("prealloc: invalid alignment %d", n))
		}
		cfg.align = n
	}
}

// WithMaxSlots makes slot ids n and above unknown to the Allocator. The
// slot table grows up to n entries.
func WithMaxSlots(n int) Option {
	return func(cfg *config) {
		if n <= 0 {
			panic(fmt.Errorf("prealloc: invalid slot limit %d", n))
		}
		cfg.maxSlots = n
	}
}

// WithLogger sets the logger receiving allocation events.
func WithLogger(logger log.Logger) Option {
	return func(cfg *config) {
		if logger == nil {
			logger = log.NewNopLogger()
		}
		cfg.logger = logger
	}
}
