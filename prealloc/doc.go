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

/*
Package prealloc resolves the preallocated buffers of runtime value slots,
such as graph initializers, while a computation graph is prepared for
execution.

An Allocator is populated during a planning pass with Register, which
records the tensor descriptor of every slot needing a buffer. During
materialization RequestBuffer computes the aligned size of each slot,
resolves its memory location from the memory plan and the allocator
serving that location, allocates exactly once and returns a BufferView.

The Allocator owns every buffer it allocates. A BufferView borrows that
memory: it must not outlive the Allocator, must not be freed by the caller
and becomes invalid once Free or Release returns the buffer to its
allocator.

An Allocator is not safe for concurrent use. Use one instance per
preparation pass.
*/
package prealloc
