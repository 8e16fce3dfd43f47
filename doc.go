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
Package graphrt describes the element types of computation graph tensors.

The subpackages build on these types to prepare a graph for execution:

  - tensor computes the aligned byte size of a tensor descriptor.
  - memory provides allocators and the memory locations they serve.
  - plan maps runtime value slots to memory locations.
  - prealloc resolves and owns the preallocated buffer of every slot that
    needs one, such as graph initializers.
*/
package graphrt
