// Copyright 2026 libgeodecomp-go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package update drives one time step of an unstructured stencil
// simulation: it walks a region of cells streak by streak and invokes the
// model's kernel on each, reading the old grid through a weighted
// neighbor gather and writing the new grid in place.
//
// Models describe themselves with a Kernels value: a per-cell kernel, a
// line kernel that owns a whole index range (and may vectorize it with
// the help of Peel and package vec), or both. The Concurrency value
// selects whether streaks fan out across a worker pool and whether a
// single streak may be split further. All combinations produce
// bit-identical results as long as the model's kernels are themselves
// equivalent.
package update
