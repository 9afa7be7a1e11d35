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

// Package sell implements the SELL-C-sigma sparse matrix container used to
// store per-cell neighbor weights for unstructured stencil updates.
//
// Rows are grouped into chunks of C consecutive rows. Within every window
// of sigma rows, rows are sorted descending by their number of nonzeros
// before chunking; the sort induces a row permutation that callers apply
// to their cell storage so that a chunk's rows sit next to each other in
// memory. Every chunk is padded to the width of its longest row with
// neutral (self-index, zero-weight) entries, so a kernel can gather a full
// lane of C columns per slot without bounds checks.
//
// The layout follows Kreutzer et al., "A unified sparse matrix data format
// for efficient general sparse matrix-vector multiplication on modern
// processors with wide SIMD units".
package sell
