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

// Package grid stores cell state for unstructured stencil codes.
//
// A Grid addresses cells by logical coordinate but stores them in the
// physical order induced by its weight matrices' SELL-C-sigma row
// permutation, so that chunked kernels stream through memory linearly.
// Until the first call to SetWeights the permutation is the identity;
// adopting a matrix reorders the underlying storage in place and pads it
// to a whole number of chunks. Reads outside the bounding box return the
// grid's edge cell.
package grid
