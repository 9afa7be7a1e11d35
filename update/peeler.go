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

package update

import "iter"

// Kind labels the three phases of a peeled loop.
type Kind int

const (
	// Head is the scalar prologue up to the first aligned index.
	Head Kind = iota
	// Body is the aligned bulk, processed Lanes elements at a time.
	Body
	// Tail is the scalar epilogue after the last aligned index.
	Tail
)

func (k Kind) String() string {
	switch k {
	case Head:
		return "head"
	case Body:
		return "body"
	case Tail:
		return "tail"
	}
	return "unknown"
}

// Span is one phase of a peeled loop: the half-open index range
// [Start, End) and the step width to process it with. Head and Tail spans
// always carry Lanes == 1; a Body span's length is a multiple of Lanes
// and its Start is aligned to Lanes.
type Span struct {
	Kind       Kind
	Start, End int
	Lanes      int
}

// Len returns the number of indices in the span.
func (s Span) Len() int { return s.End - s.Start }

// Peel splits [start, end) into a scalar head up to the first multiple of
// lanes, an aligned vector body, and a scalar tail. Empty phases are not
// yielded; when the whole range fits before the first alignment point it
// comes out as a single head. Chunk-vectorized kernels peel with
// lanes set to the matrix chunk width, so the body walks whole chunks.
//
// The iterator is restartable: peeling the ranges of consecutive streaks
// simply means calling Peel again for each.
func Peel(start, end, lanes int) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		if start >= end {
			return
		}
		if lanes <= 1 {
			yield(Span{Kind: Body, Start: start, End: end, Lanes: 1})
			return
		}

		alignedStart := (start + lanes - 1) / lanes * lanes
		alignedEnd := end / lanes * lanes
		if alignedEnd < alignedStart {
			// The range never reaches an aligned chunk.
			yield(Span{Kind: Head, Start: start, End: end, Lanes: 1})
			return
		}

		if start < alignedStart {
			if !yield(Span{Kind: Head, Start: start, End: alignedStart, Lanes: 1}) {
				return
			}
		}
		if alignedStart < alignedEnd {
			if !yield(Span{Kind: Body, Start: alignedStart, End: alignedEnd, Lanes: lanes}) {
				return
			}
		}
		if alignedEnd < end {
			yield(Span{Kind: Tail, Start: alignedEnd, End: end, Lanes: 1})
		}
	}
}
