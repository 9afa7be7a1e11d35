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

// Package vec provides portable short-vector operations for stencil
// kernels: load/store, fused multiply-add and index gather over small
// fixed-width lanes. Vectors are slice-backed, so the lane count is set by
// the caller (typically the chunk width of the weight matrix) rather than
// the hardware register width; RegisterWidth and MaxLanes report what the
// hardware could sustain so models can pick a matching chunk width.
package vec

// Float constrains the element types usable in vector lanes.
type Float interface {
	~float32 | ~float64
}

// Vec is a small vector of lanes. Create one with Load, Zero or Splat;
// the zero value has no lanes.
type Vec[T Float] struct {
	data []T
}

// NumLanes returns the lane count.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying lane slice, primarily for tests.
func (v Vec[T]) Data() []T {
	return v.data
}

// Zero returns a vector of n zero lanes.
func Zero[T Float](n int) Vec[T] {
	return Vec[T]{data: make([]T, n)}
}

// Splat returns a vector of n lanes all holding x.
func Splat[T Float](x T, n int) Vec[T] {
	data := make([]T, n)
	for i := range data {
		data[i] = x
	}
	return Vec[T]{data: data}
}

// Load creates a vector from src. The lane count equals len(src), so
// callers slice their buffer to the width they want: Load(buf[i : i+c]).
func Load[T Float](src []T) Vec[T] {
	data := make([]T, len(src))
	copy(data, src)
	return Vec[T]{data: data}
}

// Store writes the vector's lanes to dst. dst must hold at least
// NumLanes elements.
func Store[T Float](v Vec[T], dst []T) {
	copy(dst[:len(v.data)], v.data)
}

// Add returns the lanewise sum a + b. Both vectors must have the same
// lane count.
func Add[T Float](a, b Vec[T]) Vec[T] {
	out := make([]T, len(a.data))
	for i := range out {
		out[i] = a.data[i] + b.data[i]
	}
	return Vec[T]{data: out}
}

// Mul returns the lanewise product a * b.
func Mul[T Float](a, b Vec[T]) Vec[T] {
	out := make([]T, len(a.data))
	for i := range out {
		out[i] = a.data[i] * b.data[i]
	}
	return Vec[T]{data: out}
}

// MulAdd returns acc + a*b lanewise.
func MulAdd[T Float](a, b, acc Vec[T]) Vec[T] {
	out := make([]T, len(acc.data))
	for i := range out {
		out[i] = acc.data[i] + a.data[i]*b.data[i]
	}
	return Vec[T]{data: out}
}

// ReduceSum returns the sum of all lanes.
func ReduceSum[T Float](v Vec[T]) T {
	var sum T
	for _, x := range v.data {
		sum += x
	}
	return sum
}

// Gather loads src[cols[i]] into lane i. The lane count equals len(cols).
// Out-of-range indices load zero.
func Gather[T Float](src []T, cols []int32) Vec[T] {
	out := make([]T, len(cols))
	for i, c := range cols {
		if c >= 0 && int(c) < len(src) {
			out[i] = src[c]
		}
	}
	return Vec[T]{data: out}
}
