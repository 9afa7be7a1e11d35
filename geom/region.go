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

package geom

import (
	"fmt"
	"iter"
	"sort"
	"strings"
)

// Region is a finite set of lattice points stored as an ordered collection
// of streaks. Within each (y, z) row the streaks are disjoint and
// non-adjacent: Insert merges a new streak with every existing streak it
// overlaps or touches, so the representation is always canonical and two
// regions covering the same points compare equal streak by streak.
//
// The zero value is an empty 1-D region; use NewRegion for rank 2 or 3.
type Region struct {
	rank    int
	streaks []Streak
	size    int
}

// NewRegion returns an empty region of the given rank (1, 2 or 3).
// The rank matters for Expand, which grows the region along every active
// axis, and for the rank of the box BoundingBox returns.
func NewRegion(rank int) *Region {
	if rank < 1 || rank > 3 {
		panic(fmt.Sprintf("geom: region rank %d out of range", rank))
	}
	return &Region{rank: rank}
}

// Rank returns the region's rank; the zero value reports 1.
func (r *Region) Rank() int {
	if r.rank == 0 {
		return 1
	}
	return r.rank
}

// Size returns the number of lattice points in the region.
func (r *Region) Size() int {
	return r.size
}

// Empty reports whether the region contains no points.
func (r *Region) Empty() bool {
	return r.size == 0
}

// NumStreaks returns the number of streaks in the canonical representation.
func (r *Region) NumStreaks() int {
	return len(r.streaks)
}

// rowCompare orders two streaks by (z, y) row only.
func rowCompare(a, b Streak) int {
	if a.Origin.Z != b.Origin.Z {
		return sign(a.Origin.Z - b.Origin.Z)
	}
	return sign(a.Origin.Y - b.Origin.Y)
}

// Insert adds a streak to the region, merging with neighbors on both
// sides. Empty streaks (EndX <= Origin.X) are ignored.
func (r *Region) Insert(s Streak) {
	if s.Length() == 0 {
		return
	}

	// lo is the first streak that is not entirely left of s (touching
	// counts as mergeable), hi the first streak entirely right of s.
	lo := sort.Search(len(r.streaks), func(i int) bool {
		t := r.streaks[i]
		rc := rowCompare(t, s)
		return rc > 0 || (rc == 0 && t.EndX >= s.Origin.X)
	})
	hi := sort.Search(len(r.streaks), func(i int) bool {
		t := r.streaks[i]
		rc := rowCompare(t, s)
		return rc > 0 || (rc == 0 && t.Origin.X > s.EndX)
	})

	merged := s
	for i := lo; i < hi; i++ {
		t := r.streaks[i]
		merged.Origin.X = min(merged.Origin.X, t.Origin.X)
		merged.EndX = max(merged.EndX, t.EndX)
		r.size -= t.Length()
	}
	r.size += merged.Length()

	if lo == hi {
		r.streaks = append(r.streaks, Streak{})
		copy(r.streaks[lo+1:], r.streaks[lo:])
		r.streaks[lo] = merged
		return
	}
	r.streaks[lo] = merged
	r.streaks = append(r.streaks[:lo+1], r.streaks[hi:]...)
}

// InsertBox adds every point of a box, one streak per row.
func (r *Region) InsertBox(b CoordBox) {
	for s := range b.Streaks() {
		r.Insert(s)
	}
}

// Count reports whether the region contains c. The name follows set
// semantics: the result is 0 or 1 occurrences.
func (r *Region) Count(c Coord) bool {
	probe := Streak{Origin: c, EndX: c.X + 1}
	i := sort.Search(len(r.streaks), func(i int) bool {
		t := r.streaks[i]
		rc := rowCompare(t, probe)
		return rc > 0 || (rc == 0 && t.EndX > c.X)
	})
	return i < len(r.streaks) && r.streaks[i].Contains(c)
}

// Clone returns a deep copy of the region.
func (r *Region) Clone() *Region {
	out := &Region{rank: r.rank, size: r.size}
	out.streaks = append([]Streak(nil), r.streaks...)
	return out
}

// Expand returns the Minkowski sum of the region with the l-infinity ball
// of radius k: every point within chessboard distance k of the region.
// For k <= 0 the result is a copy.
func (r *Region) Expand(k int) *Region {
	if k <= 0 {
		return r.Clone()
	}
	out := NewRegion(r.Rank())
	dy, dz := 0, 0
	if r.Rank() >= 2 {
		dy = k
	}
	if r.Rank() >= 3 {
		dz = k
	}
	for _, s := range r.streaks {
		for z := -dz; z <= dz; z++ {
			for y := -dy; y <= dy; y++ {
				out.Insert(Streak{
					Origin: Coord{X: s.Origin.X - k, Y: s.Origin.Y + y, Z: s.Origin.Z + z},
					EndX:   s.EndX + k,
				})
			}
		}
	}
	return out
}

// Union returns a new region covering every point of r and o.
func (r *Region) Union(o *Region) *Region {
	out := r.Clone()
	for _, s := range o.streaks {
		out.Insert(s)
	}
	return out
}

// Intersect returns a new region covering the points present in both r
// and o.
func (r *Region) Intersect(o *Region) *Region {
	out := NewRegion(r.Rank())
	i, j := 0, 0
	for i < len(r.streaks) && j < len(o.streaks) {
		a, b := r.streaks[i], o.streaks[j]
		rc := rowCompare(a, b)
		switch {
		case rc < 0:
			i++
		case rc > 0:
			j++
		default:
			lo := max(a.Origin.X, b.Origin.X)
			hi := min(a.EndX, b.EndX)
			if hi > lo {
				out.Insert(Streak{Origin: Coord{X: lo, Y: a.Origin.Y, Z: a.Origin.Z}, EndX: hi})
			}
			if a.EndX < b.EndX {
				i++
			} else {
				j++
			}
		}
	}
	return out
}

// Equal reports whether both regions cover exactly the same points.
// Canonical streak storage makes this a slice comparison.
func (r *Region) Equal(o *Region) bool {
	if len(r.streaks) != len(o.streaks) {
		return false
	}
	for i := range r.streaks {
		if r.streaks[i] != o.streaks[i] {
			return false
		}
	}
	return true
}

// Streaks iterates the canonical streaks in row-major order.
func (r *Region) Streaks() iter.Seq[Streak] {
	return func(yield func(Streak) bool) {
		for _, s := range r.streaks {
			if !yield(s) {
				return
			}
		}
	}
}

// Coords iterates every point of the region, streak by streak with x
// increasing within each streak.
func (r *Region) Coords() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for _, s := range r.streaks {
			for x := s.Origin.X; x < s.EndX; x++ {
				if !yield(Coord{X: x, Y: s.Origin.Y, Z: s.Origin.Z}) {
					return
				}
			}
		}
	}
}

// BoundingBox returns the smallest box containing the region. An empty
// region yields an empty box at the origin.
func (r *Region) BoundingBox() CoordBox {
	if len(r.streaks) == 0 {
		return CoordBox{Rank: r.Rank(), Size: Coord{}}
	}
	lo := r.streaks[0].Origin
	hi := Coord{X: r.streaks[0].EndX - 1, Y: lo.Y, Z: lo.Z}
	for _, s := range r.streaks[1:] {
		lo = lo.Min(s.Origin)
		hi = hi.Max(Coord{X: s.EndX - 1, Y: s.Origin.Y, Z: s.Origin.Z})
	}
	b, _ := NewCoordBox(lo, hi.Sub(lo).Add(Diagonal(r.Rank(), 1)), r.Rank())
	return b
}

func (r *Region) String() string {
	var sb strings.Builder
	sb.WriteString("Region(")
	for i, s := range r.streaks {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", s)
	}
	sb.WriteString(")")
	return sb.String()
}
