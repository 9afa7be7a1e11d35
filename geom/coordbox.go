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
)

// CoordBox is an axis-aligned box of lattice points: origin plus extent.
// Rank selects how many axes participate (1, 2 or 3); the extent of unused
// axes is normalized to 1 so that volume computations stay uniform.
type CoordBox struct {
	Origin Coord
	Size   Coord
	Rank   int
}

// NewCoordBox validates and constructs a box. Negative extents along any
// active axis yield ErrInvalidGeometry. An extent of zero is legal and
// produces an empty box.
func NewCoordBox(origin, size Coord, rank int) (CoordBox, error) {
	if rank < 1 || rank > 3 {
		return CoordBox{}, fmt.Errorf("%w: rank %d", ErrInvalidGeometry, rank)
	}
	b := CoordBox{Origin: origin, Size: size, Rank: rank}
	if rank < 2 {
		b.Size.Y = 1
		b.Origin.Y = 0
	}
	if rank < 3 {
		b.Size.Z = 1
		b.Origin.Z = 0
	}
	if b.Size.X < 0 || b.Size.Y < 0 || b.Size.Z < 0 {
		return CoordBox{}, fmt.Errorf("%w: negative box size %v", ErrInvalidGeometry, size)
	}
	return b, nil
}

// Box1D constructs a 1-D box [originX, originX+dimX). It panics on a
// negative extent; use NewCoordBox to get an error instead.
func Box1D(originX, dimX int) CoordBox {
	b, err := NewCoordBox(Coord{X: originX}, Coord{X: dimX}, 1)
	if err != nil {
		panic(err)
	}
	return b
}

// Volume returns the number of lattice points inside the box.
func (b CoordBox) Volume() int {
	return b.Size.X * b.normY() * b.normZ()
}

func (b CoordBox) normY() int {
	if b.Rank < 2 {
		return 1
	}
	return b.Size.Y
}

func (b CoordBox) normZ() int {
	if b.Rank < 3 {
		return 1
	}
	return b.Size.Z
}

// Contains reports whether c lies inside the box.
func (b CoordBox) Contains(c Coord) bool {
	if c.X < b.Origin.X || c.X >= b.Origin.X+b.Size.X {
		return false
	}
	if b.Rank >= 2 && (c.Y < b.Origin.Y || c.Y >= b.Origin.Y+b.Size.Y) {
		return false
	}
	if b.Rank >= 3 && (c.Z < b.Origin.Z || c.Z >= b.Origin.Z+b.Size.Z) {
		return false
	}
	if b.Rank < 2 && c.Y != 0 {
		return false
	}
	if b.Rank < 3 && c.Z != 0 {
		return false
	}
	return true
}

// Coords iterates all interior points in row-major order, x fastest.
func (b CoordBox) Coords() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for z := b.Origin.Z; z < b.Origin.Z+b.normZ(); z++ {
			for y := b.Origin.Y; y < b.Origin.Y+b.normY(); y++ {
				for x := b.Origin.X; x < b.Origin.X+b.Size.X; x++ {
					if !yield(Coord{X: x, Y: y, Z: z}) {
						return
					}
				}
			}
		}
	}
}

// Streaks iterates the box as one streak per (y, z) row.
func (b CoordBox) Streaks() iter.Seq[Streak] {
	return func(yield func(Streak) bool) {
		if b.Size.X <= 0 {
			return
		}
		for z := b.Origin.Z; z < b.Origin.Z+b.normZ(); z++ {
			for y := b.Origin.Y; y < b.Origin.Y+b.normY(); y++ {
				s := Streak{
					Origin: Coord{X: b.Origin.X, Y: y, Z: z},
					EndX:   b.Origin.X + b.Size.X,
				}
				if !yield(s) {
					return
				}
			}
		}
	}
}

func (b CoordBox) String() string {
	return fmt.Sprintf("CoordBox(origin=%v, size=%v, rank=%d)", b.Origin, b.Size, b.Rank)
}
