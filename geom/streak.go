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

import "fmt"

// Streak is a half-open run of lattice points along the x axis at a fixed
// (y, z) row: {(x, Origin.Y, Origin.Z) : Origin.X <= x < EndX}.
//
// A Streak with EndX <= Origin.X is empty; Region.Insert ignores such
// streaks rather than treating them as an error.
type Streak struct {
	Origin Coord
	EndX   int
}

// NewStreak is a convenience constructor for a 1-D streak [startX, endX).
func NewStreak(startX, endX int) Streak {
	return Streak{Origin: Coord{X: startX}, EndX: endX}
}

// Length returns the number of points in the streak, 0 for empty streaks.
func (s Streak) Length() int {
	if s.EndX <= s.Origin.X {
		return 0
	}
	return s.EndX - s.Origin.X
}

// Contains reports whether c lies on the streak.
func (s Streak) Contains(c Coord) bool {
	return c.Y == s.Origin.Y && c.Z == s.Origin.Z &&
		c.X >= s.Origin.X && c.X < s.EndX
}

func (s Streak) String() string {
	return fmt.Sprintf("Streak(%v -> %d)", s.Origin, s.EndX)
}
