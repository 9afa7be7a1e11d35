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

// Package geom provides the integer lattice calculus used throughout the
// simulation engine: points (Coord), half-open row segments (Streak),
// axis-aligned boxes (CoordBox) and sets of lattice points (Region).
//
// A Region stores its points as sorted, non-overlapping, non-adjacent
// Streaks per row, which makes iteration cache-friendly and lets set
// operations (union, intersection, expansion) run on runs instead of
// individual points.
package geom
