// Copyright 2026 libgeodecomp-go Authors. SPDX-License-Identifier: Apache-2.0

package geom

import "errors"

// ErrInvalidGeometry indicates a box with a negative extent or an
// unsupported rank. Empty streaks are not errors; Region.Insert ignores
// them.
var ErrInvalidGeometry = errors.New("geom: invalid geometry")
