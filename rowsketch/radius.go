// SPDX-License-Identifier: MIT

package rowsketch

import "math"

// AutoRadius returns a ball radius for d-dimensional data in the unit cube,
// from a coverage estimate for random points: rsq = d/6 − 1.744·sqrt(7d/180),
// radius = 0.5·sqrt(rsq). For small d, where rsq < 0, it falls back to
// 0.5 / 100^(1/d).
func AutoRadius(d int) float64 {
	fd := float64(d)
	rsq := fd/6 - 1.744*math.Sqrt(7*fd/180)
	radius := 0.5 * math.Sqrt(rsq)
	if math.IsNaN(radius) {
		radius = 0.5 / math.Pow(100, 1/fd)
	}

	return radius
}
