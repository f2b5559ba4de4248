// SPDX-License-Identifier: MIT

// Package rowsketch reduces a matrix to a set of exemplar rows with member
// counts, in one pass.
//
// Each row joins the first exemplar found within the radius, visiting
// exemplars in a random order, or becomes an exemplar itself. The result is
// a weighted row sample: exemplars stand for their members, frequencies say
// how many. The radius is chosen from the column count when not given.
package rowsketch
