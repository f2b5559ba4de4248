// SPDX-License-Identifier: MIT

package sampling

// fenwick is a binary-indexed tree of masses (1-based internally).
type fenwick struct {
	tree []float64
	top  int // highest power of two <= n
}

// newFenwick builds the tree in O(n) by pushing each node into its parent.
func newFenwick(p []float64) *fenwick {
	n := len(p)
	f := &fenwick{tree: make([]float64, n+1), top: 1}
	copy(f.tree[1:], p)
	for i := 1; i <= n; i++ {
		if parent := i + (i & -i); parent <= n {
			f.tree[parent] += f.tree[i]
		}
	}
	for f.top*2 <= n {
		f.top *= 2
	}

	return f
}

// add adds delta to the mass at 0-based index i.
func (f *fenwick) add(i int, delta float64) {
	for i++; i < len(f.tree); i += i & -i {
		f.tree[i] += delta
	}
}

// total returns the sum of all masses.
func (f *fenwick) total() float64 {
	var s float64
	for i := len(f.tree) - 1; i > 0; i -= i & -i {
		s += f.tree[i]
	}

	return s
}

// search returns the smallest 0-based index whose prefix sum exceeds r.
// Returns n when r >= total (only possible through rounding).
func (f *fenwick) search(r float64) int {
	pos := 0
	for step := f.top; step > 0; step >>= 1 {
		next := pos + step
		if next < len(f.tree) && f.tree[next] <= r {
			pos = next
			r -= f.tree[next]
		}
	}

	return pos
}
