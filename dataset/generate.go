// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/lvsketch/matrix"
)

// Kind names a synthetic dataset shape.
type Kind string

const (
	// KindCluster puts nine Gaussian blobs in columns 3 and 4.
	KindCluster Kind = "cluster"
	// KindDonut puts a noisy unit circle in columns 3 and 4.
	KindDonut Kind = "donut"
	// KindOutlier correlates columns 3 and 4 and plants row 0 at (6, -6).
	KindOutlier Kind = "outlier"
	// KindOutlier2D correlates columns 0 and 1 and plants row 0 at (0.6, -0.6).
	KindOutlier2D Kind = "outlier2D"
	// KindInlier2D is a noisy unit circle in columns 0 and 1 with row 0 at the origin.
	KindInlier2D Kind = "inlier2D"
	// KindSwiss is a swiss roll in columns 0..2 with standard normal columns after.
	KindSwiss Kind = "swiss"
)

// Kinds lists every supported Kind.
var Kinds = []Kind{KindCluster, KindDonut, KindOutlier, KindOutlier2D, KindInlier2D, KindSwiss}

const (
	noiseScale  = 0.1
	correlation = 0.8
	ringRadius  = 1.0
	swissStep   = 0.004 * math.Pi
)

var (
	clusterX = [3]float64{-2, 0, 2}
	clusterY = [3]float64{-2, 2, -2}
)

// minCols is the narrowest matrix each kind can be drawn into.
var minCols = map[Kind]int{
	KindCluster:   5,
	KindDonut:     5,
	KindOutlier:   5,
	KindOutlier2D: 2,
	KindInlier2D:  2,
	KindSwiss:     3,
}

// Generate draws a rows×cols synthetic dataset of the given kind. Every
// column not shaped by the kind is N(0, 0.1²) noise. Output is deterministic
// for a fixed seed (DefaultSeed unless WithSeed or WithRand is given).
//
// Errors:
//   - ErrUnknownKind; ErrShape when rows < 1 or cols is below the kind's minimum.
func Generate(kind Kind, rows, cols int, opts ...Option) (*MemorySource, error) {
	need, ok := minCols[kind]
	if !ok {
		return nil, fmt.Errorf("generate %q: %w", kind, ErrUnknownKind)
	}
	if rows < 1 || cols < need {
		return nil, fmt.Errorf("generate %s: %dx%d, need at least 1x%d: %w", kind, rows, cols, need, ErrShape)
	}
	cfg := newConfig(opts...)
	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}

	rng := cfg.rng
	data := m.RawData()
	for i := 0; i < rows; i++ {
		row := data[i*cols : (i+1)*cols]
		for j := range row {
			row[j] = rng.NormFloat64() * noiseScale
		}
		shapeRow(kind, row, i, rows, rng)
	}

	return newMemorySource(m, nil, cfg.normalize)
}

func shapeRow(kind Kind, row []float64, i, rows int, rng *rand.Rand) {
	theta := 2 * math.Pi * float64(i) / float64(rows)
	switch kind {
	case KindCluster:
		row[3] += clusterX[rng.Intn(3)]
		row[4] += clusterY[rng.Intn(3)]
	case KindDonut:
		row[3] += ringRadius * math.Cos(theta)
		row[4] += ringRadius * math.Sin(theta)
	case KindOutlier:
		if i == 0 {
			row[3], row[4] = 6, -6
			return
		}
		row[3], row[4] = correlated(rng)
	case KindOutlier2D:
		if i == 0 {
			row[0], row[1] = 0.6, -0.6
			return
		}
		x, y := correlated(rng)
		row[0], row[1] = x*noiseScale, y*noiseScale
	case KindInlier2D:
		if i == 0 {
			row[0], row[1] = 0, 0
			return
		}
		row[0] += ringRadius * math.Cos(theta)
		row[1] += ringRadius * math.Sin(theta)
	case KindSwiss:
		t := swissStep * float64(i)
		row[0] = t * math.Cos(t)
		row[1] = t * math.Sin(t)
		row[2] = row[1] + 6*(rng.Float64()-0.5)
		for j := 3; j < len(row); j++ {
			row[j] /= noiseScale
		}
	}
}

// correlated returns a standard normal pair with correlation 0.8.
func correlated(rng *rand.Rand) (x, y float64) {
	x = rng.NormFloat64()
	y = correlation*x + math.Sqrt(1-correlation*correlation)*rng.NormFloat64()

	return x, y
}

// ParseKind resolves a kind name; the match is case-sensitive.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := minCols[k]; !ok {
		return "", fmt.Errorf("%q: %w", s, ErrUnknownKind)
	}

	return k, nil
}
