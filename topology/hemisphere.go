// Package topology generates cell connectivity for the mesh shapes vtkgo
// supports. The only shape today is a hemispherical grid of rings and
// sectors with a single apex point.
package topology

import (
	"errors"
	"fmt"
)

// ErrInvalidShape is returned when the ring or sector count cannot describe
// a hemisphere.
var ErrInvalidShape = errors.New("topology: ring and sector counts must be positive")

// Cell is one polygon of a mesh: an ordered list of point indices into the
// points block it decorates.
type Cell []int

// HemispherePointCount returns the number of points a hemisphere with nTheta
// rings and mPhi sectors expects: one apex plus nTheta rings of mPhi points.
func HemispherePointCount(nTheta, mPhi int) int {
	return nTheta*mPhi + 1
}

// HemisphereCellCount returns the number of cells the mesh produces.
func HemisphereCellCount(nTheta, mPhi int) int {
	return nTheta * mPhi
}

// HemisphereTokenCount returns the total connectivity token count of the
// cells: each of the mPhi apex triangles encodes as 4 tokens (vertex count
// plus 3 indices) and each quadrilateral of the remaining nTheta-1 rings as
// 5 tokens.
func HemisphereTokenCount(nTheta, mPhi int) int {
	return mPhi * (4 + 5*(nTheta-1))
}

// Hemisphere generates the closed surface mesh of a hemisphere with nTheta
// rings and mPhi sectors per ring.
//
// Caller contract: the point list the cells index into must be ordered apex
// first (index 0), then ring-major with ascending sectors — indices 1..mPhi
// are the ring closest to the apex, and each following ring continues in the
// same sector order. The generator validates only the counts, never the
// ordering or the geometry.
//
// The first ring is capped to the apex with triangles; every following ring
// is stitched to its predecessor with quadrilaterals. The last sector of each
// ring wraps back to the first, closing the surface.
func Hemisphere(nTheta, mPhi int) ([]Cell, error) {
	if nTheta < 1 || mPhi < 1 {
		return nil, fmt.Errorf("%w: nTheta=%d, mPhi=%d", ErrInvalidShape, nTheta, mPhi)
	}

	cells := make([]Cell, 0, HemisphereCellCount(nTheta, mPhi))

	// Apex cap: one triangle per sector of ring 1.
	for i := 1; i <= mPhi; i++ {
		cells = append(cells, Cell{0, i, i%mPhi + 1})
	}

	// Ring stitching: one quadrilateral per sector, rings 2..nTheta.
	for j := 2; j <= nTheta; j++ {
		for i := 1; i <= mPhi; i++ {
			a := i + (j-2)*mPhi
			b := i + (j-1)*mPhi
			c := b + 1
			d := a + 1
			if i == mPhi {
				// Last sector wraps back to the ring's first sector.
				c -= mPhi
				d -= mPhi
			}
			cells = append(cells, Cell{a, b, c, d})
		}
	}

	return cells, nil
}
