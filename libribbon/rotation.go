package libribbon

import (
	"github.com/2x3systems/ribbon/ribbon"
	"github.com/pkg/errors"
)

// VertexMap is the rotation system of a Config expressed as a permutation.
// It is built once and is read-only afterwards.
type VertexMap struct {
	Next     ribbon.Perm     // arrow -> next arrow around the same vertex
	Owner    []ribbon.VtxID  // arrow -> the vertex it is incident to
	Rotation ribbon.Rotation // arrows of each vertex in cyclic order
}

// BuildVertexMap validates cfg and derives its vertex map.
//
// Every arrow must appear in exactly one vertex sequence; a missing or repeated arrow is a config error.
func BuildVertexMap(cfg *ribbon.Config) (*VertexMap, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	N := cfg.Arrows
	V := &VertexMap{
		Next:     make(ribbon.Perm, N),
		Owner:    make([]ribbon.VtxID, N),
		Rotation: cfg.Clone().Vertices,
	}
	for i := range V.Owner {
		V.Owner[i] = -1
	}

	for vi, seq := range V.Rotation {
		for i, a := range seq {
			if prev := V.Owner[a]; prev >= 0 {
				return nil, errors.Wrapf(ribbon.ErrArrowDuplicated, "arrow %d appears at vertex %d and vertex %d", a, prev, vi)
			}
			V.Owner[a] = ribbon.VtxID(vi)
			V.Next[a] = seq[(i+1)%len(seq)]
		}
	}

	for a, owner := range V.Owner {
		if owner < 0 {
			return nil, errors.Wrapf(ribbon.ErrArrowMissing, "arrow %d", a)
		}
	}

	return V, nil
}

// NumArrows returns the size of the arrow universe.
func (V *VertexMap) NumArrows() int {
	return len(V.Next)
}

// NumVertices returns the number of vertices (cycles of Next).
func (V *VertexMap) NumVertices() int {
	return len(V.Rotation)
}
