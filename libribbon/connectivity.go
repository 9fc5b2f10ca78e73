package libribbon

import (
	"github.com/2x3systems/ribbon/ribbon"
)

type vtxMark byte

const (
	vtxUnseen vtxMark = iota
	vtxFrontier
	vtxDone
)

// connectivity is reusable scratch for IsConnected.
type connectivity struct {
	marks    []vtxMark
	frontier []ribbon.VtxID
}

// IsConnected reports whether the vertices are connected through the edges of edgeMap.
func (V *VertexMap) IsConnected(edgeMap ribbon.Perm) bool {
	var cc connectivity
	return cc.isConnected(V, edgeMap)
}

// isConnected is a mark-and-sweep walk over vertices: vertex 0 starts on the frontier, and each
// frontier vertex is marked done after every partner of its arrows is pushed to the frontier.
func (cc *connectivity) isConnected(V *VertexMap, edgeMap ribbon.Perm) bool {
	Nv := V.NumVertices()
	if cap(cc.marks) < Nv {
		cc.marks = make([]vtxMark, Nv)
	}
	marks := cc.marks[:Nv]
	for i := range marks {
		marks[i] = vtxUnseen
	}

	marks[0] = vtxFrontier
	frontier := append(cc.frontier[:0], 0)
	reached := 1

	for len(frontier) > 0 {
		vi := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		marks[vi] = vtxDone

		for _, a := range V.Rotation[vi] {
			vj := V.Owner[edgeMap[a]]
			if marks[vj] == vtxUnseen {
				marks[vj] = vtxFrontier
				frontier = append(frontier, vj)
				reached++
			}
		}
	}

	cc.frontier = frontier
	return reached == Nv
}
