package libribbon

import (
	"github.com/2x3systems/ribbon/ribbon"
	"github.com/pkg/errors"
)

// Genus returns the genus of a connected orientable embedding with Nv vertices, Ne edges and Nf faces.
//
// 2 - (Nv - Ne + Nf) must be even and non-negative, otherwise the vertex structure is malformed.
func Genus(Nv, Ne, Nf int) (int, error) {
	chi := Nv - Ne + Nf
	twiceG := 2 - chi
	if twiceG < 0 || twiceG%2 != 0 {
		return -1, errors.Wrapf(ribbon.ErrOddEuler, "V=%d E=%d F=%d (chi=%d)", Nv, Ne, Nf, chi)
	}
	return twiceG / 2, nil
}

// GenusAccumulator bins connected embeddings by genus.
// Disconnected pairings are dropped silently.
type GenusAccumulator struct {
	Histogram ribbon.GenusHistogram
	Connected uint64

	vtx       *VertexMap
	faceTypes *FaceTypeTally // nil unless face types are tallied
	faces     ribbon.Perm    // face permutation scratch
	visited   []bool
	faceBuf   ribbon.FaceType
	cc        connectivity
}

// NewGenusAccumulator returns an accumulator with a histogram covering genus 0..maxGenus.
func NewGenusAccumulator(V *VertexMap, maxGenus int, tallyFaceTypes bool) *GenusAccumulator {
	N := V.NumArrows()
	acc := &GenusAccumulator{
		Histogram: make(ribbon.GenusHistogram, maxGenus+1),
		vtx:       V,
		faces:     make(ribbon.Perm, N),
		visited:   make([]bool, N),
		faceBuf:   make(ribbon.FaceType, 0, N),
	}
	if tallyFaceTypes {
		acc.faceTypes = NewFaceTypeTally()
	}
	return acc
}

// Add bins the embedding given by edgeMap, which must be a complete pairing.
func (acc *GenusAccumulator) Add(edgeMap ribbon.Perm) error {
	if !acc.cc.isConnected(acc.vtx, edgeMap) {
		return nil
	}

	ComposeInto(acc.faces, edgeMap, acc.vtx.Next)

	var Nf int
	if acc.faceTypes != nil {
		acc.faceBuf = AppendCycleType(acc.faceBuf[:0], acc.faces, acc.visited)
		Nf = len(acc.faceBuf)
	} else {
		Nf = CountCycles(acc.faces, acc.visited)
	}

	g, err := Genus(acc.vtx.NumVertices(), acc.vtx.NumArrows()/2, Nf)
	if err != nil {
		return err
	}
	if g >= len(acc.Histogram) {
		return errors.Wrapf(ribbon.ErrGenusBoundExceeded, "genus %d, max genus %d", g, len(acc.Histogram)-1)
	}

	acc.Histogram[g]++
	acc.Connected++
	if acc.faceTypes != nil {
		acc.faceTypes.Add(g, acc.faceBuf)
	}
	return nil
}

// FaceTypes returns the face type tally, or nil if face types are not tallied.
func (acc *GenusAccumulator) FaceTypes() []ribbon.FaceTypeCount {
	if acc.faceTypes == nil {
		return nil
	}
	return acc.faceTypes.Counts()
}
