package libribbon

import (
	"github.com/2x3systems/ribbon/ribbon"
	"github.com/emirpasic/gods/trees/redblacktree"
)

type faceTypeKey struct {
	genus int
	faces ribbon.FaceType
}

func faceTypeKeyComparator(a, b interface{}) int {
	A := a.(faceTypeKey)
	B := b.(faceTypeKey)
	if d := A.genus - B.genus; d != 0 {
		return d
	}
	return A.faces.Compare(B.faces)
}

// FaceTypeTally counts embeddings per (genus, FaceType), kept in ascending order.
type FaceTypeTally struct {
	tree *redblacktree.Tree
}

func NewFaceTypeTally() *FaceTypeTally {
	return &FaceTypeTally{
		tree: redblacktree.NewWith(faceTypeKeyComparator),
	}
}

// Add increments the count for the given genus and face type.  faces is copied if it is new.
func (tally *FaceTypeTally) Add(genus int, faces ribbon.FaceType) {
	key := faceTypeKey{genus, faces}
	if val, found := tally.tree.Get(key); found {
		*val.(*uint64) += 1
		return
	}
	count := uint64(1)
	key.faces = append(ribbon.FaceType(nil), faces...)
	tally.tree.Put(key, &count)
}

// Len returns the number of distinct (genus, FaceType) entries.
func (tally *FaceTypeTally) Len() int {
	return tally.tree.Size()
}

// Counts exports the tally sorted by genus then FaceType.
func (tally *FaceTypeTally) Counts() []ribbon.FaceTypeCount {
	counts := make([]ribbon.FaceTypeCount, 0, tally.tree.Size())
	it := tally.tree.Iterator()
	for it.Next() {
		key := it.Key().(faceTypeKey)
		counts = append(counts, ribbon.FaceTypeCount{
			Genus: key.genus,
			Faces: key.faces,
			Count: *it.Value().(*uint64),
		})
	}
	return counts
}
