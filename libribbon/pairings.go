package libribbon

import (
	"github.com/2x3systems/ribbon/ribbon"
	"github.com/pkg/errors"
)

// OnPairing is called with each complete edge map.
// edgeMap is reused by the walk, so a callback that retains it must copy it.
type OnPairing func(edgeMap ribbon.Perm) error

// pairingWalker visits every fixed-point-free involution on [0, N) exactly once.
//
// At each depth the smallest unpaired arrow is paired with each other unpaired arrow in turn,
// so the walk is N/2 deep and visits (N-1)!! leaves.
type pairingWalker struct {
	edgeMap   ribbon.Perm
	chooser   [][]ribbon.ArrowID // chooser[d] holds the arrows still unpaired at depth d, ascending
	which     []int              // which[d] is the index into chooser[d] paired with chooser[d][0]
	onPairing OnPairing
	count     uint64
}

// EnumPairings calls onPairing with every pairing of numArrows arrows and returns the number visited.
// The walk stops at the first error returned by onPairing.
func EnumPairings(numArrows int, onPairing OnPairing) (uint64, error) {
	if numArrows < 2 || numArrows%2 != 0 {
		return 0, errors.Wrapf(ribbon.ErrBadArrowCount, "got %d", numArrows)
	}

	depth := numArrows / 2
	w := &pairingWalker{
		edgeMap:   Identity(numArrows),
		chooser:   make([][]ribbon.ArrowID, depth),
		which:     make([]int, depth),
		onPairing: onPairing,
	}
	for d := range w.chooser {
		w.chooser[d] = make([]ribbon.ArrowID, numArrows-2*d)
	}
	copy(w.chooser[0], w.edgeMap)

	err := w.nest(0)
	return w.count, err
}

func (w *pairingWalker) nest(depth int) error {
	cands := w.chooser[depth]
	a := cands[0]

	// The last two arrows are forced
	if len(cands) == 2 {
		b := cands[1]
		w.which[depth] = 1
		w.edgeMap[a], w.edgeMap[b] = b, a
		w.count++
		err := w.onPairing(w.edgeMap)
		w.edgeMap[a], w.edgeMap[b] = a, b
		return err
	}

	next := w.chooser[depth+1]
	for w.which[depth] = 1; w.which[depth] < len(cands); w.which[depth]++ {
		i := w.which[depth]
		b := cands[i]
		w.edgeMap[a], w.edgeMap[b] = b, a

		n := copy(next, cands[1:i])
		copy(next[n:], cands[i+1:])

		err := w.nest(depth + 1)
		w.edgeMap[a], w.edgeMap[b] = a, b
		if err != nil {
			return err
		}
	}
	return nil
}
