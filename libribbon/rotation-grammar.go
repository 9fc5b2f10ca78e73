package libribbon

import (
	"github.com/2x3systems/ribbon/ribbon"
	"github.com/alecthomas/participle/v2"
	"github.com/pkg/errors"
)

// RotationExpr is a rotation system in cycle notation, one cycle per vertex: "(0 1 2 3)(4 5 6 7)".
// Arrows within a cycle may also be separated by commas.
type RotationExpr struct {
	Cycles []*CycleExpr `parser:"@@*"`
}

type CycleExpr struct {
	Arrows []int `parser:"\"(\" ( @Int \",\"? )* \")\""`
}

var parseRotationExpr = participle.MustBuild[RotationExpr]()

// ParseRotation reads a rotation expression.  The result is not validated against an arrow count.
func ParseRotation(expr string) (ribbon.Rotation, error) {
	Rexpr, err := parseRotationExpr.ParseString("", expr)
	if err != nil {
		return nil, errors.Wrapf(ribbon.ErrBadRotationExpr, "%q: %v", expr, err)
	}

	rot := make(ribbon.Rotation, len(Rexpr.Cycles))
	for vi, cycle := range Rexpr.Cycles {
		seq := make([]ribbon.ArrowID, len(cycle.Arrows))
		for i, a := range cycle.Arrows {
			seq[i] = ribbon.ArrowID(a)
		}
		rot[vi] = seq
	}
	return rot, nil
}
