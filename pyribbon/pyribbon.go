package pyribbon

import (
	"strings"

	"github.com/2x3systems/ribbon/libribbon"
	"github.com/2x3systems/ribbon/ribbon"
	"github.com/go-python/gpython/py"
)

var (
	LIB_VERSION = "v1.2026.1"
)

var (
	pyCensusType = py.NewType("Census", "genus census of a rotation system")
)

type pyCensus struct {
	*ribbon.Census
}

func (C pyCensus) Type() *py.Type {
	return pyCensusType
}

func (C pyCensus) M__str__() (py.Object, error) {
	writer := strings.Builder{}
	C.WriteAsString(&writer, ribbon.DefaultPrintOpts)
	return py.String(writer.String()), nil
}

func (C pyCensus) M__repr__() (py.Object, error) {
	return C.M__str__()
}

// takeCensus runs a census for a rotation expression such as "(0 1 2 3)(4 5 6 7)".
func takeCensus(args py.Tuple, opts libribbon.CensusOpts) (*ribbon.Census, error) {
	var exprObj, maxGenusObj py.Object
	err := py.ParseTuple(args, "si", &exprObj, &maxGenusObj)
	if err != nil {
		return nil, err
	}

	rot, err := libribbon.ParseRotation(string(exprObj.(py.String)))
	if err != nil {
		return nil, py.ExceptionNewf(py.ValueError, "%v", err)
	}

	cfg := ribbon.Config{
		Arrows:   rot.NumArrows(),
		Vertices: rot,
		MaxGenus: int(maxGenusObj.(py.Int)),
	}
	census, err := libribbon.TakeCensus(&cfg, opts)
	if err != nil {
		return nil, py.ExceptionNewf(py.ValueError, "%v", err)
	}
	return census, nil
}

func histogramTuple(hist ribbon.GenusHistogram) py.Tuple {
	tuple := make(py.Tuple, len(hist))
	for g, n := range hist {
		tuple[g] = py.Int(n)
	}
	return tuple
}

// Arg 1 (str): rotation expression
// Arg 2 (int): max genus
func py_GenusHistogram(module py.Object, args py.Tuple) (py.Object, error) {
	census, err := takeCensus(args, libribbon.CensusOpts{})
	if err != nil {
		return nil, err
	}
	return histogramTuple(census.Histogram), nil
}

// Arg 1 (str): rotation expression
// Arg 2 (int): max genus
func py_Census(module py.Object, args py.Tuple) (py.Object, error) {
	census, err := takeCensus(args, libribbon.CensusOpts{FaceTypes: true})
	if err != nil {
		return nil, err
	}
	return py.Object(pyCensus{census}), nil
}

func py_Census_Histogram(self py.Object, args py.Tuple) (py.Object, error) {
	C := self.(pyCensus)
	return histogramTuple(C.Histogram), nil
}

func py_Census_Pairings(self py.Object, args py.Tuple) (py.Object, error) {
	C := self.(pyCensus)
	return py.Int(C.Pairings), nil
}

func py_Census_Connected(self py.Object, args py.Tuple) (py.Object, error) {
	C := self.(pyCensus)
	return py.Int(C.Connected), nil
}

// Arg 1 (int): number of arrows
func py_PairingCount(module py.Object, args py.Tuple) (py.Object, error) {
	var nObj py.Object
	err := py.ParseTuple(args, "i", &nObj)
	if err != nil {
		return nil, err
	}
	return py.Int(libribbon.PairingCount(int(nObj.(py.Int)))), nil
}

// Arg 1 (sequence of int): a permutation of 0..N-1
func py_CycleCount(module py.Object, args py.Tuple) (py.Object, error) {
	if len(args) != 1 {
		return nil, py.ExceptionNewf(py.TypeError, "CycleCount() takes exactly 1 argument (%d given)", len(args))
	}

	var items []py.Object
	switch seq := args[0].(type) {
	case py.Tuple:
		items = seq
	case *py.List:
		items = seq.Items
	default:
		return nil, py.ExceptionNewf(py.TypeError, "expected a tuple or list (got %v)", args[0].Type().Name)
	}

	perm := make(ribbon.Perm, len(items))
	for i, item := range items {
		val, err := py.GetInt(item)
		if err != nil {
			return nil, err
		}
		perm[i] = ribbon.ArrowID(val)
	}
	if !libribbon.IsPerm(perm) {
		return nil, py.ExceptionNewf(py.ValueError, "not a permutation: %v", perm)
	}
	return py.Int(libribbon.CountCycles(perm, nil)), nil
}

func init() {

	/////////////////////////////////
	// Census
	{
		pyCensusType.Dict["Histogram"] = py.MustNewMethod("Histogram", py_Census_Histogram, 0, "genus histogram as a tuple")
		pyCensusType.Dict["Pairings"] = py.MustNewMethod("Pairings", py_Census_Pairings, 0, "number of pairings visited")
		pyCensusType.Dict["Connected"] = py.MustNewMethod("Connected", py_Census_Connected, 0, "number of connected embeddings")
	}

	{
		methods := []*py.Method{
			py.MustNewMethod("GenusHistogram", py_GenusHistogram, 0, "GenusHistogram(rotation, max_genus) -> tuple of counts per genus"),
			py.MustNewMethod("Census", py_Census, 0, "Census(rotation, max_genus) -> Census"),
			py.MustNewMethod("PairingCount", py_PairingCount, 0, "PairingCount(arrows) -> (arrows-1)!!"),
			py.MustNewMethod("CycleCount", py_CycleCount, 0, "CycleCount(perm) -> number of cycles"),
		}

		globals := py.StringDict{
			"LIB_VERSION": py.String(LIB_VERSION),
			"MAX_ARROWS":  py.Int(ribbon.MaxArrows),
		}

		py.RegisterModule(&py.ModuleImpl{
			Info: py.ModuleInfo{
				Name: "_pyribbon",
				Doc:  "ribbon graph genus census gpython module",
			},
			Methods: methods,
			Globals: globals,
		})
	}
}
