package libribbon

import (
	"time"

	"github.com/2x3systems/ribbon/ribbon"
	"github.com/plan-systems/klog"
)

// CensusOpts specifies what is computed besides the genus histogram.
type CensusOpts struct {
	FaceTypes bool // tally face types per genus
}

// TakeCensus enumerates every pairing of cfg's arrows and bins the connected embeddings by genus.
//
// Config errors are returned before any search starts.  A genus beyond cfg.MaxGenus aborts the search and no Census is returned.
//
// The walk is single threaded.  Splitting it at the top level would need one accumulator per worker, merged at the end.
func TakeCensus(cfg *ribbon.Config, opts CensusOpts) (*ribbon.Census, error) {
	startTime := time.Now()

	V, err := BuildVertexMap(cfg)
	if err != nil {
		return nil, err
	}

	acc := NewGenusAccumulator(V, cfg.MaxGenus, opts.FaceTypes)
	pairings, err := EnumPairings(cfg.Arrows, acc.Add)
	if err != nil {
		return nil, err
	}

	census := &ribbon.Census{
		Histogram: acc.Histogram,
		Pairings:  pairings,
		Connected: acc.Connected,
		FaceTypes: acc.FaceTypes(),
		Elapsed:   time.Since(startTime),
	}

	klog.V(2).Infof("census %v: %d pairings, %d connected, %v", cfg.Vertices, census.Pairings, census.Connected, census.Elapsed)
	return census, nil
}
