package catalog

import (
	"time"

	"github.com/2x3systems/ribbon/ribbon"
	"github.com/gogo/protobuf/proto"
	"github.com/pkg/errors"
)

/***

Catalog database format (all integers are protobuf varints):

	gCatalogStateKey => MajorVers, MinorVers, NumEntries

	gCensusPrefix, Arrows, MaxGenus, NumVertices, [len(seq), seq...]...
		=> Pairings, Connected, ElapsedNanos,
		   len(Histogram), Histogram...,
		   len(FaceTypes), [Genus, len(Faces), Faces..., Count]...

Keys follow the Config exactly, so two rotation systems that differ only by relabeling are stored separately.

***/

var (
	gCatalogStateKey = []byte{0x00, 0x00, 0x01}
	gCensusPrefix    = []byte{0x01}
)

type catalogState struct {
	MajorVers  uint64
	MinorVers  uint64
	NumEntries uint64
}

func (state *catalogState) Marshal() ([]byte, error) {
	buf := proto.NewBuffer(make([]byte, 0, 16))
	for _, x := range []uint64{state.MajorVers, state.MinorVers, state.NumEntries} {
		if err := buf.EncodeVarint(x); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func (state *catalogState) Unmarshal(data []byte) error {
	buf := proto.NewBuffer(data)
	for _, x := range []*uint64{&state.MajorVers, &state.MinorVers, &state.NumEntries} {
		var err error
		if *x, err = buf.DecodeVarint(); err != nil {
			return errors.Wrap(ribbon.ErrBadEncoding, "catalog state")
		}
	}
	return nil
}

// appendConfigKey appends the catalog key of cfg to out.
func appendConfigKey(out []byte, cfg *ribbon.Config) []byte {
	buf := proto.NewBuffer(append(out, gCensusPrefix...))
	buf.EncodeVarint(uint64(cfg.Arrows))
	buf.EncodeVarint(uint64(cfg.MaxGenus))
	buf.EncodeVarint(uint64(len(cfg.Vertices)))
	for _, seq := range cfg.Vertices {
		buf.EncodeVarint(uint64(len(seq)))
		for _, a := range seq {
			buf.EncodeVarint(uint64(a))
		}
	}
	return buf.Bytes()
}

// varintReader reads successive varints and keeps the first error.
type varintReader struct {
	buf *proto.Buffer
	err error
}

func (r *varintReader) next() uint64 {
	if r.err != nil {
		return 0
	}
	x, err := r.buf.DecodeVarint()
	if err != nil {
		r.err = err
	}
	return x
}

// nextLen reads a count and checks it against a sanity bound.
func (r *varintReader) nextLen(max int) int {
	n := r.next()
	if r.err == nil && n > uint64(max) {
		r.err = errors.Errorf("length %d exceeds %d", n, max)
		return 0
	}
	return int(n)
}

func decodeConfigKey(key []byte) (ribbon.Config, error) {
	var cfg ribbon.Config
	if len(key) < len(gCensusPrefix) {
		return cfg, ribbon.ErrBadEncoding
	}

	r := varintReader{buf: proto.NewBuffer(key[len(gCensusPrefix):])}
	cfg.Arrows = r.nextLen(ribbon.MaxArrows)
	cfg.MaxGenus = int(r.next())
	cfg.Vertices = make(ribbon.Rotation, r.nextLen(ribbon.MaxArrows))
	for vi := range cfg.Vertices {
		seq := make([]ribbon.ArrowID, r.nextLen(ribbon.MaxArrows))
		for i := range seq {
			seq[i] = ribbon.ArrowID(r.next())
		}
		cfg.Vertices[vi] = seq
	}

	if r.err != nil {
		return ribbon.Config{}, errors.Wrapf(ribbon.ErrBadEncoding, "census key: %v", r.err)
	}
	return cfg, nil
}

func marshalCensus(census *ribbon.Census) []byte {
	buf := proto.NewBuffer(make([]byte, 0, 64))
	buf.EncodeVarint(census.Pairings)
	buf.EncodeVarint(census.Connected)
	buf.EncodeVarint(uint64(census.Elapsed))

	buf.EncodeVarint(uint64(len(census.Histogram)))
	for _, n := range census.Histogram {
		buf.EncodeVarint(n)
	}

	buf.EncodeVarint(uint64(len(census.FaceTypes)))
	for _, ft := range census.FaceTypes {
		buf.EncodeVarint(uint64(ft.Genus))
		buf.EncodeVarint(uint64(len(ft.Faces)))
		for _, fi := range ft.Faces {
			buf.EncodeVarint(uint64(fi))
		}
		buf.EncodeVarint(ft.Count)
	}
	return buf.Bytes()
}

func unmarshalCensus(data []byte) (*ribbon.Census, error) {
	r := varintReader{buf: proto.NewBuffer(data)}
	census := &ribbon.Census{}
	census.Pairings = r.next()
	census.Connected = r.next()
	census.Elapsed = time.Duration(r.next())

	census.Histogram = make(ribbon.GenusHistogram, r.nextLen(len(data)))
	for g := range census.Histogram {
		census.Histogram[g] = r.next()
	}

	if n := r.nextLen(len(data)); n > 0 {
		census.FaceTypes = make([]ribbon.FaceTypeCount, n)
		for i := range census.FaceTypes {
			ft := &census.FaceTypes[i]
			ft.Genus = int(r.next())
			ft.Faces = make(ribbon.FaceType, r.nextLen(ribbon.MaxArrows))
			for j := range ft.Faces {
				ft.Faces[j] = int(r.next())
			}
			ft.Count = r.next()
		}
	}

	if r.err != nil {
		return nil, errors.Wrapf(ribbon.ErrBadEncoding, "census value: %v", r.err)
	}
	return census, nil
}
