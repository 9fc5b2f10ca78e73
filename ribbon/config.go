package ribbon

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// RegularConfig returns the rotation system of the original counting program:
// numVertices vertices of the given degree, where vertex v owns arrows degree*v .. degree*v+degree-1 in ascending cyclic order.
func RegularConfig(numVertices, degree, maxGenus int) Config {
	cfg := Config{
		Arrows:   numVertices * degree,
		Vertices: make(Rotation, numVertices),
		MaxGenus: maxGenus,
	}
	for v := 0; v < numVertices; v++ {
		seq := make([]ArrowID, degree)
		for i := range seq {
			seq[i] = ArrowID(degree*v + i)
		}
		cfg.Vertices[v] = seq
	}
	return cfg
}

// NumVertices returns the number of vertices of the rotation system.
func (cfg *Config) NumVertices() int {
	return len(cfg.Vertices)
}

// NumEdges returns the number of edges every pairing places.
func (cfg *Config) NumEdges() int {
	return cfg.Arrows / 2
}

// GenusBound returns the largest genus any connected embedding of this vertex structure can reach.
//
// With F >= 1, the Euler characteristic V - E + F is at least V - E + 1.
func (cfg *Config) GenusBound() int {
	g := (cfg.NumEdges() - cfg.NumVertices() + 1) / 2
	if g < 0 {
		g = 0
	}
	return g
}

// Validate checks the shape of a Config: arrow count, genus bound, and that every listed arrow is in range.
// Whether the vertices partition the arrow universe is checked when the vertex map is built.
func (cfg *Config) Validate() error {
	if cfg.Arrows < 2 || cfg.Arrows%2 != 0 {
		return errors.Wrapf(ErrBadArrowCount, "got %d", cfg.Arrows)
	}
	if cfg.Arrows > MaxArrows {
		return errors.Wrapf(ErrTooManyArrows, "got %d, max %d", cfg.Arrows, MaxArrows)
	}
	if cfg.MaxGenus < 0 {
		return errors.Wrapf(ErrBadMaxGenus, "got %d", cfg.MaxGenus)
	}
	if len(cfg.Vertices) == 0 {
		return ErrNoVertices
	}
	for vi, seq := range cfg.Vertices {
		if len(seq) == 0 {
			return errors.Wrapf(ErrEmptyVertex, "vertex %d", vi)
		}
		for _, a := range seq {
			if a < 0 || int(a) >= cfg.Arrows {
				return errors.Wrapf(ErrArrowOutOfRange, "vertex %d lists arrow %d (arrow count %d)", vi, a, cfg.Arrows)
			}
		}
	}
	return nil
}

// Clone returns a deep copy of this Config.
func (cfg *Config) Clone() Config {
	dup := *cfg
	dup.Vertices = make(Rotation, len(cfg.Vertices))
	for i, seq := range cfg.Vertices {
		dup.Vertices[i] = append([]ArrowID(nil), seq...)
	}
	return dup
}

// String returns the rotation in cycle notation, e.g. "(0 1 2 3)(4 5 6 7)".
func (rot Rotation) String() string {
	b := strings.Builder{}
	for _, seq := range rot {
		b.WriteByte('(')
		for i, a := range seq {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(int(a)))
		}
		b.WriteByte(')')
	}
	return b.String()
}

// NumArrows returns the total number of arrows listed over all vertices.
func (rot Rotation) NumArrows() int {
	n := 0
	for _, seq := range rot {
		n += len(seq)
	}
	return n
}
