package ribbon

import (
	"time"
)

const (

	// MaxArrows is the largest arrow universe a Config may declare.
	// The search visits (MaxArrows-1)!! pairings, so in practice far smaller values are used.
	MaxArrows = 64
)

// ArrowID is a zero-based index that identifies a half-edge ("arrow") in [0, ArrowCount).
type ArrowID int

// VtxID is a zero-based index that identifies a vertex in [0, VertexCount).
type VtxID int

// Perm is a total function on the arrow universe, indexed by ArrowID.
type Perm []ArrowID

// Rotation lists, for each vertex, its incident arrows in cyclic order.
type Rotation [][]ArrowID

// Config is the static input of a census: the arrow universe, its rotation system and the genus bound.
type Config struct {
	Arrows   int      // number of arrows (even, >= 2)
	Vertices Rotation // arrows around each vertex in cyclic order
	MaxGenus int      // histogram covers genus 0..MaxGenus
}

// GenusHistogram holds the number of connected embeddings per genus, indexed by genus.
type GenusHistogram []uint64

// FaceType is the multiset of face lengths of an embedding, sorted in descending order.
// The entries always sum to the arrow count.
type FaceType []int

// FaceTypeCount is the number of connected embeddings of a given genus and FaceType.
type FaceTypeCount struct {
	Genus int
	Faces FaceType
	Count uint64
}

// Census is the result of enumerating every pairing of a Config.
type Census struct {
	Histogram GenusHistogram  // connected embeddings binned by genus
	Pairings  uint64          // pairings visited, always (Arrows-1)!!
	Connected uint64          // pairings that produced a connected embedding
	FaceTypes []FaceTypeCount // optional, sorted by genus then FaceType
	Elapsed   time.Duration   // wall time of the search
}

// PrintOpts specifies what is printed when writing a Census
type PrintOpts struct {
	Label     string // Prefix label
	Totals    bool   // If set, prints the pairing and connected totals
	FaceTypes bool   // If set, prints the face type tally
	Elapsed   bool   // If set, prints the running time
}

// DefaultPrintOpts prints the histogram and totals.
var DefaultPrintOpts = PrintOpts{
	Totals: true,
}

// CatalogOpts specifies params for opening a Catalog
type CatalogOpts struct {
	DbPathName string // omit for in-memory db
	ReadOnly   bool   // open in read-only mode
}

// CatalogEntry pairs a Config with the Census computed for it.
type CatalogEntry struct {
	Config Config
	Census Census
}

// OnCatalogHit is used to return catalog entries.
// Ownership of each entry travels through the channel.
type OnCatalogHit chan<- *CatalogEntry

// Catalog wraps a database of computed censuses keyed by Config.
type Catalog interface {

	// Returns true if this catalog was opened for read-only access.
	IsReadOnly() bool

	// Get returns the stored Census for the given Config or ErrNotFound.
	Get(cfg *Config) (*Census, error)

	// Put stores (or replaces) the Census for the given Config.
	Put(cfg *Config, census *Census) error

	// NumEntries returns the number of stored censuses.
	NumEntries() int64

	// Select sends every stored entry to onHit.  The caller closes onHit after Select returns.
	Select(onHit OnCatalogHit) error

	Close() error
}
