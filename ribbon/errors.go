package ribbon

import "errors"

// Errors
var (
	ErrBadArrowCount      = errors.New("arrow count must be even and at least 2")
	ErrTooManyArrows      = errors.New("arrow count exceeds MaxArrows")
	ErrArrowOutOfRange    = errors.New("arrow ID out of range")
	ErrArrowMissing       = errors.New("arrow is not incident to any vertex")
	ErrArrowDuplicated    = errors.New("arrow is incident to more than one vertex")
	ErrEmptyVertex        = errors.New("vertex has no arrows")
	ErrNoVertices         = errors.New("no vertices")
	ErrBadMaxGenus        = errors.New("max genus must be non-negative")
	ErrGenusBoundExceeded = errors.New("genus exceeds the configured max genus")
	ErrOddEuler           = errors.New("2 - euler characteristic is odd or negative")
	ErrBadConfig          = errors.New("bad config")
	ErrBadRotationExpr    = errors.New("bad rotation expression")
	ErrCatalogReadOnly    = errors.New("catalog is read-only")
	ErrNotFound           = errors.New("not found")
	ErrBadEncoding        = errors.New("bad catalog encoding")
)
