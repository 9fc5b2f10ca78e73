package ribbon

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Total returns the number of embeddings binned in this histogram.
func (hist GenusHistogram) Total() uint64 {
	sum := uint64(0)
	for _, n := range hist {
		sum += n
	}
	return sum
}

// IsEqual returns true if both histograms have the same length and counts.
func (hist GenusHistogram) IsEqual(other GenusHistogram) bool {
	if len(hist) != len(other) {
		return false
	}
	for i, n := range hist {
		if other[i] != n {
			return false
		}
	}
	return true
}

// Compare orders FaceTypes lexicographically.
func (ft FaceType) Compare(other FaceType) int {
	for i, fi := range ft {
		if i == len(other) {
			return 1
		}
		if d := fi - other[i]; d != 0 {
			return d
		}
	}
	if len(ft) < len(other) {
		return -1
	}
	return 0
}

func (ft FaceType) String() string {
	b := strings.Builder{}
	b.WriteByte('(')
	for i, fi := range ft {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(fi))
	}
	b.WriteByte(')')
	return b.String()
}

// WriteAsString prints this Census in the report format:
//
//	Genus Counts:
//	Genus 0 = 36
//	Genus 1 = 60
func (C *Census) WriteAsString(out io.Writer, opts PrintOpts) {
	buf := strings.Builder{}
	buf.Grow(256)

	if len(opts.Label) > 0 {
		buf.WriteString(opts.Label)
		buf.WriteByte('\n')
	}

	buf.WriteString("Genus Counts:\n")
	for g, n := range C.Histogram {
		fmt.Fprintf(&buf, "Genus %d = %d\n", g, n)
	}

	if opts.Totals {
		fmt.Fprintf(&buf, "Pairings: %d\n", C.Pairings)
		fmt.Fprintf(&buf, "Connected: %d\n", C.Connected)
	}

	if opts.FaceTypes && len(C.FaceTypes) > 0 {
		buf.WriteString("Face Types:\n")
		for _, ft := range C.FaceTypes {
			fmt.Fprintf(&buf, "Genus %d %v = %d\n", ft.Genus, ft.Faces, ft.Count)
		}
	}

	if opts.Elapsed {
		fmt.Fprintf(&buf, "Running Time: %v\n", C.Elapsed)
	}

	out.Write([]byte(buf.String()))
}
