package libribbon

import (
	"sort"

	"github.com/2x3systems/ribbon/ribbon"
)

// Identity returns the identity permutation on n arrows.
func Identity(n int) ribbon.Perm {
	p := make(ribbon.Perm, n)
	for i := range p {
		p[i] = ribbon.ArrowID(i)
	}
	return p
}

// Compose returns h where h(a) = g(f(a)) for every arrow a.
func Compose(f, g ribbon.Perm) ribbon.Perm {
	h := make(ribbon.Perm, len(f))
	ComposeInto(h, f, g)
	return h
}

// ComposeInto is Compose writing into dst, which must have the length of f.
func ComposeInto(dst, f, g ribbon.Perm) {
	for a, fa := range f {
		dst[a] = g[fa]
	}
}

// CountCycles returns the number of disjoint cycles of p.
// visited is scratch of at least len(p) entries (or nil); its contents are overwritten.
func CountCycles(p ribbon.Perm, visited []bool) int {
	visited = resetVisited(visited, len(p))

	cycles := 0
	for seed := range p {
		if visited[seed] {
			continue
		}
		cycles++
		for a := ribbon.ArrowID(seed); !visited[a]; a = p[a] {
			visited[a] = true
		}
	}
	return cycles
}

// AppendCycleType appends the cycle lengths of p to out, sorted in descending order.
func AppendCycleType(out ribbon.FaceType, p ribbon.Perm, visited []bool) ribbon.FaceType {
	visited = resetVisited(visited, len(p))

	start := len(out)
	for seed := range p {
		if visited[seed] {
			continue
		}
		n := 0
		for a := ribbon.ArrowID(seed); !visited[a]; a = p[a] {
			visited[a] = true
			n++
		}
		out = append(out, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out[start:])))
	return out
}

func resetVisited(visited []bool, n int) []bool {
	if cap(visited) < n {
		return make([]bool, n)
	}
	visited = visited[:n]
	for i := range visited {
		visited[i] = false
	}
	return visited
}

// IsPerm returns true if p is a bijection on [0, len(p)).
func IsPerm(p ribbon.Perm) bool {
	seen := make([]bool, len(p))
	for _, a := range p {
		if a < 0 || int(a) >= len(p) || seen[a] {
			return false
		}
		seen[a] = true
	}
	return true
}

// IsPairing returns true if p is a fixed-point-free involution.
func IsPairing(p ribbon.Perm) bool {
	for a, b := range p {
		if b < 0 || int(b) >= len(p) || int(b) == a || int(p[b]) != a {
			return false
		}
	}
	return true
}

// PairingCount returns (n-1)!!, the number of perfect matchings on n arrows (0 if n is odd).
func PairingCount(n int) uint64 {
	if n%2 != 0 || n < 0 {
		return 0
	}
	count := uint64(1)
	for k := n - 1; k > 1; k -= 2 {
		count *= uint64(k)
	}
	return count
}
