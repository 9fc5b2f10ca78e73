package libribbon

import (
	"github.com/2x3systems/ribbon/ribbon"
)

// Brute force reference used to cross-check the engine.  It shares no code with it.

// refMatchings returns every perfect matching of arrows, built by removing an arbitrary pair at a time.
func refMatchings(arrows []int) [][][2]int {
	if len(arrows) == 0 {
		return [][][2]int{nil}
	}
	var out [][][2]int
	last := arrows[len(arrows)-1]
	for i := 0; i < len(arrows)-1; i++ {
		rest := make([]int, 0, len(arrows)-2)
		rest = append(rest, arrows[:i]...)
		rest = append(rest, arrows[i+1:len(arrows)-1]...)
		for _, m := range refMatchings(rest) {
			out = append(out, append([][2]int{{arrows[i], last}}, m...))
		}
	}
	return out
}

func refFind(parent []int, x int) int {
	for parent[x] != x {
		parent[x] = parent[parent[x]]
		x = parent[x]
	}
	return x
}

// refConnected joins vertices with a union-find over the matched pairs.
func refConnected(rot ribbon.Rotation, owner map[int]int, m [][2]int) bool {
	parent := make([]int, len(rot))
	for i := range parent {
		parent[i] = i
	}
	for _, pair := range m {
		ra, rb := refFind(parent, owner[pair[0]]), refFind(parent, owner[pair[1]])
		parent[ra] = rb
	}
	root := refFind(parent, 0)
	for v := range rot {
		if refFind(parent, v) != root {
			return false
		}
	}
	return true
}

// refHistogram bins connected matchings by genus, counting faces as orbits of a -> edge(next(a)),
// which is conjugate to the face permutation used by the engine.
func refHistogram(rot ribbon.Rotation, maxGenus int) (hist []uint64, total int) {
	next := map[int]int{}
	owner := map[int]int{}
	var arrows []int
	for vi, seq := range rot {
		for i, a := range seq {
			next[int(a)] = int(seq[(i+1)%len(seq)])
			owner[int(a)] = vi
			arrows = append(arrows, int(a))
		}
	}

	hist = make([]uint64, maxGenus+1)
	for _, m := range refMatchings(arrows) {
		total++
		if !refConnected(rot, owner, m) {
			continue
		}
		edge := map[int]int{}
		for _, pair := range m {
			edge[pair[0]] = pair[1]
			edge[pair[1]] = pair[0]
		}
		seen := map[int]bool{}
		faces := 0
		for _, a := range arrows {
			if seen[a] {
				continue
			}
			faces++
			for x := a; !seen[x]; x = edge[next[x]] {
				seen[x] = true
			}
		}
		chi := len(rot) - len(arrows)/2 + faces
		hist[(2-chi)/2]++
	}
	return hist, total
}
