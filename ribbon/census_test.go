package ribbon

import (
	"strings"
	"testing"
	"time"
)

func TestWriteAsString(t *testing.T) {
	census := &Census{
		Histogram: GenusHistogram{36, 60, 0},
		Pairings:  105,
		Connected: 96,
		FaceTypes: []FaceTypeCount{
			{Genus: 0, Faces: FaceType{2, 2, 2, 2}, Count: 4},
			{Genus: 1, Faces: FaceType{7, 1}, Count: 32},
		},
		Elapsed: 1500 * time.Millisecond,
	}

	b := strings.Builder{}
	census.WriteAsString(&b, PrintOpts{
		Label:     "two vertices",
		Totals:    true,
		FaceTypes: true,
		Elapsed:   true,
	})

	expect := `two vertices
Genus Counts:
Genus 0 = 36
Genus 1 = 60
Genus 2 = 0
Pairings: 105
Connected: 96
Face Types:
Genus 0 (2 2 2 2) = 4
Genus 1 (7 1) = 32
Running Time: 1.5s
`
	if b.String() != expect {
		t.Fatalf("got:\n%s\nexpected:\n%s", b.String(), expect)
	}

	b.Reset()
	census.WriteAsString(&b, PrintOpts{})
	if !strings.HasPrefix(b.String(), "Genus Counts:\nGenus 0 = 36\n") || strings.Contains(b.String(), "Pairings") {
		t.Fatalf("unexpected output:\n%s", b.String())
	}
}

func TestFaceTypeCompare(t *testing.T) {
	if (FaceType{3, 1}).Compare(FaceType{3, 1}) != 0 {
		t.Fatal("equal face types compare unequal")
	}
	if (FaceType{2, 2, 2}).Compare(FaceType{3, 1}) >= 0 {
		t.Fatal("expected (2 2 2) < (3 1)")
	}
	if (FaceType{3}).Compare(FaceType{3, 1}) >= 0 {
		t.Fatal("expected a prefix to sort first")
	}
	if (GenusHistogram{1, 2}).Total() != 3 {
		t.Fatal("bad histogram total")
	}
}
