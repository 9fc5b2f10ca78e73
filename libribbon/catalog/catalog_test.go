package catalog_test

import (
	"errors"
	"path"
	"testing"

	"github.com/2x3systems/ribbon/libribbon"
	"github.com/2x3systems/ribbon/libribbon/catalog"
	"github.com/2x3systems/ribbon/ribbon"
)

func takeCensus(t *testing.T, cfg ribbon.Config) *ribbon.Census {
	census, err := libribbon.TakeCensus(&cfg, libribbon.CensusOpts{FaceTypes: true})
	if err != nil {
		t.Fatal(err)
	}
	return census
}

func checkCensus(t *testing.T, got, want *ribbon.Census) {
	if got.Pairings != want.Pairings || got.Connected != want.Connected || got.Elapsed != want.Elapsed {
		t.Fatalf("totals differ: got %+v, expected %+v", got, want)
	}
	if !got.Histogram.IsEqual(want.Histogram) {
		t.Fatalf("histogram differs: got %v, expected %v", got.Histogram, want.Histogram)
	}
	if len(got.FaceTypes) != len(want.FaceTypes) {
		t.Fatalf("face types differ: got %v, expected %v", got.FaceTypes, want.FaceTypes)
	}
	for i, ft := range got.FaceTypes {
		if ft.Genus != want.FaceTypes[i].Genus || ft.Count != want.FaceTypes[i].Count || ft.Faces.Compare(want.FaceTypes[i].Faces) != 0 {
			t.Fatalf("face type %d differs: got %+v, expected %+v", i, ft, want.FaceTypes[i])
		}
	}
}

func TestBasics(t *testing.T) {
	cat, err := catalog.OpenCatalog(ribbon.CatalogOpts{})
	if err != nil {
		t.Fatal(err)
	}
	defer cat.Close()

	cfgA := ribbon.RegularConfig(2, 4, 1)
	cfgB := ribbon.Config{Arrows: 6, Vertices: ribbon.Rotation{{0, 1, 2}, {3, 4, 5}}, MaxGenus: 1}

	if _, err := cat.Get(&cfgA); !errors.Is(err, ribbon.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	censusA := takeCensus(t, cfgA)
	censusB := takeCensus(t, cfgB)
	if err = cat.Put(&cfgA, censusA); err != nil {
		t.Fatal(err)
	}
	if err = cat.Put(&cfgB, censusB); err != nil {
		t.Fatal(err)
	}
	if err = cat.Put(&cfgA, censusA); err != nil {
		t.Fatal(err)
	}
	if cat.NumEntries() != 2 {
		t.Fatalf("expected 2 entries, got %d", cat.NumEntries())
	}

	got, err := cat.Get(&cfgA)
	if err != nil {
		t.Fatal(err)
	}
	checkCensus(t, got, censusA)

	// Same rotation with a different genus bound is a different entry
	cfgA.MaxGenus = 2
	if _, err := cat.Get(&cfgA); !errors.Is(err, ribbon.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	onHit := make(chan *ribbon.CatalogEntry)
	var selectErr error
	go func() {
		selectErr = cat.Select(onHit)
		close(onHit)
	}()
	total := 0
	for entry := range onHit {
		total++
		switch entry.Config.Vertices.String() {
		case cfgB.Vertices.String():
			checkCensus(t, &entry.Census, censusB)
		case "(0 1 2 3)(4 5 6 7)":
			if entry.Config.Arrows != 8 || entry.Config.MaxGenus != 1 {
				t.Fatalf("unexpected config %+v", entry.Config)
			}
			checkCensus(t, &entry.Census, censusA)
		default:
			t.Fatalf("unexpected entry %v", entry.Config.Vertices)
		}
	}
	if selectErr != nil {
		t.Fatal(selectErr)
	}
	if total != 2 {
		t.Fatalf("expected 2 entries, got %d", total)
	}
}

func TestReopen(t *testing.T) {
	dbPath := path.Join(t.TempDir(), "TestReopen")

	cfg := ribbon.RegularConfig(1, 6, 2)
	census := takeCensus(t, cfg)
	{
		cat, err := catalog.OpenCatalog(ribbon.CatalogOpts{DbPathName: dbPath})
		if err != nil {
			t.Fatal(err)
		}
		if err = cat.Put(&cfg, census); err != nil {
			t.Fatal(err)
		}
		if err = cat.Close(); err != nil {
			t.Fatal(err)
		}
	}

	cat, err := catalog.OpenCatalog(ribbon.CatalogOpts{DbPathName: dbPath, ReadOnly: true})
	if err != nil {
		t.Fatal(err)
	}
	defer cat.Close()

	if !cat.IsReadOnly() || cat.NumEntries() != 1 {
		t.Fatalf("expected a read-only catalog with 1 entry, got %d", cat.NumEntries())
	}
	got, err := cat.Get(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	checkCensus(t, got, census)

	if err = cat.Put(&cfg, census); !errors.Is(err, ribbon.ErrCatalogReadOnly) {
		t.Fatalf("expected ErrCatalogReadOnly, got %v", err)
	}
}

func TestReadOnlyNeedsPath(t *testing.T) {
	if _, err := catalog.OpenCatalog(ribbon.CatalogOpts{ReadOnly: true}); !errors.Is(err, ribbon.ErrBadConfig) {
		t.Fatalf("expected ErrBadConfig, got %v", err)
	}
}
