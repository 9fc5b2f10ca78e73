package libribbon

import (
	"errors"
	"fmt"
	"testing"

	"github.com/2x3systems/ribbon/ribbon"
)

func TestEnumPairings(t *testing.T) {
	for _, N := range []int{2, 4, 6, 8, 10} {
		seen := map[string]struct{}{}
		count, err := EnumPairings(N, func(edgeMap ribbon.Perm) error {
			if !IsPairing(edgeMap) {
				return fmt.Errorf("not a pairing: %v", edgeMap)
			}
			key := fmt.Sprint(edgeMap)
			if _, dupe := seen[key]; dupe {
				return fmt.Errorf("pairing emitted twice: %v", edgeMap)
			}
			seen[key] = struct{}{}
			return nil
		})
		if err != nil {
			t.Fatal(err)
		}
		if count != PairingCount(N) || uint64(len(seen)) != count {
			t.Fatalf("N=%d: visited %d (%d distinct), expected %d", N, count, len(seen), PairingCount(N))
		}
	}
}

func TestEnumPairingsFirstPartner(t *testing.T) {
	// Arrow 0 is paired with each other arrow in ascending order at the top level
	var partners []ribbon.ArrowID
	_, err := EnumPairings(6, func(edgeMap ribbon.Perm) error {
		if len(partners) == 0 || partners[len(partners)-1] != edgeMap[0] {
			partners = append(partners, edgeMap[0])
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if fmt.Sprint(partners) != "[1 2 3 4 5]" {
		t.Fatalf("unexpected partner order %v", partners)
	}
}

func TestEnumPairingsStops(t *testing.T) {
	errStop := errors.New("stop")
	calls := 0
	count, err := EnumPairings(8, func(edgeMap ribbon.Perm) error {
		calls++
		if calls == 10 {
			return errStop
		}
		return nil
	})
	if err != errStop || count != 10 {
		t.Fatalf("expected stop after 10 pairings, got %d (%v)", count, err)
	}
}

func TestEnumPairingsBadCount(t *testing.T) {
	for _, N := range []int{-2, 0, 1, 7} {
		_, err := EnumPairings(N, func(ribbon.Perm) error { return nil })
		if !errors.Is(err, ribbon.ErrBadArrowCount) {
			t.Errorf("N=%d: expected ErrBadArrowCount, got %v", N, err)
		}
	}
}
