package services

import (
	"errors"
	"testing"

	"github.com/PriyancySingal/group-travel-final-sub002/internal/models/response_models"
	"github.com/PriyancySingal/group-travel-final-sub002/pkg/utils"
)

func TestSplitEquallyLastMemberTakesRemainder(t *testing.T) {
	allocator := NewMemberAllocator()

	split, err := allocator.SplitEqually(1000, 3)
	if err != nil {
		t.Fatalf("SplitEqually returned error: %v", err)
	}

	if len(split.Shares) != 3 {
		t.Fatalf("got %d shares, want 3", len(split.Shares))
	}
	if split.Shares[0].Amount != 334 || split.Shares[1].Amount != 334 {
		t.Errorf("leading shares = %v, %v; want 334, 334", split.Shares[0].Amount, split.Shares[1].Amount)
	}
	if split.Shares[2].Amount != 332 {
		t.Errorf("last share = %v, want 332", split.Shares[2].Amount)
	}
	if split.Shares[0].MemberKey != "member_1" || split.Shares[2].MemberKey != "member_3" {
		t.Errorf("unexpected member keys: %v, %v", split.Shares[0].MemberKey, split.Shares[2].MemberKey)
	}
}

func TestSplitEquallySumsExactly(t *testing.T) {
	allocator := NewMemberAllocator()

	cases := []struct {
		total float64
		n     int
	}{
		{1000, 3},
		{1000, 1},
		{19422, 5},
		{0, 4},
		{7, 4},
		{99999, 7},
	}

	for _, tc := range cases {
		split, err := allocator.SplitEqually(tc.total, tc.n)
		if err != nil {
			t.Fatalf("SplitEqually(%v, %d) error: %v", tc.total, tc.n, err)
		}

		sum := 0.0
		for _, share := range split.Shares {
			sum += share.Amount
		}
		if sum != tc.total {
			t.Errorf("SplitEqually(%v, %d) shares sum to %v", tc.total, tc.n, sum)
		}
	}
}

func TestSplitEquallyInvalidInput(t *testing.T) {
	allocator := NewMemberAllocator()

	if _, err := allocator.SplitEqually(1000, 0); !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("zero members err = %v, want ErrInvalidInput", err)
	}
	if _, err := allocator.SplitEqually(-5, 2); !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("negative total err = %v, want ErrInvalidInput", err)
	}
}

func TestSplitCustomValidShares(t *testing.T) {
	allocator := NewMemberAllocator()

	shares := []response_models.MemberShare{
		{MemberKey: "alice", Amount: 600},
		{MemberKey: "bob", Amount: 400},
	}

	split, err := allocator.SplitCustom(1000, shares)
	if err != nil {
		t.Fatalf("SplitCustom returned error: %v", err)
	}
	if split.FallbackApplied {
		t.Error("FallbackApplied set for an exact custom split")
	}
	if split.Shares[0].MemberKey != "alice" || split.Shares[0].Amount != 600 {
		t.Errorf("custom shares not preserved: %+v", split.Shares)
	}
}

func TestSplitCustomMismatchFallsBack(t *testing.T) {
	allocator := NewMemberAllocator()

	shares := []response_models.MemberShare{
		{MemberKey: "alice", Amount: 600},
		{MemberKey: "bob", Amount: 300},
		{MemberKey: "carol", Amount: 50},
	}

	// Shares sum to 950 against a 1000 total: no error, equal split instead.
	split, err := allocator.SplitCustom(1000, shares)
	if err != nil {
		t.Fatalf("mismatched custom split must not error, got %v", err)
	}
	if !split.FallbackApplied {
		t.Fatal("FallbackApplied not set on mismatch")
	}
	if split.Warning == "" {
		t.Error("Warning not set on mismatch")
	}

	sum := 0.0
	for _, share := range split.Shares {
		sum += share.Amount
	}
	if sum != 1000 {
		t.Errorf("fallback shares sum to %v, want 1000", sum)
	}
	if len(split.Shares) != 3 {
		t.Errorf("fallback produced %d shares, want 3", len(split.Shares))
	}
}

func TestSplitCustomInvalidInput(t *testing.T) {
	allocator := NewMemberAllocator()

	if _, err := allocator.SplitCustom(1000, nil); !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("empty shares err = %v, want ErrInvalidInput", err)
	}
}
