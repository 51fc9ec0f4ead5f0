package team

import "testing"

func TestRankOf(t *testing.T) {
	t.Parallel()

	if r := RankOf(3); !r.Known || r.String() != "3" {
		t.Fatalf("unexpected rank: %+v (%s)", r, r.String())
	}
	if r := RankOf(0); r.Known || r.String() != Unknown {
		t.Fatalf("zero position should be unknown, got %+v", r)
	}
}

