package standing

import "testing"

func TestPositions(t *testing.T) {
	t.Parallel()

	table := Table{
		{Position: 1, TeamID: 57},
		{Position: 2, TeamID: 65},
		{Position: 9, TeamID: 57},
		{Position: 3},
	}

	got := table.Positions()
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[57] != 1 || got[65] != 2 {
		t.Fatalf("unexpected positions: %v", got)
	}
}
