package tracker

import "testing"

func TestComputeProgressEmptyUniverse(t *testing.T) {
	p := ComputeProgress(Ledger{}, nil)
	if p.Completed != 0 || p.Total != 0 || p.Percent != 0 {
		t.Fatalf("got %+v, want all zero", p)
	}
}

func TestComputeProgressHalfUpRounding(t *testing.T) {
	universe := []string{"a", "b", "c", "d", "e", "f"}
	l := Ledger{"a": true}

	p := ComputeProgress(l, universe)
	if p.Percent != 17 {
		t.Fatalf("1/6 percent=%d, want 17", p.Percent)
	}

	l["b"] = true
	l["c"] = true
	p = ComputeProgress(l, universe)
	if p.Completed != 3 || p.Percent != 50 {
		t.Fatalf("3/6 got %+v, want completed=3 percent=50", p)
	}
}

func TestComputeProgressIgnoresKeysOutsideUniverse(t *testing.T) {
	l := Ledger{"Monday-Breakfast": true, "2019-01-01-water": true}
	universe := []string{"Monday-Breakfast", "Monday-Lunch"}

	p := ComputeProgress(l, universe)
	if p.Completed != 1 || p.Total != 2 || p.Percent != 50 {
		t.Fatalf("got %+v, want 1/2 50%%", p)
	}
}

func TestComputeProgressUncheckedEntriesDoNotCount(t *testing.T) {
	l := Ledger{"a": true}
	l.Toggle("a")

	p := ComputeProgress(l, []string{"a"})
	if p.Completed != 0 || p.Percent != 0 {
		t.Fatalf("got %+v, want 0/1 0%%", p)
	}
}

func TestComputeProgressIsPure(t *testing.T) {
	l := Ledger{"a": true}
	universe := []string{"a", "b"}

	first := ComputeProgress(l, universe)
	second := ComputeProgress(l, universe)
	if first != second {
		t.Fatalf("repeated computation diverged: %+v vs %+v", first, second)
	}
	if len(l) != 1 {
		t.Fatalf("ledger mutated by progress computation: %v", l)
	}
}
