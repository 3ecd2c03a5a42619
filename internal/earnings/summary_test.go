package earnings

import (
	"testing"
)

func TestCutSummaryAdd(t *testing.T) {
	a := CutSummary{Count: 2, Total: 40, DividedTotal: 20}
	b := CutSummary{Count: 1, Total: 35, DividedTotal: 35}

	got := a.Add(b)
	want := CutSummary{Count: 3, Total: 75, DividedTotal: 55}
	if got != want {
		t.Errorf("Add = %+v, want %+v", got, want)
	}

	// The zero value is the empty-set aggregate and the identity element.
	if a.Add(CutSummary{}) != a {
		t.Error("adding the empty summary must be the identity")
	}
}

func TestSaleSummaryAdd(t *testing.T) {
	a := SaleSummary{Count: 3, Total: 45}
	b := SaleSummary{Count: 2, Total: 30}

	got := a.Add(b)
	want := SaleSummary{Count: 5, Total: 75}
	if got != want {
		t.Errorf("Add = %+v, want %+v", got, want)
	}

	if b.Add(SaleSummary{}) != b {
		t.Error("adding the empty summary must be the identity")
	}
}
