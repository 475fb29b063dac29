package assessment

import "testing"

func TestComputeStats(t *testing.T) {
	records := []ViolationRecord{
		{ID: "A", FineRange: "없음"},
		{ID: "B", FineRange: "최대 100000"},
		{ID: "C", CriminalLiability: "예"},
	}

	st := ComputeStats(records)
	if st.Violations != 3 {
		t.Errorf("Violations = %d, want 3", st.Violations)
	}
	if st.Fines != 1 {
		t.Errorf("Fines = %d, want 1", st.Fines)
	}
	if st.Criminal != 1 {
		t.Errorf("Criminal = %d, want 1", st.Criminal)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	st := ComputeStats(nil)
	if st.Violations != 0 || st.Fines != 0 || st.Criminal != 0 {
		t.Errorf("ComputeStats(nil) = %+v, want zeroes", st)
	}
}

func TestIndexByID(t *testing.T) {
	records := []ViolationRecord{{ID: "EDD-1-01"}, {ID: "EDD-2-02"}}
	idx := IndexByID(records)
	if len(idx) != 2 {
		t.Fatalf("index size = %d, want 2", len(idx))
	}
	if _, ok := idx["EDD-2-02"]; !ok {
		t.Error("missing EDD-2-02")
	}
}
