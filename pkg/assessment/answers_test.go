package assessment

import (
	"testing"

	"github.com/greenwise-dev/esg_board/pkg/catalog"
)

func mustCatalog(t *testing.T, d catalog.Domain) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Load(d)
	if err != nil {
		t.Fatalf("catalog.Load(%s) error = %v", d, err)
	}
	return c
}

func TestNewAnswerSheetSeedsAllYes(t *testing.T) {
	for _, d := range catalog.Domains {
		cat := mustCatalog(t, d)
		sheet := NewAnswerSheet(cat)
		if sheet.Len() != len(cat.Items()) {
			t.Errorf("%s: sheet has %d entries, want %d", d, sheet.Len(), len(cat.Items()))
		}
		for _, item := range cat.Items() {
			a, ok := sheet.Get(item.ID)
			if !ok || a != Yes {
				t.Errorf("%s: answer[%s] = %v, want yes", d, item.ID, a)
			}
		}
	}
}

func TestMergeViolations(t *testing.T) {
	cat := mustCatalog(t, catalog.EDD)
	sheet := NewAnswerSheet(cat)

	records := []ViolationRecord{{ID: "EDD-3-02"}, {ID: "EDD-5-03"}}
	sheet.MergeViolations(records)

	for _, item := range cat.Items() {
		a, _ := sheet.Get(item.ID)
		want := Yes
		if item.ID == "EDD-3-02" || item.ID == "EDD-5-03" {
			want = No
		}
		if a != want {
			t.Errorf("answer[%s] = %v, want %v", item.ID, a, want)
		}
	}

	// idempotent
	sheet.MergeViolations(records)
	if got := len(sheet.NegativeOnly()); got != 2 {
		t.Errorf("after double merge, negatives = %d, want 2", got)
	}
}

func TestNegativeOnly(t *testing.T) {
	cat := mustCatalog(t, catalog.EDD)
	sheet := NewAnswerSheet(cat)

	if got := sheet.NegativeOnly(); len(got) != 0 {
		t.Errorf("fresh sheet negatives = %v, want empty", got)
	}

	sheet.Set("EDD-5-03", No)
	got := sheet.NegativeOnly()
	if len(got) != 1 {
		t.Fatalf("negatives = %v, want exactly one entry", got)
	}
	if v, ok := got["EDD-5-03"]; !ok || v != false {
		t.Errorf("negatives[EDD-5-03] = %v, %v", v, ok)
	}

	// flipping back removes it from the payload
	sheet.Set("EDD-5-03", Yes)
	if got := sheet.NegativeOnly(); len(got) != 0 {
		t.Errorf("after flip back, negatives = %v, want empty", got)
	}
}

func TestSetCreatesOrphanKey(t *testing.T) {
	cat := mustCatalog(t, catalog.EDD)
	sheet := NewAnswerSheet(cat)
	before := sheet.Len()

	sheet.Set("NOT-A-QUESTION", No)
	if sheet.Len() != before+1 {
		t.Errorf("orphan set did not add entry")
	}
	if _, ok := sheet.NegativeOnly()["NOT-A-QUESTION"]; !ok {
		t.Errorf("orphan negative missing from payload")
	}
}
