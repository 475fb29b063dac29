package assessment

import (
	"context"
	"errors"
	"testing"

	"github.com/greenwise-dev/esg_board/pkg/catalog"
)

// fakeStore 는 서버가 하듯 "아니오" id 집합에서 위반 기록을 파생한다.
type fakeStore struct {
	cat      *catalog.Catalog
	saved    map[string]bool
	fetchErr error
	saveErr  error
}

func (f *fakeStore) FetchResult(ctx context.Context) ([]ViolationRecord, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	var records []ViolationRecord
	for id := range f.saved {
		item, ok := f.cat.Find(id)
		if !ok {
			continue
		}
		records = append(records, ViolationRecord{
			ID:                item.ID,
			QuestionText:      item.Text,
			LegalBasis:        item.LegalBasis,
			FineRange:         item.FineRange,
			CriminalLiability: item.CriminalLiability,
		})
	}
	return records, nil
}

func (f *fakeStore) SaveAnswers(ctx context.Context, answers map[string]bool) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = answers
	return nil
}

func TestSessionSubmitScenario(t *testing.T) {
	cat, err := catalog.Load(catalog.EDD)
	if err != nil {
		t.Fatalf("catalog.Load error = %v", err)
	}
	store := &fakeStore{cat: cat}
	session := NewSession(cat, store)
	session.Load(context.Background())

	// 전 문항 "예", EDD-5-03 만 "아니오"
	session.Sheet.Set("EDD-5-03", No)

	if err := session.Submit(context.Background()); err != nil {
		t.Fatalf("Submit error = %v", err)
	}
	if len(store.saved) != 1 {
		t.Fatalf("save payload = %v, want exactly {EDD-5-03: false}", store.saved)
	}
	if v, ok := store.saved["EDD-5-03"]; !ok || v != false {
		t.Fatalf("save payload = %v, want {EDD-5-03: false}", store.saved)
	}

	records, stats, err := session.Result(context.Background())
	if err != nil {
		t.Fatalf("Result error = %v", err)
	}
	if stats.Violations != 1 {
		t.Errorf("stats.Violations = %d, want 1", stats.Violations)
	}
	if len(records) != 1 || records[0].ID != "EDD-5-03" {
		t.Errorf("records = %v, want single EDD-5-03", records)
	}
}

func TestSessionRoundTrip(t *testing.T) {
	cat, err := catalog.Load(catalog.HRDD)
	if err != nil {
		t.Fatalf("catalog.Load error = %v", err)
	}
	store := &fakeStore{cat: cat}

	first := NewSession(cat, store)
	first.Load(context.Background())
	first.Sheet.Set("HRDD-2-01", No)
	first.Sheet.Set("HRDD-8-01", No)
	if err := first.Submit(context.Background()); err != nil {
		t.Fatalf("Submit error = %v", err)
	}

	// 저장 → 재조회 → 병합이 같은 "아니오" 집합을 복원해야 한다
	second := NewSession(cat, store)
	second.Load(context.Background())

	got := second.Sheet.NegativeOnly()
	want := map[string]bool{"HRDD-2-01": false, "HRDD-8-01": false}
	if len(got) != len(want) {
		t.Fatalf("negatives after reload = %v, want %v", got, want)
	}
	for id := range want {
		if _, ok := got[id]; !ok {
			t.Errorf("negatives missing %s", id)
		}
	}
}

func TestSessionLoadDegradesOnFetchFailure(t *testing.T) {
	cat, err := catalog.Load(catalog.EUDD)
	if err != nil {
		t.Fatalf("catalog.Load error = %v", err)
	}
	store := &fakeStore{cat: cat, fetchErr: errors.New("backend down")}

	session := NewSession(cat, store)
	session.Load(context.Background())

	// 조회 실패 시에도 기본값 "예"로 진행 가능해야 한다
	if got := session.Sheet.NegativeOnly(); len(got) != 0 {
		t.Errorf("negatives = %v, want all-yes defaults", got)
	}
	if session.Sheet.Len() != len(cat.Items()) {
		t.Errorf("sheet entries = %d, want %d", session.Sheet.Len(), len(cat.Items()))
	}
}
