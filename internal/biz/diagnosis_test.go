package biz

import (
	"context"
	"io"
	"sort"
	"testing"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/greenwise-dev/esg_board/pkg/catalog"
)

type fakeDiagnosisRepo struct {
	submitted map[string]bool
	ids       map[string][]string
}

func newFakeDiagnosisRepo() *fakeDiagnosisRepo {
	return &fakeDiagnosisRepo{
		submitted: make(map[string]bool),
		ids:       make(map[string][]string),
	}
}

func diagKey(orgID int, domain catalog.Domain) string {
	return string(domain) + "/" + string(rune('0'+orgID))
}

func (f *fakeDiagnosisRepo) ReplaceViolations(ctx context.Context, orgID int, domain catalog.Domain, ids []string) error {
	k := diagKey(orgID, domain)
	f.submitted[k] = true
	f.ids[k] = append([]string(nil), ids...)
	return nil
}

func (f *fakeDiagnosisRepo) ListViolationIDs(ctx context.Context, orgID int, domain catalog.Domain) (bool, []string, error) {
	k := diagKey(orgID, domain)
	return f.submitted[k], f.ids[k], nil
}

func testLogger() log.Logger {
	return log.NewStdLogger(io.Discard)
}

func TestSaveAnswersStoresNegativeIDs(t *testing.T) {
	repo := newFakeDiagnosisRepo()
	uc := NewDiagnosisUseCase(repo, testLogger())

	err := uc.SaveAnswers(context.Background(), 1, catalog.EDD, map[string]bool{
		"EDD-1-01": false,
		"EDD-5-03": false,
	})
	if err != nil {
		t.Fatalf("SaveAnswers error = %v", err)
	}

	_, ids, _ := repo.ListViolationIDs(context.Background(), 1, catalog.EDD)
	sort.Strings(ids)
	if len(ids) != 2 || ids[0] != "EDD-1-01" || ids[1] != "EDD-5-03" {
		t.Errorf("stored ids = %v", ids)
	}
}

func TestSaveAnswersIgnoresTrueValues(t *testing.T) {
	repo := newFakeDiagnosisRepo()
	uc := NewDiagnosisUseCase(repo, testLogger())

	err := uc.SaveAnswers(context.Background(), 1, catalog.EDD, map[string]bool{
		"EDD-1-01": true,
		"EDD-1-02": false,
	})
	if err != nil {
		t.Fatalf("SaveAnswers error = %v", err)
	}

	_, ids, _ := repo.ListViolationIDs(context.Background(), 1, catalog.EDD)
	if len(ids) != 1 || ids[0] != "EDD-1-02" {
		t.Errorf("stored ids = %v, want [EDD-1-02]", ids)
	}
}

func TestSaveAnswersRejectsUnknownID(t *testing.T) {
	repo := newFakeDiagnosisRepo()
	uc := NewDiagnosisUseCase(repo, testLogger())

	err := uc.SaveAnswers(context.Background(), 1, catalog.EDD, map[string]bool{"EDD-99-99": false})
	if !errors.IsBadRequest(err) {
		t.Errorf("SaveAnswers error = %v, want BadRequest", err)
	}
	if repo.submitted[diagKey(1, catalog.EDD)] {
		t.Error("rejected save still recorded a submission")
	}
}

func TestGetResultBeforeSubmitIsNotFound(t *testing.T) {
	repo := newFakeDiagnosisRepo()
	uc := NewDiagnosisUseCase(repo, testLogger())

	_, err := uc.GetResult(context.Background(), 1, catalog.HRDD)
	if !errors.IsNotFound(err) {
		t.Errorf("GetResult error = %v, want NotFound", err)
	}
}

func TestGetResultAfterEmptySubmit(t *testing.T) {
	repo := newFakeDiagnosisRepo()
	uc := NewDiagnosisUseCase(repo, testLogger())

	// 위반 없는 제출도 제출이다. 이후 조회는 404 가 아니라 빈 목록이다.
	if err := uc.SaveAnswers(context.Background(), 1, catalog.HRDD, map[string]bool{}); err != nil {
		t.Fatalf("SaveAnswers error = %v", err)
	}
	records, err := uc.GetResult(context.Background(), 1, catalog.HRDD)
	if err != nil {
		t.Fatalf("GetResult error = %v, want empty result", err)
	}
	if len(records) != 0 {
		t.Errorf("records = %v, want empty", records)
	}
}

func TestGetResultJoinsCatalogMetadata(t *testing.T) {
	repo := newFakeDiagnosisRepo()
	uc := NewDiagnosisUseCase(repo, testLogger())

	if err := uc.SaveAnswers(context.Background(), 1, catalog.EDD, map[string]bool{"EDD-5-03": false}); err != nil {
		t.Fatalf("SaveAnswers error = %v", err)
	}
	records, err := uc.GetResult(context.Background(), 1, catalog.EDD)
	if err != nil {
		t.Fatalf("GetResult error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records len = %d, want 1", len(records))
	}
	r := records[0]
	if r.ID != "EDD-5-03" || r.QuestionText == "" || r.CriminalLiability != "예" {
		t.Errorf("record = %+v", r)
	}
}

func TestGetResultSkipsRetiredIDs(t *testing.T) {
	repo := newFakeDiagnosisRepo()
	uc := NewDiagnosisUseCase(repo, testLogger())

	// 카탈로그 개정 전에 저장된 id 가 남아 있는 상황
	k := diagKey(1, catalog.EDD)
	repo.submitted[k] = true
	repo.ids[k] = []string{"EDD-1-01", "EDD-0-00"}

	records, err := uc.GetResult(context.Background(), 1, catalog.EDD)
	if err != nil {
		t.Fatalf("GetResult error = %v", err)
	}
	if len(records) != 1 || records[0].ID != "EDD-1-01" {
		t.Errorf("records = %+v, want only EDD-1-01", records)
	}
}

func TestResultOrEmptySwallowsNotFound(t *testing.T) {
	repo := newFakeDiagnosisRepo()
	uc := NewDiagnosisUseCase(repo, testLogger())

	records, err := uc.ResultOrEmpty(context.Background(), 1, catalog.EUDD)
	if err != nil {
		t.Fatalf("ResultOrEmpty error = %v", err)
	}
	if records != nil {
		t.Errorf("records = %v, want nil", records)
	}
}
