package assessment

import (
	"context"
	"fmt"

	"github.com/greenwise-dev/esg_board/pkg/catalog"
	"github.com/greenwise-dev/esg_board/pkg/logger"
)

// Store 영역별 진단 결과 영속화 인터페이스.
// FetchResult 는 저장된 진단이 없으면 빈 목록을 돌려준다 (HTTP 상태는 노출하지 않음).
type Store interface {
	FetchResult(ctx context.Context) ([]ViolationRecord, error)
	SaveAnswers(ctx context.Context, answers map[string]bool) error
}

// Session 하나의 규제 영역에 대한 자가진단 진행 상태.
// EDD/HRDD/EUDD 는 카탈로그와 스토어만 다른 동일한 세션이다.
type Session struct {
	Catalog   *catalog.Catalog
	Sheet     *AnswerSheet
	Navigator *Navigator
	store     Store
}

// NewSession builds a session over the injected catalog and store.
func NewSession(cat *catalog.Catalog, store Store) *Session {
	return &Session{
		Catalog:   cat,
		Sheet:     NewAnswerSheet(cat),
		Navigator: NewNavigator(cat.GroupCount()),
		store:     store,
	}
}

// Load seeds default answers and overlays previously saved violations.
// A fetch failure leaves the all-"yes" defaults in place so the questionnaire
// still renders; the error is logged, not propagated.
func (s *Session) Load(ctx context.Context) {
	records, err := s.store.FetchResult(ctx)
	if err != nil {
		logger.Log.Warnf("진단 결과 조회 실패, 기본값으로 시작 [%s]: %v", s.Catalog.Domain, err)
		return
	}
	s.Sheet.MergeViolations(records)
}

// Submit saves the current "no" answers for this domain.
func (s *Session) Submit(ctx context.Context) error {
	if err := s.store.SaveAnswers(ctx, s.Sheet.NegativeOnly()); err != nil {
		return fmt.Errorf("save answers [%s]: %w", s.Catalog.Domain, err)
	}
	return nil
}

// Result re-fetches the saved violations and aggregates them for display.
func (s *Session) Result(ctx context.Context) ([]ViolationRecord, Stats, error) {
	records, err := s.store.FetchResult(ctx)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("fetch result [%s]: %w", s.Catalog.Domain, err)
	}
	return records, ComputeStats(records), nil
}
