package biz

import (
	"context"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/greenwise-dev/esg_board/pkg/assessment"
	"github.com/greenwise-dev/esg_board/pkg/catalog"
)

// DiagnosisRepo 진단 제출 이력과 위반 문항 id 저장소 인터페이스
type DiagnosisRepo interface {
	// ReplaceViolations 는 조직+영역의 위반 집합을 제출본으로 교체하고
	// 제출 이력을 남긴다.
	ReplaceViolations(ctx context.Context, orgID int, domain catalog.Domain, ids []string) error
	// ListViolationIDs 는 제출 여부와 위반 문항 id 목록을 돌려준다.
	ListViolationIDs(ctx context.Context, orgID int, domain catalog.Domain) (submitted bool, ids []string, err error)
}

// DiagnosisUseCase 자가진단 저장/조회 업무 로직
type DiagnosisUseCase struct {
	repo DiagnosisRepo
	log  *log.Helper
}

func NewDiagnosisUseCase(repo DiagnosisRepo, logger log.Logger) *DiagnosisUseCase {
	return &DiagnosisUseCase{repo: repo, log: log.NewHelper(logger)}
}

// SaveAnswers 는 "아니오" 응답 매핑을 받아 조직의 위반 집합을 교체한다.
// 카탈로그에 없는 문항 id 는 거부한다. true 값 항목은 규약상 전송되지 않으나,
// 섞여 들어와도 위반으로 치지 않는다.
func (uc *DiagnosisUseCase) SaveAnswers(ctx context.Context, orgID int, domain catalog.Domain, answers map[string]bool) error {
	cat, err := catalog.Load(domain)
	if err != nil {
		return errors.BadRequest("UNKNOWN_DOMAIN", err.Error())
	}

	ids := make([]string, 0, len(answers))
	for id, v := range answers {
		if v {
			continue
		}
		if _, ok := cat.Find(id); !ok {
			return errors.BadRequest("UNKNOWN_QUESTION_ID", "unknown question id: "+id)
		}
		ids = append(ids, id)
	}

	if err := uc.repo.ReplaceViolations(ctx, orgID, domain, ids); err != nil {
		return err
	}
	uc.log.WithContext(ctx).Infof("diagnosis saved: org=%d domain=%s violations=%d", orgID, domain, len(ids))
	return nil
}

// GetResult 는 저장된 위반 id 를 카탈로그 메타데이터와 결합해 위반 기록으로
// 파생한다. 제출 이력이 없으면 NotFound 를 돌려주며, 이는 클라이언트 어댑터가
// 빈 결과로 해석하는 규약이다.
func (uc *DiagnosisUseCase) GetResult(ctx context.Context, orgID int, domain catalog.Domain) ([]assessment.ViolationRecord, error) {
	cat, err := catalog.Load(domain)
	if err != nil {
		return nil, errors.BadRequest("UNKNOWN_DOMAIN", err.Error())
	}

	submitted, ids, err := uc.repo.ListViolationIDs(ctx, orgID, domain)
	if err != nil {
		return nil, err
	}
	if !submitted {
		return nil, errors.NotFound("DIAGNOSIS_NOT_FOUND", "no diagnosis submitted yet")
	}

	records := make([]assessment.ViolationRecord, 0, len(ids))
	for _, id := range ids {
		item, ok := cat.Find(id)
		if !ok {
			// 카탈로그 개정으로 사라진 문항. 결과에서 제외한다.
			uc.log.WithContext(ctx).Warnf("stored violation id %q missing from %s catalog", id, domain)
			continue
		}
		records = append(records, assessment.ViolationRecord{
			ID:                item.ID,
			QuestionText:      item.Text,
			LegalRelevance:    item.LegalRelevance,
			LegalBasis:        item.LegalBasis,
			FineRange:         item.FineRange,
			CriminalLiability: item.CriminalLiability,
		})
	}
	return records, nil
}

// ResultOrEmpty 는 GetResult 와 같되 미제출을 빈 목록으로 취급한다.
// 대시보드 집계처럼 404 구분이 필요 없는 내부 호출용이다.
func (uc *DiagnosisUseCase) ResultOrEmpty(ctx context.Context, orgID int, domain catalog.Domain) ([]assessment.ViolationRecord, error) {
	records, err := uc.GetResult(ctx, orgID, domain)
	if errors.IsNotFound(err) {
		return nil, nil
	}
	return records, err
}
