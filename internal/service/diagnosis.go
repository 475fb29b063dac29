package service

import (
	"net/http"

	"github.com/go-kratos/kratos/v2/errors"
	khttp "github.com/go-kratos/kratos/v2/transport/http"

	"github.com/greenwise-dev/esg_board/pkg/catalog"
)

// SaveAnswersReq 진단 제출 요청. answers 는 "아니오" 응답만 담는다.
type SaveAnswersReq struct {
	Answers map[string]bool `json:"answers"`
}

// SaveAnswersReply 진단 제출 응답
type SaveAnswersReply struct {
	Saved      bool `json:"saved"`
	Violations int  `json:"violations"`
}

// GetCatalog 는 영역의 문항 카탈로그를 돌려준다. 인증 불필요 (정적 데이터).
func (s *EsgService) GetCatalog(ctx khttp.Context) error {
	d, err := catalog.ParseDomain(ctx.Vars().Get("domain"))
	if err != nil {
		return errors.BadRequest("UNKNOWN_DOMAIN", err.Error())
	}
	cat, err := catalog.Load(d)
	if err != nil {
		return errors.BadRequest("UNKNOWN_DOMAIN", err.Error())
	}
	return ctx.Result(http.StatusOK, cat.Groups)
}

// GetDiagnosisResult 는 현재 조직의 위반 기록을 돌려준다.
// 제출 이력이 없으면 404 이며, 클라이언트는 이를 빈 상태로 해석한다.
func (s *EsgService) GetDiagnosisResult(ctx khttp.Context) error {
	orgID, err := s.orgFrom(ctx)
	if err != nil {
		return err
	}
	d, err := catalog.ParseDomain(ctx.Vars().Get("domain"))
	if err != nil {
		return errors.BadRequest("UNKNOWN_DOMAIN", err.Error())
	}

	records, err := s.diagnosis.GetResult(ctx, orgID, d)
	if err != nil {
		return err
	}
	return ctx.Result(http.StatusOK, records)
}

// SaveDiagnosisAnswers 는 제출된 "아니오" 매핑으로 위반 집합을 교체한다.
func (s *EsgService) SaveDiagnosisAnswers(ctx khttp.Context) error {
	orgID, err := s.orgFrom(ctx)
	if err != nil {
		return err
	}
	d, err := catalog.ParseDomain(ctx.Vars().Get("domain"))
	if err != nil {
		return errors.BadRequest("UNKNOWN_DOMAIN", err.Error())
	}

	var req SaveAnswersReq
	if err := ctx.Bind(&req); err != nil {
		return errors.BadRequest("INVALID_BODY", err.Error())
	}
	if err := s.diagnosis.SaveAnswers(ctx, orgID, d, req.Answers); err != nil {
		return err
	}
	return ctx.Result(http.StatusOK, SaveAnswersReply{Saved: true, Violations: len(req.Answers)})
}

// GetDashboardSummary 는 차트 화면용 집계를 돌려준다.
func (s *EsgService) GetDashboardSummary(ctx khttp.Context) error {
	orgID, err := s.orgFrom(ctx)
	if err != nil {
		return err
	}
	summary, err := s.dashboard.Summary(ctx, orgID)
	if err != nil {
		return err
	}
	return ctx.Result(http.StatusOK, summary)
}
