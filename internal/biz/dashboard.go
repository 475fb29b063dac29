package biz

import (
	"context"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/greenwise-dev/esg_board/pkg/assessment"
	"github.com/greenwise-dev/esg_board/pkg/catalog"
)

// DomainSummary 영역별 진단 요약
type DomainSummary struct {
	Domain     string `json:"domain"`
	Submitted  bool   `json:"submitted"`
	Violations int    `json:"violations"`
	Fines      int    `json:"fines"`
	Criminal   int    `json:"criminal"`
}

// DashboardSummary 차트 화면용 전체 요약
type DashboardSummary struct {
	Domains  []DomainSummary `json:"domains"`
	Partners map[string]int  `json:"partners"`
}

// DashboardUseCase 대시보드 요약 집계
type DashboardUseCase struct {
	diagnosis *DiagnosisUseCase
	partners  PartnerRepo
	log       *log.Helper
}

func NewDashboardUseCase(diagnosis *DiagnosisUseCase, partners PartnerRepo, logger log.Logger) *DashboardUseCase {
	return &DashboardUseCase{diagnosis: diagnosis, partners: partners, log: log.NewHelper(logger)}
}

// Summary 는 영역별 위반 집계와 협력회사 상태 분포를 한 번에 돌려준다.
func (uc *DashboardUseCase) Summary(ctx context.Context, orgID int) (*DashboardSummary, error) {
	out := &DashboardSummary{}
	for _, d := range catalog.Domains {
		records, err := uc.diagnosis.GetResult(ctx, orgID, d)
		submitted := true
		if err != nil {
			if !errors.IsNotFound(err) {
				return nil, err
			}
			submitted = false
			records = nil
		}
		st := assessment.ComputeStats(records)
		out.Domains = append(out.Domains, DomainSummary{
			Domain:     string(d),
			Submitted:  submitted,
			Violations: st.Violations,
			Fines:      st.Fines,
			Criminal:   st.Criminal,
		})
	}

	counts, err := uc.partners.CountByStatus(ctx, orgID)
	if err != nil {
		return nil, err
	}
	out.Partners = counts
	return out, nil
}
