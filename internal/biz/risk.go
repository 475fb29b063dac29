package biz

import (
	"context"
	"fmt"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/greenwise-dev/esg_board/pkg/dart"
)

// 위험 등급
const (
	RiskLow    = "LOW"
	RiskMedium = "MEDIUM"
	RiskHigh   = "HIGH"
)

// RiskItem 단일 재무 지표의 평가 결과
type RiskItem struct {
	Metric string  `json:"metric"`
	Value  float64 `json:"value"`
	Level  string  `json:"level"`
}

// RiskAssessment 협력회사 재무 위험 평가
type RiskAssessment struct {
	CorpCode    string     `json:"corpCode"`
	PartnerName string     `json:"partnerName"`
	FiscalYear  string     `json:"fiscalYear"`
	Overall     string     `json:"overall"`
	RiskItems   []RiskItem `json:"riskItems"`
}

// FinancialFetcher 는 재무 지표 조회 의존성이다. dart.Client 가 구현한다.
type FinancialFetcher interface {
	FetchFinancials(ctx context.Context, corpCode string) (*dart.Financials, error)
}

// RiskUseCase 재무 위험 평가 업무 로직
type RiskUseCase struct {
	fin FinancialFetcher
	log *log.Helper
}

func NewRiskUseCase(fin FinancialFetcher, logger log.Logger) *RiskUseCase {
	return &RiskUseCase{fin: fin, log: log.NewHelper(logger)}
}

// Assess 는 DART 재무 지표를 고정 기준치와 비교해 항목별 등급을 매긴다.
// 전체 등급은 가장 나쁜 항목 등급이다.
func (uc *RiskUseCase) Assess(ctx context.Context, corpCode, partnerName string) (*RiskAssessment, error) {
	fin, err := uc.fin.FetchFinancials(ctx, corpCode)
	if err != nil {
		return nil, fmt.Errorf("fetch financials [%s]: %w", corpCode, err)
	}

	items := []RiskItem{
		{Metric: "부채비율", Value: fin.DebtRatio, Level: gradeHighBad(fin.DebtRatio, 100, 200)},
		{Metric: "유동비율", Value: fin.CurrentRatio, Level: gradeLowBad(fin.CurrentRatio, 150, 100)},
		{Metric: "영업이익률", Value: fin.OperatingMargin, Level: gradeLowBad(fin.OperatingMargin, 5, 0)},
		{Metric: "매출증가율", Value: fin.RevenueGrowth, Level: gradeLowBad(fin.RevenueGrowth, 0, -10)},
	}

	overall := RiskLow
	for _, it := range items {
		if it.Level == RiskHigh {
			overall = RiskHigh
			break
		}
		if it.Level == RiskMedium {
			overall = RiskMedium
		}
	}

	return &RiskAssessment{
		CorpCode:    corpCode,
		PartnerName: partnerName,
		FiscalYear:  fin.FiscalYear,
		Overall:     overall,
		RiskItems:   items,
	}, nil
}

// gradeHighBad 는 값이 클수록 나쁜 지표를 평가한다.
func gradeHighBad(v, medium, high float64) string {
	switch {
	case v > high:
		return RiskHigh
	case v > medium:
		return RiskMedium
	default:
		return RiskLow
	}
}

// gradeLowBad 는 값이 작을수록 나쁜 지표를 평가한다.
func gradeLowBad(v, medium, high float64) string {
	switch {
	case v < high:
		return RiskHigh
	case v < medium:
		return RiskMedium
	default:
		return RiskLow
	}
}
