package biz

import (
	"context"
	"testing"

	"github.com/greenwise-dev/esg_board/pkg/catalog"
)

func TestDashboardSummary(t *testing.T) {
	diagRepo := newFakeDiagnosisRepo()
	partnerRepo := newFakePartnerRepo()
	diag := NewDiagnosisUseCase(diagRepo, testLogger())
	partners := NewPartnerUseCase(partnerRepo, testLogger())
	uc := NewDashboardUseCase(diag, partnerRepo, testLogger())
	ctx := context.Background()

	// edd 만 제출, 나머지 영역은 미제출
	if err := diag.SaveAnswers(ctx, 1, catalog.EDD, map[string]bool{"EDD-5-03": false}); err != nil {
		t.Fatalf("SaveAnswers error = %v", err)
	}
	if _, _, err := partners.Create(ctx, &Partner{OrgID: 1, CompanyName: "한빛전자", CorpCode: "00123456", Status: StatusActive}); err != nil {
		t.Fatalf("Create error = %v", err)
	}
	if _, _, err := partners.Create(ctx, &Partner{OrgID: 1, CompanyName: "푸른화학", CorpCode: "00234567", Status: StatusPending}); err != nil {
		t.Fatalf("Create error = %v", err)
	}

	sum, err := uc.Summary(ctx, 1)
	if err != nil {
		t.Fatalf("Summary error = %v", err)
	}
	if len(sum.Domains) != len(catalog.Domains) {
		t.Fatalf("Domains len = %d, want %d", len(sum.Domains), len(catalog.Domains))
	}

	byDomain := make(map[string]DomainSummary)
	for _, d := range sum.Domains {
		byDomain[d.Domain] = d
	}

	edd := byDomain["edd"]
	if !edd.Submitted || edd.Violations != 1 || edd.Criminal != 1 {
		t.Errorf("edd summary = %+v", edd)
	}
	hrdd := byDomain["hrdd"]
	if hrdd.Submitted || hrdd.Violations != 0 {
		t.Errorf("hrdd summary = %+v, want unsubmitted", hrdd)
	}

	if sum.Partners[StatusActive] != 1 || sum.Partners[StatusPending] != 1 {
		t.Errorf("partner counts = %v", sum.Partners)
	}
}

func TestDashboardSummaryEmptyOrg(t *testing.T) {
	diag := NewDiagnosisUseCase(newFakeDiagnosisRepo(), testLogger())
	partnerRepo := newFakePartnerRepo()
	uc := NewDashboardUseCase(diag, partnerRepo, testLogger())

	sum, err := uc.Summary(context.Background(), 7)
	if err != nil {
		t.Fatalf("Summary error = %v", err)
	}
	for _, d := range sum.Domains {
		if d.Submitted || d.Violations != 0 {
			t.Errorf("domain %s = %+v, want empty", d.Domain, d)
		}
	}
	if len(sum.Partners) != 0 {
		t.Errorf("partner counts = %v, want empty", sum.Partners)
	}
}
