package service

import (
	"net/http"
	"strconv"

	"github.com/go-kratos/kratos/v2/errors"
	khttp "github.com/go-kratos/kratos/v2/transport/http"

	"github.com/greenwise-dev/esg_board/internal/biz"
)

// PartnerReply 협력회사 응답 표현
type PartnerReply struct {
	ID                int64  `json:"id"`
	CompanyName       string `json:"companyName"`
	CorpCode          string `json:"corpCode"`
	StockCode         string `json:"stockCode,omitempty"`
	ContractStartDate string `json:"contractStartDate"`
	Status            string `json:"status"`
	IsRestored        bool   `json:"is_restored,omitempty"`
}

// PageReply Spring Data 스타일 페이지 봉투
type PageReply struct {
	Content       []PartnerReply `json:"content"`
	TotalElements int            `json:"totalElements"`
	TotalPages    int            `json:"totalPages"`
	Size          int            `json:"size"`
	Number        int            `json:"number"`
	First         bool           `json:"first"`
	Last          bool           `json:"last"`
	Empty         bool           `json:"empty"`
}

func toPartnerReply(p *biz.Partner) PartnerReply {
	return PartnerReply{
		ID:                p.ID,
		CompanyName:       p.CompanyName,
		CorpCode:          p.CorpCode,
		StockCode:         p.StockCode,
		ContractStartDate: p.ContractStartDate,
		Status:            p.Status,
	}
}

func queryInt(ctx khttp.Context, key string, def int) int {
	v := ctx.Query().Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// ListPartners 는 협력회사 목록을 페이지 봉투로 돌려준다.
func (s *EsgService) ListPartners(ctx khttp.Context) error {
	orgID, err := s.orgFrom(ctx)
	if err != nil {
		return err
	}

	page := queryInt(ctx, "page", 1)
	pageSize := queryInt(ctx, "pageSize", 10)
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	name := ctx.Query().Get("companyName")

	partners, total, err := s.partners.List(ctx, orgID, page, pageSize, name)
	if err != nil {
		return err
	}

	content := make([]PartnerReply, 0, len(partners))
	for _, p := range partners {
		content = append(content, toPartnerReply(p))
	}
	totalPages := (total + pageSize - 1) / pageSize

	return ctx.Result(http.StatusOK, PageReply{
		Content:       content,
		TotalElements: total,
		TotalPages:    totalPages,
		Size:          pageSize,
		Number:        page - 1, // Spring Data 는 0-based
		First:         page == 1,
		Last:          page >= totalPages,
		Empty:         len(content) == 0,
	})
}

// CreatePartnerReq 협력회사 생성 요청
type CreatePartnerReq struct {
	CompanyName       string `json:"companyName"`
	CorpCode          string `json:"corpCode"`
	StockCode         string `json:"stockCode"`
	ContractStartDate string `json:"contractStartDate"`
	Status            string `json:"status"`
}

// CreatePartner 는 협력회사를 등록한다. 소프트 삭제 레코드가 복원되면
// is_restored 가 참이다.
func (s *EsgService) CreatePartner(ctx khttp.Context) error {
	orgID, err := s.orgFrom(ctx)
	if err != nil {
		return err
	}

	var req CreatePartnerReq
	if err := ctx.Bind(&req); err != nil {
		return errors.BadRequest("INVALID_BODY", err.Error())
	}

	p, restored, err := s.partners.Create(ctx, &biz.Partner{
		OrgID:             orgID,
		CompanyName:       req.CompanyName,
		CorpCode:          req.CorpCode,
		StockCode:         req.StockCode,
		ContractStartDate: req.ContractStartDate,
		Status:            req.Status,
	})
	if err != nil {
		return err
	}

	reply := toPartnerReply(p)
	reply.IsRestored = restored
	return ctx.Result(http.StatusOK, reply)
}

// UpdatePartnerReq 수정 요청. 계약 시작일과 상태만 받는다.
type UpdatePartnerReq struct {
	ContractStartDate *string `json:"contractStartDate"`
	Status            *string `json:"status"`
}

// UpdatePartner 는 계약 시작일/상태를 수정한다.
func (s *EsgService) UpdatePartner(ctx khttp.Context) error {
	orgID, err := s.orgFrom(ctx)
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(ctx.Vars().Get("id"), 10, 64)
	if err != nil {
		return errors.BadRequest("INVALID_ID", "invalid partner id")
	}

	var req UpdatePartnerReq
	if err := ctx.Bind(&req); err != nil {
		return errors.BadRequest("INVALID_BODY", err.Error())
	}

	p, err := s.partners.Update(ctx, orgID, id, req.ContractStartDate, req.Status)
	if err != nil {
		return err
	}
	return ctx.Result(http.StatusOK, toPartnerReply(p))
}

// DeletePartner 는 소프트 삭제한다.
func (s *EsgService) DeletePartner(ctx khttp.Context) error {
	orgID, err := s.orgFrom(ctx)
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(ctx.Vars().Get("id"), 10, 64)
	if err != nil {
		return errors.BadRequest("INVALID_ID", "invalid partner id")
	}
	if err := s.partners.Delete(ctx, orgID, id); err != nil {
		return err
	}
	return ctx.Result(http.StatusOK, map[string]bool{"deleted": true})
}

// GetFinancialRisk 는 협력회사 corp code 의 재무 위험 평가를 돌려준다.
func (s *EsgService) GetFinancialRisk(ctx khttp.Context) error {
	if _, err := s.orgFrom(ctx); err != nil {
		return err
	}
	code := ctx.Vars().Get("code")
	if code == "" {
		return errors.BadRequest("INVALID_CODE", "corp code is required")
	}
	partnerName := ctx.Query().Get("partnerName")

	assessment, err := s.risk.Assess(ctx, code, partnerName)
	if err != nil {
		return riskError(err)
	}
	return ctx.Result(http.StatusOK, assessment)
}

// riskError 는 코드가 붙은 오류는 그대로 통과시키고, 상향 조회 실패는
// 503 으로 분류한다. 500 은 여기서 만들지 않는다.
func riskError(err error) error {
	if _, ok := err.(*errors.Error); ok {
		return err
	}
	return errors.ServiceUnavailable("RISK_FETCH_FAILED", err.Error())
}
