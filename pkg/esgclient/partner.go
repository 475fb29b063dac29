package esgclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// PartnerClient 협력회사 등록부 API 어댑터
type PartnerClient struct {
	c   *Client
	seq Sequencer
}

// Partners returns the partner-registry adapter.
func (c *Client) Partners() *PartnerClient {
	return &PartnerClient{c: c}
}

// CreateResult 생성 응답. 소프트 삭제된 동일 corp_code 레코드를 서버가 복원한
// 경우 IsRestored 가 참이며, 이는 실패가 아니라 성공으로 취급한다.
type CreateResult struct {
	Partner    PartnerCompany
	IsRestored bool
}

// List 는 협력회사 목록을 페이지 단위로 조회한다.
func (p *PartnerClient) List(ctx context.Context, page, pageSize int, companyName string) (Page, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(pageSize))
	if companyName != "" {
		q.Set("companyName", companyName)
	}

	u := fmt.Sprintf("%s/api/v1/partners/partner-companies?%s", p.c.baseURL, q.Encode())
	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return Page{}, fmt.Errorf("create request failed: %w", err)
	}

	res, err := p.c.do(req)
	if err != nil {
		return Page{}, fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return Page{}, fmt.Errorf("read body failed: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		return Page{}, fmt.Errorf("partner api error (status %d): %s", res.StatusCode, string(body))
	}
	return parsePage(body, pageSize)
}

// Search 는 회사명 검색 전용 List 로, 겹치는 요청 중 가장 최근 요청의 응답만
// 유효한 것으로 돌려준다. stale 응답이면 ok=false 다.
func (p *PartnerClient) Search(ctx context.Context, page, pageSize int, companyName string) (Page, bool, error) {
	token := p.seq.Next()
	pg, err := p.List(ctx, page, pageSize, companyName)
	if !p.seq.Latest(token) {
		return Page{}, false, nil
	}
	if err != nil {
		return Page{}, true, err
	}
	return pg, true, nil
}

// CreateRequest 협력회사 생성 요청
type CreateRequest struct {
	CompanyName       string `json:"companyName"`
	CorpCode          string `json:"corpCode"`
	StockCode         string `json:"stockCode,omitempty"`
	ContractStartDate string `json:"contractStartDate"`
}

// Create 는 협력회사를 등록한다. 서버가 소프트 삭제 레코드를 복원한 경우
// IsRestored 가 참으로 돌아오고, 그 밖의 409 는 중복 오류다.
func (p *PartnerClient) Create(ctx context.Context, in CreateRequest) (CreateResult, error) {
	payload, err := json.Marshal(in)
	if err != nil {
		return CreateResult{}, fmt.Errorf("marshal request failed: %w", err)
	}

	u := fmt.Sprintf("%s/api/v1/partners/partner-companies", p.c.baseURL)
	req, err := http.NewRequestWithContext(ctx, "POST", u, bytes.NewReader(payload))
	if err != nil {
		return CreateResult{}, fmt.Errorf("create request failed: %w", err)
	}

	res, err := p.c.do(req)
	if err != nil {
		return CreateResult{}, fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return CreateResult{}, fmt.Errorf("read body failed: %w", err)
	}

	switch res.StatusCode {
	case http.StatusOK, http.StatusCreated:
	case http.StatusConflict:
		// 일부 백엔드는 소프트 삭제 레코드를 복원하면서도 409 로 응답한다.
		// 본문에 is_restored 가 켜져 있으면 중복이 아니라 복원 성공이다.
		var restored struct {
			partnerPayload
			IsRestored bool `json:"is_restored"`
		}
		if err := json.Unmarshal(body, &restored); err == nil && restored.IsRestored {
			return CreateResult{Partner: restored.normalize(), IsRestored: true}, nil
		}
		return CreateResult{}, fmt.Errorf("이미 등록된 협력회사입니다 (status %d): %s", res.StatusCode, string(body))
	default:
		return CreateResult{}, fmt.Errorf("partner api error (status %d): %s", res.StatusCode, string(body))
	}

	var out struct {
		partnerPayload
		IsRestored bool `json:"is_restored"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return CreateResult{}, fmt.Errorf("unmarshal response failed: %w", err)
	}
	return CreateResult{Partner: out.normalize(), IsRestored: out.IsRestored}, nil
}

// UpdateRequest 수정 요청. 계약 시작일과 상태만 수정할 수 있다.
type UpdateRequest struct {
	ContractStartDate string `json:"contractStartDate,omitempty"`
	Status            string `json:"status,omitempty"`
}

// Update 는 협력회사의 계약 시작일/상태를 수정한다.
func (p *PartnerClient) Update(ctx context.Context, id int64, in UpdateRequest) (PartnerCompany, error) {
	payload, err := json.Marshal(in)
	if err != nil {
		return PartnerCompany{}, fmt.Errorf("marshal request failed: %w", err)
	}

	u := fmt.Sprintf("%s/api/v1/partners/partner-companies/%d", p.c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, "PATCH", u, bytes.NewReader(payload))
	if err != nil {
		return PartnerCompany{}, fmt.Errorf("create request failed: %w", err)
	}

	res, err := p.c.do(req)
	if err != nil {
		return PartnerCompany{}, fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return PartnerCompany{}, fmt.Errorf("read body failed: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		return PartnerCompany{}, fmt.Errorf("partner api error (status %d): %s", res.StatusCode, string(body))
	}

	var out partnerPayload
	if err := json.Unmarshal(body, &out); err != nil {
		return PartnerCompany{}, fmt.Errorf("unmarshal response failed: %w", err)
	}
	return out.normalize(), nil
}

// Delete 는 협력회사를 소프트 삭제한다.
func (p *PartnerClient) Delete(ctx context.Context, id int64) error {
	u := fmt.Sprintf("%s/api/v1/partners/partner-companies/%d", p.c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, "DELETE", u, nil)
	if err != nil {
		return fmt.Errorf("create request failed: %w", err)
	}

	res, err := p.c.do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK && res.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("partner api error (status %d): %s", res.StatusCode, string(body))
	}
	return nil
}
