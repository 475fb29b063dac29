package esgclient

import (
	"encoding/json"
	"fmt"
)

// PartnerCompany 정규화된 협력회사 레코드. 백엔드가 snake_case 와 camelCase 를
// 혼용하므로 역직렬화 직후 한 번만 정규화하고, 이후 코드는 이 타입만 본다.
type PartnerCompany struct {
	ID                int64  `json:"id"`
	CompanyName       string `json:"companyName"`
	CorpCode          string `json:"corpCode"`
	StockCode         string `json:"stockCode,omitempty"`
	ContractStartDate string `json:"contractStartDate"`
	Status            string `json:"status"`
}

// partnerPayload 는 두 표기법을 모두 받는 와이어 타입이다.
type partnerPayload struct {
	ID          int64  `json:"id"`
	CorpName    string `json:"corp_name"`
	CompanyName string `json:"companyName"`

	CorpCodeSnake string `json:"corp_code"`
	CorpCodeCamel string `json:"corpCode"`

	StockCodeSnake string `json:"stock_code"`
	StockCodeCamel string `json:"stockCode"`

	ContractStartSnake string `json:"contract_start_date"`
	ContractStartCamel string `json:"contractStartDate"`

	Status string `json:"status"`
}

func pick(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

func (p partnerPayload) normalize() PartnerCompany {
	return PartnerCompany{
		ID:                p.ID,
		CompanyName:       pick(p.CompanyName, p.CorpName),
		CorpCode:          pick(p.CorpCodeCamel, p.CorpCodeSnake),
		StockCode:         pick(p.StockCodeCamel, p.StockCodeSnake),
		ContractStartDate: pick(p.ContractStartCamel, p.ContractStartSnake),
		Status:            p.Status,
	}
}

// Page 정규화된 페이지 응답
type Page struct {
	Content    []PartnerCompany
	TotalCount int
	TotalPages int
	PageSize   int
	Number     int
}

// springPage 는 Spring Data 스타일 페이지 봉투다.
type springPage struct {
	Content       []partnerPayload `json:"content"`
	TotalElements int              `json:"totalElements"`
	TotalPages    int              `json:"totalPages"`
	Size          int              `json:"size"`
	Number        int              `json:"number"`
}

// legacyPage 는 구버전 {data, total, page} 봉투다.
type legacyPage struct {
	Data  []partnerPayload `json:"data"`
	Total int              `json:"total"`
	Page  int              `json:"page"`
}

func ceilDiv(total, size int) int {
	if size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// parsePage 는 세 가지 응답 형태(Spring Data 봉투, 구버전 봉투, 순수 배열)를
// 모두 Page 로 정규화한다.
func parsePage(raw []byte, pageSize int) (Page, error) {
	// 순수 배열
	if len(raw) > 0 && raw[0] == '[' {
		var items []partnerPayload
		if err := json.Unmarshal(raw, &items); err != nil {
			return Page{}, fmt.Errorf("unmarshal response failed: %w", err)
		}
		return Page{
			Content:    normalizeAll(items),
			TotalCount: len(items),
			TotalPages: ceilDiv(len(items), pageSize),
			PageSize:   pageSize,
		}, nil
	}

	// 봉투 구분은 content 키의 존재로 한다. 비어 있는 마지막 페이지는
	// "content": null 로 올 수 있으므로 nil 슬라이스로는 구분할 수 없다.
	var shape struct {
		Content json.RawMessage `json:"content"`
	}
	if err := json.Unmarshal(raw, &shape); err != nil {
		return Page{}, fmt.Errorf("unmarshal response failed: %w", err)
	}
	if shape.Content != nil {
		var sp springPage
		if err := json.Unmarshal(raw, &sp); err != nil {
			return Page{}, fmt.Errorf("unmarshal response failed: %w", err)
		}
		size := sp.Size
		if size == 0 {
			size = pageSize
		}
		pages := sp.TotalPages
		if pages == 0 {
			pages = ceilDiv(sp.TotalElements, size)
		}
		return Page{
			Content:    normalizeAll(sp.Content),
			TotalCount: sp.TotalElements,
			TotalPages: pages,
			PageSize:   size,
			Number:     sp.Number,
		}, nil
	}

	var lp legacyPage
	if err := json.Unmarshal(raw, &lp); err != nil {
		return Page{}, fmt.Errorf("unmarshal response failed: %w", err)
	}
	return Page{
		Content:    normalizeAll(lp.Data),
		TotalCount: lp.Total,
		TotalPages: ceilDiv(lp.Total, pageSize),
		PageSize:   pageSize,
		Number:     lp.Page,
	}, nil
}

func normalizeAll(items []partnerPayload) []PartnerCompany {
	out := make([]PartnerCompany, 0, len(items))
	for _, p := range items {
		out = append(out, p.normalize())
	}
	return out
}
