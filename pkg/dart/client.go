// Package dart 는 협력회사 온보딩 시 기업 식별에 쓰는 DART 기업개황 조회
// 클라이언트다. UI 는 1부터 페이지를 세지만 상향 API 는 0부터 세므로 경계에서
// 한 번만 변환한다.
package dart

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// Client DART API 클라이언트
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	limiter *rate.Limiter
}

// NewClient 는 DART 클라이언트를 만든다. timeout 초 단위, 0 이면 30초.
func NewClient(baseURL, apiKey string, timeout int, qps int, rpm int) *Client {
	t := time.Duration(timeout) * time.Second
	if t == 0 {
		t = 30 * time.Second
	}
	if qps < 1 {
		qps = 1
	}
	if rpm < 1 {
		rpm = 60
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: t},
		limiter: rate.NewLimiter(rate.Limit(float64(rpm)/60.0), qps),
	}
}

// CorpCode 기업개황 단건
type CorpCode struct {
	CorpCode  string `json:"corpCode"`
	CorpName  string `json:"corpName"`
	StockCode string `json:"stockCode"`
	Modified  string `json:"modifyDate"`
}

// CorpPage 기업개황 페이지 응답
type CorpPage struct {
	Content       []CorpCode `json:"content"`
	TotalElements int        `json:"totalElements"`
	TotalPages    int        `json:"totalPages"`
	Number        int        `json:"number"`
}

// SearchCorpCodes 는 기업명을 검색한다. page 는 1부터 센다.
func (c *Client) SearchCorpCodes(ctx context.Context, page, size int, corpNameFilter string, listedOnly bool) (*CorpPage, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	u.Path = "/api/corp-codes"

	q := u.Query()
	q.Set("page", strconv.Itoa(page-1)) // 상향 API 는 0-based
	q.Set("size", strconv.Itoa(size))
	if corpNameFilter != "" {
		q.Set("corpNameFilter", corpNameFilter)
	}
	if listedOnly {
		q.Set("listedOnly", "true")
	}
	u.RawQuery = q.Encode()

	var out CorpPage
	if err := c.getJSON(ctx, u.String(), &out); err != nil {
		return nil, err
	}
	// 응답의 number 도 0-based 이므로 UI 기준으로 되돌린다.
	out.Number++
	return &out, nil
}

// Financials 재무 위험 산정에 쓰는 주요 재무 지표
type Financials struct {
	CorpCode        string  `json:"corpCode"`
	FiscalYear      string  `json:"fiscalYear"`
	DebtRatio       float64 `json:"debtRatio"`       // 부채비율 (%)
	CurrentRatio    float64 `json:"currentRatio"`    // 유동비율 (%)
	OperatingMargin float64 `json:"operatingMargin"` // 영업이익률 (%)
	RevenueGrowth   float64 `json:"revenueGrowth"`   // 매출 증가율 (%)
}

// FetchFinancials 는 기업코드의 최근 재무 지표를 조회한다.
func (c *Client) FetchFinancials(ctx context.Context, corpCode string) (*Financials, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	u.Path = "/api/financials/" + corpCode

	var out Financials
	if err := c.getJSON(ctx, u.String(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) getJSON(ctx context.Context, rawurl string, out any) error {
	req, err := http.NewRequestWithContext(ctx, "GET", rawurl, nil)
	if err != nil {
		return fmt.Errorf("create request failed: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("dart api error (status %d): %s", res.StatusCode, string(body))
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response failed: %w", err)
	}
	return nil
}
