// Package esgclient 는 ESG 대시보드 백엔드 API 의 클라이언트 어댑터다.
// 진단 결과 조회의 404 는 "아직 진단 없음"을 뜻하므로 호출자에게는 빈 목록으로
// 돌려주며, HTTP 상태 코드는 이 패키지 밖으로 새지 않는다.
package esgclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/greenwise-dev/esg_board/pkg/assessment"
	"github.com/greenwise-dev/esg_board/pkg/catalog"
)

// Client ESG 백엔드 API 클라이언트
type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewClient 는 주어진 베이스 URL 에 대한 클라이언트를 만든다.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.client.Do(req)
}

// DiagnosisClient 는 하나의 규제 영역에 대한 fetch/save 엔드포인트 쌍이다.
type DiagnosisClient struct {
	c      *Client
	domain catalog.Domain
}

// Diagnosis returns the adapter for one assessment domain.
func (c *Client) Diagnosis(d catalog.Domain) *DiagnosisClient {
	return &DiagnosisClient{c: c, domain: d}
}

// Ensure DiagnosisClient implements assessment.Store
var _ assessment.Store = (*DiagnosisClient)(nil)

// FetchResult 는 현재 조직의 위반 기록을 조회한다. 404 는 빈 결과로 취급한다.
func (d *DiagnosisClient) FetchResult(ctx context.Context) ([]assessment.ViolationRecord, error) {
	url := fmt.Sprintf("%s/api/v1/diagnosis/%s/result", d.c.baseURL, d.domain)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}

	res, err := d.c.do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		// 아직 저장된 진단이 없음
		return nil, nil
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read body failed: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("diagnosis api error (status %d): %s", res.StatusCode, string(body))
	}

	var records []assessment.ViolationRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("unmarshal response failed: %w", err)
	}
	return records, nil
}

// SaveAnswers 는 "아니오" 응답만 담긴 매핑을 전송한다.
func (d *DiagnosisClient) SaveAnswers(ctx context.Context, answers map[string]bool) error {
	payload, err := json.Marshal(map[string]any{"answers": answers})
	if err != nil {
		return fmt.Errorf("marshal request failed: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/diagnosis/%s/answers", d.c.baseURL, d.domain)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request failed: %w", err)
	}

	res, err := d.c.do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("diagnosis api error (status %d): %s", res.StatusCode, string(body))
	}
	return nil
}
