package dart

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearchCorpCodesPageTranslation(t *testing.T) {
	var gotPage string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPage = r.URL.Query().Get("page")
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{
			"content": [{"corpCode": "00123456", "corpName": "한빛전자", "stockCode": "123450"}],
			"totalElements": 1,
			"totalPages": 1,
			"number": 0
		}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", 5, 10, 600)
	out, err := c.SearchCorpCodes(context.Background(), 1, 10, "한빛", false)
	if err != nil {
		t.Fatalf("SearchCorpCodes error = %v", err)
	}
	// UI 의 1페이지는 상향 API 의 0페이지다
	if gotPage != "0" {
		t.Errorf("upstream page = %s, want 0", gotPage)
	}
	// 응답의 number 는 UI 기준으로 되돌아온다
	if out.Number != 1 {
		t.Errorf("Number = %d, want 1", out.Number)
	}
	if len(out.Content) != 1 || out.Content[0].CorpName != "한빛전자" {
		t.Errorf("Content = %+v", out.Content)
	}
}

func TestSearchCorpCodesQuery(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"size":           r.URL.Query().Get("size"),
			"corpNameFilter": r.URL.Query().Get("corpNameFilter"),
			"listedOnly":     r.URL.Query().Get("listedOnly"),
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"content": [], "totalElements": 0, "totalPages": 0, "number": 2}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", 5, 10, 600)
	out, err := c.SearchCorpCodes(context.Background(), 3, 20, "푸른", true)
	if err != nil {
		t.Fatalf("SearchCorpCodes error = %v", err)
	}
	if gotQuery["size"] != "20" || gotQuery["corpNameFilter"] != "푸른" || gotQuery["listedOnly"] != "true" {
		t.Errorf("query = %v", gotQuery)
	}
	if out.Number != 3 {
		t.Errorf("Number = %d, want 3", out.Number)
	}
}

func TestFetchFinancials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/financials/00123456" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{
			"corpCode": "00123456",
			"fiscalYear": "2025",
			"debtRatio": 150.2,
			"currentRatio": 120.5,
			"operatingMargin": 3.1,
			"revenueGrowth": -2.4
		}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", 5, 10, 600)
	fin, err := c.FetchFinancials(context.Background(), "00123456")
	if err != nil {
		t.Fatalf("FetchFinancials error = %v", err)
	}
	if fin.DebtRatio != 150.2 || fin.CurrentRatio != 120.5 {
		t.Errorf("financials = %+v", fin)
	}
}

func TestFetchFinancialsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", 5, 10, 600)
	if _, err := c.FetchFinancials(context.Background(), "00999999"); err == nil {
		t.Error("FetchFinancials error = nil, want error on status 502")
	}
}
