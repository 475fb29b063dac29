package assessment

import "strings"

// Stats 결과 화면의 요약 집계
type Stats struct {
	Violations int `json:"violations"`
	Fines      int `json:"fines"`
	Criminal   int `json:"criminal"`
}

// ComputeStats derives the result-page summary counts from a violation list.
// 과태료 건수는 부과 범위가 명시되고 "없음"이 아닌 항목, 형사처벌 건수는
// "예"인 항목이다.
func ComputeStats(records []ViolationRecord) Stats {
	st := Stats{Violations: len(records)}
	for _, r := range records {
		if r.FineRange != "" && !strings.Contains(r.FineRange, "없음") {
			st.Fines++
		}
		if r.CriminalLiability == "예" {
			st.Criminal++
		}
	}
	return st
}

// IndexByID indexes a violation list by question id for result rendering.
func IndexByID(records []ViolationRecord) map[string]ViolationRecord {
	idx := make(map[string]ViolationRecord, len(records))
	for _, r := range records {
		idx[r.ID] = r
	}
	return idx
}
