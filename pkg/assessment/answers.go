package assessment

import "github.com/greenwise-dev/esg_board/pkg/catalog"

// Answer 문항에 대한 예/아니오 응답
type Answer string

const (
	Yes Answer = "yes"
	No  Answer = "no"
)

// ViolationRecord 위반("아니오" 응답) 문항의 법적 노출 정보.
// 서버가 카탈로그 메타데이터와 결합하여 파생하며, 클라이언트는 조회만 한다.
type ViolationRecord struct {
	ID                string `json:"id"`
	QuestionText      string `json:"questionText"`
	LegalRelevance    string `json:"legalRelevance"`
	LegalBasis        string `json:"legalBasis"`
	FineRange         string `json:"fineRange"`
	CriminalLiability string `json:"criminalLiability"`
}

// AnswerSheet 진행 중인 자가진단 세션의 응답 상태.
// "예"가 기본값이며, 저장 시에는 "아니오" 응답만 전송된다.
// 이 규약은 NegativeOnly 한 곳에서만 구현한다.
type AnswerSheet struct {
	answers map[string]Answer
}

// NewAnswerSheet seeds every catalog item with the default "yes" answer.
func NewAnswerSheet(cat *catalog.Catalog) *AnswerSheet {
	s := &AnswerSheet{answers: make(map[string]Answer)}
	for _, item := range cat.Items() {
		s.answers[item.ID] = Yes
	}
	return s
}

// MergeViolations flips the listed ids to "no". Ids absent from the list keep
// their current value; the merge is idempotent.
func (s *AnswerSheet) MergeViolations(records []ViolationRecord) {
	for _, r := range records {
		s.answers[r.ID] = No
	}
}

// Set overwrites a single answer. The id is not checked against the catalog.
func (s *AnswerSheet) Set(id string, a Answer) {
	s.answers[id] = a
}

// Get returns the current answer for id.
func (s *AnswerSheet) Get(id string) (Answer, bool) {
	a, ok := s.answers[id]
	return a, ok
}

// Len returns the number of tracked answers.
func (s *AnswerSheet) Len() int { return len(s.answers) }

// NegativeOnly returns the save payload: exactly the ids currently answered
// "no", each mapped to false. Pure read.
func (s *AnswerSheet) NegativeOnly() map[string]bool {
	out := make(map[string]bool)
	for id, a := range s.answers {
		if a == No {
			out[id] = false
		}
	}
	return out
}
