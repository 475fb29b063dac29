package esgclient

import "sync/atomic"

// Sequencer 는 검색처럼 겹칠 수 있는 요청에 단조 증가 번호를 붙여, 가장 최근
// 요청의 응답만 반영되도록 한다. 느린 이전 응답이 나중에 도착해도 폐기된다.
type Sequencer struct {
	latest atomic.Uint64
}

// Next issues a new request token and makes it the latest.
func (s *Sequencer) Next() uint64 {
	return s.latest.Add(1)
}

// Latest reports whether token still belongs to the most recent request.
func (s *Sequencer) Latest(token uint64) bool {
	return s.latest.Load() == token
}
