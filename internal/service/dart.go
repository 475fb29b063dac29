package service

import (
	"net/http"

	khttp "github.com/go-kratos/kratos/v2/transport/http"
)

// SearchCorpCodes 는 DART 기업개황을 조회한다. 질의의 page 는 1-based 이며
// 상향 API 의 0-based 변환은 dart 클라이언트가 맡는다.
func (s *EsgService) SearchCorpCodes(ctx khttp.Context) error {
	if _, err := s.orgFrom(ctx); err != nil {
		return err
	}

	page := queryInt(ctx, "page", 1)
	size := queryInt(ctx, "size", 10)
	filter := ctx.Query().Get("corpNameFilter")
	listedOnly := ctx.Query().Get("listedOnly") == "true"

	result, err := s.dart.SearchCorpCodes(ctx, page, size, filter, listedOnly)
	if err != nil {
		s.log.WithContext(ctx).Errorf("dart corp-codes search failed: %v", err)
		return err
	}
	return ctx.Result(http.StatusOK, result)
}
