package service

import (
	"strings"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	khttp "github.com/go-kratos/kratos/v2/transport/http"

	"github.com/greenwise-dev/esg_board/internal/biz"
	"github.com/greenwise-dev/esg_board/pkg/dart"
)

// EsgService ESG 대시보드 HTTP 핸들러 계층
type EsgService struct {
	users     *biz.UserUseCase
	diagnosis *biz.DiagnosisUseCase
	partners  *biz.PartnerUseCase
	risk      *biz.RiskUseCase
	dashboard *biz.DashboardUseCase
	dart      *dart.Client
	log       *log.Helper
}

func NewEsgService(
	users *biz.UserUseCase,
	diagnosis *biz.DiagnosisUseCase,
	partners *biz.PartnerUseCase,
	risk *biz.RiskUseCase,
	dashboard *biz.DashboardUseCase,
	dartClient *dart.Client,
	logger log.Logger,
) *EsgService {
	return &EsgService{
		users:     users,
		diagnosis: diagnosis,
		partners:  partners,
		risk:      risk,
		dashboard: dashboard,
		dart:      dartClient,
		log:       log.NewHelper(logger),
	}
}

// orgFrom 은 Bearer 토큰에서 조직 id 를 꺼낸다.
func (s *EsgService) orgFrom(ctx khttp.Context) (int, error) {
	auth := ctx.Header().Get("Authorization")
	token, ok := strings.CutPrefix(auth, "Bearer ")
	if !ok || token == "" {
		return 0, errors.Unauthorized("AUTH_FAILED", "missing bearer token")
	}
	return s.users.ParseToken(token)
}
