package server

import (
	"github.com/google/wire"

	"github.com/greenwise-dev/esg_board/internal/biz"
	"github.com/greenwise-dev/esg_board/internal/conf"
	"github.com/greenwise-dev/esg_board/internal/data"
	"github.com/greenwise-dev/esg_board/internal/service"
	"github.com/greenwise-dev/esg_board/pkg/dart"
)

// ProviderSet 서비스 전체의 의존성 주입 Provider 집합
var ProviderSet = wire.NewSet(
	// Server providers
	NewHTTPServer,
	NewDartClient,

	// Data providers
	data.NewData,
	data.NewUserRepo,
	data.NewDiagnosisRepo,
	data.NewPartnerRepo,

	// UseCase providers
	biz.NewUserUseCase,
	biz.NewDiagnosisUseCase,
	biz.NewPartnerUseCase,
	biz.NewRiskUseCase,
	biz.NewDashboardUseCase,
	wire.Bind(new(biz.FinancialFetcher), new(*dart.Client)),

	// Service providers
	service.NewEsgService,
)

// NewDartClient 는 설정으로 DART 클라이언트를 만든다.
func NewDartClient(c *conf.Dart) *dart.Client {
	if c == nil {
		return dart.NewClient("https://opendart.fss.or.kr", "", 0, 0, 0)
	}
	return dart.NewClient(c.BaseUrl, c.ApiKey, int(c.Timeout), int(c.Qps), int(c.Rpm))
}
