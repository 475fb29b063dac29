package server

import (
	nethttp "net/http"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/transport/http"

	"github.com/greenwise-dev/esg_board/internal/conf"
	"github.com/greenwise-dev/esg_board/internal/service"
)

func NewHTTPServer(c *conf.Server, s *service.EsgService, logger log.Logger) *http.Server {
	var opts = []http.ServerOption{
		http.Middleware(
			recovery.Recovery(),
		),
	}
	if c.Http.Addr != "" {
		opts = append(opts, http.Address(c.Http.Addr))
	}
	if c.Http.Timeout != "" {
		if d, err := time.ParseDuration(c.Http.Timeout); err == nil {
			opts = append(opts, http.Timeout(d))
		}
	}

	srv := http.NewServer(opts...)

	srv.HandleFunc("/healthz", func(w nethttp.ResponseWriter, _ *nethttp.Request) {
		w.WriteHeader(nethttp.StatusOK)
		w.Write([]byte("ok"))
	})

	r := srv.Route("/api/v1")

	r.POST("/auth/register", s.Register)
	r.POST("/auth/login", s.Login)

	r.GET("/diagnosis/{domain}/catalog", s.GetCatalog)
	r.GET("/diagnosis/{domain}/result", s.GetDiagnosisResult)
	r.POST("/diagnosis/{domain}/answers", s.SaveDiagnosisAnswers)

	r.GET("/partners/partner-companies", s.ListPartners)
	r.POST("/partners/partner-companies", s.CreatePartner)
	r.PATCH("/partners/partner-companies/{id}", s.UpdatePartner)
	r.DELETE("/partners/partner-companies/{id}", s.DeletePartner)
	r.GET("/partners/partner-companies/{code}/financial-risk", s.GetFinancialRisk)

	r.GET("/dart/corp-codes", s.SearchCorpCodes)

	r.GET("/dashboard/summary", s.GetDashboardSummary)

	return srv
}
