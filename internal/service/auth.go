package service

import (
	"net/http"

	"github.com/go-kratos/kratos/v2/errors"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
)

// RegisterReq 가입 요청
type RegisterReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
	OrgName  string `json:"orgName"`
}

// LoginReq 로그인 요청
type LoginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginReply 로그인 응답
type LoginReply struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// Register 는 조직 담당자 계정을 만든다.
func (s *EsgService) Register(ctx khttp.Context) error {
	var req RegisterReq
	if err := ctx.Bind(&req); err != nil {
		return errors.BadRequest("INVALID_BODY", err.Error())
	}
	if req.Username == "" || req.Password == "" {
		return errors.BadRequest("INVALID_BODY", "username and password are required")
	}
	if err := s.users.Register(ctx, req.Username, req.Password, req.OrgName); err != nil {
		return err
	}
	return ctx.Result(http.StatusOK, map[string]bool{"success": true})
}

// Login 은 인증 토큰을 발급한다.
func (s *EsgService) Login(ctx khttp.Context) error {
	var req LoginReq
	if err := ctx.Bind(&req); err != nil {
		return errors.BadRequest("INVALID_BODY", err.Error())
	}
	token, err := s.users.Login(ctx, req.Username, req.Password)
	if err != nil {
		return err
	}
	return ctx.Result(http.StatusOK, LoginReply{Token: token, Username: req.Username})
}
