package biz

import (
	"context"
	"time"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/greenwise-dev/esg_board/internal/conf"
)

// User 사용자(조직 담당자) 엔티티. 진단/협력회사 데이터는 사용자 id 를
// 조직 키로 쓴다.
type User struct {
	ID           int
	Username     string
	PasswordHash string
	OrgName      string
}

// UserRepo 사용자 저장소 인터페이스
type UserRepo interface {
	CreateUser(ctx context.Context, u *User) error
	GetUserByUsername(ctx context.Context, username string) (*User, error)
}

// UserUseCase 가입/로그인/토큰 검증 업무 로직
type UserUseCase struct {
	repo   UserRepo
	log    *log.Helper
	jwtKey string
}

func NewUserUseCase(repo UserRepo, auth *conf.Auth, logger log.Logger) *UserUseCase {
	jwtKey := "default-secret"
	if auth != nil && auth.JwtKey != "" {
		jwtKey = auth.JwtKey
	}
	return &UserUseCase{repo: repo, log: log.NewHelper(logger), jwtKey: jwtKey}
}

// Register 신규 사용자 등록
func (uc *UserUseCase) Register(ctx context.Context, username, password, orgName string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.repo.CreateUser(ctx, &User{
		Username:     username,
		PasswordHash: string(hashed),
		OrgName:      orgName,
	})
}

// Login 은 인증에 성공하면 24시간 유효한 HS256 토큰을 발급한다.
func (uc *UserUseCase) Login(ctx context.Context, username, password string) (string, error) {
	u, err := uc.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", errors.Unauthorized("AUTH_FAILED", "invalid password")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": u.Username,
		"org_id":   u.ID,
		"exp":      time.Now().Add(time.Hour * 24).Unix(),
	})
	return token.SignedString([]byte(uc.jwtKey))
}

// ParseToken 은 Bearer 토큰을 검증하고 조직 id 를 돌려준다.
func (uc *UserUseCase) ParseToken(tokenStr string) (int, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Unauthorized("AUTH_FAILED", "unexpected signing method")
		}
		return []byte(uc.jwtKey), nil
	})
	if err != nil || !token.Valid {
		return 0, errors.Unauthorized("AUTH_FAILED", "invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.Unauthorized("AUTH_FAILED", "invalid claims")
	}
	orgID, ok := claims["org_id"].(float64)
	if !ok {
		return 0, errors.Unauthorized("AUTH_FAILED", "missing org claim")
	}
	return int(orgID), nil
}
