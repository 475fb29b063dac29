package data

import (
	"context"
	"database/sql"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/greenwise-dev/esg_board/internal/biz"
)

type userRepo struct {
	data *Data
	log  *log.Helper
}

func NewUserRepo(data *Data, logger log.Logger) biz.UserRepo {
	return &userRepo{data: data, log: log.NewHelper(logger)}
}

func (r *userRepo) CreateUser(ctx context.Context, u *biz.User) error {
	err := r.data.db.QueryRowContext(ctx, `
		INSERT INTO users (username, password_hash, org_name)
		VALUES ($1, $2, $3)
		RETURNING id
	`, u.Username, u.PasswordHash, u.OrgName).Scan(&u.ID)
	return err
}

func (r *userRepo) GetUserByUsername(ctx context.Context, username string) (*biz.User, error) {
	var u biz.User
	err := r.data.db.QueryRowContext(ctx, `
		SELECT id, username, password_hash, org_name FROM users WHERE username = $1
	`, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.OrgName)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("USER_NOT_FOUND", "user not found")
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
