package data

import (
	"context"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/greenwise-dev/esg_board/internal/biz"
	"github.com/greenwise-dev/esg_board/pkg/catalog"
)

type diagnosisRepo struct {
	data *Data
	log  *log.Helper
}

func NewDiagnosisRepo(data *Data, logger log.Logger) biz.DiagnosisRepo {
	return &diagnosisRepo{data: data, log: log.NewHelper(logger)}
}

// ReplaceViolations 는 트랜잭션 안에서 기존 위반 집합을 지우고 제출본으로
// 바꾼 뒤 제출 이력을 남긴다.
func (r *diagnosisRepo) ReplaceViolations(ctx context.Context, orgID int, domain catalog.Domain, ids []string) error {
	tx, err := r.data.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM diagnosis_violations WHERE org_id = $1 AND domain = $2`,
		orgID, string(domain)); err != nil {
		return err
	}
	for _, id := range ids {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO diagnosis_violations (org_id, domain, question_id) VALUES ($1, $2, $3)`,
			orgID, string(domain), id); err != nil {
			return err
		}
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO diagnosis_submissions (org_id, domain, submitted_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (org_id, domain) DO UPDATE SET submitted_at = CURRENT_TIMESTAMP
	`, orgID, string(domain)); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *diagnosisRepo) ListViolationIDs(ctx context.Context, orgID int, domain catalog.Domain) (bool, []string, error) {
	var submitted bool
	err := r.data.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM diagnosis_submissions WHERE org_id = $1 AND domain = $2)`,
		orgID, string(domain)).Scan(&submitted)
	if err != nil {
		return false, nil, err
	}
	if !submitted {
		return false, nil, nil
	}

	rows, err := r.data.db.QueryContext(ctx,
		`SELECT question_id FROM diagnosis_violations WHERE org_id = $1 AND domain = $2 ORDER BY question_id`,
		orgID, string(domain))
	if err != nil {
		return false, nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return false, nil, err
		}
		ids = append(ids, id)
	}
	return true, ids, rows.Err()
}
