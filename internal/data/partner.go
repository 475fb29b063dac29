package data

import (
	"context"
	"database/sql"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/greenwise-dev/esg_board/internal/biz"
)

type partnerRepo struct {
	data *Data
	log  *log.Helper
}

func NewPartnerRepo(data *Data, logger log.Logger) biz.PartnerRepo {
	return &partnerRepo{data: data, log: log.NewHelper(logger)}
}

func (r *partnerRepo) List(ctx context.Context, orgID, offset, limit int, nameFilter string) ([]*biz.Partner, int, error) {
	filter := "%" + nameFilter + "%"

	rows, err := r.data.db.QueryContext(ctx, `
		SELECT id, org_id, company_name, corp_code, stock_code, contract_start_date, status
		FROM partner_companies
		WHERE org_id = $1 AND NOT deleted AND company_name ILIKE $2
		ORDER BY created_at DESC, id DESC
		LIMIT $3 OFFSET $4
	`, orgID, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var partners []*biz.Partner
	for rows.Next() {
		var p biz.Partner
		if err := rows.Scan(&p.ID, &p.OrgID, &p.CompanyName, &p.CorpCode, &p.StockCode, &p.ContractStartDate, &p.Status); err != nil {
			return nil, 0, err
		}
		partners = append(partners, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	err = r.data.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM partner_companies
		WHERE org_id = $1 AND NOT deleted AND company_name ILIKE $2
	`, orgID, filter).Scan(&total)
	if err != nil {
		return nil, 0, err
	}
	return partners, total, nil
}

func (r *partnerRepo) FindByCorpCode(ctx context.Context, orgID int, corpCode string) (*biz.Partner, bool, error) {
	var p biz.Partner
	var deleted bool
	err := r.data.db.QueryRowContext(ctx, `
		SELECT id, org_id, company_name, corp_code, stock_code, contract_start_date, status, deleted
		FROM partner_companies
		WHERE org_id = $1 AND corp_code = $2
	`, orgID, corpCode).Scan(&p.ID, &p.OrgID, &p.CompanyName, &p.CorpCode, &p.StockCode, &p.ContractStartDate, &p.Status, &deleted)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &p, deleted, nil
}

func (r *partnerRepo) Create(ctx context.Context, p *biz.Partner) (int64, error) {
	var id int64
	err := r.data.db.QueryRowContext(ctx, `
		INSERT INTO partner_companies (org_id, company_name, corp_code, stock_code, contract_start_date, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, p.OrgID, p.CompanyName, p.CorpCode, p.StockCode, p.ContractStartDate, p.Status).Scan(&id)
	return id, err
}

func (r *partnerRepo) Restore(ctx context.Context, id int64, contractStartDate, status string) error {
	_, err := r.data.db.ExecContext(ctx, `
		UPDATE partner_companies
		SET deleted = FALSE, contract_start_date = $2, status = $3
		WHERE id = $1
	`, id, contractStartDate, status)
	return err
}

func (r *partnerRepo) Get(ctx context.Context, orgID int, id int64) (*biz.Partner, error) {
	var p biz.Partner
	err := r.data.db.QueryRowContext(ctx, `
		SELECT id, org_id, company_name, corp_code, stock_code, contract_start_date, status
		FROM partner_companies
		WHERE org_id = $1 AND id = $2 AND NOT deleted
	`, orgID, id).Scan(&p.ID, &p.OrgID, &p.CompanyName, &p.CorpCode, &p.StockCode, &p.ContractStartDate, &p.Status)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("PARTNER_NOT_FOUND", "partner company not found")
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *partnerRepo) Update(ctx context.Context, orgID int, id int64, contractStartDate, status *string) (*biz.Partner, error) {
	res, err := r.data.db.ExecContext(ctx, `
		UPDATE partner_companies
		SET contract_start_date = COALESCE($3, contract_start_date),
		    status = COALESCE($4, status)
		WHERE org_id = $1 AND id = $2 AND NOT deleted
	`, orgID, id, contractStartDate, status)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, errors.NotFound("PARTNER_NOT_FOUND", "partner company not found")
	}
	return r.Get(ctx, orgID, id)
}

func (r *partnerRepo) SoftDelete(ctx context.Context, orgID int, id int64) error {
	res, err := r.data.db.ExecContext(ctx, `
		UPDATE partner_companies SET deleted = TRUE
		WHERE org_id = $1 AND id = $2 AND NOT deleted
	`, orgID, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.NotFound("PARTNER_NOT_FOUND", "partner company not found")
	}
	return nil
}

func (r *partnerRepo) CountByStatus(ctx context.Context, orgID int) (map[string]int, error) {
	rows, err := r.data.db.QueryContext(ctx, `
		SELECT status, COUNT(*) FROM partner_companies
		WHERE org_id = $1 AND NOT deleted
		GROUP BY status
	`, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}
