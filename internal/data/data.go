package data

import (
	"database/sql"
	"fmt"

	"github.com/go-kratos/kratos/v2/log"
	_ "github.com/lib/pq"

	"github.com/greenwise-dev/esg_board/internal/conf"
)

type Data struct {
	db *sql.DB
}

func NewData(c *conf.Data, logger log.Logger) (*Data, func(), error) {
	db, err := sql.Open(c.Database.Driver, c.Database.Source)
	if err != nil {
		return nil, nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, nil, err
	}

	// Init schema
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			org_name TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return nil, nil, fmt.Errorf("failed to init users table: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS diagnosis_violations (
			id SERIAL PRIMARY KEY,
			org_id INTEGER NOT NULL,
			domain TEXT NOT NULL,
			question_id TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (org_id, domain, question_id)
		)
	`); err != nil {
		return nil, nil, fmt.Errorf("failed to init diagnosis_violations table: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS diagnosis_submissions (
			org_id INTEGER NOT NULL,
			domain TEXT NOT NULL,
			submitted_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (org_id, domain)
		)
	`); err != nil {
		return nil, nil, fmt.Errorf("failed to init diagnosis_submissions table: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS partner_companies (
			id SERIAL PRIMARY KEY,
			org_id INTEGER NOT NULL,
			company_name TEXT NOT NULL,
			corp_code TEXT NOT NULL,
			stock_code TEXT NOT NULL DEFAULT '',
			contract_start_date TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'PENDING',
			deleted BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (org_id, corp_code)
		)
	`); err != nil {
		return nil, nil, fmt.Errorf("failed to init partner_companies table: %w", err)
	}

	cleanup := func() {
		log.NewHelper(logger).Info("closing the data resources")
		db.Close()
	}
	return &Data{db: db}, cleanup, nil
}
