package repositories

import (
	"context"
	"database/sql"
	"embed"

	"github.com/cockroachdb/errors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/rentalworks/erp-backend/infra"
	"github.com/rentalworks/erp-backend/utils"
)

// embed migrations sql folder
//
//go:embed migrations/*.sql
var embedMigrations embed.FS

type Migrater struct {
	pgConfig infra.PgConfig
}

func NewMigrater(pgConfig infra.PgConfig) *Migrater {
	return &Migrater{
		pgConfig: pgConfig,
	}
}

func (m *Migrater) Run(ctx context.Context) error {
	db, err := sql.Open("pgx", m.pgConfig.GetConnectionString())
	if err != nil {
		return errors.Wrap(err, "unable to connect to database")
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return errors.Wrap(err, "unable to ping database")
	}

	logger := utils.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "migrations starting")

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return errors.Wrap(err, "unable to run migrations")
	}

	logger.InfoContext(ctx, "migrations done")
	return nil
}
