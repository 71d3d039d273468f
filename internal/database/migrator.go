package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/deppfellow/storefront-admin/internal/config"
	"github.com/jackc/pgx/v5"
	tern "github.com/jackc/tern/v2/migrate"
	"github.com/rs/zerolog"
)

// versionTable records the applied catalog schema version.
const versionTable = "schema_version"

//go:embed migrations/*.sql
var migrations embed.FS

// catalogMigrations is the embedded migration set rooted at the migrations directory.
func catalogMigrations() (fs.FS, error) {
	return fs.Sub(migrations, "migrations")
}

// Migrate brings the products and sliders tables up to the latest embedded
// migration. It uses its own connection, not the request pool.
func Migrate(ctx context.Context, logger *zerolog.Logger, cfg *config.Config) error {
	conn, err := pgx.Connect(ctx, DSN(cfg.Database))
	if err != nil {
		return fmt.Errorf("connecting for migrations: %w", err)
	}
	defer conn.Close(ctx)

	return MigrateConn(ctx, logger, conn)
}

// MigrateConn applies the embedded migrations over conn.
func MigrateConn(ctx context.Context, logger *zerolog.Logger, conn *pgx.Conn) error {
	m, err := tern.NewMigrator(ctx, conn, versionTable)
	if err != nil {
		return fmt.Errorf("constructing database migrator: %w", err)
	}

	set, err := catalogMigrations()
	if err != nil {
		return fmt.Errorf("retrieving database migrations subtree: %w", err)
	}
	if err := m.LoadMigrations(set); err != nil {
		return fmt.Errorf("loading database migrations: %w", err)
	}

	from, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("retrieving current database migration version: %w", err)
	}

	target := int32(len(m.Migrations))
	log := logger.With().
		Str("component", "migrator").
		Int32("from_version", from).
		Int32("to_version", target).
		Logger()

	if from == target {
		log.Info().Msg("catalog schema up to date")
		return nil
	}

	if err := m.Migrate(ctx); err != nil {
		return fmt.Errorf("migrating catalog schema from version %d: %w", from, err)
	}

	log.Info().Msg("catalog schema migrated")
	return nil
}
