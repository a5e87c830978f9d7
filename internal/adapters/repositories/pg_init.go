package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres schema for velocity model storage.
// The unique indexes over the data columns back the import-time duplicate
// check (exact match on every imported field; R is deliberately excluded to
// mirror the legacy importer).
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createModels1DQuery := `
	CREATE TABLE IF NOT EXISTS velocity_models_1d (
		id BIGSERIAL PRIMARY KEY,
		depth DOUBLE PRECISION NOT NULL,
		velocity DOUBLE PRECISION NOT NULL,
		wave_type TEXT NOT NULL,
		nfo TEXT NOT NULL,
		author TEXT NOT NULL
	);
	`

	createModels3DVPQuery := `
	CREATE TABLE IF NOT EXISTS velocity_models_3d_vp (
		id BIGSERIAL PRIMARY KEY,
		longitude DOUBLE PRECISION NOT NULL,
		latitude DOUBLE PRECISION NOT NULL,
		depth DOUBLE PRECISION NOT NULL,
		vp DOUBLE PRECISION NOT NULL,
		r DOUBLE PRECISION,
		nfo TEXT NOT NULL,
		author TEXT NOT NULL
	);
	`

	createModels3DVSQuery := `
	CREATE TABLE IF NOT EXISTS velocity_models_3d_vs (
		id BIGSERIAL PRIMARY KEY,
		longitude DOUBLE PRECISION NOT NULL,
		latitude DOUBLE PRECISION NOT NULL,
		depth DOUBLE PRECISION NOT NULL,
		vs DOUBLE PRECISION NOT NULL,
		r DOUBLE PRECISION,
		nfo TEXT NOT NULL,
		author TEXT NOT NULL
	);
	`

	createBibrefsQuery := `
	CREATE TABLE IF NOT EXISTS author_bibrefs (
		id BIGSERIAL PRIMARY KEY,
		author TEXT NOT NULL UNIQUE,
		bibref TEXT NOT NULL
	);
	`

	statements := []string{
		createModels1DQuery,
		createModels3DVPQuery,
		createModels3DVSQuery,
		createBibrefsQuery,
		`CREATE INDEX IF NOT EXISTS idx_models_1d_author ON velocity_models_1d(author);`,
		`CREATE INDEX IF NOT EXISTS idx_models_1d_nfo ON velocity_models_1d(nfo);`,
		`CREATE INDEX IF NOT EXISTS idx_models_1d_depth ON velocity_models_1d(depth);`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_models_1d_record
		 ON velocity_models_1d(depth, velocity, wave_type, nfo, author);`,
		`CREATE INDEX IF NOT EXISTS idx_models_3d_vp_author ON velocity_models_3d_vp(author);`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_models_3d_vp_record
		 ON velocity_models_3d_vp(longitude, latitude, depth, vp, nfo, author);`,
		`CREATE INDEX IF NOT EXISTS idx_models_3d_vs_author ON velocity_models_3d_vs(author);`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_models_3d_vs_record
		 ON velocity_models_3d_vs(longitude, latitude, depth, vs, nfo, author);`,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
