package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"velocity-model-service/internal/domain"
	"velocity-model-service/internal/platform/obs"
)

// Postgres-backed implementation of the ModelRepository and BibrefResolver
// ports. Author and NFO filters translate to ILIKE substring matches.
type PgModelRepository struct{ DB *sql.DB }

func NewPgModelRepository(db *sql.DB) *PgModelRepository {
	return &PgModelRepository{DB: db}
}

// grid3DTable maps a wave type to its table and velocity column. Table names
// cannot be bound as query parameters, so they come from this fixed mapping
// only, never from request input.
func grid3DTable(wave domain.WaveType) (table, column string) {
	if wave == domain.WaveS {
		return "velocity_models_3d_vs", "vs"
	}
	return "velocity_models_3d_vp", "vp"
}

// Count 1D profile points matching the author and NFO substring filters.
func (r *PgModelRepository) Count1D(ctx context.Context, author, nfo string) (int, error) {
	if r.DB == nil {
		return 0, errors.New("model repository: DB is nil")
	}

	query := `
	SELECT COUNT(*)
	FROM velocity_models_1d
	WHERE author ILIKE '%' || $1 || '%'
		AND nfo ILIKE '%' || $2 || '%';
	`
	var count int
	if err := r.DB.QueryRowContext(ctx, query, author, nfo).Scan(&count); err != nil {
		return 0, fmt.Errorf("count 1d models: %w", err)
	}

	return count, nil
}

// List 1D profile points ordered by depth ascending.
func (r *PgModelRepository) List1D(ctx context.Context, author, nfo string, limit, offset int) (_ []domain.ProfilePoint, err error) {
	defer obs.Time(ctx, "models.repo.List1D")(&err)

	if r.DB == nil {
		return nil, errors.New("model repository: DB is nil")
	}

	query := `
	SELECT depth, velocity, wave_type, nfo, author
	FROM velocity_models_1d
	WHERE author ILIKE '%' || $1 || '%'
		AND nfo ILIKE '%' || $2 || '%'
	ORDER BY depth ASC
	LIMIT $3 OFFSET $4;
	`
	rows, err := r.DB.QueryContext(ctx, query, author, nfo, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list 1d models: query velocity_models_1d: %w", err)
	}
	defer rows.Close()

	points := make([]domain.ProfilePoint, 0, 64)
	for rows.Next() {
		var p domain.ProfilePoint
		var wave string
		if err := rows.Scan(&p.Depth, &p.Velocity, &wave, &p.NFO, &p.Author); err != nil {
			return nil, fmt.Errorf("list 1d models: scan row: %w", err)
		}
		p.Wave = domain.WaveType(wave)
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list 1d models: row iteration: %w", err)
	}

	return points, nil
}

// Count 3D grid points of one wave type matching the author substring filter.
func (r *PgModelRepository) Count3D(ctx context.Context, wave domain.WaveType, author string) (int, error) {
	if r.DB == nil {
		return 0, errors.New("model repository: DB is nil")
	}

	table, _ := grid3DTable(wave)
	query := fmt.Sprintf(`
	SELECT COUNT(*)
	FROM %s
	WHERE author ILIKE '%%' || $1 || '%%';
	`, table)

	var count int
	if err := r.DB.QueryRowContext(ctx, query, author).Scan(&count); err != nil {
		return 0, fmt.Errorf("count 3d %s models: %w", wave, err)
	}

	return count, nil
}

// List 3D grid points ordered by longitude, latitude, depth ascending.
func (r *PgModelRepository) List3D(ctx context.Context, wave domain.WaveType, author string, limit, offset int) (_ []domain.GridPoint, err error) {
	defer obs.Time(ctx, "models.repo.List3D")(&err)

	if r.DB == nil {
		return nil, errors.New("model repository: DB is nil")
	}

	table, column := grid3DTable(wave)
	query := fmt.Sprintf(`
	SELECT longitude, latitude, depth, %s, r, nfo, author
	FROM %s
	WHERE author ILIKE '%%' || $1 || '%%'
	ORDER BY longitude ASC, latitude ASC, depth ASC
	LIMIT $2 OFFSET $3;
	`, column, table)

	rows, err := r.DB.QueryContext(ctx, query, author, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list 3d %s models: query %s: %w", wave, table, err)
	}
	defer rows.Close()

	points := make([]domain.GridPoint, 0, 64)
	for rows.Next() {
		var p domain.GridPoint
		var rVal sql.NullFloat64
		if err := rows.Scan(&p.Longitude, &p.Latitude, &p.Depth, &p.Velocity, &rVal, &p.NFO, &p.Author); err != nil {
			return nil, fmt.Errorf("list 3d %s models: scan row: %w", wave, err)
		}
		if rVal.Valid {
			v := rVal.Float64
			p.R = &v
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list 3d %s models: row iteration: %w", wave, err)
	}

	return points, nil
}

// Distinct author values across all three model tables, sorted.
func (r *PgModelRepository) Authors(ctx context.Context) ([]string, error) {
	return r.distinctValues(ctx, "author")
}

// Distinct NFO values across all three model tables, sorted.
func (r *PgModelRepository) NFOs(ctx context.Context) ([]string, error) {
	return r.distinctValues(ctx, "nfo")
}

func (r *PgModelRepository) distinctValues(ctx context.Context, column string) ([]string, error) {
	if r.DB == nil {
		return nil, errors.New("model repository: DB is nil")
	}

	// UNION deduplicates across the three tables.
	query := fmt.Sprintf(`
	SELECT %[1]s FROM velocity_models_1d WHERE %[1]s <> ''
	UNION
	SELECT %[1]s FROM velocity_models_3d_vp WHERE %[1]s <> ''
	UNION
	SELECT %[1]s FROM velocity_models_3d_vs WHERE %[1]s <> ''
	ORDER BY 1;
	`, column)

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("distinct %s values: %w", column, err)
	}
	defer rows.Close()

	values := make([]string, 0, 16)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("distinct %s values: scan row: %w", column, err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("distinct %s values: row iteration: %w", column, err)
	}

	return values, nil
}

// Bibref returns the bibliographic reference of the first author row whose
// name contains the given author as a case-insensitive substring. A missing
// mapping is an empty string, not an error.
func (r *PgModelRepository) Bibref(ctx context.Context, author string) (string, error) {
	if r.DB == nil {
		return "", errors.New("model repository: DB is nil")
	}

	query := `
	SELECT bibref
	FROM author_bibrefs
	WHERE author ILIKE '%' || $1 || '%'
	ORDER BY id ASC
	LIMIT 1;
	`
	var bibref string
	err := r.DB.QueryRowContext(ctx, query, author).Scan(&bibref)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("bibref lookup author=%q: %w", author, err)
	}

	return bibref, nil
}
