package repositories

import (
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"velocity-model-service/internal/domain"
)

// ImportStats reports the outcome of one CSV import run.
type ImportStats struct {
	Imported int
	Skipped  int // exact duplicates of already-stored records
	Updated  int // bibref rows whose reference text changed
}

// csvTable is a parsed CSV file with header-name column access.
type csvTable struct {
	columns map[string]int
	rows    [][]string
}

func readCSV(path string, required []string) (*csvTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read csv: open %q: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: parse %q: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read csv: %q has no header row", path)
	}

	columns := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		columns[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, name := range required {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("read csv: %q missing required columns %v (required: %v)", path, missing, required)
	}

	return &csvTable{columns: columns, rows: records[1:]}, nil
}

func (t *csvTable) text(row []string, column string) string {
	return strings.TrimSpace(row[t.columns[column]])
}

func (t *csvTable) float(row []string, column string) (float64, error) {
	v, err := strconv.ParseFloat(t.text(row, column), 64)
	if err != nil {
		return 0, fmt.Errorf("column %q: %w", column, err)
	}
	return v, nil
}

// Import1DCSV loads 1D profile records from a CSV file.
// Rows identical to an already-stored record across every field are skipped;
// this exact-match dedupe is stricter than the substring matching used at
// query time, a known quirk of the dataset pipeline.
func Import1DCSV(db *sql.DB, path string) (ImportStats, error) {
	var stats ImportStats
	if db == nil {
		return stats, errors.New("import 1d: DB is nil")
	}

	table, err := readCSV(path, []string{"Depth (km)", "Velocity (km/s)", "Type", "NFO", "Author"})
	if err != nil {
		return stats, fmt.Errorf("import 1d: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return stats, fmt.Errorf("import 1d: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
	INSERT INTO velocity_models_1d (depth, velocity, wave_type, nfo, author)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (depth, velocity, wave_type, nfo, author) DO NOTHING;
	`)
	if err != nil {
		return stats, fmt.Errorf("import 1d: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, row := range table.rows {
		depth, err := table.float(row, "Depth (km)")
		if err != nil {
			return stats, fmt.Errorf("import 1d: row %d: %w", i+1, err)
		}
		velocity, err := table.float(row, "Velocity (km/s)")
		if err != nil {
			return stats, fmt.Errorf("import 1d: row %d: %w", i+1, err)
		}
		wave := strings.ToUpper(table.text(row, "Type"))
		nfo := table.text(row, "NFO")
		author := table.text(row, "Author")

		res, err := stmt.Exec(depth, velocity, wave, nfo, author)
		if err != nil {
			return stats, fmt.Errorf("import 1d: insert row %d: %w", i+1, err)
		}
		countInsert(&stats, res)
	}

	if err := tx.Commit(); err != nil {
		return stats, fmt.Errorf("import 1d: commit tx: %w", err)
	}

	return stats, nil
}

// Import3DCSV loads 3D grid records of one wave type from a CSV file.
// The R column is optional; empty or missing cells default to 1.0.
func Import3DCSV(db *sql.DB, path string, wave domain.WaveType) (ImportStats, error) {
	var stats ImportStats
	if db == nil {
		return stats, errors.New("import 3d: DB is nil")
	}

	tableName, velColumn := grid3DTable(wave)
	csvVelColumn := wave.ColumnName()

	table, err := readCSV(path, []string{"Longitude", "Latitude", "Depth", csvVelColumn, "NFO", "Author"})
	if err != nil {
		return stats, fmt.Errorf("import 3d %s: %w", wave, err)
	}
	_, hasR := table.columns["R"]

	tx, err := db.Begin()
	if err != nil {
		return stats, fmt.Errorf("import 3d %s: begin tx: %w", wave, err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(fmt.Sprintf(`
	INSERT INTO %[1]s (longitude, latitude, depth, %[2]s, r, nfo, author)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (longitude, latitude, depth, %[2]s, nfo, author) DO NOTHING;
	`, tableName, velColumn))
	if err != nil {
		return stats, fmt.Errorf("import 3d %s: prepare insert: %w", wave, err)
	}
	defer stmt.Close()

	for i, row := range table.rows {
		lon, err := table.float(row, "Longitude")
		if err != nil {
			return stats, fmt.Errorf("import 3d %s: row %d: %w", wave, i+1, err)
		}
		lat, err := table.float(row, "Latitude")
		if err != nil {
			return stats, fmt.Errorf("import 3d %s: row %d: %w", wave, i+1, err)
		}
		depth, err := table.float(row, "Depth")
		if err != nil {
			return stats, fmt.Errorf("import 3d %s: row %d: %w", wave, i+1, err)
		}
		velocity, err := table.float(row, csvVelColumn)
		if err != nil {
			return stats, fmt.Errorf("import 3d %s: row %d: %w", wave, i+1, err)
		}

		rValue := 1.0
		if hasR {
			if cell := table.text(row, "R"); cell != "" {
				rValue, err = strconv.ParseFloat(cell, 64)
				if err != nil {
					return stats, fmt.Errorf("import 3d %s: row %d: column \"R\": %w", wave, i+1, err)
				}
			}
		}

		nfo := table.text(row, "NFO")
		author := table.text(row, "Author")

		res, err := stmt.Exec(lon, lat, depth, velocity, rValue, nfo, author)
		if err != nil {
			return stats, fmt.Errorf("import 3d %s: insert row %d: %w", wave, i+1, err)
		}
		countInsert(&stats, res)
	}

	if err := tx.Commit(); err != nil {
		return stats, fmt.Errorf("import 3d %s: commit tx: %w", wave, err)
	}

	return stats, nil
}

// ImportBibrefsCSV loads author -> bibref mappings. Existing authors keep
// their row; the bibref text is updated when it changed.
func ImportBibrefsCSV(db *sql.DB, path string) (ImportStats, error) {
	var stats ImportStats
	if db == nil {
		return stats, errors.New("import bibrefs: DB is nil")
	}

	table, err := readCSV(path, []string{"Author", "Bibref"})
	if err != nil {
		return stats, fmt.Errorf("import bibrefs: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return stats, fmt.Errorf("import bibrefs: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
	INSERT INTO author_bibrefs (author, bibref)
	VALUES ($1, $2)
	ON CONFLICT (author) DO UPDATE
	SET bibref = EXCLUDED.bibref
	WHERE author_bibrefs.bibref <> EXCLUDED.bibref
	RETURNING (xmax = 0) AS inserted;
	`)
	if err != nil {
		return stats, fmt.Errorf("import bibrefs: prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, row := range table.rows {
		author := table.text(row, "Author")
		bibref := table.text(row, "Bibref")

		var inserted bool
		err := stmt.QueryRow(author, bibref).Scan(&inserted)
		if errors.Is(err, sql.ErrNoRows) {
			// Conflict with identical bibref: no row returned, nothing changed.
			stats.Skipped++
			continue
		}
		if err != nil {
			return stats, fmt.Errorf("import bibrefs: upsert author=%q: %w", author, err)
		}
		if inserted {
			stats.Imported++
		} else {
			stats.Updated++
		}
	}

	if err := tx.Commit(); err != nil {
		return stats, fmt.Errorf("import bibrefs: commit tx: %w", err)
	}

	return stats, nil
}

func countInsert(stats *ImportStats, res sql.Result) {
	// RowsAffected never fails for pgx exec results.
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		stats.Skipped++
		return
	}
	stats.Imported++
}
