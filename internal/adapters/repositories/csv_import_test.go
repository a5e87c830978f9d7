package repositories

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCSVFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp csv: %v", err)
	}
	return path
}

func TestReadCSVColumnAccess(t *testing.T) {
	path := writeCSVFile(t, "Depth (km),Velocity (km/s),Type,NFO,Author\n0.0,5.80, vp ,CRUST1,Laske\n")

	table, err := readCSV(path, []string{"Depth (km)", "Velocity (km/s)", "Type", "NFO", "Author"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table.rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(table.rows))
	}

	row := table.rows[0]
	depth, err := table.float(row, "Depth (km)")
	if err != nil {
		t.Fatalf("parse depth: %v", err)
	}
	if depth != 0.0 {
		t.Fatalf("depth = %v, want 0", depth)
	}
	if got := table.text(row, "Type"); got != "vp" {
		t.Fatalf("type = %q, want trimmed %q", got, "vp")
	}
}

func TestReadCSVMissingColumns(t *testing.T) {
	path := writeCSVFile(t, "Longitude,Latitude,Vp\n1,2,3\n")

	_, err := readCSV(path, []string{"Longitude", "Latitude", "Depth", "Vp", "NFO", "Author"})
	if err == nil {
		t.Fatal("expected missing-column error")
	}
	for _, col := range []string{"Depth", "NFO", "Author"} {
		if !strings.Contains(err.Error(), col) {
			t.Fatalf("error %q does not name missing column %s", err, col)
		}
	}
}

func TestReadCSVEmptyFile(t *testing.T) {
	path := writeCSVFile(t, "")

	if _, err := readCSV(path, []string{"Author"}); err == nil {
		t.Fatal("expected error for file without header row")
	}
}

func TestReadCSVBadFloat(t *testing.T) {
	path := writeCSVFile(t, "Depth (km)\ndeep\n")

	table, err := readCSV(path, []string{"Depth (km)"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := table.float(table.rows[0], "Depth (km)"); err == nil {
		t.Fatal("expected parse error for non-numeric cell")
	}
}
