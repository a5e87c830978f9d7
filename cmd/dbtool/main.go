package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	_ "github.com/jackc/pgx/v5/stdlib"

	"velocity-model-service/internal/adapters/repositories"
	"velocity-model-service/internal/domain"
	"velocity-model-service/internal/platform/db"
)

// dbtool imports velocity model datasets from CSV files.
//
// Duplicate handling is an exact match on every imported column, which is
// stricter than the substring matching the query API applies to author and
// NFO; the mismatch is inherited from the dataset pipeline and kept as-is.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	if len(os.Args) < 3 {
		usage()
		os.Exit(1)
	}

	modelType := strings.ToLower(os.Args[1])
	path := os.Args[2]

	if _, err := os.Stat(path); err != nil {
		log.Fatalf("file not found: %s", path)
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	pool, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(pool); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	var stats repositories.ImportStats
	switch modelType {
	case "1d":
		stats, err = repositories.Import1DCSV(pool, path)
	case "3d":
		if len(os.Args) < 4 {
			log.Fatal("wave type (vp or vs) is required for 3d imports")
		}
		wave, perr := domain.ParseWaveType(os.Args[3])
		if perr != nil {
			log.Fatal(perr)
		}
		stats, err = repositories.Import3DCSV(pool, path, wave)
	case "bibref":
		stats, err = repositories.ImportBibrefsCSV(pool, path)
	default:
		log.Fatalf("invalid model type %q (valid: 1d, 3d, bibref)", modelType)
	}
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}

	log.Printf("Import complete: imported=%d skipped=%d updated=%d", stats.Imported, stats.Skipped, stats.Updated)
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: dbtool <1d|3d|bibref> <file.csv> [vp|vs]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "1D required columns:     Depth (km), Velocity (km/s), Type, NFO, Author")
	fmt.Fprintln(os.Stderr, "3D VP required columns:  Longitude, Latitude, Depth, Vp, NFO, Author")
	fmt.Fprintln(os.Stderr, "3D VS required columns:  Longitude, Latitude, Depth, Vs, NFO, Author")
	fmt.Fprintln(os.Stderr, "3D optional columns:     R")
	fmt.Fprintln(os.Stderr, "Bibref required columns: Author, Bibref")
}
