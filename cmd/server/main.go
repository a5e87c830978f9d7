package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	_ "github.com/jackc/pgx/v5/stdlib"

	"velocity-model-service/internal/adapters/cache"
	"velocity-model-service/internal/adapters/repositories"
	"velocity-model-service/internal/api"
	"velocity-model-service/internal/config"
	"velocity-model-service/internal/platform/db"
	"velocity-model-service/internal/ports"
)

const (
	serviceName    = "velocitrack"
	serviceVersion = "1.2.0"

	bibrefCacheTTL = time.Hour
)

// main is the application composition root.
// It wires the Postgres repository and the optional Redis bibref cache
// behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	port := config.Get("PORT", "8001")
	redisAddr := config.Get("REDIS_ADDR", "")

	pool, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	// Create tables on startup so a fresh database serves empty results
	// instead of failing.
	if err := repositories.InitSchema(pool); err != nil {
		log.Fatal(err)
	}

	repo := repositories.NewPgModelRepository(pool)

	// Bibref lookups hit the store on every model request; Redis caches them
	// when configured, and the repository answers directly otherwise.
	var bibrefs ports.BibrefResolver = repo
	if redisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: redisAddr})
		bibrefs = cache.NewRedisBibrefCache(client, repo, bibrefCacheTTL)
		log.Printf("Bibref cache enabled redis=%s ttl=%s", redisAddr, bibrefCacheTTL)
	}

	router := api.NewRouter(repo, bibrefs, serviceName, serviceVersion)

	// WriteTimeout allows for max-limit (100k row) text responses on slow links.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
