package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"shortlink-backend/internal/config"
	"shortlink-backend/internal/database"
	"shortlink-backend/internal/repository"

	"github.com/joho/godotenv"
)

// Deletes short URL records whose expiration deadline has passed. Expired
// records are kept around by the request path (so visitors see 410 instead of
// 404); this tool is how an operator reclaims them.
//
// Usage:
//
//	go run scripts/purge_expired.go [-dry-run] [-older-than 720h]
func main() {
	dryRun := flag.Bool("dry-run", false, "report what would be purged without deleting")
	olderThan := flag.Duration("older-than", 0, "only purge records expired for at least this long")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	cutoff := time.Now().Add(-*olderThan)
	repo := repository.NewShortURLRepository(db)

	if *dryRun {
		var count int64
		err := db.Table("short_urls").
			Where("expires_at IS NOT NULL AND expires_at < ?", cutoff).
			Count(&count).Error
		if err != nil {
			log.Fatalf("Failed to count expired records: %v", err)
		}
		fmt.Printf("Would purge %d expired short URL(s)\n", count)
		os.Exit(0)
	}

	purged, err := repo.PurgeExpired(cutoff)
	if err != nil {
		log.Fatalf("Failed to purge expired records: %v", err)
	}
	fmt.Printf("Purged %d expired short URL(s)\n", purged)
}
