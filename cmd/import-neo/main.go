// Command import-neo copies upcoming near-earth object approaches from the
// NASA NeoWs feed into the events table.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"astro-booking/internal/config"
	"astro-booking/internal/database"
	"astro-booking/internal/nasa"
)

func main() {
	days := flag.Int("days", 7, "size of the feed window in days (the feed allows at most 7)")
	limit := flag.Int("limit", 0, "maximum number of events to import, 0 for all")
	flag.Parse()

	if *days < 1 || *days > 7 {
		log.Fatalf("days must be between 1 and 7, got %d", *days)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	db, err := database.New(cfg.DatabaseURL())
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now().UTC()
	feed := nasa.NewClient(cfg.NASAAPIURL, cfg.NASAAPIKey)
	neos, err := feed.NearEarthObjects(ctx, start, start.AddDate(0, 0, *days))
	if err != nil {
		log.Printf("Error fetching near-earth objects: %v", err)
		return
	}

	imported := 0
	for _, e := range nasa.ToEvents(neos, *limit) {
		created, err := db.CreateEvent(ctx, e)
		if err != nil {
			log.Printf("Error importing %q: %v", e.Title, err)
			continue
		}
		log.Printf("Imported event %d: %s on %s", created.ID, created.Title, created.EventDate.Format(nasa.DateLayout))
		imported++
	}
	log.Printf("Imported %d of %d near-earth objects", imported, len(neos))
}
