package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/BruksfildServices01/barber-marketplace/internal/app"
	"github.com/BruksfildServices01/barber-marketplace/internal/config"
	"github.com/BruksfildServices01/barber-marketplace/internal/logger"
	"github.com/BruksfildServices01/barber-marketplace/internal/seed"
)

func main() {
	sampleUser := flag.String("sample-barber", "", "also create a demo barber profile owned by this user id")
	flag.Parse()

	cfg := config.Load()
	stores, err := app.OpenStores(cfg, logger.New(cfg.LogLevel))
	if err != nil {
		log.Fatal(err)
	}
	defer stores.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := seed.Subscriptions(ctx, stores.Catalog); err != nil {
		log.Fatal(err)
	}
	log.Println("subscription plans seeded")

	if *sampleUser != "" {
		b, err := seed.SampleBarber(ctx, stores.Catalog, *sampleUser)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("sample barber %d ready for user %s", b.ID, *sampleUser)
	}
}
