package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"dealwish-backend/config"
	"dealwish-backend/logging"
	"dealwish-backend/repository"
	"dealwish-backend/service"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	force := flag.Bool("force", false, "insert the sample deals even if the catalogue is not empty")
	subscriber := flag.String("subscriber", "", "email of a user to provision and mark as a subscriber")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	dealRepo := repository.NewDealRepository(pool)
	userRepo := repository.NewUserRepository(pool)

	if err := seedDeals(ctx, dealRepo, *force); err != nil {
		log.Fatalf("Failed to seed deals: %v", err)
	}

	if *subscriber != "" {
		users := service.NewUserDirectory(userRepo, logging.New(cfg.LogLevel))
		if _, err := users.Resolve(ctx, *subscriber, ""); err != nil {
			log.Fatalf("Failed to provision user: %v", err)
		}
		user, err := userRepo.SetSubscriber(ctx, *subscriber, true)
		if err != nil {
			log.Fatalf("Failed to mark subscriber: %v", err)
		}
		fmt.Printf("✅ Subscriber ready\n")
		fmt.Printf("   ID: %s\n", user.ID)
		fmt.Printf("   Email: %s\n", user.Email)
	}
}

func seedDeals(ctx context.Context, deals *repository.DealRepository, force bool) error {
	count, err := deals.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 && !force {
		log.Printf("Catalogue already has %d deals, skipping (use -force to insert anyway)", count)
		return nil
	}

	samples := sampleDeals(time.Now())
	for _, deal := range samples {
		if err := deals.Create(ctx, deal); err != nil {
			return err
		}
	}

	fmt.Printf("✅ Inserted %d sample deals\n", len(samples))
	return nil
}
