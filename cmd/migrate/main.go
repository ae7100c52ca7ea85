package main

import (
	"context"
	"flag"
	"log"

	"dealwish-backend/config"
	"dealwish-backend/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

func main() {
	down := flag.Bool("down", false, "roll back the most recent migration instead of applying pending ones")
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

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if *down {
		if err := migrations.Down(ctx, db); err != nil {
			log.Fatalf("Failed to roll back migration: %v", err)
		}
		log.Println("✓ Rolled back the latest migration")
		return
	}

	if err := migrations.Up(ctx, db); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}
	log.Println("✓ Schema is up to date")
}
