package main

import (
	"context"
	"log"
	"net/http"

	"fintrack-server/src/analytics"
	"fintrack-server/src/api"
	"fintrack-server/src/config"
	"fintrack-server/src/db"
	sqldb "fintrack-server/src/db/sql"
)

func main() {
	cfg := config.Load()

	// Connect to database
	pool, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}
	defer pool.Close()

	if err := db.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Migrations failed: %v", err)
	}

	db.InitCache()

	store := sqldb.NewStore(pool)
	svc := analytics.NewService(store, analytics.ARIMAForecaster{})

	// Router
	router := api.NewRouter(pool, svc)

	log.Println("API server running on port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal(err)
	}
}
