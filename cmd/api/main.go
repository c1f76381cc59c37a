package main

import (
	"context"
	"log"

	"github.com/gestion-proyectos/proyectos-backend/config"
	"github.com/gestion-proyectos/proyectos-backend/internal/bootstrap"
	"github.com/gestion-proyectos/proyectos-backend/internal/db"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	if err := db.RunMigrations(cfg.Database.URL, cfg.Database.MigrationsPath); err != nil {
		log.Fatalf("migrations: %v", err)
	}
	log.Println("database migrations completed")

	ctx := context.Background()
	pool, err := bootstrap.OpenDB(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()
	log.Println("connected to PostgreSQL")

	if cfg.AI.APIKey == "" {
		log.Println("GEMINI_API_KEY not set: analysis will answer in degraded mode")
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "proyectos-backend",
		Version:     cfg.App.Version,
		AI:          cfg.AI,
		DB:          pool,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
