package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/time/rate"

	"github.com/sabeelnahmed/bendersdummy/config"
	"github.com/sabeelnahmed/bendersdummy/internal/auth/sessions"
	"github.com/sabeelnahmed/bendersdummy/internal/bootstrap"
	"github.com/sabeelnahmed/bendersdummy/internal/housekeeping"
)

const serviceName = "bendersdummy"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	// Optional Postgres, only surfaced through the health endpoint.
	var db *pgxpool.Pool
	if cfg.Server.DatabaseDSN != "" {
		db, err = bootstrap.OpenDB(ctx, cfg.Server.DatabaseDSN)
		if err != nil {
			log.Fatalf("db: %v", err)
		}
		defer db.Close()
	}

	rdb, closeRedis, err := bootstrap.OpenRedis(ctx, cfg.Session.RedisAddr)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer closeRedis()

	store := sessions.New(rdb, cfg.Session.TokenTTL)

	janitor := housekeeping.NewScheduler(store)
	if err := janitor.Start(); err != nil {
		log.Fatalf("housekeeping: %v", err)
	}
	defer janitor.Stop()

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		DB:          db,
		Redis:       rdb,
		Sessions:    store,
		LoginLimit:  rate.NewLimiter(rate.Limit(cfg.Session.LoginRatePerSec), cfg.Session.LoginBurst),
	})

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("listening on :%s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}

	log.Println("server exited")
}
