// apps/go-server/main.go
//
// Process entrypoint. Loads .env, configures logging, opens the database,
// runs migrations, starts the session janitor, and serves HTTP.

package main

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordplay/apps/go-server/internal/httpserver"
	"github.com/robalobadob/wordplay/apps/go-server/internal/session"
	"github.com/robalobadob/wordplay/apps/go-server/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := words.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}

	db, err := openDB(getEnv("DB_PATH", "./data/app.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()
	if err := migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	ttl := session.DefaultTTL
	if mins, err := strconv.Atoi(getEnv("SESSION_TTL_MINUTES", "")); err == nil && mins > 0 {
		ttl = time.Duration(mins) * time.Minute
	}
	registry := session.NewRegistry(ttl)
	registry.StartJanitor(context.Background(), 10*time.Minute)

	srv := httpserver.New(registry, db)
	port := getEnv("PORT", "5175")
	log.Info().Str("port", port).Msg("starting go-server")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
