// migrate aplica las migraciones embebidas (esquema y catálogos SAT) y termina.
//
// Uso: go run ./cmd/migrate
// Lee la conexión de las mismas variables que cmd/api (DB_HOST, DB_PORT, ...).
package main

import (
	"context"
	"time"

	"github.com/miriamyi01/facturas-cfdi/internal/infrastructure/postgres"
	"github.com/miriamyi01/facturas-cfdi/pkg/config"
	"github.com/miriamyi01/facturas-cfdi/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	start := time.Now()
	if err := postgres.RunMigrations(pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	log.Info().Dur("duration", time.Since(start)).Str("db", cfg.DB.DBName).Msg("esquema al día")
}
