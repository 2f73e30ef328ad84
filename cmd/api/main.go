// @title Lectio API
// @description Reading progress and gamification API for the "Lectio" bible reading app
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/limbo/lectio/internal/api"
	"github.com/limbo/lectio/internal/gameconfig"
	"github.com/limbo/lectio/internal/repository"
	"github.com/limbo/lectio/internal/service"
	"github.com/limbo/lectio/pkg/cleanup"
	"github.com/limbo/lectio/pkg/clock"
	"github.com/limbo/lectio/pkg/config"
	jwtservice "github.com/limbo/lectio/pkg/jwt_service"
	"github.com/limbo/lectio/pkg/logger"
)

func main() {
	cfg := config.New()
	lg, err := logger.New(cfg.GetStringOr("LOG_MODE", "dev"))
	if err != nil {
		log.Fatal("creating logger error: " + err.Error())
	}
	defer lg.Sync()

	clk, err := clock.NewSystem(cfg.GetString("APP_TIMEZONE"))
	if err != nil {
		lg.Fatal("invalid APP_TIMEZONE", "error", err)
	}

	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	pool := repository.NewPool(&dbCfg)

	gameCfg := gameconfig.NewCachedProvider(
		repository.NewAppConfigRepoWithConn(pool),
		cfg.GetDuration("GAME_CONFIG_TTL", 30*time.Second),
		clk,
		lg.With("component", "gameconfig"),
	)
	readingService := service.NewReadingService(
		repository.NewUnitOfWorkWithConn(pool),
		gameCfg,
		clk,
		lg.With("component", "reading_service"),
	)
	serv := api.New(&api.ServicesList{
		ReadingService: readingService,
		JwtService:     jwtservice.New(cfg.GetString("JWT_SECRET")),
		Logger:         lg,
		RequestTimeout: cfg.GetDuration("REQUEST_TIMEOUT", 10*time.Second),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go func() {
		err := serv.Run(cfg.GetStringOr("API_ADDRESS", ":8080"))
		if err != nil {
			lg.Error("server error", "error", err)
		}
		stop()
	}()
	<-ctx.Done()
	lg.Info("shutting down")
	cleanup.CleanUp(lg)
}
