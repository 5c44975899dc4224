package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/hollowmoor/soulsfight/internal/api"
	"github.com/hollowmoor/soulsfight/internal/config"
	"github.com/hollowmoor/soulsfight/internal/gamedata/catalog"
	"github.com/hollowmoor/soulsfight/internal/repositories/characters"
	"github.com/hollowmoor/soulsfight/internal/repositories/items"
	charsvc "github.com/hollowmoor/soulsfight/internal/services/character"
	"github.com/hollowmoor/soulsfight/internal/services/session"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err == nil {
		log.Info().Msg("loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// Character store
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("failed to connect to Redis")
	}

	// Item catalog
	db, err := items.OpenAndMigrate(cfg.Catalog.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Catalog.Path).Msg("failed to open item catalog")
	}

	characterRepo := characters.NewRedisRepository(&characters.RedisRepoConfig{
		Client: redisClient,
	})
	itemRepo := items.NewSQLiteRepository(db)

	source := catalog.NewSource(&catalog.SourceConfig{
		Characters: characterRepo,
		Items:      itemRepo,
	})

	sessionService := session.NewService(&session.ServiceConfig{
		Source: source,
	})
	characterService := charsvc.NewService(&charsvc.ServiceConfig{
		Repository: characterRepo,
		Items:      itemRepo,
	})

	handler := api.NewHandler(&api.HandlerConfig{
		Sessions:   sessionService,
		Characters: characterService,
	})

	router := gin.Default()
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", cfg.Server.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
