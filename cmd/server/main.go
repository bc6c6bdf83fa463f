package main

import (
	"context"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/acquisitions/acquisitions-api/internal/api"
	"github.com/acquisitions/acquisitions-api/internal/auth"
	"github.com/acquisitions/acquisitions-api/internal/core/domain"
	"github.com/acquisitions/acquisitions-api/internal/core/service"
	"github.com/acquisitions/acquisitions-api/internal/infrastructure/db/postgres"
	redisdb "github.com/acquisitions/acquisitions-api/internal/infrastructure/db/redis"
	"github.com/acquisitions/acquisitions-api/internal/pkg/config"
	"github.com/acquisitions/acquisitions-api/pkg/logger"
)

func main() {
	// Local development convenience; a missing .env is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Init(logger.Options{})
		lg := logger.Get()
		lg.Fatal().Err(err).Msg("configuration failed")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	db, err := postgres.Connect(cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}
	if err := db.AutoMigrate(&domain.User{}); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate failed")
	}

	rdb, err := redisdb.Connect(context.Background(), redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}

	tokens := auth.NewService(cfg.JWT.Secret, cfg.JWT.ExpiresIn)
	denylist := redisdb.NewTokenDenylist(rdb, tokens.TTL())

	userRepo := postgres.NewUserRepository(db)
	userService := service.NewUserService(userRepo, log)
	authService := service.NewAuthService(userRepo, tokens, denylist, log)

	e := api.NewRouter(api.Deps{
		DB:           db,
		Redis:        rdb,
		Tokens:       tokens,
		Denylist:     denylist,
		UserService:  userService,
		AuthService:  authService,
		SecureCookie: cfg.IsProduction(),
		Logger:       log,
	})

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
	if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
