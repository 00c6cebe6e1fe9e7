package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/parlorbot/parlor/internal/common/clock"
	"github.com/parlorbot/parlor/internal/common/uuid"
	"github.com/parlorbot/parlor/internal/config"
	"github.com/parlorbot/parlor/internal/games"
	"github.com/parlorbot/parlor/internal/games/tictactoe"
	"github.com/parlorbot/parlor/internal/handlers/discord"
	"github.com/parlorbot/parlor/internal/ratings"
	matchRepo "github.com/parlorbot/parlor/internal/repositories/match"
	ratingRepo "github.com/parlorbot/parlor/internal/repositories/rating"
	"github.com/parlorbot/parlor/internal/services/matchmaking"
	"github.com/parlorbot/parlor/internal/services/messaging"
	"github.com/parlorbot/parlor/internal/services/session"
)

func main() {
	// .env is a development convenience; absence is fine
	_ = godotenv.Load()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load("config")
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}
	logger = newLogger(cfg.Log)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("failed to connect to Redis")
	}

	ratingRepository, err := ratingRepo.NewRedis(&ratingRepo.Config{RedisClient: redisClient})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create rating repository")
	}
	matchRepository, err := matchRepo.NewRedis(&matchRepo.Config{RedisClient: redisClient})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create match repository")
	}

	engine := ratings.NewOpenSkillEngine(ratings.DefaultParams(), nil)

	registry := games.NewRegistry()
	if err := registry.Register(tictactoe.NewFactory()); err != nil {
		logger.Fatal().Err(err).Msg("failed to register game")
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create messaging service")
	}

	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create Discord session")
	}

	messenger, err := discord.NewMessenger(dg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create messenger")
	}

	sessionSvc, err := session.NewService(&session.Config{
		Registry:   registry,
		RatingRepo: ratingRepository,
		MatchRepo:  matchRepository,
		Engine:     engine,
		Messenger:  messenger,
		Messaging:  messagingSvc,
		Clock:      &clock.DefaultClock{},
		UUID:       uuid.New(),
		Logger:     logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create session service")
	}

	matchmakingSvc, err := matchmaking.NewService(&matchmaking.Config{
		Registry:   registry,
		RatingRepo: ratingRepository,
		Engine:     engine,
		Sessions:   &sessionGateway{sessions: sessionSvc},
		Clock:      &clock.DefaultClock{},
		UUID:       uuid.New(),
		Logger:     logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create matchmaking service")
	}

	bot, err := discord.New(&discord.Config{
		Session:       dg,
		ApplicationID: cfg.Discord.ApplicationID,
		GuildID:       cfg.Discord.GuildID,
		Matchmaking:   matchmakingSvc,
		Sessions:      sessionSvc,
		Messaging:     messagingSvc,
		Registry:      registry,
		RatingRepo:    ratingRepository,
		MatchRepo:     matchRepository,
		Messenger:     messenger,
		Logger:        logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create Discord bot")
	}

	if err := bot.Start(); err != nil {
		logger.Fatal().Err(err).Msg("failed to start Discord bot")
	}
	logger.Info().Int("games", registry.Count()).Msg("bot is running")

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		logger.Error().Err(err).Msg("error stopping bot")
	}
	logger.Info().Msg("bot has been shut down")
}

func newLogger(cfg config.LogConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.Format == "json" {
		logger = zerolog.New(os.Stderr)
	} else {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	return logger.With().Timestamp().Logger().Level(level)
}
