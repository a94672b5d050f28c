package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SamuelCarmona83/capitan-coditos/internal/ai"
	"github.com/SamuelCarmona83/capitan-coditos/internal/application"
	"github.com/SamuelCarmona83/capitan-coditos/internal/datadragon"
	"github.com/SamuelCarmona83/capitan-coditos/internal/delivery/discord"
	"github.com/SamuelCarmona83/capitan-coditos/internal/poller"
	"github.com/SamuelCarmona83/capitan-coditos/internal/repository"
	"github.com/SamuelCarmona83/capitan-coditos/internal/riot"
	"github.com/SamuelCarmona83/capitan-coditos/migrations"
	"github.com/SamuelCarmona83/capitan-coditos/pkg/config"
	"github.com/SamuelCarmona83/capitan-coditos/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Config{}
	if err := config.ReadEnvConfig(&cfg); err != nil {
		panic(err)
	}

	log := logger.NewLogger(&logger.Config{Level: cfg.LogLevel})

	db, err := repository.NewDB(&cfg.Repo)
	if err != nil {
		log.Error("failed to init db", "error", err)
		return
	}
	defer db.Close()

	log.Info("running migrations", "engine", cfg.Repo.Engine())
	if err := repository.RunMigrations(db, migrations.FS, cfg.Repo.Engine()); err != nil {
		log.Error("failed to run migrations", "error", err)
		return
	}

	repos := repository.NewRepository(&cfg.Repo, db)

	riotClient := riot.NewClient(cfg.RiotAPIKey, cfg.RiotPlatforms, log)
	champions := datadragon.NewClient(log)

	var provider application.AIProvider
	switch cfg.AIProvider {
	case "gemini":
		provider, err = ai.NewGeminiClient(cfg.GeminiKey)
		if err != nil {
			log.Error("failed to init gemini", "error", err)
			return
		}
	default:
		provider = ai.NewOpenAIClient(cfg.OpenAIKey)
	}

	services := application.NewService(repos, riotClient, champions, provider, log)

	bot, err := discord.NewBot(&cfg, services, champions, log)
	if err != nil {
		log.Error("failed to create bot", "error", err)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := bot.Init(); err != nil {
		log.Error("failed to init bot", "error", err)
		return
	}

	go func() {
		if err := bot.Run(ctx); err != nil {
			log.Error("bot run error", "error", err)
		}
	}()

	var gamePoller *poller.Poller
	if cfg.NotifyChannelID != "" {
		interval := time.Duration(cfg.PollIntervalSeconds) * time.Second
		gamePoller = poller.New(services.Roster, services.Match, bot, log, interval)
		gamePoller.Start(ctx)
	} else {
		log.Info("NOTIFY_CHANNEL_ID not set, live-game poller disabled")
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	if gamePoller != nil {
		gamePoller.Stop()
	}
	bot.Stop()
	log.Info("bot stopped")
}
