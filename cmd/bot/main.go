package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/siguint/ayabot/internal/common/clock"
	"github.com/siguint/ayabot/internal/config"
	"github.com/siguint/ayabot/internal/dice"
	"github.com/siguint/ayabot/internal/handlers/discord"
	casinoRepo "github.com/siguint/ayabot/internal/repositories/casino"
	duelRepo "github.com/siguint/ayabot/internal/repositories/duel"
	casinoService "github.com/siguint/ayabot/internal/services/casino"
	duelService "github.com/siguint/ayabot/internal/services/duel"
	"github.com/siguint/ayabot/internal/services/engine"
)

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	ledgerRepo, err := casinoRepo.NewRedis(&casinoRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create casino repository: %v", err)
	}

	recordRepo, err := duelRepo.NewRedis(&duelRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create duel repository: %v", err)
	}

	// Initialize the game stores
	casinoSvc, err := casinoService.New(&casinoService.Config{
		Repo:         ledgerRepo,
		DailySpinCap: cfg.DailySpinCap,
	})
	if err != nil {
		log.Fatalf("Failed to create casino service: %v", err)
	}

	duelSvc, err := duelService.New(&duelService.Config{
		Repo:  recordRepo,
		Clock: &clock.DefaultClock{},
	})
	if err != nil {
		log.Fatalf("Failed to create duel service: %v", err)
	}

	gameEngine, err := engine.New(&engine.Config{
		Casino: casinoSvc,
		Duel:   duelSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}

	// Restore the last snapshot
	loadOutput, err := gameEngine.Load(context.Background(), &engine.LoadInput{})
	if err != nil {
		log.Fatalf("Failed to load snapshots: %v", err)
	}
	log.Infof("Restored %d ledger entries and %d duel records",
		loadOutput.LedgerPlayersLoaded, loadOutput.DuelPlayersLoaded)

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:         cfg.DiscordToken,
		ApplicationID: cfg.ApplicationID,
		GuildID:       cfg.GuildID,
		MaintainerID:  cfg.MaintainerID,
		Engine:        gameEngine,
		Roller:        dice.New(&dice.Config{}),
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Run the periodic refresh until shutdown
	refreshCtx, stopRefresh := context.WithCancel(context.Background())
	go runRefreshLoop(refreshCtx, gameEngine, cfg.RefreshInterval)

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	stopRefresh()

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		log.Errorf("Error stopping bot: %v", err)
	}

	// Final snapshot so nothing played since the last tick is lost
	if _, err := gameEngine.Save(context.Background(), &engine.SaveInput{}); err != nil {
		log.Errorf("Failed to save final snapshot: %v", err)
	}

	log.Info("Bot has been shut down")
}

// runRefreshLoop restores spin allowances and snapshots state on a
// fixed interval until ctx is cancelled
func runRefreshLoop(ctx context.Context, gameEngine engine.Service, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			output, err := gameEngine.Refresh(ctx, &engine.RefreshInput{})
			if err != nil {
				log.Errorf("Periodic refresh failed: %v", err)
				continue
			}
			log.Infof("Refreshed spin allowances for %d player(s)", output.PlayersRefreshed)
		}
	}
}
