package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"meal-notifier/internal/app"
	"meal-notifier/internal/config"
	"meal-notifier/internal/logging"
	"meal-notifier/internal/meal"
	"meal-notifier/internal/scheduler"
	"meal-notifier/internal/store"
	"meal-notifier/internal/telegram"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.NewFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 2. Logging (console + file)
	logger, closeLog, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	if closeLog != nil {
		defer closeLog()
	}

	ctx := context.Background()

	// 3. Document store
	st, err := store.NewClient(ctx, cfg.ProjectID, cfg.ServiceAccountJSON)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize document store")
	}
	defer st.Close()

	// 4. Telegram client
	tg, err := telegram.New(cfg.TelegramBotToken, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize Telegram client")
	}

	// 5. Services
	lookup := meal.NewLookup(st, cfg.Location, logger)
	notifier := app.New(lookup, tg, logger)

	sched, err := scheduler.New(cfg.NotifyTime, cfg.Location, notifier.SendDailyMeal, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to set up scheduler")
	}

	// 6. Startup notification (best effort) and run until signalled
	notifier.NotifyStartup()

	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info().
		Str("notify_time", cfg.NotifyTime).
		Str("timezone", config.Timezone).
		Msg("meal notifier running")

	if err := sched.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error().Err(err).Msg("scheduler exited")
	}
	logger.Info().Msg("meal notifier exiting")
}
