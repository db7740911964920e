package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// MealSource produces the daily notification text. It never fails: lookup
// errors arrive rendered into the message itself.
type MealSource interface {
	TodayMessage(ctx context.Context) string
}

// Sender delivers a text message to the resolved chat.
type Sender interface {
	Send(text string) error
}

// App wires the meal lookup to the messaging client and owns the
// per-invocation error policy of the daily job.
type App struct {
	meals  MealSource
	sender Sender
	log    zerolog.Logger
}

// New creates and initializes a new App instance.
func New(meals MealSource, sender Sender, logger zerolog.Logger) *App {
	return &App{
		meals:  meals,
		sender: sender,
		log:    logger.With().Str("component", "app").Logger(),
	}
}

// SendDailyMeal sends today's meal information via Telegram. A delivery
// failure is logged and followed by one best-effort error notification;
// nothing here is allowed to propagate up to the scheduler loop.
func (a *App) SendDailyMeal(ctx context.Context) {
	message := a.meals.TodayMessage(ctx)

	if err := a.sender.Send(message); err != nil {
		a.log.Error().Err(err).Msg("failed to send daily meal")
		fallback := fmt.Sprintf("❌ Failed to send daily meal notification: %v", err)
		if err := a.sender.Send(fallback); err != nil {
			a.log.Error().Err(err).Msg("failed to send error notification")
		}
		return
	}
	a.log.Info().Msg("daily meal notification sent")
}

// NotifyStartup sends a one-time "started" message. Failure is logged, not
// fatal.
func (a *App) NotifyStartup() {
	if err := a.sender.Send("✅ Meal notifier started successfully"); err != nil {
		a.log.Warn().Err(err).Msg("startup notification failed")
	}
}
