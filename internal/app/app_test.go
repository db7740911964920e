package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

type fakeMeals struct {
	message string
}

func (f *fakeMeals) TodayMessage(context.Context) string {
	return f.message
}

// fakeSender records every send and fails the first n attempts.
type fakeSender struct {
	failFirst int
	sent      []string
}

func (f *fakeSender) Send(text string) error {
	f.sent = append(f.sent, text)
	if len(f.sent) <= f.failFirst {
		return errors.New("HTTP 500")
	}
	return nil
}

func TestSendDailyMeal(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		sender := &fakeSender{}
		a := New(&fakeMeals{message: "🍽️ Today's Meal"}, sender, zerolog.Nop())

		a.SendDailyMeal(ctx)

		if len(sender.sent) != 1 {
			t.Fatalf("Expected one send, got %d", len(sender.sent))
		}
		if sender.sent[0] != "🍽️ Today's Meal" {
			t.Errorf("Expected meal message, got %q", sender.sent[0])
		}
	})

	t.Run("SendFailureTriggersErrorNotification", func(t *testing.T) {
		sender := &fakeSender{failFirst: 1}
		a := New(&fakeMeals{message: "🍽️ Today's Meal"}, sender, zerolog.Nop())

		a.SendDailyMeal(ctx)

		if len(sender.sent) != 2 {
			t.Fatalf("Expected two send attempts, got %d", len(sender.sent))
		}
		if !strings.HasPrefix(sender.sent[1], "❌ ") {
			t.Errorf("Expected error-flagged secondary message, got %q", sender.sent[1])
		}
		if !strings.Contains(sender.sent[1], "HTTP 500") {
			t.Errorf("Expected original error in secondary message, got %q", sender.sent[1])
		}
	})

	t.Run("SecondaryFailureSwallowed", func(t *testing.T) {
		sender := &fakeSender{failFirst: 2}
		a := New(&fakeMeals{message: "🍽️ Today's Meal"}, sender, zerolog.Nop())

		// Both attempts fail; nothing may propagate to the caller.
		a.SendDailyMeal(ctx)

		if len(sender.sent) != 2 {
			t.Fatalf("Expected two send attempts, got %d", len(sender.sent))
		}
	})
}

func TestNotifyStartup(t *testing.T) {
	t.Run("SendsStartedMessage", func(t *testing.T) {
		sender := &fakeSender{}
		a := New(&fakeMeals{}, sender, zerolog.Nop())

		a.NotifyStartup()

		if len(sender.sent) != 1 || !strings.Contains(sender.sent[0], "started successfully") {
			t.Errorf("Expected startup notification, got %v", sender.sent)
		}
	})

	t.Run("FailureIsNotFatal", func(t *testing.T) {
		sender := &fakeSender{failFirst: 1}
		a := New(&fakeMeals{}, sender, zerolog.Nop())

		a.NotifyStartup()

		if len(sender.sent) != 1 {
			t.Errorf("Expected a single best-effort attempt, got %d", len(sender.sent))
		}
	})
}
