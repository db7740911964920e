package scheduler

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

const (
	// pollInterval bounds trigger latency: worst case the job fires this
	// long after the scheduled time.
	pollInterval = 60 * time.Second

	// jobTimeout bounds a single job run, covering both store reads and
	// Telegram calls.
	jobTimeout = 2 * time.Minute
)

// Scheduler runs one job once per day at a fixed local time, using a
// coarse polling loop. A failing tick is logged and the loop continues;
// only context cancellation stops it.
type Scheduler struct {
	schedule cron.Schedule
	loc      *time.Location
	interval time.Duration
	job      func(context.Context)
	log      zerolog.Logger

	now  func() time.Time
	next time.Time
}

// New creates a Scheduler firing the job daily at notifyTime ("HH:MM"),
// evaluated in loc.
func New(notifyTime string, loc *time.Location, job func(context.Context), logger zerolog.Logger) (*Scheduler, error) {
	hour, minute, err := parseNotifyTime(notifyTime)
	if err != nil {
		return nil, err
	}

	schedule, err := cron.ParseStandard(fmt.Sprintf("%d %d * * *", minute, hour))
	if err != nil {
		return nil, fmt.Errorf("failed to build daily schedule for %q: %w", notifyTime, err)
	}

	return &Scheduler{
		schedule: schedule,
		loc:      loc,
		interval: pollInterval,
		job:      job,
		log:      logger.With().Str("component", "scheduler").Logger(),
		now:      time.Now,
	}, nil
}

// Run blocks until ctx is cancelled, checking on every poll interval
// whether the daily job is due.
func (s *Scheduler) Run(ctx context.Context) error {
	s.next = s.schedule.Next(s.now().In(s.loc))
	s.log.Info().Time("next_run", s.next).Msg("scheduler started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick runs the job if its due time has been reached and advances the due
// time to the next day. A panicking job must not take the loop down.
func (s *Scheduler) tick(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error().Interface("panic", r).Msg("scheduled job panicked")
		}
	}()

	now := s.now().In(s.loc)
	if now.Before(s.next) {
		return
	}
	s.next = s.schedule.Next(now)

	jobCtx, cancel := context.WithTimeout(ctx, jobTimeout)
	defer cancel()
	s.job(jobCtx)
	s.log.Info().Time("next_run", s.next).Msg("daily job finished")
}

func parseNotifyTime(v string) (hour, minute int, err error) {
	parts := strings.Split(v, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid notify time %q: want HH:MM", v)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid notify time %q: bad hour", v)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid notify time %q: bad minute", v)
	}
	return hour, minute, nil
}
