package meal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Lookup assembles the daily meal message from the document store.
type Lookup struct {
	store Store
	loc   *time.Location
	log   zerolog.Logger

	now func() time.Time
}

// NewLookup creates a new Lookup evaluating "today" in the given location.
func NewLookup(store Store, loc *time.Location, logger zerolog.Logger) *Lookup {
	return &Lookup{
		store: store,
		loc:   loc,
		log:   logger.With().Str("component", "meal").Logger(),
		now:   time.Now,
	}
}

// TodayMessage returns today's meal information as a ready-to-send string.
// It never fails outward: any lookup error is rendered into the message
// itself, which doubles as the operational alerting channel.
func (l *Lookup) TodayMessage(ctx context.Context) string {
	today := l.now().In(l.loc)
	msg, err := l.mealFor(ctx, today)
	if err != nil {
		l.log.Error().Err(err).Msg("meal lookup failed")
		return fmt.Sprintf("Error getting meal information: %v", err)
	}
	return msg
}

func (l *Lookup) mealFor(ctx context.Context, today time.Time) (string, error) {
	dayOfWeek := today.Weekday().String()
	dateStr := today.Format(dateFormat)
	weekRange := WeekRange(today)

	plan, ok, err := l.store.MealPlan(ctx, weekRange)
	if err != nil {
		return "", err
	}
	if !ok {
		return noMealMessage(dayOfWeek, dateStr), nil
	}

	recipeIDs := strings.Split(plan[dayOfWeek], ",")
	if len(recipeIDs) == 0 || recipeIDs[0] == "" {
		return noMealMessage(dayOfWeek, dateStr), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🍽️ Today's Meal (%s, %s):\n\n", dayOfWeek, dateStr)

	for _, id := range recipeIDs {
		if id == "" {
			continue
		}
		rec, ok, err := l.store.Recipe(ctx, id)
		if err != nil {
			return "", err
		}
		if !ok {
			l.log.Warn().Str("recipe_id", id).Msg("recipe not found, skipping")
			continue
		}
		fmt.Fprintf(&b, "📌 %s\n", rec.Name)
		b.WriteString("Ingredients:\n")
		for _, ingredient := range rec.Ingredients {
			fmt.Fprintf(&b, "• %s\n", ingredient)
		}
		b.WriteString("\n")
	}

	return strings.TrimSpace(b.String()), nil
}

func noMealMessage(dayOfWeek, dateStr string) string {
	return fmt.Sprintf("No meal planned for %s, %s", dayOfWeek, dateStr)
}
