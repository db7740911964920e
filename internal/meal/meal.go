package meal

import "context"

// Recipe is a single recipe document from the store.
type Recipe struct {
	Name        string   `firestore:"name"`
	Ingredients []string `firestore:"ingredients"`
}

// WeekPlan maps a full weekday name ("Monday".."Sunday") to a
// comma-separated list of recipe ids, possibly empty.
type WeekPlan map[string]string

// Store is the read-only view of the document store needed to assemble a
// daily meal message. The boolean result reports whether the document
// exists; absence is not an error.
type Store interface {
	MealPlan(ctx context.Context, weekRange string) (WeekPlan, bool, error)
	Recipe(ctx context.Context, id string) (Recipe, bool, error)
}
