package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"meal-notifier/internal/meal"
)

const (
	mealPlansCollection = "mealPlans"
	recipesCollection   = "recipes"
)

// Client is a read-only Firestore-backed document store holding meal plans
// and recipes. It implements meal.Store.
type Client struct {
	fs *firestore.Client
}

// NewClient constructs a Firestore client from a decoded service-account
// credential. The handle lives for the process lifetime.
func NewClient(ctx context.Context, projectID string, credentialsJSON []byte) (*Client, error) {
	fs, err := firestore.NewClient(ctx, projectID, option.WithCredentialsJSON(credentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}
	return &Client{fs: fs}, nil
}

// Close releases the underlying Firestore connection.
func (c *Client) Close() error {
	return c.fs.Close()
}

// MealPlan fetches the meal-plan document keyed by the week-range string.
func (c *Client) MealPlan(ctx context.Context, weekRange string) (meal.WeekPlan, bool, error) {
	snap, err := c.fs.Collection(mealPlansCollection).Doc(weekRange).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to fetch meal plan %q: %w", weekRange, err)
	}
	return weekPlanFromDoc(snap.Data()), true, nil
}

// Recipe fetches a single recipe document by id.
func (c *Client) Recipe(ctx context.Context, id string) (meal.Recipe, bool, error) {
	snap, err := c.fs.Collection(recipesCollection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return meal.Recipe{}, false, nil
	}
	if err != nil {
		return meal.Recipe{}, false, fmt.Errorf("failed to fetch recipe %q: %w", id, err)
	}

	var rec meal.Recipe
	if err := snap.DataTo(&rec); err != nil {
		return meal.Recipe{}, false, fmt.Errorf("failed to decode recipe %q: %w", id, err)
	}
	return rec, true, nil
}

// weekPlanFromDoc converts raw document data into a WeekPlan. Meal-plan
// documents are free-form weekday → string fields; anything that is not a
// string is ignored.
func weekPlanFromDoc(data map[string]interface{}) meal.WeekPlan {
	plan := make(meal.WeekPlan, len(data))
	for field, value := range data {
		if s, ok := value.(string); ok {
			plan[field] = s
		}
	}
	return plan
}
