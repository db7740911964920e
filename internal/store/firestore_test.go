package store

import "testing"

func TestWeekPlanFromDoc(t *testing.T) {
	data := map[string]interface{}{
		"Monday":    "r1,r2",
		"Tuesday":   "",
		"updatedAt": int64(1741800000), // non-string fields are ignored
	}

	plan := weekPlanFromDoc(data)

	if got := plan["Monday"]; got != "r1,r2" {
		t.Errorf("Expected Monday entry 'r1,r2', got %q", got)
	}
	if got, ok := plan["Tuesday"]; !ok || got != "" {
		t.Errorf("Expected empty Tuesday entry to be kept, got %q (ok=%v)", got, ok)
	}
	if _, ok := plan["updatedAt"]; ok {
		t.Error("Expected non-string field to be dropped")
	}
}
