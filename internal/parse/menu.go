package parse

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Drinks parses the free-text drink list submitted on the menu-edit page:
// drink names separated by a plain or full-width comma, whitespace trimmed
// around each name. Duplicates are kept; order is display order.
func Drinks(raw string) ([]string, error) {
	normalized := strings.ReplaceAll(raw, "，", ",")

	var drinks []string
	for _, part := range strings.Split(normalized, ",") {
		if d := strings.TrimSpace(part); d != "" {
			drinks = append(drinks, d)
		}
	}
	if len(drinks) == 0 {
		return nil, fmt.Errorf("no drinks in %q: expected names separated by commas", raw)
	}
	return drinks, nil
}

// Meals parses the free-text meals fragment submitted on the menu-edit page:
// a JSON object mapping meal codes to display labels.
func Meals(raw string) (map[string]string, error) {
	var meals map[string]string
	if err := json.Unmarshal([]byte(raw), &meals); err != nil {
		return nil, fmt.Errorf("parse meals: %w", err)
	}
	if len(meals) == 0 {
		return nil, fmt.Errorf("parse meals: expected at least one code-to-label entry")
	}
	return meals, nil
}
