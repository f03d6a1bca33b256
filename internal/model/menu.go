package model

import "sort"

// MenuConfig holds the shared menu: meal codes mapped to display labels, and
// the drink list in display order. The whole value is replaced on every menu
// edit; there are no partial updates.
type MenuConfig struct {
	Meals  map[string]string `json:"meals"`
	Drinks []string          `json:"drinks"`
}

// DefaultMenu is the built-in fallback used whenever no valid menu document
// can be loaded.
func DefaultMenu() MenuConfig {
	return MenuConfig{
		Meals: map[string]string{
			"A": "A餐 - 香煎雞腿飯",
			"B": "B餐 - 黑胡椒牛柳",
			"C": "C餐 - 奶油義大利麵 (素)",
			"D": "D餐 - 日式炸豬排",
		},
		Drinks: []string{"紅茶", "綠茶", "奶茶", "可樂", "雪碧", "檸檬水"},
	}
}

// MealCodes returns the meal codes in sorted order, which is also the display
// order of the meal selection.
func (m MenuConfig) MealCodes() []string {
	codes := make([]string, 0, len(m.Meals))
	for code := range m.Meals {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// MealLabels returns the meal display labels in MealCodes order.
func (m MenuConfig) MealLabels() []string {
	codes := m.MealCodes()
	labels := make([]string, len(codes))
	for i, code := range codes {
		labels[i] = m.Meals[code]
	}
	return labels
}
