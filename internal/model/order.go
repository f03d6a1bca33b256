package model

import "time"

// TimestampLayout is the wall-clock format recorded on every order.
const TimestampLayout = "2006-01-02 15:04:05"

// IceLevels are the ice adjustments offered at order entry. Stored records are
// not revalidated against this set; wording may have drifted since an order
// was placed.
var IceLevels = []string{"正常冰", "少冰", "微冰", "去冰", "溫/熱"}

// ValidIceLevel reports whether s is one of the offered ice adjustments.
func ValidIceLevel(s string) bool {
	for _, level := range IceLevels {
		if s == level {
			return true
		}
	}
	return false
}

// OrderRecord is one submitted order. Claimed is canonically a bool in memory;
// the ledger's load path maps older on-disk spellings onto it. Meal and Drink
// hold the display label current at submission time, so they can name entries
// a later menu no longer offers.
type OrderRecord struct {
	Timestamp string `json:"timestamp"`
	SeatID    string `json:"seat_id"`
	Name      string `json:"name"`
	Meal      string `json:"meal"`
	Drink     string `json:"drink"`
	IceLevel  string `json:"ice_level"`
	Note      string `json:"note"`
	Claimed   bool   `json:"claimed"`
}

// NewOrderRecord stamps a record with the given time and an unclaimed status.
func NewOrderRecord(now time.Time, seatID, name, meal, drink, iceLevel, note string) OrderRecord {
	return OrderRecord{
		Timestamp: now.Format(TimestampLayout),
		SeatID:    seatID,
		Name:      name,
		Meal:      meal,
		Drink:     drink,
		IceLevel:  iceLevel,
		Note:      note,
		Claimed:   false,
	}
}
