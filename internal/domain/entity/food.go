package entity

import "time"

// DefaultUnitLabel is applied to foods and meal entries created without a unit.
const DefaultUnitLabel = "porción"

// Food is an item of the shared catalog.
type Food struct {
	ID              int64
	Name            string
	UnitLabel       string
	CaloriesPerUnit float64
	CreatedByUserID *int64 // nil for seeded catalog items
	CreatedAt       time.Time
}
