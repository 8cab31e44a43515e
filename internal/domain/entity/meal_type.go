package entity

import "strings"

// MealType is the slot of the day a meal entry belongs to.
// Stored values are the Spanish names used by existing rows.
type MealType string

const (
	MealTypeBreakfast MealType = "desayuno"
	MealTypeLunch     MealType = "almuerzo"
	MealTypeSnack     MealType = "merienda"
	MealTypeDinner    MealType = "cena"
)

// mealTypeAliases maps accepted spellings to the stored value.
var mealTypeAliases = map[string]MealType{
	"breakfast": MealTypeBreakfast,
	"lunch":     MealTypeLunch,
	"dinner":    MealTypeDinner,
	"snack":     MealTypeSnack,
	"desayuno":  MealTypeBreakfast,
	"almuerzo":  MealTypeLunch,
	"comida":    MealTypeLunch,
	"cena":      MealTypeDinner,
	"merienda":  MealTypeSnack,
}

// MealTypes lists the stored values in day order.
var MealTypes = []MealType{MealTypeBreakfast, MealTypeLunch, MealTypeSnack, MealTypeDinner}

// String returns the string representation of the MealType.
func (m MealType) String() string {
	return string(m)
}

// IsValid checks if the MealType is one of the stored values.
func (m MealType) IsValid() bool {
	switch m {
	case MealTypeBreakfast, MealTypeLunch, MealTypeSnack, MealTypeDinner:
		return true
	default:
		return false
	}
}

// ParseMealType normalizes raw input (case and surrounding space are ignored) to a stored MealType.
func ParseMealType(raw string) (MealType, bool) {
	mealType, ok := mealTypeAliases[strings.ToLower(strings.TrimSpace(raw))]

	return mealType, ok
}
