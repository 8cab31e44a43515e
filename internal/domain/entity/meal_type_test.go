package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMealType(t *testing.T) {
	tests := []struct {
		raw  string
		want MealType
		ok   bool
	}{
		{raw: "breakfast", want: MealTypeBreakfast, ok: true},
		{raw: "  Desayuno ", want: MealTypeBreakfast, ok: true},
		{raw: "LUNCH", want: MealTypeLunch, ok: true},
		{raw: "comida", want: MealTypeLunch, ok: true},
		{raw: "almuerzo", want: MealTypeLunch, ok: true},
		{raw: "snack", want: MealTypeSnack, ok: true},
		{raw: "merienda", want: MealTypeSnack, ok: true},
		{raw: "dinner", want: MealTypeDinner, ok: true},
		{raw: "cena", want: MealTypeDinner, ok: true},
		{raw: "brunch", ok: false},
		{raw: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseMealType(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
			if ok {
				assert.True(t, got.IsValid())
			}
		})
	}
}

func TestUser_PublicDropsCredential(t *testing.T) {
	user := &User{ID: 7, Username: "abc", Email: "a@b.com", PasswordCredential: "pbkdf2$sha512$1$00$00"}

	public := user.Public()

	assert.Equal(t, &PublicUser{ID: 7, Username: "abc", Email: "a@b.com"}, public)
	assert.True(t, user.HasCredential())
	assert.False(t, (&User{}).HasCredential())
	assert.Nil(t, (*User)(nil).Public())
}

func TestMealEntry_Calories(t *testing.T) {
	entry := &MealEntry{Quantity: 1.5, CaloriesPerUnit: 200}

	assert.InDelta(t, 300.0, entry.Calories(), 1e-9)
}
