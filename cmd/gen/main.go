package main

import (
	"foodlog/internal/infra/persistence/model"

	"gorm.io/gen"
)

const queryOutPath = "./internal/infra/persistence/postgres/query"

// models lists one gorm model per relation created by the schema migrations,
// including the daily_calorie_totals view.
func models() []any {
	return []any{
		model.UserModel{},
		model.FoodModel{},
		model.MealEntryModel{},
		model.DailyCalorieTotalModel{},
	}
}

func generatorConfig(outPath string) gen.Config {
	return gen.Config{
		OutPath: outPath,
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
		// meal_entries.food_id is NULL once the referenced food is deleted.
		FieldNullable:     true,
		FieldWithIndexTag: true,
		FieldWithTypeTag:  true,
	}
}

func main() {
	g := gen.NewGenerator(generatorConfig(queryOutPath))

	g.ApplyBasic(models()...)

	g.Execute()
}
