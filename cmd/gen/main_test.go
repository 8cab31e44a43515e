package main

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gen"
)

var createRelation = regexp.MustCompile(`(?i)CREATE\s+(?:TABLE\s+IF\s+NOT\s+EXISTS|OR\s+REPLACE\s+VIEW)\s+(\w+)`)

func migratedRelations(t *testing.T) []string {
	t.Helper()

	files, err := filepath.Glob("../../internal/infra/persistence/postgres/migrations/*.up.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	var relations []string
	for _, file := range files {
		body, err := os.ReadFile(file)
		require.NoError(t, err)
		for _, match := range createRelation.FindAllStringSubmatch(string(body), -1) {
			relations = append(relations, match[1])
		}
	}
	sort.Strings(relations)

	return relations
}

func TestModels_CoverEveryMigratedRelation(t *testing.T) {
	var tables []string
	for _, m := range models() {
		tabler, ok := m.(interface{ TableName() string })
		require.Truef(t, ok, "%T has no TableName", m)
		tables = append(tables, tabler.TableName())
	}
	sort.Strings(tables)

	assert.Equal(t, migratedRelations(t), tables)
	assert.Equal(t, []string{"daily_calorie_totals", "foods", "meal_entries", "users"}, tables)
}

func TestGeneratorConfig(t *testing.T) {
	cfg := generatorConfig("/tmp/query")

	assert.Equal(t, "/tmp/query", cfg.OutPath)
	assert.NotZero(t, cfg.Mode&gen.WithDefaultQuery)
	assert.NotZero(t, cfg.Mode&gen.WithQueryInterface)
	assert.True(t, cfg.FieldNullable)
	assert.True(t, cfg.FieldWithIndexTag)
	assert.True(t, cfg.FieldWithTypeTag)
}
