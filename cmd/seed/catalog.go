package main

import (
	"bytes"
	_ "embed"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"foodlog/internal/usecase"
)

//go:embed catalog.yaml
var catalogYAML []byte

type catalogItem struct {
	Name            string  `yaml:"name"`
	UnitLabel       string  `yaml:"unit_label"`
	CaloriesPerUnit float64 `yaml:"calories_per_unit"`
}

type catalogFile struct {
	Foods []catalogItem `yaml:"foods"`
}

// loadCatalog decodes a catalog document. Unknown keys are rejected so typos do not seed zero values.
func loadCatalog(data []byte) ([]usecase.CreateFoodInput, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var file catalogFile
	if err := decoder.Decode(&file); err != nil {
		return nil, errors.Wrap(err, "decode food catalog")
	}
	if len(file.Foods) == 0 {
		return nil, errors.New("food catalog is empty")
	}

	items := make([]usecase.CreateFoodInput, 0, len(file.Foods))
	for _, food := range file.Foods {
		items = append(items, usecase.CreateFoodInput{
			Name:            food.Name,
			UnitLabel:       food.UnitLabel,
			CaloriesPerUnit: food.CaloriesPerUnit,
		})
	}

	return items, nil
}
