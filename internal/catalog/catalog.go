// Package catalog provides the list of items a new vending machine is loaded
// with. The built-in catalog is the ramen bar selection; operators may supply
// their own selection as a YAML file.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"vending_machine/internal/models"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrInvalidCatalog indicates a catalog file that cannot be used to stock a machine.
var ErrInvalidCatalog = errors.New("catalog: invalid catalog")

// file is the on-disk layout of a catalog.
type file struct {
	Items []fileItem `yaml:"items"`
}

type fileItem struct {
	Name     string `yaml:"name"`
	Price    string `yaml:"price"`
	Calories int    `yaml:"calories"`
}

// Default returns the built-in catalog. Every call returns a fresh slice.
func Default() []models.Item {
	return []models.Item{
		{Name: "Noodles", Price: decimal.NewFromFloat(2.0), Calories: 200},
		{Name: "Egg", Price: decimal.NewFromFloat(1.0), Calories: 70},
		{Name: "Chashu Pork", Price: decimal.NewFromFloat(3.0), Calories: 250},
		{Name: "Fried Tofu", Price: decimal.NewFromFloat(2.0), Calories: 150},
		{Name: "Negi", Price: decimal.NewFromFloat(0.5), Calories: 20},
		{Name: "Tonkotsu Broth", Price: decimal.NewFromFloat(1.5), Calories: 100},
		{Name: "Ukokkei Broth", Price: decimal.NewFromFloat(2.0), Calories: 120},
		{Name: "Miso Broth", Price: decimal.NewFromFloat(1.5), Calories: 110},
	}
}

// Load returns the catalog stored at path, or the built-in catalog when path is empty.
func Load(path string) ([]models.Item, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes a YAML catalog and validates every entry.
func Parse(data []byte) ([]models.Item, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCatalog, err)
	}

	if len(f.Items) == 0 {
		return nil, fmt.Errorf("%w: no items", ErrInvalidCatalog)
	}

	items := make([]models.Item, 0, len(f.Items))
	for i, fi := range f.Items {
		name := strings.TrimSpace(fi.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: item %d has no name", ErrInvalidCatalog, i+1)
		}

		price, err := decimal.NewFromString(strings.TrimSpace(fi.Price))
		if err != nil {
			return nil, fmt.Errorf("%w: item %q has price %q", ErrInvalidCatalog, name, fi.Price)
		}
		if price.IsNegative() {
			return nil, fmt.Errorf("%w: item %q has negative price", ErrInvalidCatalog, name)
		}
		if fi.Calories < 0 {
			return nil, fmt.Errorf("%w: item %q has negative calories", ErrInvalidCatalog, name)
		}

		items = append(items, models.Item{Name: name, Price: price, Calories: fi.Calories})
	}

	return items, nil
}
