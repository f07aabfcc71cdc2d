// Package catalog loads the static source data the generators draw from:
// product metadata and the pool of user names.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-faker/faker/v4"
	"gopkg.in/yaml.v3"
)

// ProductMeta is one entry of the product metadata file.
type ProductMeta struct {
	Name        string  `json:"name" yaml:"name"`
	Price       float64 `json:"price" yaml:"price"`
	Description string  `json:"description" yaml:"description"`
}

// LoadProducts reads product metadata from a .json, .yaml or .yml file.
// Entries without a description get a generated sentence.
func LoadProducts(path string) ([]ProductMeta, error) {
	var products []ProductMeta
	if err := decodeFile(path, &products); err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("product metadata file %s is empty", path)
	}

	for i, p := range products {
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("product #%d in %s has no name", i+1, path)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("product %q in %s has a negative price", p.Name, path)
		}
		if strings.TrimSpace(p.Description) == "" {
			products[i].Description = faker.Sentence()
		}
	}

	return products, nil
}

// LoadNames reads the user name pool. Blank names are skipped.
func LoadNames(path string) ([]string, error) {
	var raw []string
	if err := decodeFile(path, &raw); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(raw))
	for _, name := range raw {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("name file %s is empty", path)
	}

	return names, nil
}

func decodeFile(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, v)
	case ".json", "":
		err = json.Unmarshal(data, v)
	default:
		return fmt.Errorf("unsupported file type %s for %s (use .json or .yaml)", ext, path)
	}
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return nil
}
