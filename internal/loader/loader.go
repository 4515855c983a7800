// Package loader reads family description files. JSON is the primary format;
// YAML is accepted for files with a .yaml or .yml extension.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jordanpinkava/Kinship-Project/internal/domain"
)

// LoadFile reads and validates a family description from the given path.
func LoadFile(path string) (domain.FamilyDescription, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.FamilyDescription{}, fmt.Errorf("read %s: %w", path, err)
	}

	var desc domain.FamilyDescription
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &desc); err != nil {
			return domain.FamilyDescription{}, fmt.Errorf("decode %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &desc); err != nil {
			return domain.FamilyDescription{}, fmt.Errorf("decode %s: %w", path, err)
		}
	}

	if err := Validate(desc); err != nil {
		return domain.FamilyDescription{}, fmt.Errorf("%s: %w", path, err)
	}
	return desc, nil
}

// Validate checks that the description carries all three sections and that
// every name referenced by the parents and couples sections is declared.
// A section may be empty, but it must be present. Gender codes are checked
// here so malformed files fail before any graph is built.
func Validate(desc domain.FamilyDescription) error {
	if desc.Individuals == nil {
		return fmt.Errorf("%w: individuals", domain.ErrMissingSection)
	}
	if desc.Parents == nil {
		return fmt.Errorf("%w: parents", domain.ErrMissingSection)
	}
	if desc.Couples == nil {
		return fmt.Errorf("%w: couples", domain.ErrMissingSection)
	}

	for name, code := range desc.Individuals {
		if _, err := domain.ParseGender(code); err != nil {
			return fmt.Errorf("individual %s: %w", name, err)
		}
	}

	for child, parents := range desc.Parents {
		if _, ok := desc.Individuals[child]; !ok {
			return fmt.Errorf("parents section: %w: %s", domain.ErrUnknownIndividual, child)
		}
		for _, parent := range parents {
			if _, ok := desc.Individuals[parent]; !ok {
				return fmt.Errorf("parent of %s: %w: %s", child, domain.ErrUnknownIndividual, parent)
			}
		}
	}

	for _, couple := range desc.Couples {
		for _, name := range couple {
			if _, ok := desc.Individuals[name]; !ok {
				return fmt.Errorf("couples section: %w: %s", domain.ErrUnknownIndividual, name)
			}
		}
	}

	return nil
}
