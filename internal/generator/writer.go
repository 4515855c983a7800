package generator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jordanpinkava/Kinship-Project/internal/domain"
)

// WriteFamily writes the description as indented JSON to the given path,
// creating parent directories as needed.
func WriteFamily(desc domain.FamilyDescription, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory %s: %w", dir, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(desc); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
