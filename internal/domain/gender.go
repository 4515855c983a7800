package domain

import (
	"fmt"
	"strings"
)

// Gender selects which form of a kinship term is returned. It carries no
// other semantics in the engine.
type Gender string

const (
	GenderFemale    Gender = "f"
	GenderMale      Gender = "m"
	GenderNonbinary Gender = "n"
)

// ParseGender normalizes a gender code from an input description. Both the
// short codes and the long forms are accepted, case-insensitively.
func ParseGender(code string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "f", "female":
		return GenderFemale, nil
	case "m", "male":
		return GenderMale, nil
	case "n", "nb", "nonbinary", "non-binary":
		return GenderNonbinary, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidGender, code)
	}
}
