package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jordanpinkava/Kinship-Project/internal/domain"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadFile_JSON(t *testing.T) {
	path := writeFile(t, "family.json", `{
		"individuals": {"Alice": "f", "Bob": "m", "Carol": "f"},
		"parents": {"Carol": ["Alice", "Bob"]},
		"couples": [["Alice", "Bob"]]
	}`)

	desc, err := LoadFile(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(desc.Individuals) != 3 {
		t.Fatalf("expected 3 individuals, got %d", len(desc.Individuals))
	}
	if got := desc.Parents["Carol"]; len(got) != 2 || got[0] != "Alice" || got[1] != "Bob" {
		t.Fatalf("unexpected parents for Carol: %v", got)
	}
	if len(desc.Couples) != 1 || desc.Couples[0] != (domain.Couple{"Alice", "Bob"}) {
		t.Fatalf("unexpected couples: %v", desc.Couples)
	}
}

func TestLoadFile_YAML(t *testing.T) {
	path := writeFile(t, "family.yaml", `
individuals:
  Alice: f
  Bob: m
  Carol: f
parents:
  Carol: [Alice, Bob]
couples:
  - [Alice, Bob]
`)

	desc, err := LoadFile(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if desc.Individuals["Bob"] != "m" {
		t.Fatalf("expected Bob to be m, got %q", desc.Individuals["Bob"])
	}
	if len(desc.Couples) != 1 {
		t.Fatalf("expected 1 couple, got %d", len(desc.Couples))
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoadFile_MalformedJSON(t *testing.T) {
	path := writeFile(t, "family.json", `{"individuals": `)
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
}

func TestLoadFile_MissingIndividualsSection(t *testing.T) {
	path := writeFile(t, "family.json", `{"parents": {}, "couples": []}`)
	_, err := LoadFile(path)
	if !errors.Is(err, domain.ErrMissingSection) {
		t.Fatalf("expected ErrMissingSection, got %v", err)
	}
}

func TestLoadFile_MissingParentsSection(t *testing.T) {
	path := writeFile(t, "family.json", `{"individuals": {"Alice": "f"}, "couples": []}`)
	_, err := LoadFile(path)
	if !errors.Is(err, domain.ErrMissingSection) {
		t.Fatalf("expected ErrMissingSection, got %v", err)
	}
}

func TestLoadFile_MissingCouplesSection(t *testing.T) {
	path := writeFile(t, "family.json", `{"individuals": {"Alice": "f"}, "parents": {}}`)
	_, err := LoadFile(path)
	if !errors.Is(err, domain.ErrMissingSection) {
		t.Fatalf("expected ErrMissingSection, got %v", err)
	}
}

func TestValidate_EmptySectionsAreValid(t *testing.T) {
	err := Validate(domain.FamilyDescription{
		Individuals: map[string]string{"Alice": "f"},
		Parents:     map[string][]string{},
		Couples:     []domain.Couple{},
	})
	if err != nil {
		t.Fatalf("expected present-but-empty sections to validate, got %v", err)
	}
}

func TestValidate_UnknownNames(t *testing.T) {
	tests := []struct {
		name string
		desc domain.FamilyDescription
	}{
		{
			name: "unknown parent",
			desc: domain.FamilyDescription{
				Individuals: map[string]string{"Carol": "f"},
				Parents:     map[string][]string{"Carol": {"Alice"}},
				Couples:     []domain.Couple{},
			},
		},
		{
			name: "unknown child",
			desc: domain.FamilyDescription{
				Individuals: map[string]string{"Alice": "f"},
				Parents:     map[string][]string{"Carol": {"Alice"}},
				Couples:     []domain.Couple{},
			},
		},
		{
			name: "unknown couple member",
			desc: domain.FamilyDescription{
				Individuals: map[string]string{"Alice": "f"},
				Parents:     map[string][]string{},
				Couples:     []domain.Couple{{"Alice", "Bob"}},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := Validate(tc.desc); !errors.Is(err, domain.ErrUnknownIndividual) {
				t.Fatalf("expected ErrUnknownIndividual, got %v", err)
			}
		})
	}
}

func TestValidate_BadGender(t *testing.T) {
	err := Validate(domain.FamilyDescription{
		Individuals: map[string]string{"Alice": "banana"},
		Parents:     map[string][]string{},
		Couples:     []domain.Couple{},
	})
	if !errors.Is(err, domain.ErrInvalidGender) {
		t.Fatalf("expected ErrInvalidGender, got %v", err)
	}
}
