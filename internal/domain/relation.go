package domain

import "fmt"

// TermDistantRelative is returned when two individuals share a connection
// whose shape has no entry in the kinship table.
const TermDistantRelative = "distant relative"

// Relation is the outcome of resolving the kinship between two individuals.
// Related distinguishes "no shared connection" from every other outcome; an
// unmapped connection shape still counts as related.
type Relation struct {
	Name1          string
	Name2          string
	Related        bool
	Term           string
	CommonRelative string
	CombinedKey    string
}

// Sentence renders the single-line human-readable result.
func (r Relation) Sentence() string {
	if !r.Related {
		return fmt.Sprintf("%s is not related to %s", r.Name1, r.Name2)
	}
	return fmt.Sprintf("%s is %s's %s", r.Name1, r.Name2, r.Term)
}
