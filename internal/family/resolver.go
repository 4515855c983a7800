package family

import (
	"log/slog"

	"github.com/jordanpinkava/Kinship-Project/internal/domain"
)

const combinedKeySeparator = ":"

// Resolver determines the kinship term between two individuals of one graph.
// It is stateless apart from its table and safe for concurrent use.
type Resolver struct {
	table  Table
	logger *slog.Logger
}

// NewResolver constructs a Resolver over the given table. A nil table falls
// back to the default kinship table.
func NewResolver(table Table, logger *slog.Logger) *Resolver {
	if table == nil {
		table = DefaultTable()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{table: table, logger: logger}
}

// Relate resolves the kinship between two individuals: it intersects their
// reachable sets, picks the common relative whose combined path key is the
// lexicographic minimum, and looks the key up by person1's gender. A shared
// connection with no table entry yields the distant-relative term; an empty
// intersection yields Related=false.
//
// The lexicographic-minimum selection is intentionally plain string order,
// not shortest-path-first. The two can disagree for deep trees with spouse
// hops; when they do, the divergence is logged at debug level and the
// lexicographic winner is kept.
func (r *Resolver) Relate(person1, person2 *Individual) domain.Relation {
	relation := domain.Relation{
		Name1: person1.Name,
		Name2: person2.Name,
	}

	paths1 := PathsFrom(person1)
	paths2 := PathsFrom(person2)

	var (
		bestKey      string
		bestRelative string
		found        bool
	)
	for name, code1 := range paths1 {
		code2, shared := paths2[name]
		if !shared {
			continue
		}
		key := string(code1) + combinedKeySeparator + string(code2)
		// Equal keys are possible (two grandparents both at "PP:PP");
		// break the tie on the relative's name so the result does not
		// depend on map iteration order.
		if !found || key < bestKey || (key == bestKey && name < bestRelative) {
			bestKey = key
			bestRelative = name
			found = true
		}
	}
	if !found {
		return relation
	}

	if shortest := shortestCombinedKey(paths1, paths2); shortest != bestKey {
		r.logger.Debug("lexicographic winner differs from shortest combined path",
			"selected", bestKey,
			"shortest", shortest,
			"person1", person1.Name,
			"person2", person2.Name,
		)
	}

	relation.Related = true
	relation.CommonRelative = bestRelative
	relation.CombinedKey = bestKey
	relation.Term = domain.TermDistantRelative
	if term, ok := r.table[bestKey]; ok {
		relation.Term = term.For(person1.Gender)
	}
	return relation
}

// shortestCombinedKey picks the candidate with the fewest total steps,
// breaking ties lexicographically. Used only to flag divergence from the
// selection rule above.
func shortestCombinedKey(paths1, paths2 map[string]PathCode) string {
	var (
		best  string
		found bool
	)
	for name, code1 := range paths1 {
		code2, shared := paths2[name]
		if !shared {
			continue
		}
		key := string(code1) + combinedKeySeparator + string(code2)
		if !found || len(key) < len(best) || (len(key) == len(best) && key < best) {
			best = key
			found = true
		}
	}
	return best
}
