package family

import (
	"fmt"
	"sort"

	"github.com/jordanpinkava/Kinship-Project/internal/domain"
)

// Graph owns every Individual of one family for the lifetime of a resolution
// session. It is immutable after construction; concurrent reads require no
// locking.
type Graph struct {
	people map[string]*Individual
}

// NewGraph builds a family graph from a description. Every name referenced by
// the parents or couples sections must appear in the individuals section.
// Acyclic ancestry and at most one spouse per person are assumed, not
// validated; violating either yields well-defined traversals over a malformed
// family, not a crash.
func NewGraph(desc domain.FamilyDescription) (*Graph, error) {
	people := make(map[string]*Individual, len(desc.Individuals))
	for name, code := range desc.Individuals {
		gender, err := domain.ParseGender(code)
		if err != nil {
			return nil, fmt.Errorf("individual %s: %w", name, err)
		}
		people[name] = &Individual{Name: name, Gender: gender}
	}

	for childName, parentNames := range desc.Parents {
		child, ok := people[childName]
		if !ok {
			return nil, fmt.Errorf("parents section: %w: %s", domain.ErrUnknownIndividual, childName)
		}
		for _, parentName := range parentNames {
			parent, ok := people[parentName]
			if !ok {
				return nil, fmt.Errorf("parent of %s: %w: %s", childName, domain.ErrUnknownIndividual, parentName)
			}
			child.Parents = append(child.Parents, parent)
		}
	}

	for _, couple := range desc.Couples {
		first, ok := people[couple[0]]
		if !ok {
			return nil, fmt.Errorf("couples section: %w: %s", domain.ErrUnknownIndividual, couple[0])
		}
		second, ok := people[couple[1]]
		if !ok {
			return nil, fmt.Errorf("couples section: %w: %s", domain.ErrUnknownIndividual, couple[1])
		}
		first.Spouse = second
		second.Spouse = first
	}

	return &Graph{people: people}, nil
}

// Lookup returns the individual with the given name, or nil if absent.
func (g *Graph) Lookup(name string) *Individual {
	return g.people[name]
}

// Size reports how many individuals the graph holds.
func (g *Graph) Size() int {
	return len(g.people)
}

// Individuals returns summaries for every individual, sorted by name.
func (g *Graph) Individuals() []domain.IndividualSummary {
	summaries := make([]domain.IndividualSummary, 0, len(g.people))
	for _, person := range g.people {
		summaries = append(summaries, person.Summary())
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Name < summaries[j].Name
	})
	return summaries
}
