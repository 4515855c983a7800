package family

import "github.com/jordanpinkava/Kinship-Project/internal/domain"

// Individual is one node in the family graph. Parents keep the order given
// by the input description; Spouse is a symmetric non-owning back-reference
// established once at construction and never reassigned.
type Individual struct {
	Name    string
	Gender  domain.Gender
	Parents []*Individual
	Spouse  *Individual
}

// Summary converts the individual to its lightweight list view.
func (p *Individual) Summary() domain.IndividualSummary {
	s := domain.IndividualSummary{
		Name:   p.Name,
		Gender: p.Gender,
	}
	for _, parent := range p.Parents {
		s.Parents = append(s.Parents, parent.Name)
	}
	if p.Spouse != nil {
		s.Spouse = p.Spouse.Name
	}
	return s
}
