// Package generator produces synthetic family descriptions for demos and
// load testing. Generation is fully deterministic under a fixed seed.
package generator

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/jordanpinkava/Kinship-Project/internal/domain"
)

var givenNames = []string{
	"Alice", "Bob", "Carol", "David", "Emma", "Frank", "Grace", "Henry",
	"Iris", "Jack", "Karen", "Liam", "Mona", "Noah", "Olive", "Peter",
	"Quinn", "Rosa", "Sam", "Tessa", "Umar", "Vera", "Walt", "Xenia",
	"Yusuf", "Zelda",
}

// Generator builds random family trees.
type Generator struct {
	cfg  Config
	rand *rand.Rand
}

// New constructs a Generator for the provided configuration.
func New(cfg Config) *Generator {
	if cfg.Generations <= 0 {
		cfg.Generations = 1
	}
	if cfg.FounderCouples <= 0 {
		cfg.FounderCouples = 1
	}
	if cfg.MaxChildren <= 0 {
		cfg.MaxChildren = 1
	}
	return &Generator{
		cfg:  cfg,
		rand: rand.New(rand.NewSource(cfg.Seed)),
	}
}

// Generate produces a family description spanning the configured number of
// generations: founder couples, their children, and marriages between
// children of different couples feeding the next generation.
func (g *Generator) Generate(ctx context.Context) (domain.FamilyDescription, error) {
	desc := domain.FamilyDescription{
		Individuals: map[string]string{},
		Parents:     map[string][]string{},
	}

	var couples [][2]string
	for i := 0; i < g.cfg.FounderCouples; i++ {
		first := g.addIndividual(&desc)
		second := g.addIndividual(&desc)
		desc.Couples = append(desc.Couples, domain.Couple{first, second})
		couples = append(couples, [2]string{first, second})
	}

	for generation := 1; generation < g.cfg.Generations; generation++ {
		if err := ctx.Err(); err != nil {
			return domain.FamilyDescription{}, err
		}

		// Children of the current couples, grouped by couple so marriages
		// never pair siblings.
		var broods [][]string
		for _, couple := range couples {
			count := 1 + g.rand.Intn(g.cfg.MaxChildren)
			brood := make([]string, 0, count)
			for c := 0; c < count; c++ {
				child := g.addIndividual(&desc)
				desc.Parents[child] = []string{couple[0], couple[1]}
				brood = append(brood, child)
			}
			broods = append(broods, brood)
		}

		couples = couples[:0]
		for i := 0; i+1 < len(broods); i += 2 {
			if len(broods[i]) == 0 || len(broods[i+1]) == 0 {
				continue
			}
			if g.rand.Float64() >= g.cfg.MarriageChance {
				continue
			}
			first := broods[i][0]
			second := broods[i+1][0]
			desc.Couples = append(desc.Couples, domain.Couple{first, second})
			couples = append(couples, [2]string{first, second})
		}
		if len(couples) == 0 {
			break
		}
	}

	return desc, nil
}

func (g *Generator) addIndividual(desc *domain.FamilyDescription) string {
	base := givenNames[g.rand.Intn(len(givenNames))]
	name := base
	for suffix := 2; ; suffix++ {
		if _, taken := desc.Individuals[name]; !taken {
			break
		}
		name = fmt.Sprintf("%s-%d", base, suffix)
	}
	desc.Individuals[name] = string(g.randomGender())
	return name
}

func (g *Generator) randomGender() domain.Gender {
	if g.rand.Float64() < g.cfg.NonbinaryChance {
		return domain.GenderNonbinary
	}
	if g.rand.Intn(2) == 0 {
		return domain.GenderFemale
	}
	return domain.GenderMale
}
