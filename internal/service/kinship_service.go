package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jordanpinkava/Kinship-Project/internal/domain"
	"github.com/jordanpinkava/Kinship-Project/internal/family"
)

// NamePair names the two individuals of one relation query.
type NamePair struct {
	Name1 string
	Name2 string
}

// KinshipService answers relation queries against one family. The built
// graph is immutable; replacement swaps the whole graph atomically, so
// concurrent queries always see a consistent family.
type KinshipService struct {
	mu       sync.RWMutex
	graph    *family.Graph
	resolver *family.Resolver
	pool     *Pool
	logger   *slog.Logger
}

// NewKinshipService builds the family graph from the description and wires a
// resolver over the given table (nil selects the default table).
func NewKinshipService(desc domain.FamilyDescription, table family.Table, logger *slog.Logger) (*KinshipService, error) {
	if logger == nil {
		logger = slog.Default()
	}

	g, err := family.NewGraph(desc)
	if err != nil {
		return nil, fmt.Errorf("build family graph: %w", err)
	}

	return &KinshipService{
		graph:    g,
		resolver: family.NewResolver(table, logger),
		pool:     NewPool(0),
		logger:   logger,
	}, nil
}

// Relate resolves the kinship between two named individuals. Both names must
// exist in the family.
func (s *KinshipService) Relate(ctx context.Context, name1, name2 string) (domain.Relation, error) {
	if err := ctx.Err(); err != nil {
		return domain.Relation{}, err
	}

	s.mu.RLock()
	g := s.graph
	s.mu.RUnlock()

	person1 := g.Lookup(name1)
	if person1 == nil {
		return domain.Relation{}, fmt.Errorf("%w: %s", domain.ErrIndividualNotFound, name1)
	}
	person2 := g.Lookup(name2)
	if person2 == nil {
		return domain.Relation{}, fmt.Errorf("%w: %s", domain.ErrIndividualNotFound, name2)
	}

	return s.resolver.Relate(person1, person2), nil
}

// RelateAll resolves a batch of name pairs concurrently. The result slice is
// index-aligned with pairs; a failed pair leaves its slot zero-valued and is
// reported through the aggregated error.
func (s *KinshipService) RelateAll(ctx context.Context, pairs []NamePair) ([]domain.Relation, error) {
	results := make([]domain.Relation, len(pairs))
	err := s.pool.Run(ctx, len(pairs), func(idx int) error {
		relation, err := s.Relate(ctx, pairs[idx].Name1, pairs[idx].Name2)
		if err != nil {
			return err
		}
		results[idx] = relation
		return nil
	})
	return results, err
}

// Individuals lists everyone in the current family, sorted by name.
func (s *KinshipService) Individuals() []domain.IndividualSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.graph.Individuals()
}

// Size reports how many individuals the current family holds.
func (s *KinshipService) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.graph.Size()
}

// ReplaceFamily swaps in a new family description. The old graph remains in
// use until the new one is fully built.
func (s *KinshipService) ReplaceFamily(desc domain.FamilyDescription) error {
	g, err := family.NewGraph(desc)
	if err != nil {
		return fmt.Errorf("build family graph: %w", err)
	}

	s.mu.Lock()
	s.graph = g
	s.mu.Unlock()

	s.logger.Info("family replaced", "individuals", g.Size())
	return nil
}
