package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/jordanpinkava/Kinship-Project/internal/domain"
	"github.com/jordanpinkava/Kinship-Project/internal/loader"
	"github.com/jordanpinkava/Kinship-Project/internal/repository"
)

// Ingestor persists family descriptions into the graph store. Individuals
// and parent links are written concurrently through the worker pool; couple
// links are few and written sequentially.
type Ingestor struct {
	repo *repository.Repository
	pool *Pool
}

// NewIngestor creates an Ingestor with the provided concurrency.
func NewIngestor(repo *repository.Repository, workers int) *Ingestor {
	return &Ingestor{
		repo: repo,
		pool: NewPool(workers),
	}
}

// IngestFamily validates and persists a family description. With replace set,
// the stored family is deleted first. Parent and couple links are written
// only after every individual exists.
func (in *Ingestor) IngestFamily(ctx context.Context, desc domain.FamilyDescription, replace bool) error {
	if err := loader.Validate(desc); err != nil {
		return err
	}

	if replace {
		if err := in.repo.DeleteFamily(ctx); err != nil {
			return err
		}
	}

	names := make([]string, 0, len(desc.Individuals))
	for name := range desc.Individuals {
		names = append(names, name)
	}
	sort.Strings(names)

	err := in.pool.Run(ctx, len(names), func(idx int) error {
		name := names[idx]
		gender, err := domain.ParseGender(desc.Individuals[name])
		if err != nil {
			return fmt.Errorf("individual %s: %w", name, err)
		}
		return in.repo.UpsertIndividual(ctx, name, gender)
	})
	if err != nil {
		return err
	}

	children := make([]string, 0, len(desc.Parents))
	for child := range desc.Parents {
		children = append(children, child)
	}
	sort.Strings(children)

	err = in.pool.Run(ctx, len(children), func(idx int) error {
		child := children[idx]
		return in.repo.LinkParents(ctx, child, desc.Parents[child])
	})
	if err != nil {
		return err
	}

	for _, couple := range desc.Couples {
		if err := in.repo.LinkCouple(ctx, couple[0], couple[1]); err != nil {
			return err
		}
	}
	return nil
}
