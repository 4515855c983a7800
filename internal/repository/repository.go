// Package repository persists family descriptions in a graph database and
// loads them back. Individuals are Person nodes; parent links are CHILD_OF
// edges carrying an ord property that preserves the description's parent
// order; marriages are undirected MARRIED_TO edges.
package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/jordanpinkava/Kinship-Project/internal/domain"
	"github.com/jordanpinkava/Kinship-Project/internal/graph"
)

const (
	upsertPersonCypher = `
MERGE (p:Person {name: $name})
SET p.gender = $gender`

	linkParentsCypher = `
MATCH (c:Person {name: $child})
UNWIND $parents AS parent
MATCH (p:Person {name: parent.name})
MERGE (c)-[r:CHILD_OF]->(p)
SET r.ord = parent.ord`

	linkCoupleCypher = `
MATCH (a:Person {name: $first})
MATCH (b:Person {name: $second})
MERGE (a)-[:MARRIED_TO]-(b)`

	loadPersonsCypher = `
MATCH (p:Person)
RETURN p.name AS name, p.gender AS gender
ORDER BY name`

	loadParentLinksCypher = `
MATCH (c:Person)-[r:CHILD_OF]->(p:Person)
RETURN c.name AS child, p.name AS parent, r.ord AS ord
ORDER BY child, ord`

	loadCouplesCypher = `
MATCH (a:Person)-[:MARRIED_TO]-(b:Person)
WHERE a.name < b.name
RETURN a.name AS first, b.name AS second
ORDER BY first`

	countPersonsCypher = `
MATCH (p:Person)
RETURN count(p) AS total`

	deleteAllCypher = `
MATCH (p:Person)
DETACH DELETE p`
)

// Repository encapsulates graph persistence operations for family trees.
type Repository struct {
	client graph.Client
}

// New instantiates a Repository backed by the supplied graph client.
func New(client graph.Client) *Repository {
	return &Repository{client: client}
}

// UpsertIndividual ensures a Person node exists with the given gender.
func (r *Repository) UpsertIndividual(ctx context.Context, name string, gender domain.Gender) error {
	if name == "" {
		return errors.New("individual name is required")
	}

	params := map[string]any{
		"name":   name,
		"gender": string(gender),
	}
	if _, err := r.client.ExecuteWrite(ctx, upsertPersonCypher, params); err != nil {
		return fmt.Errorf("upsert individual %s: %w", name, err)
	}
	return nil
}

// LinkParents attaches the ordered parent edges for one child. All referenced
// Person nodes must already exist.
func (r *Repository) LinkParents(ctx context.Context, child string, parents []string) error {
	if len(parents) == 0 {
		return nil
	}

	parentParams := make([]map[string]any, 0, len(parents))
	for i, parent := range parents {
		parentParams = append(parentParams, map[string]any{
			"name": parent,
			"ord":  i,
		})
	}

	params := map[string]any{
		"child":   child,
		"parents": parentParams,
	}
	if _, err := r.client.ExecuteWrite(ctx, linkParentsCypher, params); err != nil {
		return fmt.Errorf("link parents of %s: %w", child, err)
	}
	return nil
}

// LinkCouple records a marriage between two existing Person nodes.
func (r *Repository) LinkCouple(ctx context.Context, first, second string) error {
	params := map[string]any{
		"first":  first,
		"second": second,
	}
	if _, err := r.client.ExecuteWrite(ctx, linkCoupleCypher, params); err != nil {
		return fmt.Errorf("link couple %s/%s: %w", first, second, err)
	}
	return nil
}

// LoadFamily reads the whole stored family back into a description, with
// parent order restored from the ord property.
func (r *Repository) LoadFamily(ctx context.Context) (domain.FamilyDescription, error) {
	desc := domain.FamilyDescription{
		Individuals: map[string]string{},
		Parents:     map[string][]string{},
	}

	persons, err := r.client.ExecuteRead(ctx, loadPersonsCypher, nil)
	if err != nil {
		return domain.FamilyDescription{}, fmt.Errorf("load individuals: %w", err)
	}
	for _, rec := range persons.Records {
		name := asString(rec["name"])
		if name == "" {
			continue
		}
		desc.Individuals[name] = asString(rec["gender"])
	}

	type parentLink struct {
		parent string
		ord    int64
	}
	links := map[string][]parentLink{}

	parents, err := r.client.ExecuteRead(ctx, loadParentLinksCypher, nil)
	if err != nil {
		return domain.FamilyDescription{}, fmt.Errorf("load parent links: %w", err)
	}
	for _, rec := range parents.Records {
		child := asString(rec["child"])
		parent := asString(rec["parent"])
		if child == "" || parent == "" {
			continue
		}
		links[child] = append(links[child], parentLink{parent: parent, ord: asInt64(rec["ord"])})
	}
	for child, entries := range links {
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].ord < entries[j].ord })
		names := make([]string, 0, len(entries))
		for _, entry := range entries {
			names = append(names, entry.parent)
		}
		desc.Parents[child] = names
	}

	couples, err := r.client.ExecuteRead(ctx, loadCouplesCypher, nil)
	if err != nil {
		return domain.FamilyDescription{}, fmt.Errorf("load couples: %w", err)
	}
	for _, rec := range couples.Records {
		first := asString(rec["first"])
		second := asString(rec["second"])
		if first == "" || second == "" {
			continue
		}
		desc.Couples = append(desc.Couples, domain.Couple{first, second})
	}

	return desc, nil
}

// CountIndividuals reports how many Person nodes are stored.
func (r *Repository) CountIndividuals(ctx context.Context) (int64, error) {
	res, err := r.client.ExecuteRead(ctx, countPersonsCypher, nil)
	if err != nil {
		return 0, fmt.Errorf("count individuals: %w", err)
	}
	if len(res.Records) == 0 {
		return 0, nil
	}
	return asInt64(res.Records[0]["total"]), nil
}

// DeleteFamily removes every Person node and its edges.
func (r *Repository) DeleteFamily(ctx context.Context) error {
	if _, err := r.client.ExecuteWrite(ctx, deleteAllCypher, nil); err != nil {
		return fmt.Errorf("delete family: %w", err)
	}
	return nil
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asInt64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	default:
		return 0
	}
}
