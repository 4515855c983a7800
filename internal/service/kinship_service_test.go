package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/jordanpinkava/Kinship-Project/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testFamily() domain.FamilyDescription {
	return domain.FamilyDescription{
		Individuals: map[string]string{"Alice": "f", "Bob": "m", "Carol": "f", "Dan": "m"},
		Parents:     map[string][]string{"Carol": {"Alice", "Bob"}, "Dan": {"Alice", "Bob"}},
		Couples:     []domain.Couple{{"Alice", "Bob"}},
	}
}

func TestKinshipService_Relate(t *testing.T) {
	svc, err := NewKinshipService(testFamily(), nil, discardLogger())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	relation, err := svc.Relate(context.Background(), "Carol", "Dan")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if relation.Term != "sister" {
		t.Fatalf("expected sister, got %q", relation.Term)
	}
}

func TestKinshipService_RelateUnknownName(t *testing.T) {
	svc, err := NewKinshipService(testFamily(), nil, discardLogger())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, err := svc.Relate(context.Background(), "Carol", "Zed"); !errors.Is(err, domain.ErrIndividualNotFound) {
		t.Fatalf("expected ErrIndividualNotFound, got %v", err)
	}
}

func TestKinshipService_RelateAll(t *testing.T) {
	svc, err := NewKinshipService(testFamily(), nil, discardLogger())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	pairs := []NamePair{
		{Name1: "Alice", Name2: "Carol"},
		{Name1: "Dan", Name2: "Carol"},
		{Name1: "Alice", Name2: "Bob"},
	}
	relations, err := svc.RelateAll(context.Background(), pairs)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(relations) != 3 {
		t.Fatalf("expected 3 results, got %d", len(relations))
	}
	if relations[0].Term != "mother" {
		t.Fatalf("expected mother at index 0, got %q", relations[0].Term)
	}
	if relations[1].Term != "brother" {
		t.Fatalf("expected brother at index 1, got %q", relations[1].Term)
	}
	if relations[2].Term != "wife" {
		t.Fatalf("expected wife at index 2, got %q", relations[2].Term)
	}
}

func TestKinshipService_RelateAllAggregatesErrors(t *testing.T) {
	svc, err := NewKinshipService(testFamily(), nil, discardLogger())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	pairs := []NamePair{
		{Name1: "Alice", Name2: "Carol"},
		{Name1: "Alice", Name2: "Nobody"},
	}
	_, err = svc.RelateAll(context.Background(), pairs)
	if !errors.Is(err, domain.ErrIndividualNotFound) {
		t.Fatalf("expected ErrIndividualNotFound through the aggregate, got %v", err)
	}
}

func TestKinshipService_ReplaceFamily(t *testing.T) {
	svc, err := NewKinshipService(testFamily(), nil, discardLogger())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	err = svc.ReplaceFamily(domain.FamilyDescription{
		Individuals: map[string]string{"Xia": "f", "Yan": "m"},
		Couples:     []domain.Couple{{"Xia", "Yan"}},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if svc.Size() != 2 {
		t.Fatalf("expected 2 individuals after replacement, got %d", svc.Size())
	}

	if _, err := svc.Relate(context.Background(), "Alice", "Carol"); !errors.Is(err, domain.ErrIndividualNotFound) {
		t.Fatalf("expected old family to be gone, got %v", err)
	}
	relation, err := svc.Relate(context.Background(), "Xia", "Yan")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if relation.Term != "wife" {
		t.Fatalf("expected wife, got %q", relation.Term)
	}
}

func TestKinshipService_ReplaceFamilyKeepsOldOnError(t *testing.T) {
	svc, err := NewKinshipService(testFamily(), nil, discardLogger())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	err = svc.ReplaceFamily(domain.FamilyDescription{
		Individuals: map[string]string{"Xia": "f"},
		Parents:     map[string][]string{"Xia": {"Missing"}},
	})
	if err == nil {
		t.Fatal("expected an error for an invalid replacement")
	}
	if svc.Size() != 4 {
		t.Fatalf("expected the old family to survive, got size %d", svc.Size())
	}
}
