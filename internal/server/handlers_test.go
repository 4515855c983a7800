package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jordanpinkava/Kinship-Project/internal/domain"
	"github.com/jordanpinkava/Kinship-Project/internal/service"
)

func testHandlers(t *testing.T) *APIHandlers {
	t.Helper()
	svc, err := service.NewKinshipService(domain.FamilyDescription{
		Individuals: map[string]string{"Alice": "f", "Bob": "m", "Carol": "f"},
		Parents:     map[string][]string{"Carol": {"Alice", "Bob"}},
		Couples:     []domain.Couple{{"Alice", "Bob"}},
	}, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("failed to build service: %v", err)
	}
	return NewAPIHandlers(slog.New(slog.NewTextHandler(io.Discard, nil)), svc)
}

func TestHandleRelation(t *testing.T) {
	handlers := testHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/relation?name1=Alice&name2=Carol", nil)
	rec := httptest.NewRecorder()

	handlers.handleRelation(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var payload relationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !payload.Related {
		t.Fatal("expected related=true")
	}
	if payload.Relationship != "mother" {
		t.Fatalf("expected mother, got %q", payload.Relationship)
	}
	if payload.Sentence != "Alice is Carol's mother" {
		t.Fatalf("unexpected sentence %q", payload.Sentence)
	}
}

func TestHandleRelation_MissingParams(t *testing.T) {
	handlers := testHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/relation?name1=Alice", nil)
	rec := httptest.NewRecorder()

	handlers.handleRelation(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestHandleRelation_UnknownIndividual(t *testing.T) {
	handlers := testHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/relation?name1=Alice&name2=Zed", nil)
	rec := httptest.NewRecorder()

	handlers.handleRelation(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestHandleRelation_MethodNotAllowed(t *testing.T) {
	handlers := testHandlers(t)

	req := httptest.NewRequest(http.MethodPost, "/relation", nil)
	rec := httptest.NewRecorder()

	handlers.handleRelation(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rec.Code)
	}
}

func TestHandleRelations(t *testing.T) {
	handlers := testHandlers(t)

	body := `{"pairs": [
		{"name1": "Alice", "name2": "Carol"},
		{"name1": "Carol", "name2": "Bob"}
	]}`
	req := httptest.NewRequest(http.MethodPost, "/relations", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handlers.handleRelations(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var payload relationsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(payload.Items) != 2 {
		t.Fatalf("expected 2 results, got %d", len(payload.Items))
	}
	if payload.Items[0].Relationship != "mother" {
		t.Fatalf("expected mother, got %q", payload.Items[0].Relationship)
	}
	if payload.Items[1].Relationship != "daughter" {
		t.Fatalf("expected daughter, got %q", payload.Items[1].Relationship)
	}
}

func TestHandleRelations_EmptyBody(t *testing.T) {
	handlers := testHandlers(t)

	req := httptest.NewRequest(http.MethodPost, "/relations", strings.NewReader(`{"pairs": []}`))
	rec := httptest.NewRecorder()

	handlers.handleRelations(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestHandleIndividuals(t *testing.T) {
	handlers := testHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/individuals", nil)
	rec := httptest.NewRecorder()

	handlers.handleIndividuals(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var payload individualsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(payload.Items) != 3 {
		t.Fatalf("expected 3 individuals, got %d", len(payload.Items))
	}
	if payload.Items[0].Name != "Alice" || payload.Items[0].Spouse != "Bob" {
		t.Fatalf("unexpected first individual: %+v", payload.Items[0])
	}
}

func TestHandleFamily_Replace(t *testing.T) {
	handlers := testHandlers(t)

	body := `{
		"individuals": {"Xia": "f", "Yan": "m"},
		"parents": {},
		"couples": [["Xia", "Yan"]]
	}`
	req := httptest.NewRequest(http.MethodPut, "/family", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handlers.handleFamily(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var payload statusResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Individuals != 2 {
		t.Fatalf("expected 2 individuals, got %d", payload.Individuals)
	}
}

func TestHandleFamily_InvalidDescription(t *testing.T) {
	handlers := testHandlers(t)

	body := `{"individuals": {"Xia": "f"}, "parents": {"Xia": ["Ghost"]}, "couples": []}`
	req := httptest.NewRequest(http.MethodPut, "/family", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handlers.handleFamily(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestHandleFamily_MissingSection(t *testing.T) {
	handlers := testHandlers(t)

	body := `{"individuals": {"Xia": "f"}, "parents": {}}`
	req := httptest.NewRequest(http.MethodPut, "/family", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handlers.handleFamily(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestHealthzDegradedOnProbeFailure(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := NewRouter(logger, RouterDependencies{
		Health: probeFunc(func() error { return io.ErrUnexpectedEOF }),
	})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}
}

type probeFunc func() error

func (f probeFunc) Probe(context.Context) error { return f() }
