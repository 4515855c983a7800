package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jordanpinkava/Kinship-Project/internal/domain"
	"github.com/jordanpinkava/Kinship-Project/internal/loader"
	"github.com/jordanpinkava/Kinship-Project/internal/service"
)

const maxRequestBody = 1 << 20

// APIHandlers exposes HTTP handlers for the REST API.
type APIHandlers struct {
	logger  *slog.Logger
	service *service.KinshipService
}

// NewAPIHandlers constructs an APIHandlers instance.
func NewAPIHandlers(logger *slog.Logger, svc *service.KinshipService) *APIHandlers {
	return &APIHandlers{
		logger:  logger,
		service: svc,
	}
}

func (h *APIHandlers) handleRelation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	query := r.URL.Query()
	name1 := query.Get("name1")
	name2 := query.Get("name2")
	if name1 == "" || name2 == "" {
		writeError(w, http.StatusBadRequest, "name1 and name2 are required")
		return
	}

	relation, err := h.service.Relate(r.Context(), name1, name2)
	if err != nil {
		if errors.Is(err, domain.ErrIndividualNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		h.logger.Error("failed to resolve relation", "error", err, "name1", name1, "name2", name2)
		writeError(w, http.StatusInternalServerError, "failed to resolve relation")
		return
	}

	respondJSON(w, http.StatusOK, toRelationResponse(relation))
}

func (h *APIHandlers) handleRelations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	var payload relationsRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(payload.Pairs) == 0 {
		writeError(w, http.StatusBadRequest, "at least one name pair is required")
		return
	}

	pairs := make([]service.NamePair, 0, len(payload.Pairs))
	for _, pair := range payload.Pairs {
		if pair.Name1 == "" || pair.Name2 == "" {
			writeError(w, http.StatusBadRequest, "every pair requires name1 and name2")
			return
		}
		pairs = append(pairs, service.NamePair{Name1: pair.Name1, Name2: pair.Name2})
	}

	relations, err := h.service.RelateAll(r.Context(), pairs)
	if err != nil {
		if errors.Is(err, domain.ErrIndividualNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		h.logger.Error("failed to resolve relations", "error", err, "pairs", len(pairs))
		writeError(w, http.StatusInternalServerError, "failed to resolve relations")
		return
	}

	resp := relationsResponse{Items: make([]relationResponse, 0, len(relations))}
	for _, relation := range relations {
		resp.Items = append(resp.Items, toRelationResponse(relation))
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *APIHandlers) handleIndividuals(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	summaries := h.service.Individuals()
	resp := individualsResponse{Items: make([]individualResponse, 0, len(summaries))}
	for _, summary := range summaries {
		resp.Items = append(resp.Items, individualResponse{
			Name:    summary.Name,
			Gender:  string(summary.Gender),
			Parents: summary.Parents,
			Spouse:  summary.Spouse,
		})
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *APIHandlers) handleFamily(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		methodNotAllowed(w, http.MethodPut)
		return
	}

	var desc domain.FamilyDescription
	if err := decodeJSON(r, &desc); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := loader.Validate(desc); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.ReplaceFamily(desc); err != nil {
		h.logger.Error("failed to replace family", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to replace family")
		return
	}

	respondJSON(w, http.StatusOK, statusResponse{
		Status:      "ok",
		Individuals: h.service.Size(),
	})
}

// --- Request & Response DTOs ---

type namePairRequest struct {
	Name1 string `json:"name1"`
	Name2 string `json:"name2"`
}

type relationsRequest struct {
	Pairs []namePairRequest `json:"pairs"`
}

type relationResponse struct {
	Name1          string `json:"name1"`
	Name2          string `json:"name2"`
	Related        bool   `json:"related"`
	Relationship   string `json:"relationship,omitempty"`
	CommonRelative string `json:"commonRelative,omitempty"`
	Sentence       string `json:"sentence"`
}

type relationsResponse struct {
	Items []relationResponse `json:"items"`
}

type individualResponse struct {
	Name    string   `json:"name"`
	Gender  string   `json:"gender"`
	Parents []string `json:"parents,omitempty"`
	Spouse  string   `json:"spouse,omitempty"`
}

type individualsResponse struct {
	Items []individualResponse `json:"items"`
}

type statusResponse struct {
	Status      string `json:"status"`
	Individuals int    `json:"individuals"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toRelationResponse(relation domain.Relation) relationResponse {
	return relationResponse{
		Name1:          relation.Name1,
		Name2:          relation.Name2,
		Related:        relation.Related,
		Relationship:   relation.Term,
		CommonRelative: relation.CommonRelative,
		Sentence:       relation.Sentence(),
	}
}

func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxRequestBody))
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("invalid JSON payload: %w", err)
	}
	return nil
}

func writeError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}

func methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	for _, method := range allowed {
		w.Header().Add("Allow", method)
	}
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}
