package handler

import (
	"net/http"

	"github.com/dangerclosesec/structura/internal/model"
	"github.com/dangerclosesec/structura/internal/service"
)

type RelationHandler struct {
	relations *service.RelationService
}

func NewRelationHandler(relations *service.RelationService) *RelationHandler {
	return &RelationHandler{relations: relations}
}

type RelationResponse struct {
	BaseResponse
	Relation *model.Relation `json:"relation"`
}

type RelationsResponse struct {
	BaseResponse
	Relations []*model.Relation `json:"relations"`
}

func (h *RelationHandler) Create(w http.ResponseWriter, r *http.Request) {
	role, ok := currentRole(w, r)
	if !ok {
		return
	}

	var input service.RelationInput
	if !decodeJSON(w, r, &input) {
		return
	}

	relation, err := h.relations.CreateRelation(r.Context(), role, input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, RelationResponse{BaseResponse: BaseResponse{Ok: true}, Relation: relation})
}

func (h *RelationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	role, ok := currentRole(w, r)
	if !ok {
		return
	}
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.relations.DeleteRelation(r.Context(), role, id); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MySubordinates lists the relations where the caller's role is superior.
func (h *RelationHandler) MySubordinates(w http.ResponseWriter, r *http.Request) {
	role, ok := currentRole(w, r)
	if !ok {
		return
	}

	relations, err := h.relations.GetSubordinates(r.Context(), role.ID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, RelationsResponse{BaseResponse: BaseResponse{Ok: true}, Relations: relations})
}

// MySuperiors lists the relations where the caller's role is subordinate.
func (h *RelationHandler) MySuperiors(w http.ResponseWriter, r *http.Request) {
	role, ok := currentRole(w, r)
	if !ok {
		return
	}

	relations, err := h.relations.GetSuperiors(r.Context(), role.ID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, RelationsResponse{BaseResponse: BaseResponse{Ok: true}, Relations: relations})
}
