package handler

import (
	"net/http"

	"github.com/dangerclosesec/structura/internal/model"
	"github.com/dangerclosesec/structura/internal/service"
)

type StructureHandler struct {
	structures *service.StructureService
}

func NewStructureHandler(structures *service.StructureService) *StructureHandler {
	return &StructureHandler{structures: structures}
}

type StructureResponse struct {
	BaseResponse
	Structure *model.Structure `json:"structure"`
	Role      *model.Role      `json:"role,omitempty"`
}

type TeamResponse struct {
	BaseResponse
	Roles []*model.Role `json:"roles"`
}

type HierarchyResponse struct {
	BaseResponse
	*service.Hierarchy
}

func (h *StructureHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var input service.StructureInput
	if !decodeJSON(w, r, &input) {
		return
	}

	out, err := h.structures.Create(r.Context(), user, input)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, StructureResponse{
		BaseResponse: BaseResponse{Ok: true},
		Structure:    out.Structure,
		Role:         out.Role,
	})
}

func (h *StructureHandler) Mine(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	structure, err := h.structures.GetForUser(r.Context(), user)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StructureResponse{BaseResponse: BaseResponse{Ok: true}, Structure: structure})
}

func (h *StructureHandler) Team(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	roles, err := h.structures.Team(r.Context(), user)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, TeamResponse{BaseResponse: BaseResponse{Ok: true}, Roles: roles})
}

func (h *StructureHandler) Hierarchy(w http.ResponseWriter, r *http.Request) {
	role, ok := currentRole(w, r)
	if !ok {
		return
	}

	hierarchy, err := h.structures.Hierarchy(r.Context(), role)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, HierarchyResponse{BaseResponse: BaseResponse{Ok: true}, Hierarchy: hierarchy})
}

func (h *StructureHandler) Update(w http.ResponseWriter, r *http.Request) {
	role, ok := currentRole(w, r)
	if !ok {
		return
	}

	var input service.StructureInput
	if !decodeJSON(w, r, &input) {
		return
	}

	structure, err := h.structures.Update(r.Context(), role, input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StructureResponse{BaseResponse: BaseResponse{Ok: true}, Structure: structure})
}
