package handler

import (
	"net/http"

	"github.com/dangerclosesec/structura/internal/model"
	"github.com/dangerclosesec/structura/internal/service"
	"github.com/google/uuid"
)

type RoleHandler struct {
	roles *service.RoleService
}

func NewRoleHandler(roles *service.RoleService) *RoleHandler {
	return &RoleHandler{roles: roles}
}

type RoleResponse struct {
	BaseResponse
	Role *model.Role `json:"role"`
}

func (h *RoleHandler) Mine(w http.ResponseWriter, r *http.Request) {
	role, ok := currentRole(w, r)
	if !ok {
		return
	}
	respondWithJSON(w, http.StatusOK, RoleResponse{BaseResponse: BaseResponse{Ok: true}, Role: role})
}

func (h *RoleHandler) UpdateMine(w http.ResponseWriter, r *http.Request) {
	role, ok := currentRole(w, r)
	if !ok {
		return
	}

	var input service.UpdateRoleInput
	if !decodeJSON(w, r, &input) {
		return
	}

	updated, err := h.roles.UpdateMyRole(r.Context(), role, input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, RoleResponse{BaseResponse: BaseResponse{Ok: true}, Role: updated})
}

func (h *RoleHandler) Create(w http.ResponseWriter, r *http.Request) {
	role, ok := currentRole(w, r)
	if !ok {
		return
	}

	var input service.BoundRoleInput
	if !decodeJSON(w, r, &input) {
		return
	}

	// Without user_id the role is created empty, ready for a later binding.
	var created *model.Role
	var err error
	if input.UserID == uuid.Nil {
		created, err = h.roles.CreateRole(r.Context(), role.StructureID, input.RoleInput)
	} else {
		created, err = h.roles.CreateRoleBoundToUser(r.Context(), role, input)
	}
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, RoleResponse{BaseResponse: BaseResponse{Ok: true}, Role: created})
}

func (h *RoleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	role, ok := currentRole(w, r)
	if !ok {
		return
	}
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.roles.DeleteRole(r.Context(), role, id); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
