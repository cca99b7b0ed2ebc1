package handler

import (
	"net/http"

	"github.com/dangerclosesec/structura/internal/service"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	respondWithJSON(w, http.StatusOK, UserResponse{BaseResponse: BaseResponse{Ok: true}, User: user})
}

func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var input service.UpdateUserInput
	if !decodeJSON(w, r, &input) {
		return
	}

	updated, err := h.userService.UpdateProfile(r.Context(), user.ID, input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, UserResponse{BaseResponse: BaseResponse{Ok: true}, User: updated})
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetByID(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, UserResponse{BaseResponse: BaseResponse{Ok: true}, User: user})
}
