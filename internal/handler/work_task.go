package handler

import (
	"net/http"

	"github.com/dangerclosesec/structura/internal/model"
	"github.com/dangerclosesec/structura/internal/service"
)

type WorkTaskHandler struct {
	tasks *service.WorkTaskService
}

func NewWorkTaskHandler(tasks *service.WorkTaskService) *WorkTaskHandler {
	return &WorkTaskHandler{tasks: tasks}
}

type WorkTaskResponse struct {
	BaseResponse
	Task *model.WorkTask `json:"task"`
}

type WorkTasksResponse struct {
	BaseResponse
	Tasks []*model.WorkTask `json:"tasks"`
}

type RatingResponse struct {
	BaseResponse
	Rating float64 `json:"rating"`
}

func (h *WorkTaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var input service.CreateWorkTaskInput
	if !decodeJSON(w, r, &input) {
		return
	}

	task, err := h.tasks.CreateTask(r.Context(), user, input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, WorkTaskResponse{BaseResponse: BaseResponse{Ok: true}, Task: task})
}

func (h *WorkTaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}

	var input service.UpdateWorkTaskInput
	if !decodeJSON(w, r, &input) {
		return
	}

	task, err := h.tasks.UpdateTask(r.Context(), user, id, input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, WorkTaskResponse{BaseResponse: BaseResponse{Ok: true}, Task: task})
}

func (h *WorkTaskHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}

	var input service.UpdateStatusInput
	if !decodeJSON(w, r, &input) {
		return
	}

	task, err := h.tasks.UpdateStatus(r.Context(), user, id, input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, WorkTaskResponse{BaseResponse: BaseResponse{Ok: true}, Task: task})
}

func (h *WorkTaskHandler) UpdateRate(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}

	var input service.UpdateRateInput
	if !decodeJSON(w, r, &input) {
		return
	}

	task, err := h.tasks.UpdateRate(r.Context(), user, id, input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, WorkTaskResponse{BaseResponse: BaseResponse{Ok: true}, Task: task})
}

func (h *WorkTaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.tasks.DeleteTask(r.Context(), user, id); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *WorkTaskHandler) Assigned(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	tasks, err := h.tasks.AssignedTasks(r.Context(), user)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, WorkTasksResponse{BaseResponse: BaseResponse{Ok: true}, Tasks: tasks})
}

func (h *WorkTaskHandler) Created(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	tasks, err := h.tasks.CreatedTasks(r.Context(), user)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, WorkTasksResponse{BaseResponse: BaseResponse{Ok: true}, Tasks: tasks})
}

func (h *WorkTaskHandler) MyRating(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	rating, err := h.tasks.UserRating(r.Context(), user.ID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, RatingResponse{BaseResponse: BaseResponse{Ok: true}, Rating: rating})
}

func (h *WorkTaskHandler) TeamRating(w http.ResponseWriter, r *http.Request) {
	role, ok := currentRole(w, r)
	if !ok {
		return
	}

	rating, err := h.tasks.TeamRating(r.Context(), role.StructureID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, RatingResponse{BaseResponse: BaseResponse{Ok: true}, Rating: rating})
}
