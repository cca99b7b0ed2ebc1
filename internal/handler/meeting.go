package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dangerclosesec/structura/internal/model"
	"github.com/dangerclosesec/structura/internal/service"
	"github.com/google/uuid"
)

type MeetingHandler struct {
	meetings *service.MeetingService
}

func NewMeetingHandler(meetings *service.MeetingService) *MeetingHandler {
	return &MeetingHandler{meetings: meetings}
}

type MeetingResponse struct {
	BaseResponse
	Meeting *model.Meeting `json:"meeting"`
}

type MeetingsResponse struct {
	BaseResponse
	Meetings []*model.Meeting `json:"meetings"`
}

func (h *MeetingHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var input service.MeetingInput
	if !decodeJSON(w, r, &input) {
		return
	}

	meeting, err := h.meetings.CreateMeeting(r.Context(), user, input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, MeetingResponse{BaseResponse: BaseResponse{Ok: true}, Meeting: meeting})
}

func (h *MeetingHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}

	var input service.MeetingInput
	if !decodeJSON(w, r, &input) {
		return
	}

	meeting, err := h.meetings.UpdateMeeting(r.Context(), user, id, input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, MeetingResponse{BaseResponse: BaseResponse{Ok: true}, Meeting: meeting})
}

func (h *MeetingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.meetings.DeleteMeeting(r.Context(), user, id); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *MeetingHandler) AddUser(w http.ResponseWriter, r *http.Request) {
	h.participant(w, r, h.meetings.AddUser)
}

func (h *MeetingHandler) RemoveUser(w http.ResponseWriter, r *http.Request) {
	h.participant(w, r, h.meetings.RemoveUser)
}

type participantOp func(ctx context.Context, user *model.User, meetingID, userID uuid.UUID) (*model.Meeting, error)

func (h *MeetingHandler) participant(w http.ResponseWriter, r *http.Request, op participantOp) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	meetingID, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}
	userID, ok := urlUUID(w, r, "userID")
	if !ok {
		return
	}

	meeting, err := op(r.Context(), user, meetingID, userID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, MeetingResponse{BaseResponse: BaseResponse{Ok: true}, Meeting: meeting})
}

// Mine lists the caller's meetings; ?today=true narrows them to the current day.
func (h *MeetingHandler) Mine(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	today := false
	if v := r.URL.Query().Get("today"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid today")
			return
		}
		today = parsed
	}

	meetings, err := h.meetings.MyMeetings(r.Context(), user, today)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, MeetingsResponse{BaseResponse: BaseResponse{Ok: true}, Meetings: meetings})
}
