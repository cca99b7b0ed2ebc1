package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dangerclosesec/structura/internal/domain"
	"github.com/dangerclosesec/structura/internal/middleware"
	"github.com/dangerclosesec/structura/internal/model"
	"github.com/go-chi/chi/v5"
	chmw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

type ErrorResponse struct { // TypeGen: ErrorResponse
	BaseResponse
	Error   string    `json:"error"`
	Details *[]string `json:"details,omitempty"`
	Code    *string   `json:"error_code,omitempty"`
	Link    *string   `json:"error_link,omitempty"`
}

type BaseResponse struct { // TypeGen: DefaultResponse
	Ok bool `json:"ok"`
}

type MessageResponse struct {
	BaseResponse
	Message string `json:"message"`
}

// errorMapping pairs a domain error with the status and message clients see.
type errorMapping struct {
	err     error
	status  int
	message string
}

// errorMappings is checked in order, so more specific errors come first.
var errorMappings = []errorMapping{
	// 400
	{domain.ErrInvalidRate, http.StatusBadRequest, "Rate must be between 1 and 3"},

	// 401
	{domain.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{domain.ErrInactiveUser, http.StatusUnauthorized, "User is inactive"},
	{domain.ErrUnauthorized, http.StatusUnauthorized, "Unauthorized"},

	// 403
	{domain.ErrAlreadyHaveRole, http.StatusForbidden, "User already has a role"},
	{domain.ErrNotTeamAdministrator, http.StatusForbidden, "You are not team administrator"},
	{domain.ErrCrossStructureViolation, http.StatusForbidden, "Entity belongs to another structure"},
	{domain.ErrSelfDeletion, http.StatusForbidden, "You can not delete your own role"},
	{domain.ErrRelationAlreadyExists, http.StatusForbidden, "Relation already exists"},
	{domain.ErrSelfRelation, http.StatusForbidden, "Role can not be its own superior"},
	{domain.ErrRelationCycle, http.StatusForbidden, "Relation would create a cycle"},
	{domain.ErrNotDirectSuperior, http.StatusForbidden, "You are not direct superior of this user"},
	{domain.ErrNotTaskCreator, http.StatusForbidden, "You are not creator of this task"},
	{domain.ErrNotTaskAssignee, http.StatusForbidden, "You are not assignee of this task"},
	{domain.ErrTaskBeforeNow, http.StatusForbidden, "Complete by date must be in the future"},
	{domain.ErrInvalidStatusTransition, http.StatusForbidden, "Status change is not allowed"},
	{domain.ErrNotMeetingCreator, http.StatusForbidden, "You are not creator of this meeting"},
	{domain.ErrMeetingBeforeNow, http.StatusForbidden, "Meeting date must be in the future"},
	{domain.ErrUserAlreadyAdded, http.StatusForbidden, "User already added to meeting"},
	{domain.ErrUserNotInMeeting, http.StatusForbidden, "User is not in meeting"},

	// 404
	{domain.ErrRoleNotFoundForUser, http.StatusNotFound, "Not found role for this user"},
	{domain.ErrRoleNotFound, http.StatusNotFound, "Role not found"},
	{domain.ErrRelationNotFound, http.StatusNotFound, "Relation not found"},
	{domain.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{domain.ErrStructureNotFound, http.StatusNotFound, "Structure not found"},
	{domain.ErrTaskNotFound, http.StatusNotFound, "Task not found"},
	{domain.ErrTasksNotFound, http.StatusNotFound, "Rated tasks not found"},
	{domain.ErrMeetingNotFound, http.StatusNotFound, "Meeting not found"},
	{domain.ErrNotFound, http.StatusNotFound, "Not found"},

	// 409
	{domain.ErrEmailAlreadyExists, http.StatusConflict, "Email already exists"},
}

// handleError maps err to an HTTP response. Unmapped errors are logged and
// reported as 500 without detail.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrInvalidInput) {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			respondWithError(w, m.status, m.message)
			return
		}
	}

	slog.ErrorContext(r.Context(), "Unhandled error", "error", err, "path", r.URL.Path, "requestID", chmw.GetReqID(r.Context()))
	respondWithError(w, http.StatusInternalServerError, "Internal server error")
}

// decodeJSON reads the request body into dst, answering 400 itself on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return false
	}
	return true
}

// urlUUID parses the named chi URL parameter, answering 400 itself on failure.
func urlUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(chi.URLParam(r, name)))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// currentUser returns the authenticated user, answering 401 itself when absent.
func currentUser(w http.ResponseWriter, r *http.Request) (*model.User, bool) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
	}
	return user, ok
}

// currentRole returns the role stored by middleware.CurrentRole.
func currentRole(w http.ResponseWriter, r *http.Request) (*model.Role, bool) {
	role, ok := middleware.RoleFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusNotFound, "Not found role for this user")
	}
	return role, ok
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	// Sets content type header
	w.Header().Set("Content-Type", "application/json")

	// Sets the HTTP status code
	w.WriteHeader(code)

	// Encodes the response
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// If encoding fails, logs the error and sends a plain text response
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}
