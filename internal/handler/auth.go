// internal/handler/auth.go
package handler

import (
	"net/http"
	"time"

	"github.com/dangerclosesec/structura/internal/middleware"
	"github.com/dangerclosesec/structura/internal/model"
	"github.com/dangerclosesec/structura/internal/service"
)

type AuthHandler struct {
	userService *service.UserService
}

func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

type UserResponse struct {
	BaseResponse
	User *model.User `json:"user"`
}

type LoginResponse struct {
	BaseResponse
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

func (h *AuthHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var input service.RegisterInput
	if !decodeJSON(w, r, &input) {
		return
	}

	user, err := h.userService.Register(r.Context(), input)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, UserResponse{
		BaseResponse: BaseResponse{Ok: true},
		User:         user,
	})
}

func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if !decodeJSON(w, r, &input) {
		return
	}

	output, err := h.userService.Login(r.Context(), input)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, LoginResponse{
		BaseResponse: BaseResponse{Ok: true},
		User:         output.User,
		Token:        output.Token,
	})
}

func (h *AuthHandler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.userService.Logout(r.Context(), claims); err != nil {
		handleError(w, r, err)
		return
	}

	expiration := time.Now().Add(-1 * time.Hour)
	cookie := http.Cookie{Name: "token", Value: "", Expires: expiration}

	http.SetCookie(w, &cookie)

	respondWithJSON(w, http.StatusOK, MessageResponse{
		BaseResponse: BaseResponse{Ok: true},
		Message:      "User logged out successfully",
	})
}
