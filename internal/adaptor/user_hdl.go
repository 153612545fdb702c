package adaptor

import (
	"net/http"

	"pet-grooming/internal/dto/request"
	"pet-grooming/internal/usecase"
	"pet-grooming/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetProfile handles GET /api/profile
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	response, err := h.service.GetProfile(r.Context(), userID.String())
	if err != nil {
		handleServiceError(w, h.log, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, "Profile retrieved", response)
}

// GetAll handles GET /api/admin/users
func (h *UserHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req := request.PaginatedRequest{
		Page:    utils.ParseInt(q.Get("page"), 1),
		PerPage: utils.ParseInt(q.Get("per_page"), 10),
	}

	response, err := h.service.GetAllUsers(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "list users")
		return
	}

	utils.ResponseSuccess(w, "Users retrieved", response)
}

// Delete handles DELETE /api/admin/users/{id}
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	if err := h.service.DeleteUser(r.Context(), userID); err != nil {
		handleServiceError(w, h.log, err, "delete user")
		return
	}

	utils.ResponseSuccess(w, "User deleted", nil)
}
