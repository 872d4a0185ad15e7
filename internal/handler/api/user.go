package api

import (
	"errors"
	"net/http"

	reqdto "meetbook/internal/handler/dto/request"
	resdto "meetbook/internal/handler/dto/response"
	"meetbook/internal/handler/httperr"
	"meetbook/internal/handler/middleware"
	"meetbook/internal/pkg/errs"
	"meetbook/internal/usecase/commands"
	"meetbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserHandler struct {
	userUseCase commands.UserCommands
	userQueries queries.UserQueries
}

func NewUserHandler(userUseCase commands.UserCommands, userQueries queries.UserQueries) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		userQueries: userQueries,
	}
}

// @Summary Register user
// @Description Register a new identity with the default role
// @Tags users
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterUserRequest true "Registration request"
// @Success 201 {object} resdto.UserResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /users [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req reqdto.RegisterUserRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	view, err := h.userUseCase.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid name or email", nil)
		case errors.Is(err, commands.ErrDuplicateEmail):
			httperr.AbortWithError(c, http.StatusConflict, err, "Email already registered", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromUserView(view))
}

// @Summary List users
// @Description List every registered user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.UserResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	views, err := h.userQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserViews(views))
}

// @Summary Count users
// @Description Count registered users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.UserCountResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /users/count [get]
func (h *UserHandler) Count(c *gin.Context) {
	count, err := h.userQueries.Count(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.UserCountResponse{Count: count})
}

// @Summary Delete user
// @Description Delete a user by id
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user ID format", nil)
		return
	}

	if err := h.userUseCase.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get own role
// @Description Resolve the caller's stored role
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.RoleResponse
// @Failure 401 {object} map[string]string
// @Router /get/my-role [get]
func (h *UserHandler) MyRole(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("identity missing from context"), "Internal server error", nil)
		return
	}

	role, err := h.userQueries.RoleOf(c.Request.Context(), identity.Email.Value())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.RoleResponse{Role: role.String()})
}
