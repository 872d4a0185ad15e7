package api

import (
	"errors"
	"net/http"

	reqdto "meetbook/internal/handler/dto/request"
	resdto "meetbook/internal/handler/dto/response"
	"meetbook/internal/handler/httperr"
	"meetbook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase commands.AuthCommands
}

func NewAuthHandler(authUseCase commands.AuthCommands) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

// @Summary Issue token
// @Description Exchange an email for a signed access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.IssueTokenRequest true "Token request"
// @Success 200 {object} resdto.TokenResponse
// @Failure 400 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /jwt [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req reqdto.IssueTokenRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	token, err := h.authUseCase.IssueToken(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidEmail):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid email", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.TokenResponse{Token: token})
}
