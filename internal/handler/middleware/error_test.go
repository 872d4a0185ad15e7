//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"meetbook/internal/handler/httperr"
	"meetbook/internal/handler/middleware"
	"meetbook/internal/pkg/errs"
	"meetbook/tests/common/httptest"

	"github.com/gin-gonic/gin"
)

func setupErrorRouter(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.CustomRecovery())
	router.Use(middleware.ErrorHandler())
	router.GET("/resource", handler)
	return router
}

func TestErrorHandler(t *testing.T) {
	t.Run("AbortWithError writes the flat envelope", func(t *testing.T) {
		router := setupErrorRouter(func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusNotFound, errs.New("row missing"), "Booking not found", nil)
		})

		w := httptest.PerformRequest(t, router, http.MethodGet, "/resource", nil, "")

		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Booking not found")
	})

	t.Run("renders a recorded public error when the handler wrote nothing", func(t *testing.T) {
		router := setupErrorRouter(func(c *gin.Context) {
			_ = c.Error(&gin.Error{
				Err:  errs.New("ownership check failed"),
				Type: gin.ErrorTypePublic,
				Meta: httperr.Response{Status: http.StatusForbidden, Error: "Not the meeting owner"},
			})
		})

		w := httptest.PerformRequest(t, router, http.MethodGet, "/resource", nil, "")

		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Not the meeting owner")
	})

	t.Run("unwritten response without errors falls back to 500", func(t *testing.T) {
		router := setupErrorRouter(func(c *gin.Context) {})

		w := httptest.PerformRequest(t, router, http.MethodGet, "/resource", nil, "")

		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
	})
}

func TestCustomRecovery(t *testing.T) {
	router := setupErrorRouter(func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.PerformRequest(t, router, http.MethodGet, "/resource", nil, "")

	httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
}
