//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"meetbook/internal/handler/dto/request"
	"meetbook/tests/common/dbtest"
	"meetbook/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// IssueToken obtains an access token through the public token endpoint.
// Registration is not required; unregistered emails get the default role.
func IssueToken(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/jwt",
		request.IssueTokenRequest{Email: email}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
	require.NotEmpty(t, body.Token, "Token should not be empty")

	return body.Token
}

func RegisterAndIssueToken(t *testing.T, db dbtest.DBLike, router *gin.Engine, name, email, role string) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, name, email, role)
	return IssueToken(t, router, email)
}
