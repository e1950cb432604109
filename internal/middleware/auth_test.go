package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/sales_crm_backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func authRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", AuthMiddleware(testSecret), func(c *gin.Context) {
		fromGin, _ := GetUserIDFromContext(c)
		fromCtx, _ := GetUserIDFromCtx(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"gin": fromGin, "ctx": fromCtx})
	})
	return r
}

func callWithToken(t *testing.T, header string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	authRouter().ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_ValidTokenSetsActor(t *testing.T) {
	token, _, err := utils.IssueAccessToken("profile-1", testSecret, "sales-crm", time.Hour, time.Now())
	require.NoError(t, err)

	w := callWithToken(t, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"gin":"profile-1","ctx":"profile-1"}`, w.Body.String())
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	expired, _, err := utils.IssueAccessToken("profile-1", testSecret, "sales-crm", time.Minute, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	noSubject, _, err := utils.IssueAccessToken("", testSecret, "sales-crm", time.Hour, time.Now())
	require.NoError(t, err)
	foreign, _, err := utils.IssueAccessToken("profile-1", "other-secret", "sales-crm", time.Hour, time.Now())
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		want   string
	}{
		{"missing header", "", "Authorization header required"},
		{"wrong scheme", "Basic abc", "Authorization header format must be Bearer {token}"},
		{"expired", "Bearer " + expired, "Token has expired"},
		{"no subject", "Bearer " + noSubject, "Invalid token claims"},
		{"wrong secret", "Bearer " + foreign, "Invalid token"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := callWithToken(t, tc.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.JSONEq(t, `{"error":"`+tc.want+`"}`, w.Body.String())
		})
	}
}
