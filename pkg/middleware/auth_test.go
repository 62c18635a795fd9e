package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testJWT = utils.JWTConfig{
	Secret:             "test-secret",
	AccessExpiryHours:  1,
	RefreshExpiryHours: 24,
}

func bearerRequest(token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestAuthJWTSetsUserContext(t *testing.T) {
	userID := uuid.New()
	token, err := utils.GenerateToken(testJWT, userID, "jane@example.com", "customer", utils.TokenTypeAccess)
	require.NoError(t, err)

	var gotID uuid.UUID
	var gotOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, gotOK = utils.GetUserIDFromContext(r.Context())
	})

	rec := httptest.NewRecorder()
	AuthJWT(testJWT, zap.NewNop())(next).ServeHTTP(rec, bearerRequest(token))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, gotOK)
	assert.Equal(t, userID, gotID)
}

func TestAuthJWTRejectsMissingToken(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	rec := httptest.NewRecorder()
	AuthJWT(testJWT, zap.NewNop())(next).ServeHTTP(rec, bearerRequest(""))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAuthJWTRejectsRefreshToken(t *testing.T) {
	token, err := utils.GenerateToken(testJWT, uuid.New(), "jane@example.com", "customer", utils.TokenTypeRefresh)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	AuthJWT(testJWT, zap.NewNop())(next).ServeHTTP(rec, bearerRequest(token))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminForbidsCustomers(t *testing.T) {
	token, err := utils.GenerateToken(testJWT, uuid.New(), "jane@example.com", "customer", utils.TokenTypeAccess)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	chain := AuthJWT(testJWT, zap.NewNop())(Admin(zap.NewNop())(next))
	chain.ServeHTTP(rec, bearerRequest(token))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminAllowsAdmins(t *testing.T) {
	token, err := utils.GenerateToken(testJWT, uuid.New(), "admin@example.com", "admin", utils.TokenTypeAccess)
	require.NoError(t, err)

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	rec := httptest.NewRecorder()
	chain := AuthJWT(testJWT, zap.NewNop())(Admin(zap.NewNop())(next))
	chain.ServeHTTP(rec, bearerRequest(token))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestAuthJWTOptionalPassesAnonymous(t *testing.T) {
	var gotOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, gotOK = utils.GetUserIDFromContext(r.Context())
	})

	rec := httptest.NewRecorder()
	AuthJWTOptional(testJWT, zap.NewNop())(next).ServeHTTP(rec, bearerRequest(""))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, gotOK)
}

func TestAuthJWTOptionalAttachesIdentity(t *testing.T) {
	userID := uuid.New()
	token, err := utils.GenerateToken(testJWT, userID, "jane@example.com", "customer", utils.TokenTypeAccess)
	require.NoError(t, err)

	var gotID uuid.UUID
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = utils.GetUserIDFromContext(r.Context())
	})

	rec := httptest.NewRecorder()
	AuthJWTOptional(testJWT, zap.NewNop())(next).ServeHTTP(rec, bearerRequest(token))

	assert.Equal(t, userID, gotID)
}
