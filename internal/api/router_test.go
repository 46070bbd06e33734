package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/humbertoconstantino/auth-api/internal/auth"
	"github.com/humbertoconstantino/auth-api/internal/database"
	"github.com/humbertoconstantino/auth-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db))

	tokens := auth.NewTokenManager([]byte("test-secret"), time.Hour)
	return NewRouter(services.NewUserService(db), services.NewAuditService(db), tokens)
}

func do(t *testing.T, router http.Handler, method, path, body, token string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	resp := map[string]interface{}{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "body: %s", rec.Body.String())
	}
	return rec, resp
}

// End-to-end pass over the whole surface: register, conflict, failed and
// successful login, guarded lookups.
func TestRouter_AuthFlow(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec, resp := do(t, router, http.MethodGet, "/", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, resp["msg"])

	rec, resp = do(t, router, http.MethodPost, "/auth/register",
		`{"name":"Ana","email":"ana@x.com","password":"p1","confirmpassword":"p1"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "user created successfully", resp["msg"])

	rec, resp = do(t, router, http.MethodPost, "/auth/register",
		`{"name":"Ana Again","email":"ana@x.com","password":"p2","confirmpassword":"p2"}`, "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "email already in use", resp["msg"])

	rec, resp = do(t, router, http.MethodPost, "/auth/login", `{"email":"ana@x.com","password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "invalid password", resp["msg"])

	rec, resp = do(t, router, http.MethodPost, "/auth/login", `{"email":"ana@x.com","password":"p1"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "authentication successful", resp["msg"])
	token, _ := resp["token"].(string)
	require.NotEmpty(t, token)

	// The guard rejects the bare and the forged variants.
	rec, _ = do(t, router, http.MethodGet, "/user/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	rec, _ = do(t, router, http.MethodGet, "/user/me", "", "definitely-not-a-jwt")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, resp = do(t, router, http.MethodGet, "/user/me", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	me, ok := resp["user"].(map[string]interface{})
	require.True(t, ok)
	id, _ := me["id"].(string)
	require.NotEmpty(t, id)

	rec, resp = do(t, router, http.MethodGet, "/user/"+id, "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	user, ok := resp["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Ana", user["name"])
	assert.Equal(t, "ana@x.com", user["email"])
	assert.NotContains(t, rec.Body.String(), "password")

	rec, resp = do(t, router, http.MethodGet, "/user/no-such-id", "", token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "user not found", resp["msg"])

	rec, resp = do(t, router, http.MethodGet, "/events", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	events, ok := resp["events"].([]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, events, "register and login should have left a trail")
}
