package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brave-intl/airdrop-go/libs/access"
	"github.com/stretchr/testify/assert"
)

func TestRoleAuthorizedOnly(t *testing.T) {
	capability := access.NewTokenRoleSet().Seed(access.RoleAdmin, []string{"admin-token"})

	var reached bool
	handler := BearerToken(RoleAuthorizedOnly(capability, access.RoleAdmin)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reached = true
		})))

	// missing token
	rw := httptest.NewRecorder()
	handler.ServeHTTP(rw, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusForbidden, rw.Code)
	assert.False(t, reached)

	// wrong token
	rw = httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer nope")
	handler.ServeHTTP(rw, r)
	assert.Equal(t, http.StatusForbidden, rw.Code)
	assert.False(t, reached)

	// granted token
	rw = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer admin-token")
	handler.ServeHTTP(rw, r)
	assert.Equal(t, http.StatusOK, rw.Code)
	assert.True(t, reached)
}

func TestRoleAuthorizedOnlyRevocation(t *testing.T) {
	capability := access.NewTokenRoleSet().Seed(access.RoleAdmin, []string{"admin-token"})

	handler := BearerToken(RoleAuthorizedOnly(capability, access.RoleAdmin)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer admin-token")

	rw := httptest.NewRecorder()
	handler.ServeHTTP(rw, r)
	assert.Equal(t, http.StatusOK, rw.Code)

	capability.Revoke(access.RoleAdmin, "admin-token")

	rw = httptest.NewRecorder()
	handler.ServeHTTP(rw, r)
	assert.Equal(t, http.StatusForbidden, rw.Code)
}
