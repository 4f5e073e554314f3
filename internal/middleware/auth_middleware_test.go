package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Kri4n/CourseBooking-API/internal/auth"
	"github.com/Kri4n/CourseBooking-API/internal/models"
)

func newTestToken(t *testing.T, a *auth.Auth, isAdmin bool) (string, string) {
	t.Helper()
	user := &models.User{ID: primitive.NewObjectID(), IsAdmin: isAdmin}
	token, err := a.GenerateToken(user)
	require.NoError(t, err)
	return token, user.ID.Hex()
}

func TestVerify_MissingHeader(t *testing.T) {
	a := auth.New("secret", time.Hour)
	handler := Verify(a)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/users/details", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestVerify_MalformedHeader(t *testing.T) {
	a := auth.New("secret", time.Hour)
	handler := Verify(a)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/users/details", nil)
	req.Header.Set("Authorization", "Token abc123")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestVerify_InvalidToken(t *testing.T) {
	a := auth.New("secret", time.Hour)
	handler := Verify(a)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/users/details", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestVerify_AttachesIdentity(t *testing.T) {
	a := auth.New("secret", time.Hour)
	token, userID := newTestToken(t, a, false)

	var got *auth.Claims
	handler := Verify(a)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := UserFromContext(r.Context())
		require.True(t, ok)
		got = claims
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/users/details", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, got)
	assert.Equal(t, userID, got.UserID)
	assert.False(t, got.IsAdmin)
}

func TestVerifyAdmin_NonAdmin(t *testing.T) {
	a := auth.New("secret", time.Hour)
	token, _ := newTestToken(t, a, false)

	handler := Verify(a)(VerifyAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	})))

	req := httptest.NewRequest(http.MethodGet, "/courses/all", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestVerifyAdmin_Admin(t *testing.T) {
	a := auth.New("secret", time.Hour)
	token, _ := newTestToken(t, a, true)

	handler := Verify(a)(VerifyAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	req := httptest.NewRequest(http.MethodGet, "/courses/all", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestVerifyAdmin_NoIdentity(t *testing.T) {
	handler := VerifyAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/courses/all", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
