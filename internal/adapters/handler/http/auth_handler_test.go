package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ken122189/backend-P7/internal/core/domain"
	"github.com/ken122189/backend-P7/internal/core/ports"
)

type stubAuthService struct {
	loginPair   *ports.TokenPair
	loginErr    error
	refreshPair *ports.TokenPair
	refreshErr  error
	registerID  int64
	registerErr error
	loggedOut   []int64
}

func (s *stubAuthService) Register(context.Context, string, string) (int64, error) {
	return s.registerID, s.registerErr
}

func (s *stubAuthService) Login(context.Context, string, string) (*ports.TokenPair, error) {
	return s.loginPair, s.loginErr
}

func (s *stubAuthService) Refresh(context.Context, string) (*ports.TokenPair, error) {
	return s.refreshPair, s.refreshErr
}

func (s *stubAuthService) Logout(_ context.Context, userID int64) error {
	s.loggedOut = append(s.loggedOut, userID)
	return nil
}

func TestLoginHandlerReturnsPair(t *testing.T) {
	stub := &stubAuthService{loginPair: &ports.TokenPair{AccessToken: "a", RefreshToken: "r"}}
	handler := NewAuthHandler(stub)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"alice","password":"secret"}`))
	handler.Login(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var pair ports.TokenPair
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&pair))
	assert.Equal(t, "a", pair.AccessToken)
	assert.Equal(t, "r", pair.RefreshToken)
}

func TestLoginHandlerInvalidCredentials(t *testing.T) {
	stub := &stubAuthService{loginErr: domain.ErrInvalidCredentials}
	handler := NewAuthHandler(stub)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"alice","password":"wrong"}`))
	handler.Login(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "token")
}

func TestRefreshHandlerRejectedHidesDetail(t *testing.T) {
	stub := &stubAuthService{refreshErr: domain.ErrRefreshRejected}
	handler := NewAuthHandler(stub)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/api/auth/refresh",
		strings.NewReader(`{"refreshToken":"whatever"}`))
	handler.Refresh(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRefreshHandlerMissingToken(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", strings.NewReader(`{}`))
	handler.Refresh(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRegisterHandlerConflict(t *testing.T) {
	stub := &stubAuthService{registerErr: domain.ErrUsernameTaken}
	handler := NewAuthHandler(stub)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"username":"alice","password":"secret"}`))
	handler.Register(recorder, request)

	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestLogoutHandlerUsesIdentityFromContext(t *testing.T) {
	stub := &stubAuthService{}
	handler := NewAuthHandler(stub)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	ctx := context.WithValue(request.Context(), identityContextKey{}, ports.Identity{ID: 7, Username: "alice", Role: "user"})
	handler.Logout(recorder, request.WithContext(ctx))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, []int64{7}, stub.loggedOut)
	assert.JSONEq(t, `{"ok":true}`, recorder.Body.String())
}

func TestLogoutHandlerWithoutIdentity(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	handler.Logout(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
