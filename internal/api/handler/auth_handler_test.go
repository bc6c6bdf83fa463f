package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/acquisitions/acquisitions-api/internal/api/middleware"
	"github.com/acquisitions/acquisitions-api/internal/auth"
	"github.com/acquisitions/acquisitions-api/internal/core/domain"
	"github.com/acquisitions/acquisitions-api/internal/pkg/cookies"
)

type stubAuthService struct {
	signUpFn  func(ctx context.Context, name, email, password, role string) (*domain.User, string, error)
	signInFn  func(ctx context.Context, email, password string) (*domain.User, string, error)
	signOutFn func(ctx context.Context, jti string) error
}

func (s *stubAuthService) SignUp(ctx context.Context, name, email, password, role string) (*domain.User, string, error) {
	return s.signUpFn(ctx, name, email, password, role)
}

func (s *stubAuthService) SignIn(ctx context.Context, email, password string) (*domain.User, string, error) {
	return s.signInFn(ctx, email, password)
}

func (s *stubAuthService) SignOut(ctx context.Context, jti string) error {
	return s.signOutFn(ctx, jti)
}

func authContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func tokenCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == cookies.TokenCookie {
			return ck
		}
	}
	return nil
}

func TestAuthHandler_SignUp_Success(t *testing.T) {
	stub := &stubAuthService{
		signUpFn: func(ctx context.Context, name, email, password, role string) (*domain.User, string, error) {
			if name != "Alice" || email != "alice@example.com" || password != "s3cret" || role != "" {
				t.Fatalf("unexpected args: %s %s %s %s", name, email, password, role)
			}
			return &domain.User{ID: 1, Name: name, Email: email, Role: domain.RoleUser}, "signed-token", nil
		},
	}
	h := NewAuthHandler(stub, false)

	c, rec := authContext(t, http.MethodPost, "/api/auth/sign-up",
		`{"name":"Alice","email":"alice@example.com","password":"s3cret"}`)

	if err := h.SignUp(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	ck := tokenCookie(rec)
	if ck == nil || ck.Value != "signed-token" {
		t.Fatalf("expected token cookie, got %+v", ck)
	}
	if !ck.HttpOnly {
		t.Fatalf("token cookie must be HttpOnly")
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["email"] != "alice@example.com" || user["role"] != "user" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if strings.Contains(rec.Body.String(), "signed-token") {
		t.Fatalf("token must not appear in the response body")
	}
}

func TestAuthHandler_SignUp_InvalidBody(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, false)

	c, _ := authContext(t, http.MethodPost, "/api/auth/sign-up",
		`{"name":"Alice","email":"not-an-email","password":"s3cret"}`)

	err := h.SignUp(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_SignUp_DuplicateEmailPropagates(t *testing.T) {
	stub := &stubAuthService{
		signUpFn: func(ctx context.Context, name, email, password, role string) (*domain.User, string, error) {
			return nil, "", domain.ErrEmailTaken
		},
	}
	h := NewAuthHandler(stub, false)

	c, _ := authContext(t, http.MethodPost, "/api/auth/sign-up",
		`{"name":"Alice","email":"alice@example.com","password":"s3cret"}`)

	if err := h.SignUp(c); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken to propagate, got %v", err)
	}
}

func TestAuthHandler_SignIn_Success(t *testing.T) {
	stub := &stubAuthService{
		signInFn: func(ctx context.Context, email, password string) (*domain.User, string, error) {
			return &domain.User{ID: 2, Name: "Bob", Email: email, Role: domain.RoleUser}, "signed-token", nil
		},
	}
	h := NewAuthHandler(stub, false)

	c, rec := authContext(t, http.MethodPost, "/api/auth/sign-in",
		`{"email":"bob@example.com","password":"s3cret"}`)

	if err := h.SignIn(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ck := tokenCookie(rec); ck == nil || ck.Value != "signed-token" {
		t.Fatalf("expected token cookie, got %+v", ck)
	}
}

func TestAuthHandler_SignIn_BadCredentialsPropagates(t *testing.T) {
	stub := &stubAuthService{
		signInFn: func(ctx context.Context, email, password string) (*domain.User, string, error) {
			return nil, "", domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub, false)

	c, rec := authContext(t, http.MethodPost, "/api/auth/sign-in",
		`{"email":"bob@example.com","password":"wrong"}`)

	if err := h.SignIn(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
	if ck := tokenCookie(rec); ck != nil {
		t.Fatalf("no cookie should be set on failure")
	}
}

func TestAuthHandler_SignOut_RevokesAndClearsCookie(t *testing.T) {
	var revoked string
	stub := &stubAuthService{
		signOutFn: func(ctx context.Context, jti string) error {
			revoked = jti
			return nil
		},
	}
	h := NewAuthHandler(stub, false)

	c, rec := authContext(t, http.MethodPost, "/api/auth/sign-out", "")
	claims := &auth.Claims{UserID: 1, Email: "alice@example.com", Role: domain.RoleUser}
	claims.ID = "jti-123"
	c.Set(middleware.IdentityKey, claims)

	if err := h.SignOut(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if revoked != "jti-123" {
		t.Fatalf("expected jti-123 revoked, got %q", revoked)
	}

	ck := tokenCookie(rec)
	if ck == nil {
		t.Fatalf("expected cleared cookie on response")
	}
	if ck.Value != "" || ck.MaxAge >= 0 {
		t.Fatalf("cookie not cleared: value=%q maxage=%d", ck.Value, ck.MaxAge)
	}
}

func TestAuthHandler_SignOut_NoIdentity(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, false)

	c, _ := authContext(t, http.MethodPost, "/api/auth/sign-out", "")

	err := h.SignOut(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
