package cookies

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func newContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func responseCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	t.Fatalf("cookie %q not set on response", name)
	return nil
}

func TestSet_Attributes(t *testing.T) {
	c, rec := newContext(t)

	Set(c, TokenCookie, "abc123", false)

	ck := responseCookie(t, rec, TokenCookie)
	if ck.Value != "abc123" {
		t.Fatalf("unexpected value: %s", ck.Value)
	}
	if !ck.HttpOnly {
		t.Fatalf("expected HttpOnly")
	}
	if ck.SameSite != http.SameSiteStrictMode {
		t.Fatalf("expected SameSite=Strict, got %v", ck.SameSite)
	}
	if ck.MaxAge != 86400 {
		t.Fatalf("expected MaxAge 86400, got %d", ck.MaxAge)
	}
	if ck.Path != "/" {
		t.Fatalf("expected Path /, got %s", ck.Path)
	}
	if ck.Secure {
		t.Fatalf("Secure should be off outside production")
	}
}

func TestSet_SecureInProduction(t *testing.T) {
	c, rec := newContext(t)

	Set(c, TokenCookie, "abc123", true)

	if !responseCookie(t, rec, TokenCookie).Secure {
		t.Fatalf("expected Secure cookie")
	}
}

func TestClear_ExpiresImmediately(t *testing.T) {
	c, rec := newContext(t)

	Clear(c, TokenCookie, false)

	ck := responseCookie(t, rec, TokenCookie)
	if ck.Value != "" {
		t.Fatalf("expected empty value, got %s", ck.Value)
	}
	if ck.MaxAge >= 0 {
		t.Fatalf("expected negative MaxAge, got %d", ck.MaxAge)
	}
}

func TestGet_PresentAndAbsent(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookie, Value: "xyz"})
	c := e.NewContext(req, httptest.NewRecorder())

	if v, ok := Get(c, TokenCookie); !ok || v != "xyz" {
		t.Fatalf("expected xyz, got %q ok=%v", v, ok)
	}
	if _, ok := Get(c, "missing"); ok {
		t.Fatalf("absent cookie should report ok=false")
	}
}
