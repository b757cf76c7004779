package service

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/chainsafe/lime-api/pkg/auth"
	"github.com/chainsafe/lime-api/pkg/config"
)

func newAuthTestServer(t *testing.T, secret string) (http.Handler, *auth.TokenIssuer) {
	t.Helper()

	issuer, err := auth.NewTokenIssuer(config.AuthConfig{JWTSecret: secret, TokenTTL: 10 * time.Second})
	if err != nil {
		t.Fatalf("NewTokenIssuer() failed: %v", err)
	}

	r := chi.NewRouter()
	RegisterRoutes(r, issuer, auth.NewKnownUsersChecker(auth.DefaultKnownUsers...), zap.NewNop())
	return r, issuer
}

func postAuthenticate(handler http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/lime/authenticate", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeErrorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var got struct {
		Error string `json:"error"`
		Code  int    `json:"code"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.Code != rec.Code {
		t.Fatalf("expected code %d in body, got %d", rec.Code, got.Code)
	}
	return got.Error
}

func TestAuthenticateHTTP_KnownUser_ReturnsVerifiableToken(t *testing.T) {
	handler, issuer := newAuthTestServer(t, "mysecret")

	rec := postAuthenticate(handler, `{"username":"alice","password":"alice"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected content-type %q, got %q", "application/json", ct)
	}

	var got AuthenticateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.Token == "" {
		t.Fatal("expected a token")
	}

	subject, err := issuer.Verify(got.Token)
	if err != nil {
		t.Fatalf("Verify() failed: %v", err)
	}
	if subject != "alice" {
		t.Fatalf("expected subject alice, got %q", subject)
	}
}

func TestAuthenticateHTTP_UnknownUser_ReturnsUnauthorized(t *testing.T) {
	handler, _ := newAuthTestServer(t, "mysecret")

	rec := postAuthenticate(handler, `{"username":"eve","password":"eve"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
	if msg := decodeErrorMessage(t, rec); msg != "Invalid username or password" {
		t.Fatalf("unexpected error message %q", msg)
	}
}

func TestAuthenticateHTTP_WrongPassword_ReturnsUnauthorized(t *testing.T) {
	handler, _ := newAuthTestServer(t, "mysecret")

	rec := postAuthenticate(handler, `{"username":"alice","password":"bob"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestAuthenticateHTTP_InvalidJSON_ReturnsBadRequest(t *testing.T) {
	handler, _ := newAuthTestServer(t, "mysecret")

	rec := postAuthenticate(handler, `{invalid`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if msg := decodeErrorMessage(t, rec); msg != "invalid JSON" {
		t.Fatalf("unexpected error message %q", msg)
	}
}

func TestAuthenticateHTTP_SigningFailure_ReturnsInternalError(t *testing.T) {
	handler, _ := newAuthTestServer(t, "")

	rec := postAuthenticate(handler, `{"username":"bob","password":"bob"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
	}
	if msg := decodeErrorMessage(t, rec); msg != "Failed to create token" {
		t.Fatalf("unexpected error message %q", msg)
	}
}
