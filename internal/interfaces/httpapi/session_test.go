package httpapi

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/haakonrs/kampplan/internal/usecase"
)

func TestStaticSessionVerifier(t *testing.T) {
	verifier := NewStaticSessionVerifier("secret-token", "owner-1")

	principal, err := verifier.VerifySessionToken(t.Context(), "secret-token")
	if err != nil {
		t.Fatalf("verify valid token: %v", err)
	}
	if principal.UserID != "owner-1" {
		t.Fatalf("expected owner-1, got %s", principal.UserID)
	}

	if _, err := verifier.VerifySessionToken(t.Context(), "wrong"); !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for wrong token, got %v", err)
	}

	empty := NewStaticSessionVerifier("", "owner-1")
	if _, err := empty.VerifySessionToken(t.Context(), "anything"); !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized when unconfigured, got %v", err)
	}
}

func TestRequireSession(t *testing.T) {
	verifier := NewStaticSessionVerifier("secret-token", "owner-1")
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := principalFromContext(r.Context())
		if !ok || principal.UserID != "owner-1" {
			t.Fatalf("expected principal in context, got %+v ok=%v", principal, ok)
		}
		w.WriteHeader(http.StatusOK)
	})
	handler := RequireSession(verifier, next)

	req := httptest.NewRequest(http.MethodGet, "/v1/matches", nil)
	req.Header.Set("Authorization", "Bearer secret-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid token, got %d", rec.Code)
	}

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "wrong scheme", header: "Basic secret-token"},
		{name: "wrong token", header: "Bearer nope"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/matches", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}
