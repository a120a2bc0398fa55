package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lagoon/globals"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

func signToken(t *testing.T, userID string) string {
	t.Helper()
	claims := &Claims{
		Username: "tester",
		UserID:   userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(globals.JwtSecret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestAuthenticateRejectsMissingToken(t *testing.T) {
	called := false
	h := Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		called = true
	})

	req := httptest.NewRequest("GET", "/api/trips/mine", nil)
	w := httptest.NewRecorder()
	h(w, req, nil)

	if called {
		t.Fatal("handler ran without a token")
	}
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAuthenticateRejectsUpgradeRequestsWithoutToken(t *testing.T) {
	called := false
	h := Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		called = true
	})

	req := httptest.NewRequest("GET", "/ws/trips/Ab12Cd34", nil)
	req.Header.Set("Connection", "Upgrade")
	req.Header.Set("Upgrade", "websocket")
	w := httptest.NewRecorder()
	h(w, req, nil)

	if called {
		t.Fatal("upgrade request bypassed authentication")
	}
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAuthenticatePutsUserIDInContext(t *testing.T) {
	var gotUserID string
	h := Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		gotUserID, _ = r.Context().Value(globals.UserIDKey).(string)
	})

	req := httptest.NewRequest("GET", "/api/trips/mine", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "u123"))
	w := httptest.NewRecorder()
	h(w, req, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if gotUserID != "u123" {
		t.Fatalf("user id in context = %q, want u123", gotUserID)
	}
}

func TestOptionalAuthProceedsWithoutToken(t *testing.T) {
	called := false
	h := OptionalAuth(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		called = true
		if _, ok := r.Context().Value(globals.UserIDKey).(string); ok {
			t.Error("anonymous request should not carry a user id")
		}
	})

	req := httptest.NewRequest("GET", "/api/trips/trip/Ab12Cd34", nil)
	w := httptest.NewRecorder()
	h(w, req, nil)

	if !called {
		t.Fatal("handler not called for anonymous request")
	}
}
