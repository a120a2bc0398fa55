package auth

import (
	"testing"
	"time"

	"lagoon/models"
)

func TestRefreshTokenValid(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	token, err := generateRefreshToken()
	if err != nil {
		t.Fatalf("generateRefreshToken: %v", err)
	}

	user := models.User{
		UserID:        "u1",
		RefreshToken:  hashToken(token),
		RefreshExpiry: now.Add(24 * time.Hour),
	}

	if !refreshTokenValid(user, token, now) {
		t.Fatal("matching unexpired token rejected")
	}
	if refreshTokenValid(user, "some-other-token", now) {
		t.Fatal("non-matching token accepted")
	}
	if refreshTokenValid(user, token, now.Add(48*time.Hour)) {
		t.Fatal("expired token accepted")
	}
	if refreshTokenValid(user, "", now) {
		t.Fatal("empty token accepted")
	}
	if refreshTokenValid(models.User{RefreshExpiry: now.Add(time.Hour)}, token, now) {
		t.Fatal("accepted against a user with no stored token")
	}
}
