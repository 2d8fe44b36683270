package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/joho/godotenv"

	"github.com/weiheng-lim/gamehub-be/internal/auth"
	"github.com/weiheng-lim/gamehub-be/internal/logging"
	"github.com/weiheng-lim/gamehub-be/internal/storage/postgres"
)

// TestAuthIntegration exercises register/login against a live Postgres.
func TestAuthIntegration(t *testing.T) {
	if os.Getenv("RUN_AUTH_INTEGRATION") != "true" {
		t.Skip("set RUN_AUTH_INTEGRATION=true to run this integration test")
	}

	for _, path := range []string{".env", "../.env", "../../.env", "../../../.env"} {
		_ = godotenv.Overload(path)
	}
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Fatal("DATABASE_URL is required")
	}
	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		t.Fatal("JWT_SECRET is required")
	}

	ctx := context.Background()
	store, err := postgres.New(ctx, dbURL, 5*time.Second)
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	defer store.Close()

	tokens := auth.NewTokenManager(secret, "gamehub-test", time.Hour, 0)
	mux := http.NewServeMux()
	NewAuthHandler(store, tokens, logging.Default()).Register(mux)

	ts := httptest.NewServer(mux)
	defer ts.Close()

	email := fmt.Sprintf("apitest_%d@example.com", time.Now().UnixNano())
	password := fmt.Sprintf("Pass!%d", time.Now().UnixNano())

	if status, _ := doPost(t, ts.URL+"/register", email, password); status != http.StatusCreated {
		t.Fatalf("register status = %d", status)
	}
	status, body := doPost(t, ts.URL+"/login", email, password)
	if status != http.StatusOK {
		t.Fatalf("login status = %d", status)
	}
	if strings.TrimSpace(body["token"]) == "" {
		t.Fatal("login response missing token")
	}

	t.Logf("registered %s and logged in via /login", email)
}

func doPost(t *testing.T, url, email, password string) (int, map[string]string) {
	t.Helper()
	payload, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("request %s failed: %v", url, err)
	}
	defer resp.Body.Close()

	out := map[string]string{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, out
}
