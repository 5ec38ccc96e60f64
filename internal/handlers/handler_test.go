package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/harentsoaR/beastfit-api/internal/logging"
	"github.com/harentsoaR/beastfit-api/internal/services"
	"github.com/harentsoaR/beastfit-api/internal/store"
	"github.com/harentsoaR/beastfit-api/internal/utils"
)

const (
	adminEmail    = "admin@beastfitarena.com"
	adminPassword = "admin123"
)

type testServer struct {
	router *gin.Engine
	store  *store.MemoryStore
	notify *services.NotificationService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	utils.PasswordCost = bcrypt.MinCost

	s := store.NewMemoryStore()
	hash, err := utils.HashPassword(adminPassword)
	require.NoError(t, err)
	_, err = store.BootstrapAdmin(context.Background(), s, adminEmail, hash)
	require.NoError(t, err)

	log := logging.Nop()
	notify := services.NewNotificationService(log, services.NewLogNotifier(log), "")
	h := NewHandler(s, notify, log, SessionConfig{Secret: []byte("test-secret"), TTL: time.Hour})

	ts := &testServer{router: NewRouter(h, []string{"http://localhost:5173"}), store: s, notify: notify}
	t.Cleanup(notify.Wait)
	return ts
}

// do sends body (a string is sent verbatim, anything else as JSON) with an
// optional bearer token.
func (ts *testServer) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func (ts *testServer) login(t *testing.T, email, password string) string {
	t.Helper()
	w := ts.do(t, http.MethodPost, "/api/auth/login", gin.H{"email": email, "password": password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		Token string `json:"token"`
	}
	decode(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func (ts *testServer) register(t *testing.T, name, email string) map[string]any {
	t.Helper()
	w := ts.do(t, http.MethodPost, "/api/auth/register", registration(name, email), "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp struct {
		User map[string]any `json:"user"`
	}
	decode(t, w, &resp)
	return resp.User
}

func registration(name, email string) gin.H {
	return gin.H{
		"name":     name,
		"email":    email,
		"password": "secret1",
		"phone":    "5551234567",
		"age":      28,
		"goal":     "weight loss",
	}
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dst), w.Body.String())
}
