package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"

	"sessions-service/internal/auth"
	"sessions-service/internal/auth/credentials"
	"sessions-service/internal/session"
	"sessions-service/internal/store"
)

func testController(t *testing.T) (*auth.Controller, int) {
	t.Helper()

	st := store.NewState()
	st.Users["alice"] = store.User{PasswordHash: credentials.HashPassword("secret")}
	fs := store.NewFileStore(filepath.Join(t.TempDir(), "sessions.json"))
	if err := fs.Save(context.Background(), st); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	controller := auth.NewController(fs)
	verdict, err := controller.Login(context.Background(), "alice", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	return controller, verdict.SessionID
}

func TestRequireAuthPassesIdentity(t *testing.T) {
	controller, token := testController(t)
	mw := NewAuthMiddleware(controller)

	var seen auth.Verdict
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		v, ok := IdentityFromContext(r.Context())
		if !ok {
			t.Fatal("identity missing from context")
		}
		seen = v
	})

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Cookie", session.CookieName+"="+strconv.Itoa(token))
	rec := httptest.NewRecorder()
	mw.RequireAuth(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if seen.Username != "alice" || seen.SessionID != token {
		t.Fatalf("unexpected identity: %+v", seen)
	}
}

func TestRequireAuthRejects(t *testing.T) {
	controller, _ := testController(t)
	mw := NewAuthMiddleware(controller)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler reached without a valid session")
	})

	for _, cookie := range []string{"", "session_id=999999", "session_id=1=2"} {
		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		if cookie != "" {
			req.Header.Set("Cookie", cookie)
		}
		rec := httptest.NewRecorder()
		mw.RequireAuth(next).ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("cookie %q: status = %d, want 401", cookie, rec.Code)
		}
	}
}

func TestGinRequireAuthBridge(t *testing.T) {
	gin.SetMode(gin.TestMode)
	controller, token := testController(t)
	mw := NewAuthMiddleware(controller)

	router := gin.New()
	protected := router.Group("/api")
	protected.Use(GinRequireAuth(mw))
	protected.GET("/me", func(c *gin.Context) {
		verdict, ok := IdentityFromContext(c.Request.Context())
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "identity lost in bridge"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"username": verdict.Username})
	})

	// Authenticated request reaches the handler with identity intact.
	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Cookie", session.CookieName+"="+strconv.Itoa(token))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}

	// Anonymous request is stopped by the bridge.
	req = httptest.NewRequest(http.MethodGet, "/api/me", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
