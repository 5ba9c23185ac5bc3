package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cs_sprint_backend/internal/config"
	"cs_sprint_backend/internal/model"
	"cs_sprint_backend/internal/util"

	"github.com/gin-gonic/gin"
)

const testSecret = "test-secret-for-middleware-only"

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = testSecret
	return cfg
}

func testToken(t *testing.T, userID uint, role model.UserRole) string {
	t.Helper()
	token, err := util.GenerateJWT(userID, role, "mw@example.com", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

func newAuthRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/private", AuthMiddleware(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": util.GetUserFromContext(c).UserID})
	})
	router.GET("/admin", AuthMiddleware(cfg), RoleMiddleware(model.Admin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/open", TryAuthMiddleware(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"authed": util.GetUserFromContext(c) != nil})
	})
	return router
}

func TestAuthMiddlewareRejectsMissingAndBadTokens(t *testing.T) {
	router := newAuthRouter(testConfig())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/private", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("missing token: expected 401, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token: expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	router := newAuthRouter(testConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+testToken(t, 7, model.Member))
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("valid token: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
}

func TestRoleMiddlewareGatesAdminRoutes(t *testing.T) {
	router := newAuthRouter(testConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+testToken(t, 7, model.Member))
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("member on admin route: expected 403, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+testToken(t, 1, model.Admin))
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin on admin route: expected 200, got %d", rec.Code)
	}
}

func TestTryAuthMiddlewareAllowsGuests(t *testing.T) {
	router := newAuthRouter(testConfig())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/open", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("guest: expected 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer "+testToken(t, 7, model.Member))
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("authed guest route: expected 200, got %d", rec.Code)
	}
}

type fakeChecker struct {
	allow map[string]bool
}

func (f *fakeChecker) CheckFeature(userID uint, flag string) (bool, error) {
	return f.allow[flag], nil
}

func TestGuardReturnsUpgradeHint(t *testing.T) {
	cfg := testConfig()
	checker := &fakeChecker{allow: map[string]bool{"community": true}}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/pro", AuthMiddleware(cfg), Guard(checker, "ai-coach"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/free", AuthMiddleware(cfg), Guard(checker, "community"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// Without identity the gate answers 401, not 403.
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pro", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous: expected 401, got %d", rec.Code)
	}

	token := testToken(t, 7, model.Member)

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/pro", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("gated flag: expected 403, got %d", rec.Code)
	}
	if body := rec.Body.String(); !strings.Contains(body, `"upgrade":"pro"`) {
		t.Fatalf("upgrade hint missing from body: %s", body)
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/free", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("open flag: expected 200, got %d", rec.Code)
	}
}
