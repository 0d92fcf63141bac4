package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/valeriaulyamaeva/finance-tracker-api/internal/middleware"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", middleware.AuthMiddleware, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetInt(middleware.UserIDKey)})
	})
	return r
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "тестовый-секрет")
	r := testRouter()

	token, err := middleware.IssueToken(42)
	if err != nil {
		t.Fatalf("ошибка выдачи токена: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("валидный токен отклонён: код %d, тело %s", w.Code, w.Body.String())
	}
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "тестовый-секрет")
	r := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("запрос без токена должен давать 401, получили %d", w.Code)
	}
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "тестовый-секрет")
	r := testRouter()

	for _, header := range []string{"Bearer", "Basic abc", "garbage"} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("заголовок %q должен давать 401, получили %d", header, w.Code)
		}
	}
}

func TestAuthMiddlewareWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "тестовый-секрет")
	token, err := middleware.IssueToken(42)
	if err != nil {
		t.Fatalf("ошибка выдачи токена: %v", err)
	}

	// Токен подписан старым секретом, проверяется новым
	t.Setenv("JWT_SECRET", "другой-секрет")
	r := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("токен с неверной подписью должен давать 401, получили %d", w.Code)
	}
}
