package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"language_quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestIdentitySetsContextKeys(t *testing.T) {
	router := gin.New()
	router.Use(Identity())
	router.GET("/who", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user":    c.GetString(util.CtxUserID),
			"student": c.GetString(util.CtxStudentID),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/who", nil)
	req.Header.Set(util.HeaderUserID, " educator-7 ")
	req.Header.Set(util.HeaderStudentID, "s-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	want := `{"student":"s-1","user":"educator-7"}`
	if w.Body.String() != want {
		t.Fatalf("body = %s, want %s", w.Body.String(), want)
	}
}

func TestIdentityLeavesKeysUnsetWithoutHeaders(t *testing.T) {
	router := gin.New()
	router.Use(Identity())
	router.GET("/who", func(c *gin.Context) {
		_, ok := c.Get(util.CtxUserID)
		if ok {
			t.Errorf("user id must not be set")
		}
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/who", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestRequestLoggerRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestLogger())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(util.CtxRequestID))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	generated := w.Header().Get(util.HeaderRequestID)
	if len(generated) != 36 || w.Body.String() != generated {
		t.Fatalf("generated id = %q, body = %q", generated, w.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(util.HeaderRequestID, "upstream-42")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if got := w.Header().Get(util.HeaderRequestID); got != "upstream-42" {
		t.Fatalf("request id = %q, want the incoming one", got)
	}
}
