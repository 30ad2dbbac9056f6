package middleware

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/polkiloo/storefront/internal/pkg/auth"
	testhelpers "github.com/polkiloo/storefront/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serveAdmin(parser TokenParser, header string, handler gin.HandlerFunc) *httptest.ResponseRecorder {
	router := gin.New()
	router.Use(AdminRequired(parser))
	router.GET("/", handler)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestAdminRequired(t *testing.T) {
	noop := func(c *gin.Context) { c.Status(http.StatusOK) }

	resp := serveAdmin(testhelpers.TokenParserStub{}, "", noop)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.Code)
	}
	if got := resp.Header().Get("Location"); got != pkgAuth.LoginPath {
		t.Fatalf("expected redirect to login, got %q", got)
	}
	var body map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil || body["redirect"] != pkgAuth.LoginPath {
		t.Fatalf("unexpected body %q", resp.Body.String())
	}

	resp = serveAdmin(testhelpers.TokenParserStub{Err: pkgAuth.ErrInvalidToken}, "Bearer token", noop)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for invalid token, got %d", resp.Code)
	}

	resp = serveAdmin(testhelpers.TokenParserStub{Err: context.DeadlineExceeded}, "Bearer token", noop)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}

	var storedID int64
	resp = serveAdmin(testhelpers.TokenParserStub{ID: 42}, "Bearer token", func(c *gin.Context) {
		if v, ok := c.Get(AdminIDContextKey); ok {
			storedID = v.(int64)
		}
		c.Status(http.StatusOK)
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if storedID != 42 {
		t.Fatalf("expected admin id 42, got %d", storedID)
	}
}

func TestResolveSession(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		parser   testhelpers.TokenParserStub
		decision pkgAuth.Decision
		wantID   int64
		wantErr  bool
	}{
		{name: "anonymous", decision: pkgAuth.DecisionLogin},
		{name: "invalid token", header: "Bearer bad", parser: testhelpers.TokenParserStub{Err: pkgAuth.ErrInvalidToken}, decision: pkgAuth.DecisionLogin},
		{name: "signed in", header: "Bearer ok", parser: testhelpers.TokenParserStub{ID: 7}, decision: pkgAuth.DecisionProceed, wantID: 7},
		{name: "parser failure", header: "Bearer ok", parser: testhelpers.TokenParserStub{Err: context.Canceled}, decision: pkgAuth.DecisionLoading, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				c.Request.Header.Set("Authorization", tt.header)
			}

			gate, id, err := ResolveSession(c, tt.parser)
			if (err != nil) != tt.wantErr {
				t.Fatalf("unexpected error %v", err)
			}
			if gate.Decide() != tt.decision {
				t.Fatalf("expected %s, got %s", tt.decision, gate.Decide())
			}
			if id != tt.wantID {
				t.Fatalf("expected id %d, got %d", tt.wantID, id)
			}
		})
	}
}

func TestSetAuthCookie(t *testing.T) {
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	SetAuthCookie(c, "token", 2*time.Hour)
	if got := recorder.Header().Get("Authorization"); got != "Bearer token" {
		t.Fatalf("expected auth header, got %q", got)
	}
	result := recorder.Result()
	t.Cleanup(func() {
		_ = result.Body.Close()
	})
	cookies := result.Cookies()
	if len(cookies) == 0 || cookies[0].Value != "token" || cookies[0].MaxAge != 7200 || !cookies[0].HttpOnly {
		t.Fatalf("expected cookie with token, got %+v", cookies)
	}
	if cookies[0].SameSite != http.SameSiteLaxMode {
		t.Fatalf("expected lax cookie, got %v", cookies[0].SameSite)
	}
}

func TestClearAuthCookie(t *testing.T) {
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	ClearAuthCookie(c)
	result := recorder.Result()
	t.Cleanup(func() {
		_ = result.Body.Close()
	})
	cookies := result.Cookies()
	if len(cookies) != 1 || cookies[0].Name != authCookieName || cookies[0].Value != "" || cookies[0].MaxAge >= 0 {
		t.Fatalf("expected expired cookie, got %+v", cookies)
	}
}

func TestExtractToken(t *testing.T) {
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request, _ = http.NewRequest(http.MethodGet, "/", nil)
	if token := extractToken(c); token != "" {
		t.Fatalf("expected empty token, got %q", token)
	}
	c.Request.Header.Set("Authorization", "bearer abc")
	if token := extractToken(c); token != "abc" {
		t.Fatalf("expected token from header, got %q", token)
	}
	c.Request.Header.Del("Authorization")
	c.Request.AddCookie(&http.Cookie{Name: authCookieName, Value: "cookie"})
	if token := extractToken(c); token != "cookie" {
		t.Fatalf("expected token from cookie, got %q", token)
	}
}

func TestDecompressRequest(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, _ = gz.Write([]byte(`{"customerName":"Ana"}`))
	_ = gz.Close()

	router := gin.New()
	router.Use(DecompressRequest())
	var body string
	router.POST("/", func(c *gin.Context) {
		data, _ := io.ReadAll(c.Request.Body)
		body = string(data)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(buf.Bytes()))
	req.Header.Set("Content-Encoding", "GZIP")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if body != `{"customerName":"Ana"}` {
		t.Fatalf("expected decompressed payload, got %q", body)
	}

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("plain"))
	resp = httptest.NewRecorder()
	body = ""
	router.ServeHTTP(resp, req)
	if body != "plain" {
		t.Fatalf("expected plain body, got %q", body)
	}

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed gzip, got %d", resp.Code)
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	router := gin.New()
	router.Use(RequestLogger(logger))
	router.GET("/ok", func(c *gin.Context) {
		c.Set(AdminIDContextKey, int64(3))
		c.Status(http.StatusOK)
	})
	router.GET("/fail", func(c *gin.Context) {
		_ = c.Error(errors.New("connection refused"))
		c.Status(http.StatusInternalServerError)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fail", nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected two log lines, got %q", buf.String())
	}
	var first, second map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if first["level"] != "INFO" || first["admin_id"] != float64(3) || first["path"] != "/ok" || first["error"] != nil {
		t.Fatalf("unexpected first entry %v", first)
	}
	if second["level"] != "ERROR" || second["status"] != float64(500) || second["error"] != "connection refused" {
		t.Fatalf("unexpected second entry %v", second)
	}
	if _, ok := second["admin_id"]; ok {
		t.Fatalf("anonymous request must not carry admin id")
	}
}
