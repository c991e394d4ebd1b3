package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"runtime"
	"strings"
	"testing"
	"time"

	"merhaba-api/internal/infrastructure/health"
	"merhaba-api/internal/usecase/greeting"

	"github.com/labstack/echo/v4"
)

var reZaman = regexp.MustCompile(`^\d{2}-\d{2}-\d{4} \d{2}:\d{2}:\d{2}$`)

// -------- helpers --------

func newTestHandler(ready *health.Registry) *Handler {
	uc := greeting.NewUsecase(greeting.Options{
		Now:      func() time.Time { return time.Date(2025, time.June, 1, 8, 4, 2, 0, time.UTC) },
		Location: time.UTC,
	})
	return NewHandler(uc, ready)
}

type greetingBody struct {
	Mesaj string `json:"mesaj"`
	Zaman string `json:"zaman"`
	Durum string `json:"durum"`
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v; raw=%s", err, rec.Body.String())
	}
	return out
}

func assertJSON(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	ct := rec.Header().Get(echo.HeaderContentType)
	if !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		t.Fatalf("expected Content-Type application/json, got %q", ct)
	}
}

// -------- tests --------

func TestIndex_ReturnsPlainText(t *testing.T) {
	e := echo.New()
	h := newTestHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Index(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("expected text/plain, got %q", ct)
	}
	if got := rec.Body.String(); got != "Merhaba Sarp, uygulaman harika bir şekilde çalışıyor" {
		t.Fatalf("body = %q", got)
	}
}

func TestHello_DefaultName(t *testing.T) {
	e := echo.New()
	h := newTestHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/hello", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Hello(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	assertJSON(t, rec)
	body := decode[greetingBody](t, rec)
	if body.Mesaj != "Merhaba, Dünya!" {
		t.Fatalf("mesaj = %q", body.Mesaj)
	}
	if body.Durum != "başarılı" {
		t.Fatalf("durum = %q", body.Durum)
	}
	if body.Zaman != "01-06-2025 08:04:02" {
		t.Fatalf("zaman = %q", body.Zaman)
	}
}

func TestHello_QueryParam(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"?name=Test", "Merhaba, Test!"},
		{"?name=", "Merhaba, Dünya!"},
		{"?name=Ali%20Veli", "Merhaba, Ali Veli!"},
		{"?name=%C3%87a%C4%9Fr%C4%B1", "Merhaba, Çağrı!"},
		{"?name=a%26b", "Merhaba, a&b!"},
	}
	e := echo.New()
	h := newTestHandler(nil)
	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/hello"+tc.query, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			if err := h.Hello(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			body := decode[greetingBody](t, rec)
			if body.Mesaj != tc.want {
				t.Fatalf("mesaj = %q, want %q", body.Mesaj, tc.want)
			}
			if body.Durum != "başarılı" {
				t.Fatalf("durum = %q", body.Durum)
			}
		})
	}
}

func TestHelloPath_Success(t *testing.T) {
	e := echo.New()
	h := newTestHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/hello/Spring", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("name")
	c.SetParamValues("Spring")

	if err := h.HelloPath(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	assertJSON(t, rec)
	body := decode[greetingBody](t, rec)
	if body.Mesaj != "Merhaba, Spring! (Path variable ile)" {
		t.Fatalf("mesaj = %q", body.Mesaj)
	}
	if body.Durum != "başarılı" || !reZaman.MatchString(body.Zaman) {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestHelloPath_EmptyIsNotFound(t *testing.T) {
	e := echo.New()
	h := newTestHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/hello/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("name")
	c.SetParamValues("")

	err := h.HelloPath(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusNotFound {
		t.Fatalf("err = %v, want 404 HTTPError", err)
	}
}

func TestHelloPath_MultiSegmentIsNotFound(t *testing.T) {
	e := echo.New()
	h := newTestHandler(nil)

	for _, v := range []string{"a/b", "Spring/", "/x"} {
		req := httptest.NewRequest(http.MethodGet, "/hello/"+v, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("name")
		c.SetParamValues(v)

		err := h.HelloPath(c)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusNotFound {
			t.Fatalf("%q: err = %v, want 404 HTTPError", v, err)
		}
		if rec.Body.Len() != 0 {
			t.Fatalf("%q: body written: %s", v, rec.Body.String())
		}
	}
}

func TestInfo_StaticFields(t *testing.T) {
	e := echo.New()
	h := newTestHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/info?ignored=1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Info(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	assertJSON(t, rec)
	body := decode[map[string]string](t, rec)
	if body["uygulama"] != "Spring Boot Baeldung Tutorial" {
		t.Fatalf("uygulama = %q", body["uygulama"])
	}
	if body["versiyon"] != "1.0.0" {
		t.Fatalf("versiyon = %q", body["versiyon"])
	}
	if body["aciklama"] == "" {
		t.Fatalf("aciklama missing")
	}
	if body["java_versiyonu"] != runtime.Version() {
		t.Fatalf("java_versiyonu = %q", body["java_versiyonu"])
	}
	if !reZaman.MatchString(body["zaman"]) {
		t.Fatalf("zaman = %q", body["zaman"])
	}
	if len(body) != 5 {
		t.Fatalf("expected exactly 5 keys, got %v", body)
	}
}

func TestHealth_ReturnsHealthyWithTimestamp(t *testing.T) {
	e := echo.New()
	h := newTestHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Health(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	assertJSON(t, rec)

	var body struct {
		Durum string `json:"durum"`
		Mesaj string `json:"mesaj"`
		Zaman string `json:"zaman"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v; raw=%s", err, rec.Body.String())
	}
	if body.Durum != "SAĞLIKLI" {
		t.Fatalf(`expected durum "SAĞLIKLI", got %q`, body.Durum)
	}
	if body.Mesaj != "Uygulama normal çalışıyor" {
		t.Fatalf("mesaj = %q", body.Mesaj)
	}
	if body.Zaman != "01-06-2025 08:04:02" {
		t.Fatalf("zaman = %q", body.Zaman)
	}
}

func TestHealth_WallClockFreshness(t *testing.T) {
	e := echo.New()
	h := NewHandler(greeting.NewUsecase(greeting.Options{Location: time.Local}), nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	start := time.Now().Truncate(time.Second)
	if err := h.Health(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	body := decode[map[string]string](t, rec)
	parsed, err := time.ParseInLocation("02-01-2006 15:04:05", body["zaman"], time.Local)
	if err != nil {
		t.Fatalf("zaman not dd-MM-yyyy HH:mm:ss: %v (value=%q)", err, body["zaman"])
	}
	now := time.Now()
	if parsed.Before(start.Add(-2*time.Second)) || parsed.After(now.Add(2*time.Second)) {
		t.Fatalf("zaman not within expected window: parsed=%v start=%v now=%v", parsed, start, now)
	}
}

func TestReady(t *testing.T) {
	tests := []struct {
		name     string
		probe    health.Probe
		wantCode int
	}{
		{"healthy", func(context.Context) error { return nil }, http.StatusOK},
		{"failing", func(context.Context) error { return errors.New("down") }, http.StatusServiceUnavailable},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reg := health.NewRegistry(time.Second)
			reg.Register("self", health.Self)
			reg.Register("redis", tc.probe)

			e := echo.New()
			h := newTestHandler(reg)
			req := httptest.NewRequest(http.MethodGet, "/ready", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			if err := h.Ready(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			res := decode[health.Result](t, rec)
			if _, ok := res.Checks["redis"]; !ok {
				t.Fatalf("redis check missing: %+v", res)
			}
		})
	}
}

func TestReady_DefaultRegistryHasSelf(t *testing.T) {
	e := echo.New()
	h := newTestHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Ready(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	res := decode[health.Result](t, rec)
	if len(res.Checks) != 1 || !res.Checks["self"].Healthy {
		t.Fatalf("unexpected checks: %+v", res.Checks)
	}
}
