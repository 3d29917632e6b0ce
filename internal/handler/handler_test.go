package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskboard/taskboard/internal/config"
	"github.com/taskboard/taskboard/internal/events"
	"github.com/taskboard/taskboard/internal/handler"
	"github.com/taskboard/taskboard/internal/repository"
	"github.com/taskboard/taskboard/internal/router"
	"github.com/taskboard/taskboard/internal/store"
	"github.com/taskboard/taskboard/internal/suggest"
)

func testConfig() config.Config {
	return config.Config{
		Env:             "test",
		Port:            "0",
		JWTSecret:       "test-secret",
		SessionTTLHours: 24,
		BcryptCost:      bcrypt.MinCost,
		StoreBackend:    "file",
	}
}

// newTestServer wires the full application against a throwaway file store.
// tagger may be nil for tests that never hit the suggest endpoint.
func newTestServer(t *testing.T, tagger *suggest.Client) *echo.Echo {
	t.Helper()
	cfg := testConfig()
	st := store.NewFileStore(filepath.Join(t.TempDir(), "data.json"))
	users := repository.NewUserRepo(st, cfg.BcryptCost)
	boards := repository.NewBoardRepo(st)
	tasks := repository.NewTaskRepo(st)
	if tagger == nil {
		tagger = suggest.NewClient("", "")
	}
	pub := events.NewPublisher("") // disabled

	e := echo.New()
	router.RegisterRoutes(e, cfg,
		handler.NewAuthHandler(cfg, users),
		handler.NewBoardHandler(boards, pub),
		handler.NewTaskHandler(tasks, pub),
		handler.NewSuggestHandler(tagger),
	)
	return e
}

func doJSON(e *echo.Echo, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "session" {
			return ck
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

// signup registers a user and returns their session cookie.
func signup(t *testing.T, e *echo.Echo, email string) *http.Cookie {
	t.Helper()
	rec := doJSON(e, http.MethodPost, "/v1/auth/signup",
		`{"email":"`+email+`","username":"Tester","password":"pw123456"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	return sessionCookie(t, rec)
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}
