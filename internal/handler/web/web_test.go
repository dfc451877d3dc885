package web

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cmlabs-hris/bizdash-go/internal/domain/employee"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/apiclient"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/session"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

const testSecret = "gateway-test-secret"

type gateway struct {
	router   *chi.Mux
	store    session.Store
	apiCalls *atomic.Int32
}

// newGateway wires the full router against a fake API.
func newGateway(t *testing.T, api http.HandlerFunc) gateway {
	t.Helper()

	calls := &atomic.Int32{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		api(w, r)
	}))
	t.Cleanup(srv.Close)

	client := apiclient.New(srv.URL, time.Second)
	store := session.NewCookieStore(false)
	tokenAuth := jwt.NewTokenAuth(testSecret)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := NewRouter(
		logger,
		store,
		tokenAuth,
		NewAuthHandler(client, store, tokenAuth),
		NewAttendanceHandler(client, store, time.Second),
		NewPageHandler(client, store),
		NewCollections(client, store),
	)
	return gateway{router: router, store: store, apiCalls: calls}
}

func (g gateway) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	g.router.ServeHTTP(rec, req)
	return rec
}

func issueToken(t *testing.T, secret, employeeID string, role employee.Role) string {
	t.Helper()
	svc := jwt.NewJWTService(secret, "1h")
	token, _, err := svc.GenerateAccessToken(employeeID, role)
	require.NoError(t, err)
	return token
}

func sessionCookies(t *testing.T, s session.Session) []*http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	session.NewCookieStore(false).Set(w, s)
	return w.Result().Cookies()
}

func signedIn(t *testing.T, req *http.Request, employeeID string, role employee.Role) *http.Request {
	t.Helper()
	cookies := sessionCookies(t, session.Session{
		Token:      issueToken(t, testSecret, employeeID, role),
		Role:       role,
		EmployeeID: employeeID,
	})
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

func formRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func writeEnvelope(w http.ResponseWriter, status int, body map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func apiOK(w http.ResponseWriter, data any) {
	writeEnvelope(w, http.StatusOK, map[string]any{"success": true, "data": data})
}

func apiError(w http.ResponseWriter, status int, code, message string) {
	writeEnvelope(w, status, map[string]any{
		"success": false,
		"error":   map[string]any{"code": code, "message": message},
	})
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func cookieNamed(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}
