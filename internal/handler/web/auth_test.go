package web

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/cmlabs-hris/bizdash-go/internal/domain/employee"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loginAPI(t *testing.T, reply func(w http.ResponseWriter, phone string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			t.Errorf("unexpected API call %s", r.URL.Path)
			return
		}
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		reply(w, body["phone"])
	}
}

func TestLogin_FirstLoginRedirectsWithoutSession(t *testing.T) {
	gw := newGateway(t, loginAPI(t, func(w http.ResponseWriter, phone string) {
		apiOK(w, map[string]any{"firstLogin": true, "phone": phone})
	}))

	rec := gw.serve(formRequest(http.MethodPost, "/login", "phone=0100&password=x"))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/reset-password?phone=0100", rec.Header().Get("Location"))
	assert.Empty(t, rec.Result().Cookies())
}

func TestLogin_SetsSessionAndRoutesByRole(t *testing.T) {
	tests := []struct {
		role     employee.Role
		wantPath string
	}{
		{employee.RoleEmployee, "/attendance"},
		{employee.RoleManager, "/dashboard"},
		{employee.RoleSupervisor, "/dashboard"},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			token := issueToken(t, testSecret, employeeID, tt.role)
			gw := newGateway(t, loginAPI(t, func(w http.ResponseWriter, phone string) {
				assert.Equal(t, "0100", phone)
				apiOK(w, map[string]any{
					"firstLogin": false,
					"token":      token,
					"employee":   map[string]any{"_id": employeeID, "name": "Omar", "role": tt.role},
				})
			}))

			rec := gw.serve(formRequest(http.MethodPost, "/login", "phone=0100&password=x"))

			require.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, tt.wantPath, rec.Header().Get("Location"))

			req := formRequest(http.MethodGet, "/", "")
			for _, c := range rec.Result().Cookies() {
				req.AddCookie(c)
			}
			s, ok := gw.store.Get(req)
			require.True(t, ok)
			assert.Equal(t, session.Session{Token: token, Role: tt.role, EmployeeID: employeeID}, s)
		})
	}
}

func TestLogin_AcceptsUsernameJSON(t *testing.T) {
	gw := newGateway(t, loginAPI(t, func(w http.ResponseWriter, phone string) {
		assert.Equal(t, "0100", phone)
		apiOK(w, map[string]any{"firstLogin": true, "phone": phone})
	}))

	rec := gw.serve(jsonRequest(http.MethodPost, "/login", `{"username":"0100","password":"x"}`))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/reset-password?phone=0100", rec.Header().Get("Location"))
}

func TestLogin_ValidationStaysLocal(t *testing.T) {
	gw := newGateway(t, loginAPI(t, func(w http.ResponseWriter, phone string) {}))

	rec := gw.serve(formRequest(http.MethodPost, "/login", "phone=&password="))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Contains(t, env.Error.Details, "phone")
	assert.Contains(t, env.Error.Details, "password")
	assert.Zero(t, gw.apiCalls.Load())
}

func TestLogin_BadCredentials(t *testing.T) {
	gw := newGateway(t, loginAPI(t, func(w http.ResponseWriter, phone string) {
		apiError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid phone or password")
	}))

	rec := gw.serve(formRequest(http.MethodPost, "/login", "phone=0100&password=wrong"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "invalid phone or password", env.Error.Message)
}

func TestLogin_APIUnreachable(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		hj, ok := w.(http.Hijacker)
		require.True(t, ok)
		conn, _, err := hj.Hijack()
		require.NoError(t, err)
		conn.Close()
	})

	rec := gw.serve(formRequest(http.MethodPost, "/login", "phone=0100&password=x"))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestLogout_ClearsSession(t *testing.T) {
	var revoked string
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/logout", r.URL.Path)
		revoked = r.Header.Get("Authorization")
		apiOK(w, nil)
	})

	req := signedIn(t, formRequest(http.MethodPost, "/logout", ""), employeeID, employee.RoleManager)
	rec := gw.serve(req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.NotEmpty(t, revoked)

	for _, name := range []string{session.TokenCookie, session.UserCookie} {
		c := cookieNamed(rec.Result().Cookies(), name)
		require.NotNil(t, c, name)
		assert.Empty(t, c.Value)
		assert.Equal(t, -1, c.MaxAge)
	}
}

func TestResetPassword(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/reset-password", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "0100", body["phone"])
		assert.Equal(t, "new-secret", body["newPassword"])
		apiOK(w, nil)
	})

	rec := gw.serve(formRequest(http.MethodPost, "/reset-password",
		"phone=0100&currentPassword=x&newPassword=new-secret&confirmPassword=new-secret"))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestResetPassword_Mismatch(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {})

	rec := gw.serve(formRequest(http.MethodPost, "/reset-password",
		"phone=0100&currentPassword=x&newPassword=new-secret&confirmPassword=other"))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Contains(t, env.Error.Details, "confirmPassword")
	assert.Zero(t, gw.apiCalls.Load())
}
