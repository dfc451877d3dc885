package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/cmlabs-hris/bizdash-go/internal/domain/attendance"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvelope(t *testing.T, w http.ResponseWriter, status int, body map[string]any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestClient_Login(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "0100", body["phone"])

		writeEnvelope(t, w, http.StatusOK, map[string]any{
			"success": true,
			"data": map[string]any{
				"firstLogin": false,
				"token":      "tok",
				"employee":   map[string]any{"_id": "emp-1", "name": "Mona", "role": "manager"},
			},
		})
	}))
	defer srv.Close()

	client := New(srv.URL+"/api/v1/", time.Second)
	got, err := client.Login(context.Background(), "0100", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok", got.Token)
	require.NotNil(t, got.Employee)
	assert.Equal(t, employee.RoleManager, got.Employee.Role)
}

func TestClient_ErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name   string
		status int
		check  func(t *testing.T, err error)
	}{
		{
			name:   "unauthorized",
			status: http.StatusUnauthorized,
			check: func(t *testing.T, err error) {
				assert.True(t, IsAuth(err))
			},
		},
		{
			name:   "forbidden",
			status: http.StatusForbidden,
			check: func(t *testing.T, err error) {
				assert.True(t, IsAuth(err))
			},
		},
		{
			name:   "conflict",
			status: http.StatusConflict,
			check: func(t *testing.T, err error) {
				var apiErr *APIError
				require.True(t, errors.As(err, &apiErr))
				assert.Equal(t, "CONFLICT", apiErr.Code)
				assert.Equal(t, "already checked in", apiErr.Message)
				assert.False(t, apiErr.ServerError())
			},
		},
		{
			name:   "server error",
			status: http.StatusInternalServerError,
			check: func(t *testing.T, err error) {
				var apiErr *APIError
				require.True(t, errors.As(err, &apiErr))
				assert.True(t, apiErr.ServerError())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
				code := map[int]string{
					http.StatusUnauthorized:        "UNAUTHORIZED",
					http.StatusForbidden:           "FORBIDDEN",
					http.StatusConflict:            "CONFLICT",
					http.StatusInternalServerError: "INTERNAL_SERVER_ERROR",
				}[tt.status]
				writeEnvelope(t, w, tt.status, map[string]any{
					"success": false,
					"error":   map[string]any{"code": code, "message": "already checked in"},
				})
			}))
			defer srv.Close()

			_, err := New(srv.URL, time.Second).CheckIn(context.Background(), "tok", attendance.CheckInRequest{EmployeeID: "emp-1"})
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := New(srv.URL, time.Second).TodayAttendance(context.Background(), "tok")

	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
}

func TestClient_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusOK, map[string]any{"success": true})
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(srv.URL, time.Second).Dashboard(ctx, "tok", "")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_EmployeeRevenue_Query(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/emp-revenue/employee/emp-1", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		writeEnvelope(t, w, http.StatusOK, map[string]any{
			"success": true,
			"data":    map[string]any{"data": []any{}, "page": 2, "limit": 10, "total": 11, "totalPages": 2},
		})
	}))
	defer srv.Close()

	got, err := New(srv.URL, time.Second).EmployeeRevenue(context.Background(), "tok", "emp-1", 2, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, got.TotalPages)
	assert.Equal(t, int64(11), got.Total)
}

type cafeRow struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

func TestCollection(t *testing.T) {
	var calls []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.RequestURI())
		switch r.Method {
		case http.MethodGet:
			if r.URL.Path == "/cafes" {
				writeEnvelope(t, w, http.StatusOK, map[string]any{"success": true, "data": []any{
					map[string]any{"_id": "c1", "name": "Nile"},
				}})
				return
			}
			writeEnvelope(t, w, http.StatusOK, map[string]any{"success": true, "data": map[string]any{"_id": "c1", "name": "Nile"}})
		case http.MethodPost:
			writeEnvelope(t, w, http.StatusCreated, map[string]any{"success": true, "data": map[string]any{"_id": "c2", "name": "Delta"}})
		case http.MethodPatch:
			writeEnvelope(t, w, http.StatusOK, map[string]any{"success": true, "data": map[string]any{"_id": "c1", "name": "Nile 2"}})
		case http.MethodDelete:
			writeEnvelope(t, w, http.StatusOK, map[string]any{"success": true, "message": "deleted"})
		}
	}))
	defer srv.Close()

	cafes := NewCollection[cafeRow](New(srv.URL, time.Second), "/cafes")
	ctx := context.Background()

	list, err := cafes.List(ctx, "tok", url.Values{"branch": {"giza"}})
	require.NoError(t, err)
	assert.Equal(t, []cafeRow{{ID: "c1", Name: "Nile"}}, list)

	one, err := cafes.Get(ctx, "tok", "c1")
	require.NoError(t, err)
	assert.Equal(t, "Nile", one.Name)

	created, err := cafes.Create(ctx, "tok", map[string]string{"name": "Delta"})
	require.NoError(t, err)
	assert.Equal(t, "c2", created.ID)

	updated, err := cafes.Update(ctx, "tok", "c1", map[string]string{"name": "Nile 2"})
	require.NoError(t, err)
	assert.Equal(t, "Nile 2", updated.Name)

	require.NoError(t, cafes.Delete(ctx, "tok", "c1"))

	assert.Equal(t, []string{
		"GET /cafes?branch=giza",
		"GET /cafes/c1",
		"POST /cafes",
		"PATCH /cafes/c1",
		"DELETE /cafes/c1",
	}, calls)
}
