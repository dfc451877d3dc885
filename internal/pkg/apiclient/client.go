// Package apiclient talks to the REST API on behalf of the dashboard.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/bizdash-go/internal/domain/attendance"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/auth"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/revenue"
)

// Client issues one request per call. There are no retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return NewWithHTTPClient(baseURL, &http.Client{Timeout: timeout})
}

func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details,omitempty"`
	} `json:"error,omitempty"`
}

// do sends body as JSON and decodes the envelope's data into out when out is not nil.
func (c *Client) do(ctx context.Context, method, path, token string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil && resp.StatusCode < 300 {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	if resp.StatusCode >= 300 {
		message := http.StatusText(resp.StatusCode)
		code := ""
		var details map[string]string
		if env.Error != nil {
			message, code, details = env.Error.Message, env.Error.Code, env.Error.Details
		}
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			return &AuthError{StatusCode: resp.StatusCode, Message: message}
		}
		return &APIError{StatusCode: resp.StatusCode, Code: code, Message: message, Details: details}
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}
	return nil
}

func (c *Client) Login(ctx context.Context, phone, password string) (auth.LoginResponse, error) {
	var result auth.LoginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", "", nil, auth.LoginRequest{Phone: phone, Password: password}, &result)
	return result, err
}

func (c *Client) ResetPassword(ctx context.Context, req auth.ResetPasswordRequest) error {
	return c.do(ctx, http.MethodPost, "/auth/reset-password", "", nil, req, nil)
}

// Logout revokes token on the API.
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", token, nil, nil, nil)
}

func (c *Client) CheckIn(ctx context.Context, token string, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	var result attendance.AttendanceResponse
	err := c.do(ctx, http.MethodPost, "/attendance/checkIn", token, nil, req, &result)
	return result, err
}

func (c *Client) CheckOut(ctx context.Context, token string, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	var result attendance.AttendanceResponse
	err := c.do(ctx, http.MethodPost, "/attendance/checkOut", token, nil, req, &result)
	return result, err
}

func (c *Client) AttendanceStatus(ctx context.Context, token, employeeID string) (attendance.StatusResponse, error) {
	var result attendance.StatusResponse
	err := c.do(ctx, http.MethodGet, "/attendance/status", token, url.Values{"employeeId": {employeeID}}, nil, &result)
	return result, err
}

func (c *Client) TodayAttendance(ctx context.Context, token string) ([]attendance.AttendanceResponse, error) {
	var result []attendance.AttendanceResponse
	err := c.do(ctx, http.MethodGet, "/attendance/today", token, nil, nil, &result)
	return result, err
}

// RevenueReport passes period, year, month and date through unchanged.
func (c *Client) RevenueReport(ctx context.Context, token string, query url.Values) (revenue.ReportResponse, error) {
	var result revenue.ReportResponse
	err := c.do(ctx, http.MethodGet, "/emp-revenue/report", token, query, nil, &result)
	return result, err
}

func (c *Client) EmployeeRevenue(ctx context.Context, token, employeeID string, page, limit int) (revenue.EmployeeEntriesPage, error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var result revenue.EmployeeEntriesPage
	err := c.do(ctx, http.MethodGet, "/emp-revenue/employee/"+url.PathEscape(employeeID), token, query, nil, &result)
	return result, err
}

func (c *Client) Dashboard(ctx context.Context, token, month string) (dashboard.SummaryResponse, error) {
	query := url.Values{}
	if month != "" {
		query.Set("month", month)
	}

	var result dashboard.SummaryResponse
	err := c.do(ctx, http.MethodGet, "/dashboard", token, query, nil, &result)
	return result, err
}
