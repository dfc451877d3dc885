// Package session keeps the dashboard's signed-in user in two cookies.
package session

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/cmlabs-hris/bizdash-go/internal/domain/employee"
)

const (
	TokenCookie = "token"
	UserCookie  = "user"
	MaxAge      = 7 * 24 * time.Hour
)

type Session struct {
	Token      string
	Role       employee.Role
	EmployeeID string
}

// Store is injected into the guard and the page handlers.
type Store interface {
	Get(r *http.Request) (Session, bool)
	Set(w http.ResponseWriter, s Session)
	Clear(w http.ResponseWriter)
}

type userCookie struct {
	Role  employee.Role `json:"role"`
	EmpID string        `json:"empId"`
}

type CookieStore struct {
	secure bool
	now    func() time.Time
}

func NewCookieStore(secure bool) *CookieStore {
	return &CookieStore{secure: secure, now: time.Now}
}

// Get returns false when either cookie is missing or the user cookie is unreadable.
func (c *CookieStore) Get(r *http.Request) (Session, bool) {
	token, err := r.Cookie(TokenCookie)
	if err != nil || token.Value == "" {
		return Session{}, false
	}
	user, err := r.Cookie(UserCookie)
	if err != nil {
		return Session{}, false
	}

	raw, err := url.QueryUnescape(user.Value)
	if err != nil {
		return Session{}, false
	}
	var u userCookie
	if err := json.Unmarshal([]byte(raw), &u); err != nil || u.Role == "" {
		return Session{}, false
	}

	return Session{Token: token.Value, Role: u.Role, EmployeeID: u.EmpID}, true
}

// Set overwrites both cookies in the same response.
func (c *CookieStore) Set(w http.ResponseWriter, s Session) {
	payload, _ := json.Marshal(userCookie{Role: s.Role, EmpID: s.EmployeeID})
	expires := c.now().Add(MaxAge)

	http.SetCookie(w, c.cookie(TokenCookie, s.Token, expires, int(MaxAge.Seconds()), true))
	http.SetCookie(w, c.cookie(UserCookie, url.QueryEscape(string(payload)), expires, int(MaxAge.Seconds()), false))
}

func (c *CookieStore) Clear(w http.ResponseWriter) {
	http.SetCookie(w, c.cookie(TokenCookie, "", time.Unix(0, 0), -1, true))
	http.SetCookie(w, c.cookie(UserCookie, "", time.Unix(0, 0), -1, false))
}

func (c *CookieStore) cookie(name, value string, expires time.Time, maxAge int, httpOnly bool) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		MaxAge:   maxAge,
		HttpOnly: httpOnly,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
