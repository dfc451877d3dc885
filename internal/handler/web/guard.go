// Package web is the dashboard gateway: it owns the browser session and
// turns page requests into API calls.
package web

import (
	"context"
	"net/http"
	"path"

	"github.com/cmlabs-hris/bizdash-go/internal/domain/employee"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/session"
	"github.com/go-chi/jwtauth/v5"
)

const LoginPath = "/login"

var publicPaths = map[string]bool{
	"/":               true,
	LoginPath:         true,
	"/reset-password": true,
}

// IsPublic reports whether p is reachable without a session. p is compared
// the way the router sees it: cleaned and without a trailing slash.
func IsPublic(p string) bool {
	if p == "" {
		p = "/"
	}
	return publicPaths[path.Clean("/"+p)]
}

// RouteForRole is where a signed-in user lands.
func RouteForRole(role employee.Role) string {
	if role == employee.RoleEmployee {
		return "/attendance"
	}
	return "/dashboard"
}

type sessionKey struct{}

func withSession(ctx context.Context, s session.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFromContext returns the session Guard attached to the request.
func SessionFromContext(ctx context.Context) (session.Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(session.Session)
	return s, ok
}

// verifiedSession loads the cookie session and checks the token's signature,
// expiry and claims against the cached role and employee id.
func verifiedSession(store session.Store, tokenAuth *jwtauth.JWTAuth, r *http.Request) (session.Session, bool) {
	s, ok := store.Get(r)
	if !ok {
		return session.Session{}, false
	}
	claims, err := jwt.VerifyAccessToken(tokenAuth, s.Token)
	if err != nil {
		return session.Session{}, false
	}
	if claims.EmployeeID != s.EmployeeID || claims.Role != s.Role {
		return session.Session{}, false
	}
	return s, true
}

// Guard lets public paths through and sends every other request without a
// valid session to the login page. A present but invalid session is cleared.
func Guard(store session.Store, tokenAuth *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			if IsPublic(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			s, ok := verifiedSession(store, tokenAuth, r)
			if !ok {
				if _, present := store.Get(r); present {
					store.Clear(w)
				}
				http.Redirect(w, r, LoginPath, http.StatusFound)
				return
			}

			next.ServeHTTP(w, r.WithContext(withSession(r.Context(), s)))
		}
		return http.HandlerFunc(hfn)
	}
}
