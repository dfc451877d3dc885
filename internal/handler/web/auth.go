package web

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/cmlabs-hris/bizdash-go/internal/domain/auth"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/employee"
	"github.com/cmlabs-hris/bizdash-go/internal/handler/http/response"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/apiclient"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/session"
	"github.com/go-chi/jwtauth/v5"
)

type AuthHandler interface {
	Landing(w http.ResponseWriter, r *http.Request)
	LoginPage(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	ResetPasswordPage(w http.ResponseWriter, r *http.Request)
	ResetPassword(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	errorResponder
	api       *apiclient.Client
	store     session.Store
	tokenAuth *jwtauth.JWTAuth
}

func NewAuthHandler(api *apiclient.Client, store session.Store, tokenAuth *jwtauth.JWTAuth) AuthHandler {
	return &authHandlerImpl{
		errorResponder: errorResponder{store: store},
		api:            api,
		store:          store,
		tokenAuth:      tokenAuth,
	}
}

type LandingView struct {
	Enter string `json:"enter"`
}

type LoginView struct {
	Fields []string `json:"fields"`
}

type LoginResult struct {
	FirstLogin bool          `json:"firstLogin"`
	Redirect   string        `json:"redirect"`
	Role       employee.Role `json:"role,omitempty"`
	EmployeeID string        `json:"employeeId,omitempty"`
}

type ResetPasswordView struct {
	Phone string `json:"phone"`
}

// Landing sends a signed-in user to their home page.
func (h *authHandlerImpl) Landing(w http.ResponseWriter, r *http.Request) {
	if s, ok := verifiedSession(h.store, h.tokenAuth, r); ok {
		http.Redirect(w, r, RouteForRole(s.Role), http.StatusFound)
		return
	}
	response.Success(w, LandingView{Enter: LoginPath})
}

func (h *authHandlerImpl) LoginPage(w http.ResponseWriter, r *http.Request) {
	response.Success(w, LoginView{Fields: []string{"phone", "password"}})
}

// Login accepts phone or username. A first login only redirects to the
// reset flow and leaves the cookies alone.
func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	get, err := readInput(r)
	if err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	phone := get("phone")
	if phone == "" {
		phone = get("username")
	}
	req := auth.LoginRequest{Phone: phone, Password: get("password")}
	if err := req.Validate(); err != nil {
		h.handle(w, r, err)
		return
	}

	result, err := h.api.Login(r.Context(), req.Phone, req.Password)
	if err != nil {
		var authErr *apiclient.AuthError
		if errors.As(err, &authErr) {
			response.Unauthorized(w, authErr.Message)
			return
		}
		h.handle(w, r, err)
		return
	}

	if result.FirstLogin {
		resetPhone := result.Phone
		if resetPhone == "" {
			resetPhone = req.Phone
		}
		target := "/reset-password?phone=" + url.QueryEscape(resetPhone)
		response.Redirect(w, http.StatusSeeOther, target, LoginResult{FirstLogin: true, Redirect: target})
		return
	}

	if result.Token == "" || result.Employee == nil {
		slog.Error("login response without session", "phone", req.Phone)
		response.BadGateway(w, "The server returned an incomplete login response")
		return
	}

	h.store.Set(w, session.Session{
		Token:      result.Token,
		Role:       result.Employee.Role,
		EmployeeID: result.Employee.ID,
	})

	target := RouteForRole(result.Employee.Role)
	response.Redirect(w, http.StatusSeeOther, target, LoginResult{
		Redirect:   target,
		Role:       result.Employee.Role,
		EmployeeID: result.Employee.ID,
	})
}

func (h *authHandlerImpl) ResetPasswordPage(w http.ResponseWriter, r *http.Request) {
	response.Success(w, ResetPasswordView{Phone: r.URL.Query().Get("phone")})
}

func (h *authHandlerImpl) ResetPassword(w http.ResponseWriter, r *http.Request) {
	get, err := readInput(r)
	if err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req := auth.ResetPasswordRequest{
		Phone:           get("phone"),
		CurrentPassword: get("currentPassword"),
		NewPassword:     get("newPassword"),
		ConfirmPassword: get("confirmPassword"),
	}
	if err := req.Validate(); err != nil {
		h.handle(w, r, err)
		return
	}

	if err := h.api.ResetPassword(r.Context(), req); err != nil {
		var authErr *apiclient.AuthError
		if errors.As(err, &authErr) {
			response.Unauthorized(w, authErr.Message)
			return
		}
		h.handle(w, r, err)
		return
	}

	h.store.Clear(w)
	response.Redirect(w, http.StatusSeeOther, LoginPath, LoginResult{Redirect: LoginPath})
}

// Logout revokes the token upstream when possible; the cookies are cleared
// either way.
func (h *authHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	if s, ok := h.store.Get(r); ok {
		if err := h.api.Logout(r.Context(), s.Token); err != nil {
			slog.Warn("token revoke failed", "error", err)
		}
	}

	h.store.Clear(w)
	response.Redirect(w, http.StatusSeeOther, LoginPath, LoginResult{Redirect: LoginPath})
}
