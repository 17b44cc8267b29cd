package handlers

import (
	"github.com/gin-gonic/gin"

	apperrors "budgettracker/internal/errors"
	"budgettracker/internal/forms"
	"budgettracker/internal/middleware"
	"budgettracker/internal/services"
)

const (
	loginAction    = "/auth/login"
	registerAction = "/auth/register"
)

// AuthHandler handles login, registration and logout.
type AuthHandler struct {
	userService  services.UserServicer
	sessions     *middleware.SessionManager
	auditService services.AuditServicer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(userService services.UserServicer, sessions *middleware.SessionManager, auditService services.AuditServicer) *AuthHandler {
	return &AuthHandler{userService: userService, sessions: sessions, auditService: auditService}
}

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Fields  []apperrors.FieldError `json:"fields,omitempty"`
	Detail  string                 `json:"detail,omitempty"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// LoginPage renders the empty login form.
// @Summary     Login form
// @Tags        auth
// @Produce     json
// @Success     200 {object} FormPage "Empty login form"
// @Router      /auth/login [get]
func (h *AuthHandler) LoginPage(c *gin.Context) {
	renderForm(c, loginAction, forms.LoginForm{}, nil)
}

// Login checks credentials and starts a session.
// @Summary     Log in
// @Description Verifies credentials, rotates the session and redirects to the remembered page or the dashboard
// @Tags        auth
// @Accept      x-www-form-urlencoded
// @Accept      json
// @Produce     json
// @Param       username formData string true "Username"
// @Param       password formData string true "Password"
// @Success     303 "Redirect to the return-to page or /dashboard"
// @Failure     401 {object} FormPage "Invalid username or password"
// @Failure     422 {object} FormPage "Missing fields"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var form forms.LoginForm
	if err := bindForm(c, &form); err != nil {
		respondWithError(c, err)
		return
	}
	err := form.Validate()
	// Passwords are never echoed back.
	echo := forms.LoginForm{Username: form.Username}
	if err != nil {
		rejectForm(c, loginAction, echo, nil, err)
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		rejectForm(c, loginAction, echo, nil, err)
		return
	}

	target, err := h.sessions.Establish(c, user)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), user.ID, services.ActionLogin, services.ResourceUser, user.ID, c.ClientIP(), nil)

	seeOther(c, target)
}

// RegisterPage renders the empty registration form.
// @Summary     Registration form
// @Tags        auth
// @Produce     json
// @Success     200 {object} FormPage "Empty registration form"
// @Router      /auth/register [get]
func (h *AuthHandler) RegisterPage(c *gin.Context) {
	renderForm(c, registerAction, forms.RegisterForm{}, nil)
}

// Register creates an account and logs the new user in.
// @Summary     Register a new user
// @Tags        auth
// @Accept      x-www-form-urlencoded
// @Accept      json
// @Produce     json
// @Param       username         formData string true "Username (3-80 letters and digits)"
// @Param       password         formData string true "Password (at least 6 characters)"
// @Param       confirm_password formData string true "Password confirmation"
// @Success     303 "Redirect to /dashboard"
// @Failure     422 {object} FormPage "Validation failed or username taken"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var form forms.RegisterForm
	if err := bindForm(c, &form); err != nil {
		respondWithError(c, err)
		return
	}
	if err := form.Validate(); err != nil {
		rejectForm(c, registerAction, forms.RegisterForm{Username: form.Username}, nil, err)
		return
	}

	user, err := h.userService.Register(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		rejectForm(c, registerAction, forms.RegisterForm{Username: form.Username}, nil, err)
		return
	}

	if _, err := h.sessions.Establish(c, user); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), user.ID, services.ActionRegister, services.ResourceUser, user.ID, c.ClientIP(),
		map[string]any{"username": user.Username})

	seeOther(c, middleware.HomePath)
}

// Logout ends the session.
// @Summary     Log out
// @Tags        auth
// @Produce     json
// @Success     303 "Redirect to /"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	user, loggedIn := middleware.CurrentUser(c)

	if err := h.sessions.Clear(c); err != nil {
		respondWithError(c, err)
		return
	}

	if loggedIn {
		h.auditService.Log(c.Request.Context(), user.ID, services.ActionLogout, services.ResourceUser, user.ID, c.ClientIP(), nil)
	}

	seeOther(c, "/")
}
