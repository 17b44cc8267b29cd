package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "budgettracker/internal/errors"
	"budgettracker/internal/logger"
	"budgettracker/internal/models"
	"budgettracker/internal/services"
)

const (
	// SessionCookieName is the cookie that carries the signed session token.
	SessionCookieName = "sid"

	// LoginPath is where anonymous visitors of guarded routes are sent.
	LoginPath = "/auth/login"
	// HomePath is where authenticated users land by default.
	HomePath = "/dashboard"

	requestContextKey = "requestContext"
)

// RequestContext is the per-request authentication state.
type RequestContext struct {
	User    *models.User
	Session *models.Session
}

// Authenticated reports whether the request belongs to a logged-in user.
func (rc *RequestContext) Authenticated() bool {
	return rc != nil && rc.User != nil
}

// CurrentRequest returns the resolved request context. Requests that did
// not pass through Resolve are anonymous.
func CurrentRequest(c *gin.Context) *RequestContext {
	if v, ok := c.Get(requestContextKey); ok {
		if rc, ok := v.(*RequestContext); ok {
			return rc
		}
	}
	return &RequestContext{}
}

// SetRequestContext attaches rc to the request.
func SetRequestContext(c *gin.Context, rc *RequestContext) {
	c.Set(requestContextKey, rc)
}

// CurrentUser returns the logged-in user, if any.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	rc := CurrentRequest(c)
	return rc.User, rc.Authenticated()
}

// SessionManager resolves, guards and rotates cookie-backed sessions.
type SessionManager struct {
	sessions services.SessionServicer
	users    services.UserServicer
	secret   []byte
	ttl      time.Duration
	secure   bool
}

// NewSessionManager creates a SessionManager signing cookies with secret.
func NewSessionManager(sessions services.SessionServicer, users services.UserServicer, secret string, ttl time.Duration, secure bool) *SessionManager {
	return &SessionManager{
		sessions: sessions,
		users:    users,
		secret:   []byte(secret),
		ttl:      ttl,
		secure:   secure,
	}
}

// Resolve loads the session named by the cookie and its user into the
// request context. Invalid, expired or orphaned sessions leave the request
// anonymous and clear the cookie.
func (m *SessionManager) Resolve() gin.HandlerFunc {
	return func(c *gin.Context) {
		rc := &RequestContext{}
		SetRequestContext(c, rc)

		raw, err := c.Cookie(SessionCookieName)
		if err != nil || raw == "" {
			c.Next()
			return
		}

		sessionID, err := ParseSessionToken(m.secret, raw)
		if err != nil {
			m.clearCookie(c)
			c.Next()
			return
		}

		ctx := c.Request.Context()
		session, err := m.sessions.Get(ctx, sessionID)
		if err != nil {
			if !errors.Is(err, apperrors.ErrSessionNotFound) {
				_ = c.Error(err)
				c.Abort()
				return
			}
			m.clearCookie(c)
			c.Next()
			return
		}
		rc.Session = session

		if session.UserID != nil {
			user, err := m.users.GetUserByID(ctx, *session.UserID)
			switch {
			case errors.Is(err, apperrors.ErrUserNotFound):
				logger.Get().Infow("dropping session of missing user", "session_id", session.ID)
				if err := m.sessions.Delete(ctx, session.ID); err != nil {
					_ = c.Error(err)
					c.Abort()
					return
				}
				rc.Session = nil
				m.clearCookie(c)
			case err != nil:
				_ = c.Error(err)
				c.Abort()
				return
			default:
				rc.User = user
			}
		}

		c.Next()
	}
}

// RequireAuth redirects anonymous requests to the login page, remembering
// the requested page so login can return to it.
func (m *SessionManager) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		rc := CurrentRequest(c)
		if rc.Authenticated() {
			c.Next()
			return
		}

		if c.Request.Method == http.MethodGet {
			if err := m.rememberReturnTo(c, rc, c.Request.URL.RequestURI()); err != nil {
				_ = c.Error(err)
				c.Abort()
				return
			}
		}

		c.Redirect(http.StatusFound, LoginPath)
		c.Abort()
	}
}

// RequireGuest redirects authenticated users away from guest-only pages.
func (m *SessionManager) RequireGuest() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentRequest(c).Authenticated() {
			c.Redirect(http.StatusFound, HomePath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// Establish logs user in on a fresh session, discarding the previous one.
// It returns where to send the user next: the remembered page if there is
// one, otherwise the dashboard.
func (m *SessionManager) Establish(c *gin.Context, user *models.User) (string, error) {
	ctx := c.Request.Context()
	rc := CurrentRequest(c)

	target := HomePath
	if rc.Session != nil {
		if IsLocalPath(rc.Session.ReturnTo) {
			target = rc.Session.ReturnTo
		}
		if err := m.sessions.Delete(ctx, rc.Session.ID); err != nil {
			return "", err
		}
	}

	session, err := m.sessions.Create(ctx, &user.ID, "")
	if err != nil {
		return "", err
	}
	if err := m.setCookie(c, session); err != nil {
		return "", err
	}

	rc.User = user
	rc.Session = session
	return target, nil
}

// Clear ends the current session and removes the cookie.
func (m *SessionManager) Clear(c *gin.Context) error {
	rc := CurrentRequest(c)
	if rc.Session != nil {
		if err := m.sessions.Delete(c.Request.Context(), rc.Session.ID); err != nil {
			return err
		}
	}
	rc.User = nil
	rc.Session = nil
	m.clearCookie(c)
	return nil
}

// rememberReturnTo stores path on the visitor's session, starting an
// anonymous session when there is none.
func (m *SessionManager) rememberReturnTo(c *gin.Context, rc *RequestContext, path string) error {
	if !IsLocalPath(path) {
		return nil
	}

	ctx := c.Request.Context()
	if rc.Session != nil {
		if err := m.sessions.SetReturnTo(ctx, rc.Session.ID, path); err != nil {
			return err
		}
		rc.Session.ReturnTo = path
		return nil
	}

	session, err := m.sessions.Create(ctx, nil, path)
	if err != nil {
		return err
	}
	rc.Session = session
	return m.setCookie(c, session)
}

func (m *SessionManager) setCookie(c *gin.Context, session *models.Session) error {
	token, err := SignSessionToken(m.secret, session)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, int(m.ttl.Seconds()), "/", "", m.secure, true)
	return nil
}

func (m *SessionManager) clearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", m.secure, true)
}

// IsLocalPath reports whether path is a same-site absolute path, which is
// the only kind of redirect target accepted from session state.
func IsLocalPath(path string) bool {
	return strings.HasPrefix(path, "/") &&
		!strings.HasPrefix(path, "//") &&
		!strings.HasPrefix(path, "/\\")
}
