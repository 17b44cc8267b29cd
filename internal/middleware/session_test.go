package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"budgettracker/internal/models"
	"budgettracker/internal/services"
	"budgettracker/internal/testutil"
)

const testSecret = "test-session-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

type sessionFixture struct {
	db       *gorm.DB
	manager  *SessionManager
	sessions services.SessionServicer
	router   *gin.Engine
}

// newSessionFixture wires a router with one guarded, one guest-only and one
// login route backed by an in-memory database.
func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	sessions := services.NewSessionService(db, time.Hour)
	users := services.NewUserService(db)
	manager := NewSessionManager(sessions, users, testSecret, time.Hour, false)

	r := gin.New()
	r.Use(ErrorHandler(false))
	r.Use(manager.Resolve())
	r.GET("/private", manager.RequireAuth(), func(c *gin.Context) {
		user, _ := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"user": user.Username})
	})
	r.GET("/guest", manager.RequireGuest(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"guest": true})
	})
	r.POST("/login/:username", func(c *gin.Context) {
		var user models.User
		if err := db.Where("username = ?", c.Param("username")).First(&user).Error; err != nil {
			c.Status(http.StatusNotFound)
			return
		}
		target, err := manager.Establish(c, &user)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.Redirect(http.StatusSeeOther, target)
	})
	r.POST("/logout", func(c *gin.Context) {
		if err := manager.Clear(c); err != nil {
			_ = c.Error(err)
			return
		}
		c.Redirect(http.StatusSeeOther, "/")
	})

	return &sessionFixture{db: db, manager: manager, sessions: sessions, router: r}
}

func (f *sessionFixture) do(method, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, http.NoBody)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookieName {
			return c
		}
	}
	return nil
}

func (f *sessionFixture) cookieFor(t *testing.T, userID *string, returnTo string) *http.Cookie {
	t.Helper()
	session, err := f.sessions.Create(context.Background(), userID, returnTo)
	require.NoError(t, err)
	token, err := SignSessionToken([]byte(testSecret), session)
	require.NoError(t, err)
	return &http.Cookie{Name: SessionCookieName, Value: token}
}

func TestRequireAuth_AnonymousRedirectsAndRemembersPath(t *testing.T) {
	f := newSessionFixture(t)

	rec := f.do(http.MethodGet, "/private?tab=2", nil)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, LoginPath, rec.Header().Get("Location"))

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie, "expected anonymous session cookie")
	assert.True(t, cookie.HttpOnly)

	id, err := ParseSessionToken([]byte(testSecret), cookie.Value)
	require.NoError(t, err)
	var session models.Session
	require.NoError(t, f.db.First(&session, "id = ?", id).Error)
	assert.Nil(t, session.UserID)
	assert.Equal(t, "/private?tab=2", session.ReturnTo)
}

func TestEstablish_HonoursReturnToOnce(t *testing.T) {
	f := newSessionFixture(t)
	user := testutil.CreateTestUserWithUsername(t, f.db, "erin")

	anon := sessionCookie(f.do(http.MethodGet, "/private", nil))
	require.NotNil(t, anon)

	login := f.do(http.MethodPost, "/login/erin", anon)
	assert.Equal(t, http.StatusSeeOther, login.Code)
	assert.Equal(t, "/private", login.Header().Get("Location"))

	authed := sessionCookie(login)
	require.NotNil(t, authed)
	assert.NotEqual(t, anon.Value, authed.Value, "login must rotate the session")

	rec := f.do(http.MethodGet, "/private", authed)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), user.Username)

	// The old anonymous session is gone.
	rec = f.do(http.MethodGet, "/private", anon)
	assert.Equal(t, http.StatusFound, rec.Code)

	// Logging in again from the new session goes to the default page.
	again := f.do(http.MethodPost, "/login/erin", authed)
	assert.Equal(t, HomePath, again.Header().Get("Location"))
}

func TestEstablish_IgnoresForeignReturnTo(t *testing.T) {
	f := newSessionFixture(t)
	testutil.CreateTestUserWithUsername(t, f.db, "frank")

	cookie := f.cookieFor(t, nil, "//evil.example.com/")
	rec := f.do(http.MethodPost, "/login/frank", cookie)
	assert.Equal(t, HomePath, rec.Header().Get("Location"))
}

func TestResolve_StaleSessionIsAnonymous(t *testing.T) {
	f := newSessionFixture(t)
	user := testutil.CreateTestUser(t, f.db)
	cookie := f.cookieFor(t, &user.ID, "")
	require.NoError(t, f.db.Delete(&models.User{}, "id = ?", user.ID).Error)

	rec := f.do(http.MethodGet, "/guest", cookie)
	assert.Equal(t, http.StatusOK, rec.Code)

	cleared := sessionCookie(rec)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)

	var count int64
	f.db.Model(&models.Session{}).Count(&count)
	assert.Zero(t, count, "orphaned session must be deleted")
}

func TestResolve_TamperedCookieIsAnonymous(t *testing.T) {
	f := newSessionFixture(t)
	user := testutil.CreateTestUser(t, f.db)
	cookie := f.cookieFor(t, &user.ID, "")
	cookie.Value = cookie.Value[:len(cookie.Value)-2] + "xx"

	rec := f.do(http.MethodGet, "/private", cookie)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, LoginPath, rec.Header().Get("Location"))
}

func TestRequireGuest(t *testing.T) {
	f := newSessionFixture(t)
	user := testutil.CreateTestUser(t, f.db)

	rec := f.do(http.MethodGet, "/guest", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodGet, "/guest", f.cookieFor(t, &user.ID, ""))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, HomePath, rec.Header().Get("Location"))
}

func TestClear(t *testing.T) {
	f := newSessionFixture(t)
	user := testutil.CreateTestUser(t, f.db)
	cookie := f.cookieFor(t, &user.ID, "")

	rec := f.do(http.MethodPost, "/logout", cookie)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	rec = f.do(http.MethodGet, "/private", cookie)
	assert.Equal(t, http.StatusFound, rec.Code, "logout must invalidate the session immediately")
}

func TestIsLocalPath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/dashboard", true},
		{"/budget?page=2", true},
		{"", false},
		{"dashboard", false},
		{"//evil.example.com", false},
		{"/\\evil.example.com", false},
		{"https://evil.example.com/", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsLocalPath(tt.path), tt.path)
	}
}

func TestParseSessionToken_WrongSecret(t *testing.T) {
	token, err := SignSessionToken([]byte("one"), &models.Session{Base: models.Base{ID: "abc"}, ExpiresAt: time.Now().Add(time.Hour)})
	require.NoError(t, err)

	_, err = ParseSessionToken([]byte("two"), token)
	assert.Error(t, err)

	id, err := ParseSessionToken([]byte("one"), token)
	require.NoError(t, err)
	assert.Equal(t, "abc", id)
}
