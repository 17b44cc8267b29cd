package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "budgettracker/internal/errors"
	"budgettracker/internal/middleware"
	"budgettracker/internal/models"
)

// Clock returns the current time. Handlers take one so that date defaults
// and day counts can be pinned in tests.
type Clock func() time.Time

func clockOrNow(clock Clock) Clock {
	if clock == nil {
		return time.Now
	}
	return clock
}

// getUser returns the authenticated user resolved by the session middleware.
// Returns ErrUnauthorized if the request is anonymous.
func getUser(c *gin.Context) (*models.User, error) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

// getUserID extracts the authenticated user ID.
func getUserID(c *gin.Context) (string, error) {
	user, err := getUser(c)
	if err != nil {
		return "", err
	}
	return user.ID, nil
}

// respondWithError hands err to the error middleware, which renders it.
func respondWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// FormPage is the body of a form display or a rejected form submission.
type FormPage struct {
	Action  string                 `json:"action"`
	Form    any                    `json:"form"`
	Options gin.H                  `json:"options,omitempty"`
	Message string                 `json:"message,omitempty"`
	Errors  []apperrors.FieldError `json:"errors"`
}

// renderForm shows a form with no errors.
func renderForm(c *gin.Context, action string, form any, options gin.H) {
	c.JSON(http.StatusOK, FormPage{
		Action:  action,
		Form:    form,
		Options: options,
		Errors:  []apperrors.FieldError{},
	})
}

// rejectForm re-renders a submitted form when err is something the user can
// correct: a validation failure or bad credentials. Anything else goes to
// the error middleware.
func rejectForm(c *gin.Context, action string, form any, options gin.H, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) ||
		(appErr.Code != apperrors.ErrValidation.Code && appErr.Code != apperrors.ErrInvalidCredentials.Code) {
		respondWithError(c, err)
		return
	}

	fields := appErr.Fields
	if fields == nil {
		fields = []apperrors.FieldError{}
	}
	c.JSON(appErr.StatusCode, FormPage{
		Action:  action,
		Form:    form,
		Options: options,
		Message: appErr.Message,
		Errors:  fields,
	})
}

// bindForm reads a form-encoded or JSON submission into form.
func bindForm(c *gin.Context, form any) error {
	if err := c.ShouldBind(form); err != nil {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	return nil
}

// seeOther redirects after a successful submission.
func seeOther(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}
