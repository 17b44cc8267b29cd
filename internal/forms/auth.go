package forms

import (
	"strings"

	"budgettracker/internal/validator"
)

// LoginForm is the login submission.
type LoginForm struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password,omitempty"`
}

// Validate trims the username and checks that both fields are present.
func (f *LoginForm) Validate() error {
	f.Username = strings.TrimSpace(f.Username)

	var c checker
	c.check(f.Username != "", "username", "Username is required")
	c.check(f.Password != "", "password", "Password is required")
	return c.err()
}

// RegisterForm is the registration submission.
type RegisterForm struct {
	Username        string `form:"username" json:"username"`
	Password        string `form:"password" json:"password,omitempty"`
	ConfirmPassword string `form:"confirm_password" json:"confirm_password,omitempty"`
}

// Validate trims the username and checks the account rules.
func (f *RegisterForm) Validate() error {
	f.Username = strings.TrimSpace(f.Username)

	var c checker
	c.check(lengthBetween(f.Username, 3, 80), "username", "Username must be between 3 and 80 characters")
	c.check(validator.Check(f.Username, "alphanum"), "username", "Username must contain only letters and numbers")
	c.check(validator.Check(f.Password, "min=6"), "password", "Password must be at least 6 characters long")
	c.check(f.ConfirmPassword == f.Password, "confirm_password", "Passwords do not match")
	return c.err()
}
