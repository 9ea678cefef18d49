package forms

import (
	"context"
	"errors"
	"strings"

	"shramikadmin/internal/domain"
)

// SessionWriter stores the session after a successful login.
type SessionWriter interface {
	Login(s domain.Session) error
}

// LoginForm is the sign-in screen.
type LoginForm struct {
	Agree    bool   `validate:"-"`
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

var loginMessages = messages{
	"Email.required":    "Email is required.",
	"Email.email":       "Please enter a valid email address.",
	"Password.required": "Password is required.",
}

// Validate checks the terms box first, then the credentials.
func (f LoginForm) Validate() error {
	if !f.Agree {
		return invalid("Please accept the Terms of Use and Privacy Policy.")
	}
	f.Email = strings.TrimSpace(f.Email)
	return check(f, loginMessages)
}

// Submit validates, logs in through gw, stores the session in w and
// returns it.
func (f LoginForm) Submit(ctx context.Context, gw domain.AuthGateway, w SessionWriter) (domain.Session, error) {
	if err := f.Validate(); err != nil {
		return domain.Session{}, err
	}
	resp, err := gw.Login(ctx, domain.LoginRequest{
		Email:    strings.TrimSpace(f.Email),
		Password: f.Password,
	})
	if err != nil {
		return domain.Session{}, err
	}
	if !resp.Success || resp.Data == nil {
		msg := resp.Message
		if msg == "" {
			msg = "Login failed. Please try again."
		}
		return domain.Session{}, errors.New(msg)
	}
	if resp.Data.Token == "" {
		return domain.Session{}, errors.New("Login response did not include an access token.")
	}
	if err := w.Login(*resp.Data); err != nil {
		return domain.Session{}, err
	}
	return *resp.Data, nil
}
