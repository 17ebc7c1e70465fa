package flow

import (
	"context"
	"errors"
	"net/url"

	"github.com/ngvthanh/classform/internal/app/models"
	"github.com/ngvthanh/classform/internal/pkg/apperrors"
)

// ErrWrongPassword is surfaced only for a rejected login; every other
// failure collapses into the generic message.
var ErrWrongPassword = errors.New("Mật khẩu không đúng")

// AdminState is the admin session's position.
type AdminState int

const (
	// LoggedOut holds no credential.
	LoggedOut AdminState = iota
	// LoggedIn holds a session token and the fetched submission list.
	LoggedIn
)

// AdminAPI is the service surface the admin session talks to.
type AdminAPI interface {
	Login(ctx context.Context, password string) (token string, err error)
	Submissions(ctx context.Context, token string) ([]models.SubmissionDetail, error)
}

// AdminFlow drives the admin gallery session. The credential lives only
// in this struct's memory and is cleared on logout.
type AdminFlow struct {
	api         AdminAPI
	state       AdminState
	token       string
	submissions []models.SubmissionDetail
}

// NewAdminFlow creates a logged-out admin session.
func NewAdminFlow(api AdminAPI) *AdminFlow {
	return &AdminFlow{api: api, state: LoggedOut}
}

// State returns the session's current position.
func (f *AdminFlow) State() AdminState {
	return f.state
}

// Submissions returns the list fetched at login.
func (f *AdminFlow) Submissions() []models.SubmissionDetail {
	return f.submissions
}

// Login exchanges the secret for a session token and fetches the
// submission list as a side effect. A wrong secret and a transport
// failure both leave the session logged out, with distinct messages.
func (f *AdminFlow) Login(ctx context.Context, password string) error {
	if f.state == LoggedIn {
		return nil
	}

	token, err := f.api.Login(ctx, password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			return ErrWrongPassword
		}
		return ErrRequestFailed
	}

	submissions, err := f.api.Submissions(ctx, token)
	if err != nil {
		return ErrRequestFailed
	}

	f.token = token
	f.submissions = submissions
	f.state = LoggedIn
	return nil
}

// ExportURL builds the credentialed CSV download location for a plain
// browser navigation.
func (f *AdminFlow) ExportURL() string {
	if f.state != LoggedIn {
		return ""
	}
	return "/api/admin/export?token=" + url.QueryEscape(f.token)
}

// Logout clears the held credential and cached list.
func (f *AdminFlow) Logout() {
	f.token = ""
	f.submissions = nil
	f.state = LoggedOut
}
