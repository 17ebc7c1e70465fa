package flow

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngvthanh/classform/internal/app/models"
	"github.com/ngvthanh/classform/internal/pkg/apperrors"
)

type fakeAdminAPI struct {
	token       string
	loginErr    error
	listErr     error
	submissions []models.SubmissionDetail

	lastPassword string
	lastToken    string
}

func (f *fakeAdminAPI) Login(ctx context.Context, password string) (string, error) {
	f.lastPassword = password
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return f.token, nil
}

func (f *fakeAdminAPI) Submissions(ctx context.Context, token string) ([]models.SubmissionDetail, error) {
	f.lastToken = token
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.submissions, nil
}

func TestAdmin_LoginFetchesSubmissions(t *testing.T) {
	api := &fakeAdminAPI{
		token: "session-token",
		submissions: []models.SubmissionDetail{
			{Submission: models.Submission{ID: 1}, Name: "Trần Văn An"},
		},
	}
	f := NewAdminFlow(api)

	require.NoError(t, f.Login(context.Background(), "admin123"))

	assert.Equal(t, LoggedIn, f.State())
	assert.Equal(t, "admin123", api.lastPassword)
	assert.Equal(t, "session-token", api.lastToken)
	require.Len(t, f.Submissions(), 1)
	assert.Equal(t, "Trần Văn An", f.Submissions()[0].Name)
}

func TestAdmin_WrongPasswordStaysLoggedOut(t *testing.T) {
	api := &fakeAdminAPI{loginErr: apperrors.ErrInvalidCredentials}
	f := NewAdminFlow(api)

	err := f.Login(context.Background(), "letmein")

	assert.ErrorIs(t, err, ErrWrongPassword)
	assert.Equal(t, LoggedOut, f.State())
	assert.Empty(t, f.ExportURL())
}

func TestAdmin_TransportFailureIsGeneric(t *testing.T) {
	api := &fakeAdminAPI{loginErr: errors.New("dial tcp: connection refused")}
	f := NewAdminFlow(api)

	err := f.Login(context.Background(), "admin123")

	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.Equal(t, LoggedOut, f.State())
}

func TestAdmin_ListFailureAfterLoginIsGeneric(t *testing.T) {
	api := &fakeAdminAPI{token: "session-token", listErr: errors.New("timeout")}
	f := NewAdminFlow(api)

	err := f.Login(context.Background(), "admin123")

	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.Equal(t, LoggedOut, f.State())
}

func TestAdmin_ExportURLCarriesEscapedToken(t *testing.T) {
	api := &fakeAdminAPI{token: "a+b/c=="}
	f := NewAdminFlow(api)
	require.NoError(t, f.Login(context.Background(), "admin123"))

	assert.Equal(t, "/api/admin/export?token=a%2Bb%2Fc%3D%3D", f.ExportURL())
}

func TestAdmin_LogoutClearsSession(t *testing.T) {
	api := &fakeAdminAPI{
		token:       "session-token",
		submissions: []models.SubmissionDetail{{Submission: models.Submission{ID: 1}}},
	}
	f := NewAdminFlow(api)
	require.NoError(t, f.Login(context.Background(), "admin123"))

	f.Logout()

	assert.Equal(t, LoggedOut, f.State())
	assert.Nil(t, f.Submissions())
	assert.Empty(t, f.ExportURL())
}
