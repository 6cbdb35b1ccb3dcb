package notification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlorenzana/jobtrail/internal/domain/application"
	"github.com/avlorenzana/jobtrail/internal/domain/identity"
	"github.com/avlorenzana/jobtrail/pkg/apperror"
	"github.com/avlorenzana/jobtrail/pkg/logger"
)

type fakeIdentityService struct {
	caller *identity.Identity
	err    error
}

func (f *fakeIdentityService) SignUp(context.Context, string, string, string) (*identity.Identity, error) {
	panic("not used")
}

func (f *fakeIdentityService) ResolveCaller(context.Context, string) (*identity.Identity, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.caller, nil
}

type sentMail struct {
	to      string
	subject string
	html    string
}

type fakeMailer struct {
	configured bool
	sendErr    error
	sent       []sentMail
}

func (f *fakeMailer) Configured() bool { return f.configured }

func (f *fakeMailer) Send(_ context.Context, to, subject, html string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, html: html})
	return nil
}

func authedService() *fakeIdentityService {
	return &fakeIdentityService{caller: &identity.Identity{ID: "u-1", Email: "me@example.com"}}
}

func sampleApplication() application.JobApplication {
	return application.JobApplication{
		ID:          "app-1",
		Company:     "Acme",
		Position:    "Engineer",
		Status:      application.StatusApplied,
		Location:    "Remote",
		AppliedDate: "2024-03-01",
	}
}

func TestDispatch_UnauthorizedPerformsNoSend(t *testing.T) {
	mailer := &fakeMailer{configured: true}
	svc := &fakeIdentityService{err: apperror.NewUnauthorized("missing Authorization header", nil)}
	uc := NewDispatchUseCase(svc, mailer, logger.NewNop())

	_, err := uc.Execute(context.Background(), DispatchInput{Kind: "added", Application: sampleApplication()})

	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
	assert.Empty(t, mailer.sent)
}

func TestDispatch_UnconfiguredProviderSkipsSoftly(t *testing.T) {
	mailer := &fakeMailer{configured: false}
	uc := NewDispatchUseCase(authedService(), mailer, logger.NewNop())

	out, err := uc.Execute(context.Background(), DispatchInput{Kind: "deleted", Application: sampleApplication()})

	require.NoError(t, err)
	assert.True(t, out.Skipped)
	assert.False(t, out.Sent)
	assert.Empty(t, mailer.sent)
}

func TestDispatch_SendsToCallerEmail(t *testing.T) {
	mailer := &fakeMailer{configured: true}
	uc := NewDispatchUseCase(authedService(), mailer, logger.NewNop())

	out, err := uc.Execute(context.Background(), DispatchInput{Kind: "added", Application: sampleApplication()})

	require.NoError(t, err)
	assert.True(t, out.Sent)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "me@example.com", mailer.sent[0].to)
	assert.Equal(t, "New Application Added: Engineer at Acme", mailer.sent[0].subject)
	assert.Contains(t, mailer.sent[0].html, "Acme")
	assert.Contains(t, mailer.sent[0].html, "2024-03-01")
}

func TestDispatch_NotesSectionIsConditional(t *testing.T) {
	mailer := &fakeMailer{configured: true}
	uc := NewDispatchUseCase(authedService(), mailer, logger.NewNop())

	app := sampleApplication()
	_, err := uc.Execute(context.Background(), DispatchInput{Kind: "updated", Application: app})
	require.NoError(t, err)
	assert.NotContains(t, mailer.sent[0].html, "Notes:")

	app.Notes = "follow up next week"
	_, err = uc.Execute(context.Background(), DispatchInput{Kind: "updated", Application: app})
	require.NoError(t, err)
	assert.Contains(t, mailer.sent[1].html, "Notes:")
	assert.Contains(t, mailer.sent[1].html, "follow up next week")
}

func TestDispatch_DeletedTemplateOmitsDetails(t *testing.T) {
	mailer := &fakeMailer{configured: true}
	uc := NewDispatchUseCase(authedService(), mailer, logger.NewNop())

	_, err := uc.Execute(context.Background(), DispatchInput{Kind: "deleted", Application: sampleApplication()})

	require.NoError(t, err)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "Application Removed: Engineer at Acme", mailer.sent[0].subject)
	assert.NotContains(t, mailer.sent[0].html, "Applied Date")
}

func TestDispatch_UnknownKindIsRejected(t *testing.T) {
	mailer := &fakeMailer{configured: true}
	uc := NewDispatchUseCase(authedService(), mailer, logger.NewNop())

	_, err := uc.Execute(context.Background(), DispatchInput{Kind: "archived", Application: sampleApplication()})

	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.Empty(t, mailer.sent)
}

func TestDispatch_ProviderRejectionSurfaces(t *testing.T) {
	mailer := &fakeMailer{configured: true, sendErr: apperror.NewProvider("recipient is not verified", nil)}
	uc := NewDispatchUseCase(authedService(), mailer, logger.NewNop())

	_, err := uc.Execute(context.Background(), DispatchInput{Kind: "added", Application: sampleApplication()})

	assert.ErrorIs(t, err, apperror.ErrProvider)
}
