package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-account-auth/internal/mock"
	"github.com/MKhiriev/go-account-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type observation struct {
	workflow string
	err      error
}

type recordingObserver struct {
	observations []observation
}

func (o *recordingObserver) ObserveWorkflow(workflow string, err error) {
	o.observations = append(o.observations, observation{workflow: workflow, err: err})
}

func TestAuthServiceMetricsWrapper_RecordsEveryWorkflow(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mock.NewMockAuthService(ctrl)
	observer := &recordingObserver{}
	svc := NewAuthServiceMetricsWrapper(observer).Wrap(next)
	ctx := context.Background()
	loginErr := errors.New("boom")

	next.EXPECT().Register(ctx, gomock.Any()).Return(models.PublicAccount{ID: "id-1"}, nil)
	next.EXPECT().ResendOTP(ctx, gomock.Any()).Return(nil)
	next.EXPECT().Verify(ctx, gomock.Any()).Return(ErrOTPExpired)
	next.EXPECT().Login(ctx, gomock.Any()).Return(models.LoginResult{}, loginErr)
	next.EXPECT().ChangePassword(ctx, gomock.Any(), gomock.Any()).Return(nil)

	account, err := svc.Register(ctx, models.RegisterRequest{})
	require.NoError(t, err)
	assert.Equal(t, "id-1", account.ID)
	assert.NoError(t, svc.ResendOTP(ctx, models.ResendOTPRequest{}))
	assert.ErrorIs(t, svc.Verify(ctx, models.VerifyRequest{}), ErrOTPExpired)
	_, err = svc.Login(ctx, models.LoginRequest{})
	assert.ErrorIs(t, err, loginErr)
	assert.NoError(t, svc.ChangePassword(ctx, models.Account{}, models.ChangePasswordRequest{}))

	assert.Equal(t, []observation{
		{workflow: WorkflowRegister},
		{workflow: WorkflowResendOTP},
		{workflow: WorkflowVerify, err: ErrOTPExpired},
		{workflow: WorkflowLogin, err: loginErr},
		{workflow: WorkflowChangePassword},
	}, observer.observations)
}

func TestAuthServiceMetricsWrapper_AuthenticateNotRecorded(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mock.NewMockAuthService(ctrl)
	observer := &recordingObserver{}
	svc := NewAuthServiceMetricsWrapper(observer).Wrap(next)

	next.EXPECT().Authenticate(gomock.Any(), "token").Return(models.Account{ID: "id-1"}, nil)

	account, err := svc.Authenticate(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, "id-1", account.ID)
	assert.Empty(t, observer.observations)
}
