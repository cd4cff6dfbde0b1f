package service

import (
	"context"

	"github.com/MKhiriev/go-account-auth/models"
)

// Workflow names recorded by the metrics wrapper.
const (
	WorkflowRegister       = "register"
	WorkflowResendOTP      = "resend_otp"
	WorkflowVerify         = "verify"
	WorkflowLogin          = "login"
	WorkflowChangePassword = "change_password"
)

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// metrics.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// WorkflowObserver receives the outcome of every finished workflow.
type WorkflowObserver interface {
	ObserveWorkflow(workflow string, err error)
}

type authServiceMetricsWrapper struct {
	observer WorkflowObserver
}

// NewAuthServiceMetricsWrapper returns a wrapper that reports the outcome of
// each workflow to observer. Authenticate is not recorded; it runs on every
// guarded request and is covered by the HTTP metrics.
func NewAuthServiceMetricsWrapper(observer WorkflowObserver) AuthServiceWrapper {
	return &authServiceMetricsWrapper{observer: observer}
}

func (w *authServiceMetricsWrapper) Wrap(next AuthService) AuthService {
	return &observedAuthService{next: next, observer: w.observer}
}

type observedAuthService struct {
	next     AuthService
	observer WorkflowObserver
}

func (s *observedAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.PublicAccount, error) {
	account, err := s.next.Register(ctx, req)
	s.observer.ObserveWorkflow(WorkflowRegister, err)
	return account, err
}

func (s *observedAuthService) ResendOTP(ctx context.Context, req models.ResendOTPRequest) error {
	err := s.next.ResendOTP(ctx, req)
	s.observer.ObserveWorkflow(WorkflowResendOTP, err)
	return err
}

func (s *observedAuthService) Verify(ctx context.Context, req models.VerifyRequest) error {
	err := s.next.Verify(ctx, req)
	s.observer.ObserveWorkflow(WorkflowVerify, err)
	return err
}

func (s *observedAuthService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	result, err := s.next.Login(ctx, req)
	s.observer.ObserveWorkflow(WorkflowLogin, err)
	return result, err
}

func (s *observedAuthService) ChangePassword(ctx context.Context, account models.Account, req models.ChangePasswordRequest) error {
	err := s.next.ChangePassword(ctx, account, req)
	s.observer.ObserveWorkflow(WorkflowChangePassword, err)
	return err
}

func (s *observedAuthService) Authenticate(ctx context.Context, accessToken string) (models.Account, error) {
	return s.next.Authenticate(ctx, accessToken)
}
