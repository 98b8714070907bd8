package service

import (
	"context"
	"errors"
	"testing"
	"time"

	autherrors "github.com/Vinaypenke01/Elite-Cars/internal/auth/errors"
	"github.com/Vinaypenke01/Elite-Cars/internal/auth/token"
	"github.com/Vinaypenke01/Elite-Cars/pkg/config"
	apperrors "github.com/Vinaypenke01/Elite-Cars/pkg/errors"
	"github.com/Vinaypenke01/Elite-Cars/pkg/kafka"
	"github.com/Vinaypenke01/Elite-Cars/pkg/logger"
	"github.com/Vinaypenke01/Elite-Cars/pkg/model"
)

type mockCredentialRepository struct {
	byEmail  map[string]*model.AdminUser
	failWith error
}

func newMockCredentialRepository() *mockCredentialRepository {
	return &mockCredentialRepository{byEmail: map[string]*model.AdminUser{}}
}

func (m *mockCredentialRepository) Create(ctx context.Context, user *model.AdminUser) error {
	if m.failWith != nil {
		return m.failWith
	}
	if _, exists := m.byEmail[user.Email]; exists {
		return autherrors.ErrEmailTaken
	}
	copied := *user
	m.byEmail[user.Email] = &copied
	return nil
}

func (m *mockCredentialRepository) FindByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	user, ok := m.byEmail[email]
	if !ok {
		return nil, autherrors.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (m *mockCredentialRepository) FindByUID(ctx context.Context, uid string) (*model.AdminUser, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	for _, user := range m.byEmail {
		if user.UID == uid {
			copied := *user
			return &copied, nil
		}
	}
	return nil, autherrors.ErrNotFound
}

func (m *mockCredentialRepository) MarkVerified(ctx context.Context, uid string) error {
	if m.failWith != nil {
		return m.failWith
	}
	for _, user := range m.byEmail {
		if user.UID == uid {
			user.Verified = true
			return nil
		}
	}
	return autherrors.ErrNotFound
}

type stubAdminChecker struct {
	adminUIDs map[string]bool
}

func (s *stubAdminChecker) IsAdmin(ctx context.Context, uid string) bool {
	return s.adminUIDs[uid]
}

type recordingPublisher struct {
	messages []kafka.Message
}

func (p *recordingPublisher) Publish(ctx context.Context, msg kafka.Message) error {
	p.messages = append(p.messages, msg)
	return nil
}

func newTestAuth(repo *mockCredentialRepository, admins AdminChecker, events kafka.Publisher) AuthService {
	cfg := &config.Config{
		MinPasswordLength: 6,
		Log:               logger.New(logger.Config{Level: logger.ERROR, Format: logger.TEXT}),
	}
	tokens, err := token.NewManager("test-secret", time.Hour)
	if err != nil {
		panic(err)
	}
	if admins == nil {
		admins = &stubAdminChecker{}
	}
	return NewAuthService(repo, tokens, admins, events, cfg)
}

func TestRegisterThenSignIn(t *testing.T) {
	repo := newMockCredentialRepository()
	svc := newTestAuth(repo, nil, nil)

	session, err := svc.Register(context.Background(), "Admin@EliteCars.Test", "s3cret-pass", "Site Admin")
	if err != nil {
		t.Fatalf("unexpected register error: %v", err)
	}
	if session.Token == "" {
		t.Error("expected a session token")
	}
	if session.Email != "admin@elitecars.test" {
		t.Errorf("expected lowercased email, got %q", session.Email)
	}

	again, err := svc.SignIn(context.Background(), "admin@elitecars.test", "s3cret-pass")
	if err != nil {
		t.Fatalf("unexpected sign-in error: %v", err)
	}
	if again.UID != session.UID {
		t.Errorf("expected same uid across sessions, got %q and %q", session.UID, again.UID)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newMockCredentialRepository()
	svc := newTestAuth(repo, nil, nil)

	if _, err := svc.Register(context.Background(), "admin@elitecars.test", "s3cret-pass", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := svc.Register(context.Background(), "admin@elitecars.test", "other-pass", "")
	if err == nil {
		t.Fatal("expected duplicate email error, got nil")
	}
	appErr := apperrors.AsAppError(err)
	if appErr.Message != autherrors.UserMessage(autherrors.CodeEmailInUse) {
		t.Errorf("expected fixed user message, got %q", appErr.Message)
	}
}

func TestRegister_WeakPassword(t *testing.T) {
	svc := newTestAuth(newMockCredentialRepository(), nil, nil)

	_, err := svc.Register(context.Background(), "admin@elitecars.test", "short", "")
	if err == nil {
		t.Fatal("expected weak password error, got nil")
	}
	if apperrors.AsAppError(err).Message != autherrors.UserMessage(autherrors.CodeWeakPassword) {
		t.Errorf("unexpected message: %q", apperrors.AsAppError(err).Message)
	}
}

func TestSignIn_WrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	repo := newMockCredentialRepository()
	svc := newTestAuth(repo, nil, nil)

	if _, err := svc.Register(context.Background(), "admin@elitecars.test", "s3cret-pass", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, errWrongPass := svc.SignIn(context.Background(), "admin@elitecars.test", "wrong-pass")
	_, errNoUser := svc.SignIn(context.Background(), "nobody@elitecars.test", "whatever")

	if errWrongPass == nil || errNoUser == nil {
		t.Fatal("expected both sign-ins to fail")
	}
	if apperrors.AsAppError(errWrongPass).Message != apperrors.AsAppError(errNoUser).Message {
		t.Error("wrong password and unknown email must be indistinguishable")
	}
}

func TestSignIn_DisabledAccount(t *testing.T) {
	repo := newMockCredentialRepository()
	svc := newTestAuth(repo, nil, nil)

	if _, err := svc.Register(context.Background(), "admin@elitecars.test", "s3cret-pass", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	repo.byEmail["admin@elitecars.test"].Disabled = true

	_, err := svc.SignIn(context.Background(), "admin@elitecars.test", "s3cret-pass")
	if apperrors.AsAppError(err).Code != apperrors.CodeForbidden {
		t.Errorf("expected FORBIDDEN for disabled account, got %v", err)
	}
}

func TestWatch_FiresImmediatelyAndOnChange(t *testing.T) {
	repo := newMockCredentialRepository()
	svc := newTestAuth(repo, nil, nil)

	var states []model.SessionState
	unsubscribe := svc.Watch(func(state model.SessionState) {
		states = append(states, state)
	})
	defer unsubscribe()

	if len(states) != 1 {
		t.Fatalf("expected one immediate callback, got %d", len(states))
	}
	if states[0].Session != nil {
		t.Error("expected initial state to be signed out")
	}

	if _, err := svc.Register(context.Background(), "admin@elitecars.test", "s3cret-pass", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	svc.SignOut(context.Background())

	if len(states) != 3 {
		t.Fatalf("expected callbacks for initial, sign-in and sign-out, got %d", len(states))
	}
	if states[1].Session == nil {
		t.Error("expected signed-in state after register")
	}
	if states[2].Session != nil {
		t.Error("expected signed-out state after logout")
	}
}

func TestWatch_UnsubscribeStopsCallbacks(t *testing.T) {
	svc := newTestAuth(newMockCredentialRepository(), nil, nil)

	calls := 0
	unsubscribe := svc.Watch(func(model.SessionState) { calls++ })
	unsubscribe()

	if _, err := svc.Register(context.Background(), "admin@elitecars.test", "s3cret-pass", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Errorf("expected only the immediate callback, got %d", calls)
	}
}

func TestSessionState_AdminFlagFailsClosed(t *testing.T) {
	repo := newMockCredentialRepository()
	// Checker that knows no admins stands in for both an absent profile
	// and a failed lookup.
	svc := newTestAuth(repo, &stubAdminChecker{adminUIDs: map[string]bool{}}, nil)

	if _, err := svc.Register(context.Background(), "admin@elitecars.test", "s3cret-pass", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	state := svc.Current()
	if state.Session == nil {
		t.Fatal("expected a signed-in session")
	}
	if state.IsAdmin {
		t.Error("expected IsAdmin false without an admin profile")
	}
}

func TestSessionState_AdminFlagResolved(t *testing.T) {
	repo := newMockCredentialRepository()
	checker := &stubAdminChecker{adminUIDs: map[string]bool{}}
	svc := newTestAuth(repo, checker, nil)

	session, err := svc.Register(context.Background(), "admin@elitecars.test", "s3cret-pass", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	checker.adminUIDs[session.UID] = true
	if _, err := svc.SignIn(context.Background(), "admin@elitecars.test", "s3cret-pass"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !svc.Current().IsAdmin {
		t.Error("expected IsAdmin true once the profile exists")
	}
}

func TestRegister_PublishesVerificationEvent(t *testing.T) {
	events := &recordingPublisher{}
	svc := newTestAuth(newMockCredentialRepository(), nil, events)

	if _, err := svc.Register(context.Background(), "admin@elitecars.test", "s3cret-pass", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(events.messages) != 1 {
		t.Fatalf("expected one event, got %d", len(events.messages))
	}
	if got := events.messages[0].Headers[kafka.HeaderEventType]; got != kafka.EventVerificationRequested {
		t.Errorf("expected %s event, got %s", kafka.EventVerificationRequested, got)
	}
}

func TestResolveToken(t *testing.T) {
	svc := newTestAuth(newMockCredentialRepository(), nil, nil)

	session, err := svc.Register(context.Background(), "admin@elitecars.test", "s3cret-pass", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	uid, err := svc.ResolveToken(context.Background(), session.Token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if uid != session.UID {
		t.Errorf("expected uid %q, got %q", session.UID, uid)
	}

	if _, err := svc.ResolveToken(context.Background(), "not-a-token"); err == nil {
		t.Error("expected error for a garbage token")
	}
}

func TestSignIn_RepositoryFailure(t *testing.T) {
	repo := newMockCredentialRepository()
	repo.failWith = errors.New("connection reset")
	svc := newTestAuth(repo, nil, nil)

	_, err := svc.SignIn(context.Background(), "admin@elitecars.test", "s3cret-pass")
	if apperrors.AsAppError(err).Code != apperrors.CodeInternal {
		t.Errorf("expected INTERNAL_ERROR, got %v", err)
	}
}
