package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"

	autherrors "github.com/Vinaypenke01/Elite-Cars/internal/auth/errors"
	"github.com/Vinaypenke01/Elite-Cars/internal/auth/repository"
	"github.com/Vinaypenke01/Elite-Cars/internal/auth/security"
	"github.com/Vinaypenke01/Elite-Cars/internal/auth/token"
	"github.com/Vinaypenke01/Elite-Cars/pkg/config"
	apperrors "github.com/Vinaypenke01/Elite-Cars/pkg/errors"
	"github.com/Vinaypenke01/Elite-Cars/pkg/kafka"
	"github.com/Vinaypenke01/Elite-Cars/pkg/model"
	"github.com/Vinaypenke01/Elite-Cars/pkg/sanitizer"
)

// AdminChecker resolves whether a uid holds an admin profile. It must
// fail closed: any lookup problem reads as "not an admin".
type AdminChecker interface {
	IsAdmin(ctx context.Context, uid string) bool
}

type AuthService interface {
	Register(ctx context.Context, email, password, displayName string) (*model.Session, error)
	SignIn(ctx context.Context, email, password string) (*model.Session, error)
	SignOut(ctx context.Context)
	Current() model.SessionState
	// Watch subscribes to session changes. The callback fires once
	// immediately with the current state and again after every
	// sign-in/sign-out. The returned func unsubscribes.
	Watch(fn func(model.SessionState)) func()
	// ResolveToken maps a bearer token to its subject uid.
	ResolveToken(ctx context.Context, tokenString string) (string, error)
}

type authService struct {
	repo   repository.CredentialRepository
	tokens *token.Manager
	admins AdminChecker
	events kafka.Publisher // nil when the event bus is disabled
	cfg    *config.Config

	mu          sync.RWMutex
	state       model.SessionState
	subscribers map[int]func(model.SessionState)
	nextSubID   int
}

func NewAuthService(
	repo repository.CredentialRepository,
	tokens *token.Manager,
	admins AdminChecker,
	events kafka.Publisher,
	cfg *config.Config,
) AuthService {
	return &authService{
		repo:        repo,
		tokens:      tokens,
		admins:      admins,
		events:      events,
		cfg:         cfg,
		subscribers: map[int]func(model.SessionState){},
	}
}

func (s *authService) Register(ctx context.Context, email, password, displayName string) (*model.Session, error) {
	email = strings.ToLower(sanitizer.TrimAndNormalize(email))
	displayName = sanitizer.NormalizeName(displayName)

	if email == "" || !strings.Contains(email, "@") {
		return nil, providerError(autherrors.CodeInvalidCredential, http.StatusBadRequest)
	}
	if len(password) < s.cfg.MinPasswordLength {
		return nil, providerError(autherrors.CodeWeakPassword, http.StatusBadRequest)
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		s.cfg.Log.Error("Failed to hash password", "error", err)
		return nil, apperrors.Internal("Failed to register account", err)
	}

	user := &model.AdminUser{
		UID:          uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		DisplayName:  displayName,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, autherrors.ErrEmailTaken) {
			return nil, providerError(autherrors.CodeEmailInUse, http.StatusConflict)
		}
		s.cfg.Log.Error("Failed to create credential", "email", email, "error", err)
		return nil, apperrors.Internal("Failed to register account", err)
	}

	session, err := s.openSession(ctx, user)
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, kafka.EventVerificationRequested, user.UID, map[string]any{
		"uid":          user.UID,
		"email":        user.Email,
		"display_name": user.DisplayName,
	})

	s.cfg.Log.Info("Account registered", "uid", user.UID)
	return session, nil
}

func (s *authService) SignIn(ctx context.Context, email, password string) (*model.Session, error) {
	email = strings.ToLower(sanitizer.TrimAndNormalize(email))

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, autherrors.ErrNotFound) {
			// Unknown email and wrong password are indistinguishable to
			// the caller.
			return nil, providerError(autherrors.CodeInvalidCredential, http.StatusUnauthorized)
		}
		s.cfg.Log.Error("Failed to look up credential", "error", err)
		return nil, apperrors.Internal("Failed to sign in", err)
	}

	if user.Disabled {
		return nil, providerError(autherrors.CodeUserDisabled, http.StatusForbidden)
	}

	ok, err := security.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		s.cfg.Log.Error("Failed to verify password", "uid", user.UID, "error", err)
		return nil, apperrors.Internal("Failed to sign in", err)
	}
	if !ok {
		return nil, providerError(autherrors.CodeInvalidCredential, http.StatusUnauthorized)
	}

	session, err := s.openSession(ctx, user)
	if err != nil {
		return nil, err
	}

	s.cfg.Log.Info("Signed in", "uid", user.UID)
	return session, nil
}

func (s *authService) SignOut(ctx context.Context) {
	s.setState(ctx, model.SessionState{})
	s.cfg.Log.Info("Signed out")
}

func (s *authService) Current() model.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *authService) Watch(fn func(model.SessionState)) func() {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	current := s.state
	s.mu.Unlock()

	fn(current)

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

func (s *authService) ResolveToken(ctx context.Context, tokenString string) (string, error) {
	claims, err := s.tokens.Parse(tokenString)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// --- Helpers ---

func (s *authService) openSession(ctx context.Context, user *model.AdminUser) (*model.Session, error) {
	signed, expiresAt, err := s.tokens.Mint(user.UID, user.Email, user.DisplayName)
	if err != nil {
		s.cfg.Log.Error("Failed to mint session token", "uid", user.UID, "error", err)
		return nil, apperrors.Internal("Failed to open session", err)
	}

	session := &model.Session{
		UID:         user.UID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Token:       signed,
		ExpiresAt:   expiresAt,
	}
	s.setState(ctx, model.SessionState{Session: session})
	return session, nil
}

// setState resolves IsAdmin before publishing, so watchers never see an
// authenticated session with an undetermined admin flag.
func (s *authService) setState(ctx context.Context, state model.SessionState) {
	if state.Session != nil {
		state.IsAdmin = s.admins.IsAdmin(ctx, state.Session.UID)
	}

	s.mu.Lock()
	s.state = state
	listeners := make([]func(model.SessionState), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(state)
	}
}

func (s *authService) publishEvent(ctx context.Context, eventType, key string, payload any) {
	if s.events == nil {
		return
	}

	msg, err := kafka.NewEvent(eventType, key, payload)
	if err != nil {
		s.cfg.Log.Warn("Failed to encode auth event", "event_type", eventType, "error", err)
		return
	}
	if err := s.events.Publish(ctx, msg); err != nil {
		s.cfg.Log.Warn("Failed to publish auth event", "event_type", eventType, "error", err)
	}
}

// providerError wraps a provider code into an AppError carrying only
// the fixed user-facing sentence.
func providerError(code string, httpStatus int) *apperrors.AppError {
	appErr := apperrors.New(apperrors.CodeUnauthorized, autherrors.UserMessage(code), httpStatus)
	switch httpStatus {
	case http.StatusConflict:
		appErr.Code = apperrors.CodeConflict
	case http.StatusBadRequest:
		appErr.Code = apperrors.CodeValidation
	case http.StatusForbidden:
		appErr.Code = apperrors.CodeForbidden
	}
	appErr.Details = map[string]any{"code": code}
	return appErr
}
