package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"cinelog/internal/audit"
	"cinelog/internal/identity/metrics"
	"cinelog/internal/identity/models"
	id "cinelog/pkg/domain"
	dErrors "cinelog/pkg/domainerrors"
	"cinelog/pkg/platform/sentinel"
)

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (models.User, error)
	CreateIfEmailAvailable(ctx context.Context, u models.User) error
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// dummyHash is a valid bcrypt hash of a throwaway string. Signin compares
// against it when no account exists so the unknown-email path does the same
// work as the wrong-password path and the two stay indistinguishable from
// outside, in timing as well as in response.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// Service owns user registration and credential verification. It receives
// inputs already normalized by the validation layer and never logs or stores
// a plaintext password.
type Service struct {
	users   UserStore
	cost    int
	logger  *slog.Logger
	audit   AuditPublisher
	metrics *metrics.Metrics
	now     func() time.Time
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.audit = publisher
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithBcryptCost overrides the hashing cost; tests lower it to keep suites fast.
func WithBcryptCost(cost int) Option {
	return func(s *Service) {
		s.cost = cost
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New constructs a Service.
func New(users UserStore, opts ...Option) *Service {
	s := &Service{users: users, cost: bcrypt.DefaultCost, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Signup creates a user keyed by normalized email. Uniqueness comes from the
// store's conditional write; its rejection is the conflict signal, there is no
// separate existence check to race against.
func (s *Service) Signup(ctx context.Context, name, email, password string) (*models.Profile, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to hash password")
	}

	user := models.User{
		Email:        email,
		UserID:       id.NewUserID(),
		Name:         name,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	}

	if err := s.users.CreateIfEmailAvailable(ctx, user); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeConflict, "user already exists")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeUpstream, "failed to create user")
	}

	if s.metrics != nil {
		s.metrics.IncrementUsersCreated()
	}
	s.emitAudit(ctx, audit.Event{
		Action:  audit.ActionUserSignup,
		Actor:   email,
		Subject: user.UserID.String(),
	})

	profile := user.Profile()
	return &profile, nil
}

// Signin verifies credentials. An unknown email and a wrong password return
// the same error value so callers cannot enumerate accounts.
func (s *Service) Signin(ctx context.Context, email, password string) (*models.Profile, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, s.invalidCredentials()
		}
		return nil, dErrors.Wrap(err, dErrors.CodeUpstream, "failed to load user")
	}

	if user.PasswordHash == "" {
		// Stored record is missing its hash. Report a plain 500; the details
		// stay in the logs.
		s.logger.Error("user record incomplete", "userId", user.UserID.String())
		return nil, dErrors.New(dErrors.CodeInternal, "user data is corrupted or incomplete")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, s.invalidCredentials()
	}

	profile := user.Profile()
	return &profile, nil
}

func (s *Service) invalidCredentials() error {
	if s.metrics != nil {
		s.metrics.IncrementSigninFailures()
	}
	return dErrors.New(dErrors.CodeInvalidCredentials, "invalid credentials")
}

func (s *Service) emitAudit(ctx context.Context, event audit.Event) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Emit(ctx, event); err != nil {
		s.logger.Warn("audit emit failed", "action", event.Action, "error", err)
	}
}
