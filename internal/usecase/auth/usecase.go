package auth

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	domain "saas-landing-api/internal/domain/user"
	pkgerrors "saas-landing-api/pkg/errors"
	"saas-landing-api/pkg/security"

	"github.com/go-playground/validator/v10"
)

// Repository defines the interface for credential store access. It abstracts
// the data layer, allowing different implementations to be used
// interchangeably.
type Repository interface {
	Create(ctx context.Context, u *domain.User) (string, error)         // Persist a new account, returns the assigned ID
	GetByEmail(ctx context.Context, email string) (*domain.User, error) // Lookup by exact email, nil when absent
}

// Usecase implements the signup and login business logic.
// A nil repository puts the service into degraded mode: every operation
// fails with the store-unavailable error while the process keeps serving.
type Usecase struct {
	repo     Repository
	log      *zap.Logger
	validate *validator.Validate
}

// New creates a new instance of Usecase with the provided repository and logger.
func New(r Repository, log *zap.Logger) *Usecase {
	return &Usecase{repo: r, log: log, validate: validator.New()}
}

// formatValidationError converts validator.ValidationErrors into a human-readable error.
func formatValidationError(err error) error {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, e := range validationErrors {
			switch e.Tag() {
			case "required":
				messages = append(messages, fmt.Sprintf("%s is required", e.Field()))
			case "email":
				messages = append(messages, fmt.Sprintf("%s must be a valid email", e.Field()))
			case "max":
				messages = append(messages, fmt.Sprintf("%s must be at most %s characters", e.Field(), e.Param()))
			default:
				messages = append(messages, fmt.Sprintf("%s is invalid", e.Field()))
			}
		}
		return pkgerrors.NewValidationError("", strings.Join(messages, ", "))
	}
	return err
}

// Signup registers a new account. The email must not be in use; the
// plaintext password is bcrypt-hashed before anything is persisted. New
// accounts start on the free plan, unverified.
func (uc *Usecase) Signup(ctx context.Context, in SignupRequest) (*AuthResponse, error) {
	uc.log.Info("signup attempt", zap.String("email", in.Email))

	if err := uc.validate.Struct(in); err != nil {
		uc.log.Warn("signup validation failed", zap.Error(err))
		return nil, formatValidationError(err)
	}

	if uc.repo == nil {
		uc.log.Warn("signup rejected, store not configured")
		return nil, pkgerrors.ErrStoreUnavailable
	}

	existing, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		uc.log.Error("failed to check existing email", zap.String("email", in.Email), zap.Error(err))
		return nil, pkgerrors.WrapUnavailable("failed to validate email uniqueness", err)
	}
	if existing != nil {
		uc.log.Warn("email already registered", zap.String("email", in.Email))
		return nil, pkgerrors.ErrEmailTaken
	}

	hash, err := security.HashPassword(in.Password)
	if err != nil {
		uc.log.Error("failed to hash password", zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to hash password", err)
	}

	// The unique index on email is authoritative: a signup that loses the
	// race between the lookup above and this insert still fails cleanly.
	id, err := uc.repo.Create(ctx, &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Plan:         domain.PlanFree,
		IsVerified:   false,
	})
	if err != nil {
		if _, ok := err.(*pkgerrors.AlreadyExistsError); ok {
			uc.log.Warn("email already registered (insert race)", zap.String("email", in.Email))
			return nil, err
		}
		uc.log.Error("failed to create user", zap.Error(err))
		return nil, pkgerrors.WrapUnavailable("failed to create user", err)
	}

	uc.log.Info("signup successful", zap.String("user_id", id))
	return &AuthResponse{
		Message: "Signup successful",
		UserID:  id,
		Plan:    domain.PlanFree,
	}, nil
}

// Login verifies a credential pair. Unknown email and wrong password return
// the identical unauthorized error so callers cannot probe for accounts.
func (uc *Usecase) Login(ctx context.Context, in LoginRequest) (*AuthResponse, error) {
	uc.log.Info("login attempt", zap.String("email", in.Email))

	if err := uc.validate.Struct(in); err != nil {
		uc.log.Warn("login validation failed", zap.Error(err))
		return nil, formatValidationError(err)
	}

	if uc.repo == nil {
		uc.log.Warn("login rejected, store not configured")
		return nil, pkgerrors.ErrStoreUnavailable
	}

	u, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		uc.log.Error("failed to look up user", zap.String("email", in.Email), zap.Error(err))
		return nil, pkgerrors.WrapUnavailable("failed to look up user", err)
	}
	if u == nil {
		uc.log.Warn("login failed, unknown email", zap.String("email", in.Email))
		return nil, pkgerrors.ErrInvalidCredentials
	}

	if !security.CheckPassword(u.PasswordHash, in.Password) {
		uc.log.Warn("login failed, password mismatch", zap.String("user_id", u.ID))
		return nil, pkgerrors.ErrInvalidCredentials
	}

	uc.log.Info("login successful", zap.String("user_id", u.ID))
	return &AuthResponse{
		Message: "Login successful",
		UserID:  u.ID,
		Plan:    u.Plan,
	}, nil
}
