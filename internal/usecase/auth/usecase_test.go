package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	domain "saas-landing-api/internal/domain/user"
	pkgerrors "saas-landing-api/pkg/errors"
	"saas-landing-api/pkg/security"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, u *domain.User) (string, error) {
	args := m.Called(ctx, u)
	return args.String(0), args.Error(1)
}

func (m *MockRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func setupTestUsecase(t *testing.T) (*Usecase, *MockRepository) {
	mockRepo := new(MockRepository)
	logger := zaptest.NewLogger(t)
	uc := New(mockRepo, logger)
	return uc, mockRepo
}

// ==================== SIGNUP TESTS ====================

func TestSignup_Success(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()

	req := SignupRequest{
		Name:     "Alice",
		Email:    "a@x.com",
		Password: "secret1",
	}

	mockRepo.On("GetByEmail", ctx, req.Email).Return(nil, nil)
	mockRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.Name == req.Name &&
			u.Email == req.Email &&
			u.Plan == domain.PlanFree &&
			!u.IsVerified &&
			u.PasswordHash != req.Password &&
			security.CheckPassword(u.PasswordHash, req.Password)
	})).Return("7f9c1e4a-0000-0000-0000-000000000001", nil)

	resp, err := uc.Signup(ctx, req)

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, "Signup successful", resp.Message)
	assert.Equal(t, "7f9c1e4a-0000-0000-0000-000000000001", resp.UserID)
	assert.Equal(t, domain.PlanFree, resp.Plan)

	mockRepo.AssertExpectations(t)
}

func TestSignup_EmailAlreadyRegistered(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()

	req := SignupRequest{
		Name:     "Alice",
		Email:    "a@x.com",
		Password: "secret1",
	}

	existing := &domain.User{ID: "existing-id", Email: req.Email}
	mockRepo.On("GetByEmail", ctx, req.Email).Return(existing, nil)

	resp, err := uc.Signup(ctx, req)

	assert.Error(t, err)
	assert.Nil(t, resp)

	var conflict *pkgerrors.AlreadyExistsError
	assert.ErrorAs(t, err, &conflict)
	assert.Contains(t, err.Error(), "email already registered")

	mockRepo.AssertExpectations(t)
}

func TestSignup_InsertRaceStillConflicts(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()

	req := SignupRequest{
		Name:     "Alice",
		Email:    "a@x.com",
		Password: "secret1",
	}

	// Lookup sees nothing, but the unique index rejects the insert.
	mockRepo.On("GetByEmail", ctx, req.Email).Return(nil, nil)
	mockRepo.On("Create", ctx, mock.Anything).Return("", pkgerrors.ErrEmailTaken)

	resp, err := uc.Signup(ctx, req)

	assert.Error(t, err)
	assert.Nil(t, resp)

	var conflict *pkgerrors.AlreadyExistsError
	assert.ErrorAs(t, err, &conflict)

	mockRepo.AssertExpectations(t)
}

func TestSignup_ValidationErrors(t *testing.T) {
	uc, _ := setupTestUsecase(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     SignupRequest
		wantMsg string
	}{
		{
			name:    "missing name",
			req:     SignupRequest{Email: "a@x.com", Password: "secret1"},
			wantMsg: "Name is required",
		},
		{
			name:    "missing email",
			req:     SignupRequest{Name: "Alice", Password: "secret1"},
			wantMsg: "Email is required",
		},
		{
			name:    "invalid email",
			req:     SignupRequest{Name: "Alice", Email: "not-an-email", Password: "secret1"},
			wantMsg: "Email must be a valid email",
		},
		{
			name:    "empty password",
			req:     SignupRequest{Name: "Alice", Email: "a@x.com"},
			wantMsg: "Password is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.Signup(ctx, tt.req)

			assert.Error(t, err)
			assert.Nil(t, resp)

			var verr *pkgerrors.ValidationError
			assert.ErrorAs(t, err, &verr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestSignup_StoreNotConfigured(t *testing.T) {
	logger := zaptest.NewLogger(t)
	uc := New(nil, logger)

	resp, err := uc.Signup(context.Background(), SignupRequest{
		Name:     "Alice",
		Email:    "a@x.com",
		Password: "secret1",
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, pkgerrors.ErrStoreUnavailable)
}

func TestSignup_StoreLookupFails(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()

	req := SignupRequest{
		Name:     "Alice",
		Email:    "a@x.com",
		Password: "secret1",
	}

	mockRepo.On("GetByEmail", ctx, req.Email).Return(nil, errors.New("connection refused"))

	resp, err := uc.Signup(ctx, req)

	assert.Error(t, err)
	assert.Nil(t, resp)

	var unavailable *pkgerrors.UnavailableError
	assert.ErrorAs(t, err, &unavailable)

	mockRepo.AssertExpectations(t)
}

// ==================== LOGIN TESTS ====================

func TestLogin_Success(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()

	hash, err := security.HashPassword("secret1")
	require.NoError(t, err)

	stored := &domain.User{
		ID:           "user-1",
		Name:         "Alice",
		Email:        "a@x.com",
		PasswordHash: hash,
		Plan:         domain.PlanFree,
	}
	mockRepo.On("GetByEmail", ctx, stored.Email).Return(stored, nil)

	resp, err := uc.Login(ctx, LoginRequest{Email: "a@x.com", Password: "secret1"})

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, "Login successful", resp.Message)
	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, domain.PlanFree, resp.Plan)
	assert.NotEmpty(t, resp.UserID)

	mockRepo.AssertExpectations(t)
}

func TestLogin_UnknownEmailAndWrongPasswordAreIndistinguishable(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()

	hash, err := security.HashPassword("secret1")
	require.NoError(t, err)

	stored := &domain.User{
		ID:           "user-1",
		Email:        "a@x.com",
		PasswordHash: hash,
		Plan:         domain.PlanFree,
	}
	mockRepo.On("GetByEmail", ctx, "nobody@x.com").Return(nil, nil)
	mockRepo.On("GetByEmail", ctx, "a@x.com").Return(stored, nil)

	_, errUnknown := uc.Login(ctx, LoginRequest{Email: "nobody@x.com", Password: "secret1"})
	_, errWrongPw := uc.Login(ctx, LoginRequest{Email: "a@x.com", Password: "wrong"})

	assert.Error(t, errUnknown)
	assert.Error(t, errWrongPw)
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
	assert.ErrorIs(t, errUnknown, pkgerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, pkgerrors.ErrInvalidCredentials)

	mockRepo.AssertExpectations(t)
}

func TestLogin_ValidationError(t *testing.T) {
	uc, _ := setupTestUsecase(t)

	resp, err := uc.Login(context.Background(), LoginRequest{Email: "not-an-email", Password: "x"})

	assert.Error(t, err)
	assert.Nil(t, resp)

	var verr *pkgerrors.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestLogin_StoreNotConfigured(t *testing.T) {
	logger := zaptest.NewLogger(t)
	uc := New(nil, logger)

	resp, err := uc.Login(context.Background(), LoginRequest{Email: "a@x.com", Password: "secret1"})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, pkgerrors.ErrStoreUnavailable)
}
