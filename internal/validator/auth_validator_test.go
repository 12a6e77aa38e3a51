package validator_test

import (
	"context"
	"testing"

	"storefront/internal/domain/model"
	"storefront/internal/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type userRepoMock struct{ mock.Mock }

func (m *userRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *userRepoMock) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *userRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *userRepoMock) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func freshUsers() *userRepoMock {
	users := new(userRepoMock)
	users.On("FindByEmail", mock.Anything, mock.Anything).Return((*model.User)(nil), nil)
	return users
}

func TestAuthValidator_ValidateRegister_OK(t *testing.T) {
	v := validator.NewAuthValidator(freshUsers())

	err := v.ValidateRegister(context.Background(), "a@example.com", "password123", "buyer")
	assert.NoError(t, err)
}

func TestAuthValidator_ValidateRegister_BadEmail(t *testing.T) {
	v := validator.NewAuthValidator(freshUsers())

	for _, email := range []string{"", "no-at-sign", "a@b", "a b@example.com"} {
		err := v.ValidateRegister(context.Background(), email, "password123", "buyer")
		assert.ErrorIs(t, err, validator.ErrInvalidInput, "email=%q", email)
	}
}

func TestAuthValidator_ValidateRegister_ShortPassword(t *testing.T) {
	v := validator.NewAuthValidator(freshUsers())

	err := v.ValidateRegister(context.Background(), "a@example.com", "short", "buyer")
	assert.ErrorIs(t, err, validator.ErrInvalidInput)
}

func TestAuthValidator_ValidateRegister_BadAccountType(t *testing.T) {
	v := validator.NewAuthValidator(freshUsers())

	err := v.ValidateRegister(context.Background(), "a@example.com", "password123", "admin")
	assert.ErrorIs(t, err, validator.ErrInvalidInput)
}

func TestAuthValidator_ValidateRegister_DuplicateEmail(t *testing.T) {
	users := new(userRepoMock)
	users.On("FindByEmail", mock.Anything, "taken@example.com").Return(&model.User{ID: 1, Email: "taken@example.com"}, nil)

	v := validator.NewAuthValidator(users)

	err := v.ValidateRegister(context.Background(), "taken@example.com", "password123", "vendor")
	assert.ErrorIs(t, err, validator.ErrEmailAlreadyUsed)
}

func TestAuthValidator_ValidateLogin_MissingFields(t *testing.T) {
	v := validator.NewAuthValidator(freshUsers())

	assert.ErrorIs(t, v.ValidateLogin(context.Background(), "", "password123"), validator.ErrInvalidInput)
	assert.ErrorIs(t, v.ValidateLogin(context.Background(), "a@example.com", ""), validator.ErrInvalidInput)
}
