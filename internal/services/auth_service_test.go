package services

import (
	"context"
	"errors"
	"testing"

	"finboard/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type AuthServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      AuthService
	user         *models.User
}

const testJWTSecret = "test-secret"

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockUserRepo = &MockUserRepository{}
	suite.service = NewAuthService(suite.mockUserRepo, testJWTSecret, zerolog.Nop())

	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.MinCost)
	require.NoError(suite.T(), err)
	suite.user = &models.User{
		ID:           uuid.New(),
		Name:         "User",
		Email:        "user@nextmail.com",
		PasswordHash: string(hash),
	}
}

func (suite *AuthServiceTestSuite) TearDownTest() {
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (suite *AuthServiceTestSuite) TestAuthenticate_Success() {
	suite.mockUserRepo.On("GetByEmail", mock.Anything, suite.user.Email).
		Return(suite.user, nil).Once()

	token, err := suite.service.Authenticate(context.Background(), suite.user.Email, "123456")

	require.NoError(suite.T(), err)
	require.NotEmpty(suite.T(), token)

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	require.NoError(suite.T(), err)
	assert.True(suite.T(), parsed.Valid)

	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(suite.T(), suite.user.ID.String(), claims["sub"])
	assert.Equal(suite.T(), suite.user.Email, claims["email"])
}

func (suite *AuthServiceTestSuite) TestAuthenticate_WrongPassword() {
	suite.mockUserRepo.On("GetByEmail", mock.Anything, suite.user.Email).
		Return(suite.user, nil).Once()

	token, err := suite.service.Authenticate(context.Background(), suite.user.Email, "wrong-password")

	assert.Empty(suite.T(), token)
	assert.ErrorIs(suite.T(), err, ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestAuthenticate_UnknownEmail() {
	suite.mockUserRepo.On("GetByEmail", mock.Anything, "nobody@nextmail.com").
		Return(nil, pgx.ErrNoRows).Once()

	token, err := suite.service.Authenticate(context.Background(), "nobody@nextmail.com", "123456")

	assert.Empty(suite.T(), token)
	assert.ErrorIs(suite.T(), err, ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestAuthenticate_DatabaseError() {
	suite.mockUserRepo.On("GetByEmail", mock.Anything, suite.user.Email).
		Return(nil, errors.New("connection refused")).Once()

	token, err := suite.service.Authenticate(context.Background(), suite.user.Email, "123456")

	assert.Empty(suite.T(), token)
	assert.NotErrorIs(suite.T(), err, ErrInvalidCredentials)
	assert.EqualError(suite.T(), err, "failed to fetch user")
}
