package auth_test

import (
	"testing"

	"shortlink-backend/internal/auth"
	"shortlink-backend/internal/database/models"
	apperrors "shortlink-backend/internal/errors"
	"shortlink-backend/internal/mocks"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthServiceTestSuite defines the test suite for AuthService
type AuthServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUserRepo *mocks.MockUserRepositoryInterface
	authService  *auth.AuthService
}

// SetupTest sets up the test suite
func (suite *AuthServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.authService = auth.NewAuthService(
		auth.DefaultConfig(),
		"test-secret",
		suite.mockUserRepo,
		validator.New(),
	)
}

// TearDownTest cleans up after each test
func (suite *AuthServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestRegister tests registering a new account
func (suite *AuthServiceTestSuite) TestRegister() {
	req := &auth.RegisterRequest{
		Username: "newuser",
		Email:    "new@example.com",
		Password: "password123",
	}

	suite.mockUserRepo.EXPECT().
		GetByEmail(req.Email).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockUserRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(user *models.User) error {
			user.ID = uuid.New()
			// The stored hash is never the plaintext password
			assert.NotEqual(suite.T(), req.Password, user.PasswordHash)
			assert.NoError(suite.T(), bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)))
			return nil
		}).
		Times(1)

	response, err := suite.authService.Register(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.NotEmpty(suite.T(), response.Token)
	assert.Equal(suite.T(), req.Username, response.User.Username)
	assert.Equal(suite.T(), req.Email, response.User.Email)
}

// TestRegisterEmailTaken tests registering with an email already in use
func (suite *AuthServiceTestSuite) TestRegisterEmailTaken() {
	req := &auth.RegisterRequest{
		Username: "newuser",
		Email:    "taken@example.com",
		Password: "password123",
	}

	existing := &models.User{Email: req.Email}
	suite.mockUserRepo.EXPECT().
		GetByEmail(req.Email).
		Return(existing, nil).
		Times(1)

	response, err := suite.authService.Register(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserExists)
}

// TestRegisterValidationError tests registering with a weak password
func (suite *AuthServiceTestSuite) TestRegisterValidationError() {
	req := &auth.RegisterRequest{
		Username: "newuser",
		Email:    "new@example.com",
		Password: "short",
	}

	response, err := suite.authService.Register(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestLogin tests logging in with valid credentials
func (suite *AuthServiceTestSuite) TestLogin() {
	password := "password123"
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	suite.NoError(err)

	user := &models.User{
		Username:     "existing",
		Email:        "existing@example.com",
		PasswordHash: string(hash),
	}
	user.ID = uuid.New()

	suite.mockUserRepo.EXPECT().
		GetByEmail(user.Email).
		Return(user, nil).
		Times(1)

	response, err := suite.authService.Login(&auth.LoginRequest{
		Email:    user.Email,
		Password: password,
	})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.NotEmpty(suite.T(), response.Token)
	assert.Equal(suite.T(), user.ID, response.User.ID)
}

// TestLoginWrongPassword tests logging in with the wrong password
func (suite *AuthServiceTestSuite) TestLoginWrongPassword() {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	suite.NoError(err)

	user := &models.User{
		Email:        "existing@example.com",
		PasswordHash: string(hash),
	}

	suite.mockUserRepo.EXPECT().
		GetByEmail(user.Email).
		Return(user, nil).
		Times(1)

	response, err := suite.authService.Login(&auth.LoginRequest{
		Email:    user.Email,
		Password: "wrong-password",
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)
}

// TestLoginUnknownEmail tests that an unknown email fails the same way as a
// wrong password
func (suite *AuthServiceTestSuite) TestLoginUnknownEmail() {
	suite.mockUserRepo.EXPECT().
		GetByEmail("nobody@example.com").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.authService.Login(&auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)
}

// TestJWTRoundTrip tests that an issued token validates back to its claims
func (suite *AuthServiceTestSuite) TestJWTRoundTrip() {
	user := &models.User{
		Username: "jwtuser",
		Email:    "jwt@example.com",
	}
	user.ID = uuid.New()

	token, err := suite.authService.GenerateJWT(user)
	suite.NoError(err)
	suite.NotEmpty(token)

	claims, err := suite.authService.ValidateJWT(token)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), user.ID, claims.UserID)
	assert.Equal(suite.T(), user.Username, claims.Username)
	assert.Equal(suite.T(), user.Email, claims.Email)
	assert.Equal(suite.T(), user.ID.String(), claims.Subject)
}

// TestValidateJWTWrongSecret tests that a token signed with another secret is rejected
func (suite *AuthServiceTestSuite) TestValidateJWTWrongSecret() {
	other := auth.NewAuthService(auth.DefaultConfig(), "other-secret", suite.mockUserRepo, validator.New())

	user := &models.User{Username: "jwtuser", Email: "jwt@example.com"}
	user.ID = uuid.New()

	token, err := other.GenerateJWT(user)
	suite.NoError(err)

	claims, err := suite.authService.ValidateJWT(token)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), claims)
}

// TestValidateJWTGarbage tests that a malformed token is rejected
func (suite *AuthServiceTestSuite) TestValidateJWTGarbage() {
	claims, err := suite.authService.ValidateJWT("not.a.token")

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), claims)
}

// TestAuthServiceTestSuite runs the test suite
func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
