package auth_test

import (
	"net/http"
	"testing"

	"shortlink-backend/internal/auth"
	"shortlink-backend/internal/database/models"
	"shortlink-backend/internal/mocks"
	"shortlink-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthHandlerTestSuite exercises the register/login/logout/me endpoints with a
// real AuthService over a mocked user repository
type AuthHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUserRepo *mocks.MockUserRepositoryInterface
	authService  *auth.AuthService
	http         *testutils.HTTPTestSuite
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)

	suite.authService = auth.NewAuthService(auth.DefaultConfig(), "test-secret", suite.mockUserRepo, validator.New())
	handler := auth.NewAuthHandler(suite.authService)
	middleware := auth.NewAuthMiddleware(suite.authService)

	suite.http = testutils.SetupHTTPTest()
	suite.http.Router.POST("/api/auth/register", handler.Register)
	suite.http.Router.POST("/api/auth/login", handler.Login)
	suite.http.Router.POST("/api/auth/logout", handler.Logout)
	suite.http.Router.GET("/api/auth/me", middleware.RequireAuth(), handler.Me)
}

func (suite *AuthHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AuthHandlerTestSuite) TestRegister() {
	suite.mockUserRepo.EXPECT().
		GetByEmail("new@example.com").
		Return(nil, gorm.ErrRecordNotFound)
	suite.mockUserRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(user *models.User) error {
			user.ID = uuid.New()
			return nil
		})

	w := suite.http.MakeRequest(http.MethodPost, "/api/auth/register", auth.RegisterRequest{
		Username: "newuser",
		Email:    "new@example.com",
		Password: "password123",
	})

	var resp auth.AuthResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &resp)
	assert.NotEmpty(suite.T(), resp.Token)
	assert.Equal(suite.T(), "newuser", resp.User.Username)

	// The token is also set as a cookie for browser clients
	cookies := w.Result().Cookies()
	assert.NotEmpty(suite.T(), cookies)
	assert.Equal(suite.T(), "token", cookies[0].Name)
	assert.Equal(suite.T(), resp.Token, cookies[0].Value)
	assert.True(suite.T(), cookies[0].HttpOnly)
}

func (suite *AuthHandlerTestSuite) TestRegisterEmailTaken() {
	suite.mockUserRepo.EXPECT().
		GetByEmail("taken@example.com").
		Return(&models.User{Email: "taken@example.com"}, nil)

	w := suite.http.MakeRequest(http.MethodPost, "/api/auth/register", auth.RegisterRequest{
		Username: "newuser",
		Email:    "taken@example.com",
		Password: "password123",
	})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusConflict, "already exists")
}

func (suite *AuthHandlerTestSuite) TestRegisterInvalidInput() {
	w := suite.http.MakeRequest(http.MethodPost, "/api/auth/register", auth.RegisterRequest{
		Username: "newuser",
		Email:    "not-an-email",
		Password: "password123",
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *AuthHandlerTestSuite) TestLogin() {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	suite.NoError(err)

	user := &models.User{
		Username:     "existing",
		Email:        "existing@example.com",
		PasswordHash: string(hash),
	}
	user.ID = uuid.New()

	suite.mockUserRepo.EXPECT().
		GetByEmail(user.Email).
		Return(user, nil)

	w := suite.http.MakeRequest(http.MethodPost, "/api/auth/login", auth.LoginRequest{
		Email:    user.Email,
		Password: "password123",
	})

	var resp auth.AuthResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &resp)
	assert.NotEmpty(suite.T(), resp.Token)
	assert.Equal(suite.T(), user.ID, resp.User.ID)
}

func (suite *AuthHandlerTestSuite) TestLoginInvalidCredentials() {
	suite.mockUserRepo.EXPECT().
		GetByEmail("nobody@example.com").
		Return(nil, gorm.ErrRecordNotFound)

	w := suite.http.MakeRequest(http.MethodPost, "/api/auth/login", auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *AuthHandlerTestSuite) TestMe() {
	user := &models.User{Username: "whoami", Email: "whoami@example.com"}
	user.ID = uuid.New()

	token, err := suite.authService.GenerateJWT(user)
	suite.NoError(err)

	w := suite.http.MakeRequestWithHeaders(http.MethodGet, "/api/auth/me", nil, map[string]string{
		"Authorization": "Bearer " + token,
	})

	var resp auth.UserResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &resp)
	assert.Equal(suite.T(), user.ID, resp.ID)
	assert.Equal(suite.T(), "whoami", resp.Username)
	assert.Equal(suite.T(), "whoami@example.com", resp.Email)
}

func (suite *AuthHandlerTestSuite) TestMeUnauthenticated() {
	w := suite.http.MakeRequest(http.MethodGet, "/api/auth/me", nil)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *AuthHandlerTestSuite) TestLogout() {
	w := suite.http.MakeRequest(http.MethodPost, "/api/auth/logout", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	// The cookie is cleared
	cookies := w.Result().Cookies()
	assert.NotEmpty(suite.T(), cookies)
	assert.Equal(suite.T(), "token", cookies[0].Name)
	assert.Empty(suite.T(), cookies[0].Value)
	assert.Negative(suite.T(), cookies[0].MaxAge)
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
