package service

import (
	"testing"

	"github.com/aquispel/burnout-api/config"
	"github.com/aquispel/burnout-api/internal/apperror"
	"github.com/aquispel/burnout-api/internal/dto"
	"github.com/aquispel/burnout-api/internal/model"
	"github.com/aquispel/burnout-api/internal/repository"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB, expireMinutes int) AuthService {
	cfg := &config.Config{JWT: config.JWT{Secret: "test-secret", ExpireMinutes: expireMinutes}}
	return NewAuthService(repository.NewUserRepository(db), cfg)
}

func TestRegister_HashesPasswordAndDefaultsToUserRole(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db, 0)

	resp, err := svc.Register(dto.RegisterRequestDTO{
		Username: "ana",
		Email:    "ana@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "ana", resp.Username)
	assert.Equal(t, string(model.RoleUser), resp.Role)

	var stored model.User
	require.NoError(t, db.Where("username = ?", "ana").First(&stored).Error)
	assert.NotEqual(t, "correct horse", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("correct horse")))
	assert.True(t, stored.Active)
}

func TestRegister_DuplicateUsernameConflicts(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "ana")
	svc := newAuthService(db, 0)

	_, err := svc.Register(dto.RegisterRequestDTO{
		Username: "ana",
		Email:    "other@example.com",
		Password: "irrelevant",
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "ana")
	svc := newAuthService(db, 0)

	_, err := svc.Register(dto.RegisterRequestDTO{
		Username: "otra",
		Email:    "ana@example.com",
		Password: "irrelevant",
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
}

func TestLogin_IssuesVerifiableToken(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db, 60)

	_, err := svc.Register(dto.RegisterRequestDTO{
		Username: "ana",
		Email:    "ana@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	token, err := svc.Login(dto.LoginRequestDTO{Username: "ana", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", token.TokenType)
	require.NotNil(t, token.ExpiresIn)
	assert.Equal(t, 3600, *token.ExpiresIn)

	var claims Claims
	parsed, err := jwt.ParseWithClaims(token.AccessToken, &claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, "ana", claims.Subject)
	assert.Equal(t, string(model.RoleUser), claims.Role)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestLogin_NoExpiryWhenDisabled(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db, 0)

	_, err := svc.Register(dto.RegisterRequestDTO{
		Username: "ana",
		Email:    "ana@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	token, err := svc.Login(dto.LoginRequestDTO{Username: "ana", Password: "correct horse"})
	require.NoError(t, err)
	assert.Nil(t, token.ExpiresIn)
}

func TestLogin_WrongPasswordUnauthorized(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db, 0)

	_, err := svc.Register(dto.RegisterRequestDTO{
		Username: "ana",
		Email:    "ana@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	_, err = svc.Login(dto.LoginRequestDTO{Username: "ana", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))
}

func TestLogin_UnknownUserUnauthorized(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db, 0)

	_, err := svc.Login(dto.LoginRequestDTO{Username: "nobody", Password: "whatever"})
	require.Error(t, err)
	assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))
}

func TestLogin_InactiveAccountForbidden(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db, 0)

	_, err := svc.Register(dto.RegisterRequestDTO{
		Username: "ana",
		Email:    "ana@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	require.NoError(t, db.Model(&model.User{}).Where("username = ?", "ana").Update("active", false).Error)

	_, err = svc.Login(dto.LoginRequestDTO{Username: "ana", Password: "correct horse"})
	require.Error(t, err)
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))
}
