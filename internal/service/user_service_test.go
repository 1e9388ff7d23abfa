package service

import (
	"testing"

	"github.com/aquispel/burnout-api/internal/apperror"
	"github.com/aquispel/burnout-api/internal/dto"
	"github.com/aquispel/burnout-api/internal/model"
	"github.com/aquispel/burnout-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newUserService(db *gorm.DB) UserService {
	return NewUserService(repository.NewUserRepository(db), repository.NewTestRepository(db))
}

func TestGetProfile_CountsTests(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "ana")
	seedTest(t, db, user.ID)
	done := seedTest(t, db, user.ID)
	require.NoError(t, db.Model(done).Update("status", model.TestStatusCompleted).Error)
	svc := newUserService(db)

	profile, err := svc.GetProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana", profile.Username)
	assert.EqualValues(t, 2, profile.TotalTests)
	assert.EqualValues(t, 1, profile.CompletedTests)
}

func TestUpdateProfile_TakenUsernameConflicts(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "ana")
	other := seedUser(t, db, "luis")
	svc := newUserService(db)

	taken := "ana"
	_, err := svc.UpdateProfile(other.ID, dto.UserUpdateDTO{Username: &taken})
	require.Error(t, err)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
}

func TestUpdateProfile_AppliesPartialUpdate(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "ana")
	svc := newUserService(db)

	name := "Ana"
	phone := "+51 999 888 777"
	updated, err := svc.UpdateProfile(user.ID, dto.UserUpdateDTO{Name: &name, Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "Ana", updated.Name)
	assert.Equal(t, "+51 999 888 777", updated.Phone)
	assert.Equal(t, "ana", updated.Username)
}

func TestChangePassword_VerifiesCurrentPassword(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "ana")
	hashed, err := bcrypt.GenerateFromPassword([]byte("old password"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, db.Model(user).Update("password", string(hashed)).Error)
	svc := newUserService(db)

	err = svc.ChangePassword(user.ID, dto.ChangePasswordDTO{
		CurrentPassword: "wrong",
		NewPassword:     "brand new pass",
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))

	require.NoError(t, svc.ChangePassword(user.ID, dto.ChangePasswordDTO{
		CurrentPassword: "old password",
		NewPassword:     "brand new pass",
	}))

	var stored model.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("brand new pass")))
}

func TestSetActive_TogglesAccount(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "ana")
	svc := newUserService(db)

	deactivated, err := svc.SetActive(user.ID, false)
	require.NoError(t, err)
	assert.False(t, deactivated.Active)

	reactivated, err := svc.SetActive(user.ID, true)
	require.NoError(t, err)
	assert.True(t, reactivated.Active)
}

func TestSetActive_UnknownUserNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)

	_, err := svc.SetActive(404, false)
	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}
