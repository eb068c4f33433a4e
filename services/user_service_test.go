package services

import (
	"testing"

	"quill/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestCreateUser_HashesPassword(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "u1", "u1@x.com")

	assert.NotEqual(t, "testpassword", user.Password)
	assert.True(t, user.CheckPassword("testpassword"))
	assert.False(t, user.CheckPassword("wrongpassword"))
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	createTestUser(t, db, "u1", "u1@x.com")

	_, err := NewUserService(db).CreateUser(&models.CreateUserRequest{
		Username: "u2",
		Email:    "u1@x.com",
		Password: "testpassword",
	})

	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	createTestUser(t, db, "u1", "u1@x.com")

	_, err := NewUserService(db).CreateUser(&models.CreateUserRequest{
		Username: "u1",
		Email:    "u2@x.com",
		Password: "testpassword",
	})

	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestAuthenticate(t *testing.T) {
	db := setupTestDB(t)
	created := createTestUser(t, db, "u1", "u1@x.com")
	svc := NewUserService(db)

	user, ok := svc.Authenticate("u1@x.com", "testpassword")
	assert.True(t, ok)
	assert.Equal(t, created.ID, user.ID)

	_, ok = svc.Authenticate("u1@x.com", "wrongpassword")
	assert.False(t, ok)

	_, ok = svc.Authenticate("nobody@x.com", "testpassword")
	assert.False(t, ok)
}

func TestGetUserByID(t *testing.T) {
	db := setupTestDB(t)
	created := createTestUser(t, db, "u1", "u1@x.com")
	svc := NewUserService(db)

	user, err := svc.GetUserByID(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "u1", user.Username)

	_, err = svc.GetUserByID(999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
