package services

import (
	"fmt"
	"testing"

	"quill/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
	))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username, email string) *models.User {
	t.Helper()

	user, err := NewUserService(db).CreateUser(&models.CreateUserRequest{
		Username: username,
		Email:    email,
		Password: "testpassword",
	})
	require.NoError(t, err)
	return user
}

func createTestPost(t *testing.T, db *gorm.DB, authorID uint, title string) *models.Post {
	t.Helper()

	post, err := NewPostService(db).CreatePost(authorID, &models.CreatePostRequest{
		Title:   title,
		Content: "This is a test post.",
	})
	require.NoError(t, err)
	return post
}
