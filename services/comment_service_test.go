package services

import (
	"testing"

	"quill/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateComment(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "u1", "u1@x.com")
	post := createTestPost(t, db, user.ID, "Hello World!")
	svc := NewCommentService(db)

	comment, err := svc.CreateComment(user.ID, post.ID, &models.CreateCommentRequest{
		Content: "First!",
	})

	require.NoError(t, err)
	assert.Equal(t, "First!", comment.Content)
	assert.Equal(t, user.ID, comment.UserID)
	assert.Equal(t, post.ID, comment.PostID)
	assert.NotZero(t, comment.ID)
}

// The post id is deliberately not checked; see DESIGN.md.
func TestCreateComment_UncheckedPostID(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "u1", "u1@x.com")

	comment, err := NewCommentService(db).CreateComment(user.ID, 999, &models.CreateCommentRequest{
		Content: "Shouting into the void",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(999), comment.PostID)
}

func TestGetCommentsByPost_OldestFirst(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "u1", "u1@x.com")
	post := createTestPost(t, db, user.ID, "Hello World!")
	svc := NewCommentService(db)

	for _, content := range []string{"one", "two", "three"} {
		_, err := svc.CreateComment(user.ID, post.ID, &models.CreateCommentRequest{Content: content})
		require.NoError(t, err)
	}

	comments, err := svc.GetCommentsByPost(post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, "one", comments[0].Content)
	assert.Equal(t, "three", comments[2].Content)
}

func TestGetCommentsByPost_Empty(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "u1", "u1@x.com")
	post := createTestPost(t, db, user.ID, "Hello World!")

	comments, err := NewCommentService(db).GetCommentsByPost(post.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}
