package repository

import (
	"context"
	"testing"
	"time"

	"yatube/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepository_ListByPostID_CreationOrder(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "author")
	commenter := createTestUser(t, db, "commenter")
	post := &models.Post{Text: "hello", AuthorID: author.ID}
	require.NoError(t, db.Create(post).Error)

	base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	for i, text := range []string{"first", "second", "third"} {
		comment := &models.Comment{
			Text:      text,
			AuthorID:  commenter.ID,
			PostID:    post.ID,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.Create(ctx, comment))
	}

	comments, err := repo.ListByPostID(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, "first", comments[0].Text)
	assert.Equal(t, "third", comments[2].Text)
	assert.Equal(t, "commenter", comments[0].Author.Username)

	count, err := repo.CountByPostID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
