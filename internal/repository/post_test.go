package repository

import (
	"context"
	"testing"
	"time"

	"yatube/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRepoDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.Post{},
		&models.Comment{},
		&models.Follow{},
	)
	require.NoError(t, err)

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Email: username + "@example.com", Password: "pw"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestPostRepository_ListAll_NewestFirst(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	author := createTestUser(t, db, "author")

	base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	for i, offset := range []time.Duration{0, time.Hour, 2 * time.Hour} {
		post := &models.Post{
			Text:      "post " + string(rune('a'+i)),
			AuthorID:  author.ID,
			CreatedAt: base.Add(offset),
		}
		require.NoError(t, db.Create(post).Error)
	}

	posts, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "post c", posts[0].Text)
	assert.Equal(t, "post a", posts[2].Text)
	assert.Equal(t, "author", posts[0].Author.Username)
}

func TestPostRepository_ListAll_TiesBreakByID(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	author := createTestUser(t, db, "author")

	// Same creation instant: the later insert must still sort first.
	ts := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	first := &models.Post{Text: "first", AuthorID: author.ID, CreatedAt: ts}
	second := &models.Post{Text: "second", AuthorID: author.ID, CreatedAt: ts}
	require.NoError(t, db.Create(first).Error)
	require.NoError(t, db.Create(second).Error)

	posts, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "second", posts[0].Text)
	assert.Equal(t, "first", posts[1].Text)
}

func TestPostRepository_ListByGroupID(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	author := createTestUser(t, db, "author")

	group := &models.Group{Title: "Tech", Slug: "tech"}
	require.NoError(t, db.Create(group).Error)

	inGroup := &models.Post{Text: "grouped", AuthorID: author.ID, GroupID: &group.ID}
	loose := &models.Post{Text: "loose", AuthorID: author.ID}
	require.NoError(t, db.Create(inGroup).Error)
	require.NoError(t, db.Create(loose).Error)

	posts, err := repo.ListByGroupID(ctx, group.ID)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "grouped", posts[0].Text)
}

func TestPostRepository_Feed(t *testing.T) {
	db := setupRepoDB(t)
	postRepo := NewPostRepository(db)
	followRepo := NewFollowRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")

	require.NoError(t, db.Create(&models.Post{Text: "from alice", AuthorID: alice.ID}).Error)
	require.NoError(t, db.Create(&models.Post{Text: "from carol", AuthorID: carol.ID}).Error)
	require.NoError(t, db.Create(&models.Post{Text: "from bob", AuthorID: bob.ID}).Error)

	require.NoError(t, followRepo.Create(ctx, bob.ID, alice.ID))

	feed, err := postRepo.Feed(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "from alice", feed[0].Text)
	assert.Equal(t, "alice", feed[0].Author.Username)

	// Dropping the edge empties the feed again.
	require.NoError(t, followRepo.Delete(ctx, bob.ID, alice.ID))
	feed, err = postRepo.Feed(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, feed)
}

func TestPostRepository_GetByID_NotFound(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewPostRepository(db)

	post, err := repo.GetByID(context.Background(), 404)
	assert.Nil(t, post)
	assert.True(t, models.IsCode(err, "NOT_FOUND"))
}
