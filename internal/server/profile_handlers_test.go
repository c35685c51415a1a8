package server

import (
	"net/http"
	"testing"

	"yatube/internal/models"
	"yatube/internal/pagination"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileCountsAndFollowingFlag(t *testing.T) {
	env := setupTestEnv(t)
	aliceToken, _ := env.signup(t, "alice")
	bobToken, _ := env.signup(t, "bob")

	resp := env.request(t, http.MethodPost, "/create", aliceToken, fiber.Map{"text": "by alice"}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var profile struct {
		Author         models.User                   `json:"author"`
		PostsCount     int                           `json:"posts_count"`
		FollowersCount int64                         `json:"followers_count"`
		Following      bool                          `json:"following"`
		Page           pagination.Page[models.Post] `json:"page"`
	}

	// Anonymous view: counts but no following flag.
	resp = env.request(t, http.MethodGet, "/profile/alice", "", nil, &profile)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "alice", profile.Author.Username)
	assert.Equal(t, 1, profile.PostsCount)
	assert.Equal(t, int64(0), profile.FollowersCount)
	assert.False(t, profile.Following)
	require.Len(t, profile.Page.Items, 1)

	var result struct {
		Following bool `json:"following"`
	}
	resp = env.request(t, http.MethodPost, "/profile/alice/follow", bobToken, nil, &result)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, result.Following)

	resp = env.request(t, http.MethodGet, "/profile/alice", bobToken, nil, &profile)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, profile.Following)
	assert.Equal(t, int64(1), profile.FollowersCount)
}

func TestProfileUnknownUser(t *testing.T) {
	env := setupTestEnv(t)

	resp := env.request(t, http.MethodGet, "/profile/nobody", "", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSelfFollowIsIgnored(t *testing.T) {
	env := setupTestEnv(t)
	aliceToken, alice := env.signup(t, "alice")

	var result struct {
		Following bool `json:"following"`
	}
	resp := env.request(t, http.MethodPost, "/profile/alice/follow", aliceToken, nil, &result)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, result.Following)

	var count int64
	require.NoError(t, env.db.Model(&models.Follow{}).Where("user_id = ?", alice.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestFollowFeedFlow(t *testing.T) {
	env := setupTestEnv(t)
	aliceToken, _ := env.signup(t, "alice")
	bobToken, _ := env.signup(t, "bob")

	resp := env.request(t, http.MethodPost, "/create", aliceToken, fiber.Map{"text": "hello from alice"}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = env.request(t, http.MethodPost, "/create", bobToken, fiber.Map{"text": "bob talks to himself"}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Before following anyone the feed is empty; own posts never count.
	var feed pagination.Page[models.Post]
	resp = env.request(t, http.MethodGet, "/follow", bobToken, nil, &feed)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, feed.Items)

	resp = env.request(t, http.MethodPost, "/profile/alice/follow", bobToken, nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.request(t, http.MethodGet, "/follow", bobToken, nil, &feed)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, feed.Items, 1)
	assert.Equal(t, "hello from alice", feed.Items[0].Text)

	resp = env.request(t, http.MethodPost, "/profile/alice/unfollow", bobToken, nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.request(t, http.MethodGet, "/follow", bobToken, nil, &feed)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, feed.Items)
}
