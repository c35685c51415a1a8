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

func TestClearIndexCacheRequiresAdmin(t *testing.T) {
	env := setupTestEnv(t)
	token, _ := env.signup(t, "alice")

	resp := env.request(t, http.MethodPost, "/admin/cache/clear", token, nil, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = env.request(t, http.MethodPost, "/admin/cache/clear", "", nil, nil)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
}

func TestClearIndexCacheFreshensIndex(t *testing.T) {
	env := setupTestEnv(t)
	adminToken, admin := env.signup(t, "admin")
	require.NoError(t, env.db.Model(&models.User{}).
		Where("id = ?", admin.ID).Update("is_admin", true).Error)

	// Warm the cache with an empty index.
	var page pagination.Page[models.Post]
	resp := env.request(t, http.MethodGet, "/", "", nil, &page)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, page.Items)

	resp = env.request(t, http.MethodPost, "/create", adminToken, fiber.Map{"text": "breaking news"}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Still the stale cached page.
	resp = env.request(t, http.MethodGet, "/", "", nil, &page)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, page.Items)

	var cleared struct {
		Cleared bool `json:"cleared"`
	}
	resp = env.request(t, http.MethodPost, "/admin/cache/clear", adminToken, nil, &cleared)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, cleared.Cleared)

	resp = env.request(t, http.MethodGet, "/", "", nil, &page)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "breaking news", page.Items[0].Text)
}
