package server

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"quill/internal/cache"
	"quill/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedPosts creates n posts for the author with strictly increasing pub dates,
// so post n is the newest.
func seedPosts(t *testing.T, s *Server, authorID uint, n int) {
	t.Helper()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= n; i++ {
		post := &models.Post{
			Text:     fmt.Sprintf("post %d", i),
			AuthorID: authorID,
			PubDate:  base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, s.db.Create(post).Error)
	}
}

func pageOf(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	page, ok := body["page"].(map[string]any)
	require.True(t, ok, "response must carry a page object")
	return page
}

func TestIndex(t *testing.T) {
	s, app := setupTestServer(t, nil)
	alice, _ := createUser(t, s, "alice")
	seedPosts(t, s, alice.ID, 25)

	t.Run("first page is newest first", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		page := pageOf(t, decodeBody(t, resp))
		items := page["items"].([]any)
		require.Len(t, items, 10)
		assert.Equal(t, "post 25", items[0].(map[string]any)["text"])
		assert.Equal(t, "post 16", items[9].(map[string]any)["text"])
		assert.Equal(t, float64(3), page["total_pages"])
		assert.Equal(t, false, page["has_previous"])
		assert.Equal(t, true, page["has_next"])
	})

	t.Run("out-of-range page clamps to the last page", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/?page=99", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		page := pageOf(t, decodeBody(t, resp))
		assert.Equal(t, float64(3), page["number"])
		assert.Len(t, page["items"].([]any), 5)
	})

	t.Run("garbage page value resolves to the first page", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/?page=banana", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		page := pageOf(t, decodeBody(t, resp))
		assert.Equal(t, float64(1), page["number"])
	})
}

func TestIndexCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache.SetClient(client)
	t.Cleanup(func() { cache.SetClient(nil) })

	s, app := setupTestServer(t, client)
	alice, token := createUser(t, s, "alice")

	post := &models.Post{Text: "first", AuthorID: alice.ID}
	require.NoError(t, s.db.Create(post).Error)

	itemCount := func() int {
		resp := doJSON(t, app, http.MethodGet, "/", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		return len(pageOf(t, decodeBody(t, resp))["items"].([]any))
	}

	require.Equal(t, 1, itemCount())

	// A write that bypasses the service layer does not invalidate, so the
	// cached page keeps serving until the TTL runs out.
	require.NoError(t, s.db.Create(&models.Post{Text: "sneaky", AuthorID: alice.ID}).Error)
	assert.Equal(t, 1, itemCount(), "stale page served within TTL")

	mr.FastForward(21 * time.Second)
	assert.Equal(t, 2, itemCount(), "expired page is refreshed")

	// Creating through the handler invalidates immediately.
	resp := doJSON(t, app, http.MethodPost, "/create/", token, map[string]any{"text": "through the front door"})
	require.Equal(t, http.StatusFound, resp.StatusCode)
	_ = resp.Body.Close()
	assert.Equal(t, 3, itemCount(), "mutation drops the cached pages")
}

func TestGroupFeed(t *testing.T) {
	s, app := setupTestServer(t, nil)
	alice, _ := createUser(t, s, "alice")
	gophers := createGroup(t, s, "gophers")
	createGroup(t, s, "rustaceans")

	require.NoError(t, s.db.Create(&models.Post{Text: "in group", AuthorID: alice.ID, GroupID: &gophers.ID}).Error)
	require.NoError(t, s.db.Create(&models.Post{Text: "no group", AuthorID: alice.ID}).Error)

	t.Run("only the group's posts appear", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/group/gophers/", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "gophers", body["group"].(map[string]any)["slug"])
		items := pageOf(t, body)["items"].([]any)
		require.Len(t, items, 1)
		assert.Equal(t, "in group", items[0].(map[string]any)["text"])
	})

	t.Run("other group is empty but valid", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/group/rustaceans/", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Empty(t, pageOf(t, decodeBody(t, resp))["items"])
	})

	t.Run("unknown slug is a 404", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/group/nope/", "", nil)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestProfileFeed(t *testing.T) {
	s, app := setupTestServer(t, nil)
	bob, _ := createUser(t, s, "bob")
	alice, aliceToken := createUser(t, s, "alice")
	seedPosts(t, s, bob.ID, 2)

	t.Run("anonymous viewer gets no following flag", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/profile/bob/", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "bob", body["author"].(map[string]any)["username"])
		assert.Len(t, pageOf(t, body)["items"].([]any), 2)
		assert.NotContains(t, body, "following")
	})

	t.Run("authenticated viewer sees the following flag", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/profile/bob/", aliceToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, false, decodeBody(t, resp)["following"])

		require.NoError(t, s.db.Create(&models.Follow{UserID: alice.ID, AuthorID: bob.ID}).Error)

		resp = doJSON(t, app, http.MethodGet, "/profile/bob/", aliceToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, true, decodeBody(t, resp)["following"])
	})

	t.Run("unknown username is a 404", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/profile/ghost/", "", nil)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestFollowFeed(t *testing.T) {
	s, app := setupTestServer(t, nil)
	alice, aliceToken := createUser(t, s, "alice")
	bob, _ := createUser(t, s, "bob")
	carol, _ := createUser(t, s, "carol")

	require.NoError(t, s.db.Create(&models.Follow{UserID: alice.ID, AuthorID: bob.ID}).Error)
	require.NoError(t, s.db.Create(&models.Post{Text: "x", AuthorID: bob.ID}).Error)
	require.NoError(t, s.db.Create(&models.Post{Text: "noise", AuthorID: carol.ID}).Error)

	t.Run("shows exactly the followed authors' posts", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/follow/", aliceToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		items := pageOf(t, decodeBody(t, resp))["items"].([]any)
		require.Len(t, items, 1)
		assert.Equal(t, "x", items[0].(map[string]any)["text"])
	})

	t.Run("anonymous is redirected to login", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/follow/", "", nil)
		defer func() { _ = resp.Body.Close() }()

		require.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, "/auth/login/?next=/follow/", resp.Header.Get("Location"))
	})
}

func TestPostDetail(t *testing.T) {
	s, app := setupTestServer(t, nil)
	alice, _ := createUser(t, s, "alice")

	post := &models.Post{Text: "hello", AuthorID: alice.ID}
	require.NoError(t, s.db.Create(post).Error)

	t.Run("shows the post with empty comments", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, fmt.Sprintf("/posts/%d/", post.ID), "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		got := body["post"].(map[string]any)
		assert.Equal(t, "hello", got["text"])
		assert.Equal(t, "alice", got["author"].(map[string]any)["username"])
		assert.Empty(t, body["comments"])
	})

	t.Run("unknown id is a 404", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/posts/9999/", "", nil)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("non-numeric id is a 400", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/posts/abc/", "", nil)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
