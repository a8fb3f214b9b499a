package server

import (
	"fmt"
	"net/http"
	"testing"

	"quill/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePostHandler(t *testing.T) {
	s, app := setupTestServer(t, nil)
	_, token := createUser(t, s, "alice")

	t.Run("anonymous is redirected to login with next", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/create/", "", map[string]any{"text": "hi"})
		defer func() { _ = resp.Body.Close() }()

		require.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, "/auth/login/?next=/create/", resp.Header.Get("Location"))

		var count int64
		require.NoError(t, s.db.Model(&models.Post{}).Count(&count).Error)
		assert.Zero(t, count, "no post may be created for an anonymous request")
	})

	t.Run("authenticated create redirects to own profile", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/create/", token, map[string]any{"text": "hello"})
		defer func() { _ = resp.Body.Close() }()

		require.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, "/profile/alice/", resp.Header.Get("Location"))

		var post models.Post
		require.NoError(t, s.db.First(&post).Error)
		assert.Equal(t, "hello", post.Text)
	})

	t.Run("empty text re-renders the form with errors", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/create/", token, map[string]any{"text": "   "})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		errs := body["errors"].(map[string]any)
		assert.Contains(t, errs, "text")
	})

	t.Run("unknown group is a form error", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/create/", token, map[string]any{
			"text":  "grouped",
			"group": 999,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		errs := body["errors"].(map[string]any)
		assert.Contains(t, errs, "group")
	})
}

func TestNewPostForm(t *testing.T) {
	s, app := setupTestServer(t, nil)
	_, token := createUser(t, s, "alice")
	createGroup(t, s, "gophers")

	resp := doJSON(t, app, http.MethodGet, "/create/", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	form := body["form"].(map[string]any)
	assert.Equal(t, "", form["text"])
	assert.Len(t, body["groups"].([]any), 1)
}

func TestUpdatePostHandler(t *testing.T) {
	s, app := setupTestServer(t, nil)
	bob, bobToken := createUser(t, s, "bob")
	_, carolToken := createUser(t, s, "carol")

	post := &models.Post{Text: "original", AuthorID: bob.ID}
	require.NoError(t, s.db.Create(post).Error)
	editPath := fmt.Sprintf("/posts/%d/edit/", post.ID)
	detailPath := fmt.Sprintf("/posts/%d/", post.ID)

	t.Run("author edits the post", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, editPath, bobToken, map[string]any{"text": "edited"})
		defer func() { _ = resp.Body.Close() }()

		require.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, detailPath, resp.Header.Get("Location"))

		var reloaded models.Post
		require.NoError(t, s.db.First(&reloaded, post.ID).Error)
		assert.Equal(t, "edited", reloaded.Text)
	})

	t.Run("non-author is redirected and the post is untouched", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, editPath, carolToken, map[string]any{"text": "hijacked"})
		defer func() { _ = resp.Body.Close() }()

		require.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, detailPath, resp.Header.Get("Location"))

		var reloaded models.Post
		require.NoError(t, s.db.First(&reloaded, post.ID).Error)
		assert.Equal(t, "edited", reloaded.Text)
	})

	t.Run("edit form is pre-filled for the author", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, editPath, bobToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		form := body["form"].(map[string]any)
		assert.Equal(t, "edited", form["text"])
	})

	t.Run("edit form redirects a non-author", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, editPath, carolToken, nil)
		defer func() { _ = resp.Body.Close() }()

		require.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, detailPath, resp.Header.Get("Location"))
	})

	t.Run("unknown post id", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/posts/9999/edit/", bobToken, map[string]any{"text": "x"})
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("anonymous edit is redirected to login", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, editPath, "", map[string]any{"text": "x"})
		defer func() { _ = resp.Body.Close() }()

		require.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, "/auth/login/?next="+editPath, resp.Header.Get("Location"))
	})
}
