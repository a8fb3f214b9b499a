package service

import (
	"context"
	"testing"

	"quill/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollow(t *testing.T) {
	t.Parallel()

	t.Run("creates the edge", func(t *testing.T) {
		t.Parallel()

		var gotFollower, gotAuthor uint
		repo := &stubFollowRepo{
			createFn: func(_ context.Context, followerID, authorID uint) error {
				gotFollower, gotAuthor = followerID, authorID
				return nil
			},
		}

		svc := NewFollowService(repo)
		followed, err := svc.Follow(context.Background(), 1, 2)
		require.NoError(t, err)
		assert.True(t, followed)
		assert.Equal(t, uint(1), gotFollower)
		assert.Equal(t, uint(2), gotAuthor)
	})

	t.Run("self-follow is suppressed", func(t *testing.T) {
		t.Parallel()

		repo := &stubFollowRepo{
			createFn: func(_ context.Context, followerID, authorID uint) error {
				t.Fatal("repo must not be called for a self-follow")
				return nil
			},
		}

		svc := NewFollowService(repo)
		followed, err := svc.Follow(context.Background(), 4, 4)
		require.NoError(t, err)
		assert.False(t, followed)
	})
}

func TestUnfollow(t *testing.T) {
	t.Parallel()

	t.Run("removes an existing edge", func(t *testing.T) {
		t.Parallel()

		repo := &stubFollowRepo{
			deleteFn: func(_ context.Context, followerID, authorID uint) (bool, error) {
				return true, nil
			},
		}

		svc := NewFollowService(repo)
		require.NoError(t, svc.Unfollow(context.Background(), 1, 2))
	})

	t.Run("missing edge is NotFound", func(t *testing.T) {
		t.Parallel()

		repo := &stubFollowRepo{
			deleteFn: func(_ context.Context, followerID, authorID uint) (bool, error) {
				return false, nil
			},
		}

		svc := NewFollowService(repo)
		err := svc.Unfollow(context.Background(), 1, 2)
		require.Error(t, err)
		assert.True(t, models.IsNotFound(err))
	})
}
