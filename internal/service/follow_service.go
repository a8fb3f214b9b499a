package service

import (
	"context"

	"quill/internal/models"
	"quill/internal/observability"
	"quill/internal/repository"
)

// FollowService guards the follow graph: idempotent follow, existence-checked
// unfollow, suppressed self-follow.
type FollowService struct {
	followRepo repository.FollowRepository
}

// NewFollowService creates a new follow service.
func NewFollowService(followRepo repository.FollowRepository) *FollowService {
	return &FollowService{followRepo: followRepo}
}

// Follow creates the (follower, author) edge. The returned bool reports
// whether the edge applies: a self-follow is suppressed and returns false
// with no error, so callers can redirect without surfacing a failure.
// Following someone twice is a no-op.
func (s *FollowService) Follow(ctx context.Context, followerID, authorID uint) (bool, error) {
	if followerID == authorID {
		return false, nil
	}
	if err := s.followRepo.Create(ctx, followerID, authorID); err != nil {
		return false, err
	}
	observability.FollowEdgeChanges.WithLabelValues("follow").Inc()
	return true, nil
}

// Unfollow removes the edge; a missing edge is NotFound.
func (s *FollowService) Unfollow(ctx context.Context, followerID, authorID uint) error {
	deleted, err := s.followRepo.Delete(ctx, followerID, authorID)
	if err != nil {
		return err
	}
	if !deleted {
		return models.NewNotFoundError("Follow edge for author", authorID)
	}
	observability.FollowEdgeChanges.WithLabelValues("unfollow").Inc()
	return nil
}

// IsFollowing reports whether follower follows author.
func (s *FollowService) IsFollowing(ctx context.Context, followerID, authorID uint) (bool, error) {
	return s.followRepo.Exists(ctx, followerID, authorID)
}
