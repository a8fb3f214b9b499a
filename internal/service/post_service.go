// Package service holds the mutation rules sitting between handlers and
// repositories: input validation, ownership checks and idempotence.
package service

import (
	"context"
	"strings"

	"quill/internal/cache"
	"quill/internal/models"
	"quill/internal/observability"
	"quill/internal/repository"
)

// PostService guards post creation and editing.
type PostService struct {
	postRepo  repository.PostRepository
	groupRepo repository.GroupRepository
}

// CreatePostInput carries a new post's fields. AuthorID is taken from the
// authenticated caller, never from the request body.
type CreatePostInput struct {
	AuthorID uint
	Text     string
	GroupID  *uint
	ImageURL string
}

// UpdatePostInput carries a full edit of an existing post's mutable fields.
type UpdatePostInput struct {
	EditorID uint
	PostID   uint
	Text     string
	GroupID  *uint
	ImageURL string
}

// NewPostService creates a new post service.
func NewPostService(postRepo repository.PostRepository, groupRepo repository.GroupRepository) *PostService {
	return &PostService{postRepo: postRepo, groupRepo: groupRepo}
}

// CreatePost validates and persists a new post, returning it with its
// relations loaded.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if strings.TrimSpace(in.Text) == "" {
		return nil, models.NewValidationError("Text is required")
	}
	if err := s.checkGroup(ctx, in.GroupID); err != nil {
		return nil, err
	}

	post := &models.Post{
		Text:     in.Text,
		AuthorID: in.AuthorID,
		GroupID:  in.GroupID,
		ImageURL: in.ImageURL,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	scope := "global"
	if in.GroupID != nil {
		scope = "group"
	}
	observability.PostsCreated.WithLabelValues(scope).Inc()

	// A new post changes what the cached global feed shows.
	cache.InvalidateFeedIndex(ctx)

	return s.postRepo.GetByID(ctx, post.ID)
}

// GetPost returns the post with its relations, or NotFound.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// UpdatePost replaces the mutable fields of a post. Only the author may
// edit; anyone else gets an UNAUTHORIZED error the handler turns into a
// silent redirect. Author and publication date never change.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	if post.AuthorID != in.EditorID {
		return nil, models.NewUnauthorizedError("Only the author can edit a post")
	}

	if strings.TrimSpace(in.Text) == "" {
		return nil, models.NewValidationError("Text is required")
	}
	if err := s.checkGroup(ctx, in.GroupID); err != nil {
		return nil, err
	}

	post.Text = in.Text
	post.GroupID = in.GroupID
	post.ImageURL = in.ImageURL
	post.Group = nil

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	cache.InvalidateFeedIndex(ctx)

	return s.postRepo.GetByID(ctx, post.ID)
}

// checkGroup verifies an optional group reference points at a real group.
// Form input chooses from known groups, so a miss is a validation error
// rather than a 404.
func (s *PostService) checkGroup(ctx context.Context, groupID *uint) error {
	if groupID == nil {
		return nil
	}
	if _, err := s.groupRepo.GetByID(ctx, *groupID); err != nil {
		if models.IsNotFound(err) {
			return models.NewValidationError("Unknown group")
		}
		return err
	}
	return nil
}
