package service

import (
	"context"

	"quill/internal/models"
)

// Function-field stubs so each test wires only the calls it expects.

type stubPostRepo struct {
	createFn       func(ctx context.Context, post *models.Post) error
	getByIDFn      func(ctx context.Context, id uint) (*models.Post, error)
	listAllFn      func(ctx context.Context) ([]*models.Post, error)
	listByGroupFn  func(ctx context.Context, groupID uint) ([]*models.Post, error)
	listByAuthorFn func(ctx context.Context, authorID uint) ([]*models.Post, error)
	listFollowedFn func(ctx context.Context, followerID uint) ([]*models.Post, error)
	updateFn       func(ctx context.Context, post *models.Post) error
}

func (s *stubPostRepo) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}

func (s *stubPostRepo) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubPostRepo) ListAll(ctx context.Context) ([]*models.Post, error) {
	return s.listAllFn(ctx)
}

func (s *stubPostRepo) ListByGroup(ctx context.Context, groupID uint) ([]*models.Post, error) {
	return s.listByGroupFn(ctx, groupID)
}

func (s *stubPostRepo) ListByAuthor(ctx context.Context, authorID uint) ([]*models.Post, error) {
	return s.listByAuthorFn(ctx, authorID)
}

func (s *stubPostRepo) ListFollowed(ctx context.Context, followerID uint) ([]*models.Post, error) {
	return s.listFollowedFn(ctx, followerID)
}

func (s *stubPostRepo) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}

type stubGroupRepo struct {
	createFn    func(ctx context.Context, group *models.Group) error
	getByIDFn   func(ctx context.Context, id uint) (*models.Group, error)
	getBySlugFn func(ctx context.Context, slug string) (*models.Group, error)
	listFn      func(ctx context.Context) ([]*models.Group, error)
}

func (s *stubGroupRepo) Create(ctx context.Context, group *models.Group) error {
	return s.createFn(ctx, group)
}

func (s *stubGroupRepo) GetByID(ctx context.Context, id uint) (*models.Group, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubGroupRepo) GetBySlug(ctx context.Context, slug string) (*models.Group, error) {
	return s.getBySlugFn(ctx, slug)
}

func (s *stubGroupRepo) List(ctx context.Context) ([]*models.Group, error) {
	return s.listFn(ctx)
}

type stubCommentRepo struct {
	createFn     func(ctx context.Context, comment *models.Comment) error
	listByPostFn func(ctx context.Context, postID uint) ([]*models.Comment, error)
}

func (s *stubCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}

func (s *stubCommentRepo) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}

type stubFollowRepo struct {
	createFn func(ctx context.Context, followerID, authorID uint) error
	deleteFn func(ctx context.Context, followerID, authorID uint) (bool, error)
	existsFn func(ctx context.Context, followerID, authorID uint) (bool, error)
}

func (s *stubFollowRepo) Create(ctx context.Context, followerID, authorID uint) error {
	return s.createFn(ctx, followerID, authorID)
}

func (s *stubFollowRepo) Delete(ctx context.Context, followerID, authorID uint) (bool, error) {
	return s.deleteFn(ctx, followerID, authorID)
}

func (s *stubFollowRepo) Exists(ctx context.Context, followerID, authorID uint) (bool, error) {
	return s.existsFn(ctx, followerID, authorID)
}
