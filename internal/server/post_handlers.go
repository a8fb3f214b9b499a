package server

import (
	"fmt"

	"quill/internal/models"
	"quill/internal/service"

	"github.com/gofiber/fiber/v2"
)

type postForm struct {
	Text     string `json:"text"`
	GroupID  *uint  `json:"group"`
	ImageURL string `json:"image_url"`
}

func postDetailPath(id uint) string {
	return fmt.Sprintf("/posts/%d/", id)
}

// NewPostForm handles GET /create/ — an empty form plus the group choices.
func (s *Server) NewPostForm(c *fiber.Ctx) error {
	groups, err := s.groupRepo.List(c.Context())
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"form":   postForm{},
		"groups": groups,
	})
}

// CreatePost handles POST /create/. On success the caller is redirected to
// their own profile; validation failures re-render the form.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req postForm
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		AuthorID: currentUserID(c),
		Text:     req.Text,
		GroupID:  req.GroupID,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		if models.IsValidation(err) {
			return respondFormErrors(c, err)
		}
		return respondAppError(c, err)
	}

	return c.Redirect("/profile/"+post.Author.Username+"/", fiber.StatusFound)
}

// EditPostForm handles GET /posts/:id/edit/ — the form pre-filled with the
// post's current values. A non-author is sent back to the post detail page
// without an error body, same as a failed edit submission.
func (s *Server) EditPostForm(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.Context(), id)
	if err != nil {
		return respondAppError(c, err)
	}

	if post.AuthorID != currentUserID(c) {
		return c.Redirect(postDetailPath(id), fiber.StatusFound)
	}

	groups, err := s.groupRepo.List(c.Context())
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"form": postForm{
			Text:     post.Text,
			GroupID:  post.GroupID,
			ImageURL: post.ImageURL,
		},
		"groups": groups,
	})
}

// UpdatePost handles POST /posts/:id/edit/. Only the author may edit; anyone
// else is redirected to the detail page with the post untouched.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req postForm
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	_, err = s.postService.UpdatePost(c.Context(), service.UpdatePostInput{
		EditorID: currentUserID(c),
		PostID:   id,
		Text:     req.Text,
		GroupID:  req.GroupID,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		switch {
		case models.IsUnauthorized(err):
			// Silent denial: the non-author lands on the post page.
			return c.Redirect(postDetailPath(id), fiber.StatusFound)
		case models.IsValidation(err):
			return respondFormErrors(c, err)
		default:
			return respondAppError(c, err)
		}
	}

	return c.Redirect(postDetailPath(id), fiber.StatusFound)
}
