package server

import (
	"quill/internal/models"
	"quill/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AddComment handles POST /posts/:id/comment/. Success redirects back to the
// post detail page where the new comment appears.
func (s *Server) AddComment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	_, err = s.commentService.AddComment(c.Context(), service.AddCommentInput{
		PostID:   id,
		AuthorID: currentUserID(c),
		Text:     req.Text,
	})
	if err != nil {
		if models.IsValidation(err) {
			return respondFormErrors(c, err)
		}
		return respondAppError(c, err)
	}

	return c.Redirect(postDetailPath(id), fiber.StatusFound)
}
