package server

import (
	"errors"
	"strings"

	"quill/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid ID"))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// currentUserID returns the authenticated user ID set by AuthRequired.
func currentUserID(c *fiber.Ctx) uint {
	return c.Locals("userID").(uint)
}

// optionalUserID returns the user ID set by OptionalAuth, if any.
func optionalUserID(c *fiber.Ctx) (uint, bool) {
	userID, ok := c.Locals("userID").(uint)
	return userID, ok
}

// errorStatus maps an application error to its HTTP status.
func errorStatus(err error) int {
	switch {
	case models.IsNotFound(err):
		return fiber.StatusNotFound
	case models.IsValidation(err):
		return fiber.StatusBadRequest
	case models.IsUnauthorized(err):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// respondAppError writes the JSON error response for a service error.
func respondAppError(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, errorStatus(err), err)
}

// respondFormErrors renders a failed form submission. Form endpoints answer
// with 200 and a field-keyed error map; the client re-renders the form with
// the messages inline rather than following a redirect.
func respondFormErrors(c *fiber.Ctx, err error) error {
	msg := err.Error()
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		msg = appErr.Message
	}

	field := "text"
	if strings.Contains(strings.ToLower(msg), "group") {
		field = "group"
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"errors": fiber.Map{field: msg},
	})
}
