package server

import (
	"github.com/gofiber/fiber/v2"
)

// Follow handles POST /profile/:username/follow/. Following an author lands
// the caller on their followed-authors feed. A self-follow is silently
// ignored and redirects back to the profile; repeating a follow is a no-op.
func (s *Server) Follow(c *fiber.Ctx) error {
	author, err := s.userRepo.GetByUsername(c.Context(), c.Params("username"))
	if err != nil {
		return respondAppError(c, err)
	}

	followed, err := s.followService.Follow(c.Context(), currentUserID(c), author.ID)
	if err != nil {
		return respondAppError(c, err)
	}
	if !followed {
		return c.Redirect("/profile/"+author.Username+"/", fiber.StatusFound)
	}

	return c.Redirect("/follow/", fiber.StatusFound)
}

// Unfollow handles POST /profile/:username/unfollow/. Removing an edge that
// does not exist is a 404.
func (s *Server) Unfollow(c *fiber.Ctx) error {
	author, err := s.userRepo.GetByUsername(c.Context(), c.Params("username"))
	if err != nil {
		return respondAppError(c, err)
	}

	if err := s.followService.Unfollow(c.Context(), currentUserID(c), author.ID); err != nil {
		return respondAppError(c, err)
	}

	return c.Redirect("/profile/"+author.Username+"/", fiber.StatusFound)
}
