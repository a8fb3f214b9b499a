package server

import (
	"time"

	"quill/internal/cache"
	"quill/internal/feed"
	"quill/internal/models"
	"quill/internal/observability"

	"github.com/gofiber/fiber/v2"
)

// Index handles GET /. The global feed is the hottest page, so rendered pages
// are served through the Redis cache with a short TTL. The response is not
// personalized, which is what makes whole-page caching safe here.
func (s *Server) Index(c *fiber.Ctx) error {
	rawPage := c.Query("page")
	key := cache.FeedIndexKey(rawPage)

	var page feed.Page
	if s.redis == nil {
		observability.FeedCacheLookups.WithLabelValues("bypass").Inc()
	} else {
		found, err := cache.GetJSON(c.Context(), key, &page)
		if err == nil && found {
			observability.FeedCacheLookups.WithLabelValues("hit").Inc()
			return c.JSON(fiber.Map{"page": page})
		}
		observability.FeedCacheLookups.WithLabelValues("miss").Inc()
	}

	posts, err := s.postRepo.ListAll(c.Context())
	if err != nil {
		return respondAppError(c, err)
	}
	page = feed.Paginate(posts, s.config.PageSize, rawPage)

	if s.redis != nil {
		ttl := time.Duration(s.config.IndexCacheTTLSeconds) * time.Second
		_ = cache.SetJSON(c.Context(), key, page, ttl)
	}

	return c.JSON(fiber.Map{"page": page})
}

// GroupFeed handles GET /group/:slug/
func (s *Server) GroupFeed(c *fiber.Ctx) error {
	group, err := s.groupRepo.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return respondAppError(c, err)
	}

	posts, err := s.postRepo.ListByGroup(c.Context(), group.ID)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"group": group,
		"page":  feed.Paginate(posts, s.config.PageSize, c.Query("page")),
	})
}

// ProfileFeed handles GET /profile/:username/. Authenticated callers also get
// a "following" flag for the viewed author.
func (s *Server) ProfileFeed(c *fiber.Ctx) error {
	author, err := s.userRepo.GetByUsername(c.Context(), c.Params("username"))
	if err != nil {
		return respondAppError(c, err)
	}

	posts, err := s.postRepo.ListByAuthor(c.Context(), author.ID)
	if err != nil {
		return respondAppError(c, err)
	}

	resp := fiber.Map{
		"author": author,
		"page":   feed.Paginate(posts, s.config.PageSize, c.Query("page")),
	}

	if viewerID, ok := optionalUserID(c); ok {
		following, err := s.followService.IsFollowing(c.Context(), viewerID, author.ID)
		if err != nil {
			return respondAppError(c, err)
		}
		resp["following"] = following
	}

	return c.JSON(resp)
}

// FollowFeed handles GET /follow/ — posts by every author the caller follows.
func (s *Server) FollowFeed(c *fiber.Ctx) error {
	posts, err := s.postRepo.ListFollowed(c.Context(), currentUserID(c))
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"page": feed.Paginate(posts, s.config.PageSize, c.Query("page")),
	})
}

// PostDetail handles GET /posts/:id/
func (s *Server) PostDetail(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.Context(), id)
	if err != nil {
		return respondAppError(c, err)
	}

	comments, err := s.commentService.ListComments(c.Context(), id)
	if err != nil {
		return respondAppError(c, err)
	}
	if comments == nil {
		comments = []*models.Comment{}
	}

	return c.JSON(fiber.Map{
		"post":     post,
		"comments": comments,
		"form":     fiber.Map{"text": ""},
	})
}
