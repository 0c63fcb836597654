package server

import (
	"strings"
	"time"

	"fotogram/internal/cache"
	"fotogram/internal/middleware"
	"fotogram/internal/models"

	"github.com/gofiber/fiber/v2"
)

const (
	exploreFeedCacheKey = "feed:explore"
	exploreFeedCacheTTL = 30 * time.Second
)

// HomeFeed handles GET /api/feed/home?following=a@x.com,b@y.com
func (s *Server) HomeFeed(c *fiber.Ctx) error {
	following := splitList(c.Query("following"))
	if len(following) == 0 {
		return c.JSON([]models.FeedPost{})
	}

	posts, err := s.postService.HomeFeed(c.Context(), following)
	if err != nil {
		return respondServiceError(c, err)
	}

	middleware.FeedFetches.WithLabelValues("home", "bypass").Inc()
	if posts == nil {
		posts = []models.FeedPost{}
	}
	return c.JSON(posts)
}

// ExploreFeed handles GET /api/feed/explore. The result is served through a
// short-lived Redis cache; uploads invalidate it.
func (s *Server) ExploreFeed(c *fiber.Ctx) error {
	var posts []models.FeedPost

	hit, err := cache.CacheAside(c.Context(), exploreFeedCacheKey, &posts, exploreFeedCacheTTL, func() error {
		var fetchErr error
		posts, fetchErr = s.postService.ExploreFeed(c.Context())
		return fetchErr
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	cacheLabel := "miss"
	if hit {
		cacheLabel = "hit"
	}
	middleware.FeedFetches.WithLabelValues("explore", cacheLabel).Inc()

	if posts == nil {
		posts = []models.FeedPost{}
	}
	return c.JSON(posts)
}

// splitList parses a comma-separated query value, dropping empty entries.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := parts[:0]
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
