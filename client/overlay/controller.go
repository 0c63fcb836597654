// Package overlay implements the shared post-detail modal.
//
// The controller is seeded with a point-in-time snapshot of the triggering
// post and never reads back from the feed that opened it. Its like flag is
// its own: the same post may simultaneously carry a different flag in the
// originating feed, and the two are never reconciled.
package overlay

import (
	"context"
	"log/slog"
	"sync"

	"fotogram/client/session"
	"fotogram/internal/models"
)

// Gateway is the narrow backend surface the overlay needs.
type Gateway interface {
	ToggleLike(ctx context.Context, req models.LikeRequest) error
	FetchComments(ctx context.Context, ownerEmail, imageURL string) ([]models.CommentView, error)
	PostComment(ctx context.Context, req models.CommentRequest) error
}

// Target is a copied-by-value capture of the triggering post at click time,
// not a live reference. LikeCount is the opening view's displayed count at
// that instant and seeds the overlay's own derived count.
type Target struct {
	ID          string // post author's username
	Caption     string
	LikeCount   int
	ImageURL    string
	AuthorEmail string
}

// Controller presents full detail and the comment thread for exactly one
// post at a time.
type Controller struct {
	gw   Gateway
	sess session.Session
	log  *slog.Logger

	mu       sync.Mutex
	target   *Target
	comments []models.CommentView
	liked    bool
	openCtx  context.Context
	cancel   context.CancelFunc
	inflight sync.WaitGroup
}

// NewController creates an overlay controller for the given session.
func NewController(gw Gateway, sess session.Session, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.Default()
	}
	return &Controller{gw: gw, sess: sess, log: log}
}

// Open seeds the overlay with the snapshot and fetches the post's comment
// thread, replacing any previous thread wholesale. A fetch failure leaves
// the overlay open over an empty thread; nothing is surfaced to the user.
func (c *Controller) Open(ctx context.Context, target Target) {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	c.openCtx = ctx
	c.cancel = cancel
	c.target = &target
	c.liked = false
	c.comments = nil
	c.mu.Unlock()

	comments, err := c.gw.FetchComments(ctx, target.AuthorEmail, target.ImageURL)
	if err != nil {
		c.log.Error("overlay comment fetch failed",
			slog.String("image_url", target.ImageURL),
			slog.String("error", err.Error()))
		comments = nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// The overlay may have been closed or reopened while fetching.
	if c.target == nil || c.target.ImageURL != target.ImageURL {
		return
	}
	c.comments = comments
}

// Visible reports whether a snapshot is active.
func (c *Controller) Visible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target != nil
}

// Target returns the active snapshot, if any.
func (c *Controller) Target() (Target, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.target == nil {
		return Target{}, false
	}
	return *c.target, true
}

// Comments returns a copy of the current comment thread.
func (c *Controller) Comments() []models.CommentView {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.CommentView, len(c.comments))
	copy(out, c.comments)
	return out
}

// Liked reports the overlay's own like flag.
func (c *Controller) Liked() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.liked
}

// DisplayedLikes derives the shown count from the snapshot's base count and
// the overlay's own flag. It is never stored.
func (c *Controller) DisplayedLikes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.target == nil {
		return 0
	}
	if c.liked {
		return c.target.LikeCount + 1
	}
	return c.target.LikeCount
}

// ToggleLike flips the overlay's like flag immediately and reports the
// toggle to the backend without waiting for the result. A failed call is
// logged; the flag is not rolled back.
func (c *Controller) ToggleLike() {
	c.mu.Lock()
	if c.target == nil {
		c.mu.Unlock()
		return
	}
	c.liked = !c.liked
	operation := models.LikeRequest{
		UserEmail: c.sess.Email,
		ImageLink: c.target.ImageURL,
		Likes:     c.target.LikeCount,
		Operation: opForFlag(c.liked),
	}
	ctx := c.openCtx
	if ctx == nil {
		ctx = context.Background()
	}
	c.inflight.Add(1)
	c.mu.Unlock()

	go func() {
		defer c.inflight.Done()
		if err := c.gw.ToggleLike(ctx, operation); err != nil {
			c.log.Error("like toggle failed, local state not rolled back",
				slog.String("image_url", operation.ImageLink),
				slog.String("operation", operation.Operation),
				slog.String("error", err.Error()))
		}
	}()
}

// SubmitComment validates and submits a new comment. On success the comment
// is appended locally right away, without a corroborating fetch. On failure
// the error is logged and the thread is left unchanged.
func (c *Controller) SubmitComment(ctx context.Context, text string) error {
	if text == "" {
		return models.NewValidationError("Comment text is required")
	}

	c.mu.Lock()
	if c.target == nil {
		c.mu.Unlock()
		return models.NewValidationError("No post is open")
	}
	req := models.CommentRequest{
		UserEmail: c.sess.Email,
		ImageLink: c.target.ImageURL,
		Text:      text,
	}
	c.mu.Unlock()

	if err := c.gw.PostComment(ctx, req); err != nil {
		c.log.Error("comment submission failed",
			slog.String("image_url", req.ImageLink),
			slog.String("error", err.Error()))
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.target == nil || c.target.ImageURL != req.ImageLink {
		return nil
	}
	c.comments = append(c.comments, models.CommentView{
		Username: c.sess.Username,
		Text:     text,
	})
	return nil
}

// Close clears the snapshot and discards all overlay-local state. Reopening
// re-fetches from scratch. In-flight completions are cancelled and their
// effects abandoned.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.target = nil
	c.comments = nil
	c.liked = false
	c.openCtx = nil
	c.mu.Unlock()
}

// Flush blocks until every fired interaction call has completed. Teardown
// and tests use it; the UI never does.
func (c *Controller) Flush() {
	c.inflight.Wait()
}

func opForFlag(liked bool) string {
	if liked {
		return "like"
	}
	return "dislike"
}
