// Package feed implements the home and explore post feeds.
//
// Each view instance owns a private optimistic like flag per rendered post.
// The flag is flipped synchronously on a like gesture and the backend call
// is fired without waiting for the result; the flag is never rolled back on
// failure. A detail overlay opened from a feed receives a snapshot, not a
// reference, so the two can legitimately disagree about the same post.
package feed

import (
	"context"
	"log/slog"
	"sync"

	"fotogram/client/bookmarks"
	"fotogram/client/overlay"
	"fotogram/client/session"
	"fotogram/internal/models"
)

// Kind selects which feed a view renders.
type Kind int

const (
	Home Kind = iota
	Explore
)

// Gateway is the narrow backend surface a feed view needs.
type Gateway interface {
	FetchHomePosts(ctx context.Context, following []string) ([]models.FeedPost, error)
	FetchExplorePosts(ctx context.Context) ([]models.FeedPost, error)
	ToggleLike(ctx context.Context, req models.LikeRequest) error
}

// interactionState is the per-post optimistic state owned by this view
// instance. The displayed count is always derived from it, never stored.
type interactionState struct {
	liked     bool
	baseLikes int
}

// View renders an ordered post list for one feed context.
type View struct {
	kind      Kind
	gw        Gateway
	sess      session.Session
	bookmarks *bookmarks.Registry // nil for the explore variant
	following []string
	log       *slog.Logger

	mu           sync.Mutex
	posts        []models.FeedPost
	interactions map[string]*interactionState // keyed by image URL
	loading      bool
	viewCtx      context.Context
	cancel       context.CancelFunc
	inflight     sync.WaitGroup
}

// NewHome creates the home feed view. The home variant owns bookmark
// toggling and fetches the posts of the given following list.
func NewHome(gw Gateway, sess session.Session, reg *bookmarks.Registry, following []string, log *slog.Logger) *View {
	return newView(Home, gw, sess, reg, following, log)
}

// NewExplore creates the explore feed view.
func NewExplore(gw Gateway, sess session.Session, log *slog.Logger) *View {
	return newView(Explore, gw, sess, nil, nil, log)
}

func newView(kind Kind, gw Gateway, sess session.Session, reg *bookmarks.Registry, following []string, log *slog.Logger) *View {
	if log == nil {
		log = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &View{
		kind:         kind,
		gw:           gw,
		sess:         sess,
		bookmarks:    reg,
		following:    following,
		log:          log,
		interactions: make(map[string]*interactionState),
		viewCtx:      ctx,
		cancel:       cancel,
	}
}

// Load issues exactly one fetch for the view's post list and replaces the
// rendered list with the result. On failure the list becomes empty rather
// than surfacing an error; the feed then renders "no posts available".
// All per-post interaction state is rebuilt from scratch.
func (v *View) Load(ctx context.Context) {
	v.mu.Lock()
	v.loading = true
	v.mu.Unlock()

	var posts []models.FeedPost
	var err error
	switch v.kind {
	case Home:
		posts, err = v.gw.FetchHomePosts(ctx, v.following)
	default:
		posts, err = v.gw.FetchExplorePosts(ctx)
	}
	if err != nil {
		v.log.Error("feed fetch failed, rendering empty list",
			slog.Int("kind", int(v.kind)),
			slog.String("error", err.Error()))
		posts = nil
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = false
	v.posts = posts
	v.interactions = make(map[string]*interactionState, len(posts))
	for _, p := range posts {
		v.interactions[p.ImageLink] = &interactionState{baseLikes: p.Likes}
	}
}

// SetFollowing replaces the home view's following list. The caller is
// expected to Load again; the list is the view's fetch dependency.
func (v *View) SetFollowing(following []string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.following = following
}

// Loading reports whether a fetch is pending.
func (v *View) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loading
}

// Posts returns a copy of the rendered post list.
func (v *View) Posts() []models.FeedPost {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]models.FeedPost, len(v.posts))
	copy(out, v.posts)
	return out
}

// Liked reports this view's own like flag for the given post.
func (v *View) Liked(imageURL string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	st, ok := v.interactions[imageURL]
	return ok && st.liked
}

// DisplayedLikes derives the shown count for the given post: the base count
// plus one while this view's flag is set. Never below the base count.
func (v *View) DisplayedLikes(imageURL string) int {
	v.mu.Lock()
	defer v.mu.Unlock()
	st, ok := v.interactions[imageURL]
	if !ok {
		return 0
	}
	if st.liked {
		return st.baseLikes + 1
	}
	return st.baseLikes
}

// ToggleLike flips the view's local like flag for the post synchronously,
// then reports the toggle to the backend without waiting for the result. A
// failed call is logged; the flag is not rolled back, so the client's view
// of the world stays optimistic until the next full re-fetch.
func (v *View) ToggleLike(imageURL string) {
	v.mu.Lock()
	st, ok := v.interactions[imageURL]
	if !ok {
		v.mu.Unlock()
		return
	}
	st.liked = !st.liked
	req := models.LikeRequest{
		UserEmail: v.sess.Email,
		ImageLink: imageURL,
		Likes:     st.baseLikes,
		Operation: opForFlag(st.liked),
	}
	ctx := v.viewCtx
	v.inflight.Add(1)
	v.mu.Unlock()

	go func() {
		defer v.inflight.Done()
		if err := v.gw.ToggleLike(ctx, req); err != nil {
			v.log.Error("like toggle failed, local state not rolled back",
				slog.String("image_url", imageURL),
				slog.String("operation", req.Operation),
				slog.String("error", err.Error()))
		}
	}()
}

// ToggleBookmark flips membership of the composite key in the bookmark
// registry and returns the new membership. Only the home variant owns
// bookmarks; on the explore variant this is a no-op.
func (v *View) ToggleBookmark(ownerUsername string, postIndex int) bool {
	if v.bookmarks == nil {
		return false
	}
	return v.bookmarks.Toggle(bookmarks.Key(ownerUsername, postIndex))
}

// Bookmarked reports bookmark membership for the composite key.
func (v *View) Bookmarked(ownerUsername string, postIndex int) bool {
	if v.bookmarks == nil {
		return false
	}
	return v.bookmarks.Contains(bookmarks.Key(ownerUsername, postIndex))
}

// OpenOverlay builds a point-in-time snapshot of the post for the detail
// overlay: the rendered fields plus this view's current derived like count.
// The handoff is one-way; the overlay never reads back from the feed.
func (v *View) OpenOverlay(imageURL string) (overlay.Target, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for _, p := range v.posts {
		if p.ImageLink != imageURL {
			continue
		}
		likes := p.Likes
		if st, ok := v.interactions[imageURL]; ok {
			likes = st.baseLikes
			if st.liked {
				likes++
			}
		}
		return overlay.Target{
			ID:          p.Username,
			Caption:     p.Caption,
			LikeCount:   likes,
			ImageURL:    p.ImageLink,
			AuthorEmail: p.Email,
		}, true
	}
	return overlay.Target{}, false
}

// Flush blocks until every fired interaction call has completed. Teardown
// and tests use it; the UI never does.
func (v *View) Flush() {
	v.inflight.Wait()
}

// Close cancels in-flight calls and discards all per-post state. A closed
// view renders nothing until Load is called again.
func (v *View) Close() {
	v.cancel()
	v.mu.Lock()
	defer v.mu.Unlock()
	v.posts = nil
	v.interactions = make(map[string]*interactionState)
}

func opForFlag(liked bool) string {
	if liked {
		return "like"
	}
	return "dislike"
}
