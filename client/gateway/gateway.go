// Package gateway is the sole path through which client views reach the
// backend. It wraps request construction and normalizes every outcome into
// the application error taxonomy; it holds no state of its own.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"fotogram/internal/models"
)

// Gateway exposes the backend calls the interaction subsystem needs. Each
// call is a single attempt: no retries, no internal timeouts, no
// cancellation beyond the caller's context.
type Gateway interface {
	FetchHomePosts(ctx context.Context, following []string) ([]models.FeedPost, error)
	FetchExplorePosts(ctx context.Context) ([]models.FeedPost, error)
	ToggleLike(ctx context.Context, req models.LikeRequest) error
	FetchComments(ctx context.Context, ownerEmail, imageURL string) ([]models.CommentView, error)
	PostComment(ctx context.Context, req models.CommentRequest) error
}

// Client is the HTTP implementation of Gateway, plus the collaborator calls
// (auth, search, upload, follow) the rest of the app uses as plain
// request/response glue.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithToken sets the bearer token attached to authenticated calls.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// New creates a gateway client for the backend at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken updates the bearer token after login.
func (c *Client) SetToken(token string) {
	c.token = token
}

// FetchHomePosts retrieves the posts of every followed user.
func (c *Client) FetchHomePosts(ctx context.Context, following []string) ([]models.FeedPost, error) {
	q := url.Values{}
	q.Set("following", strings.Join(following, ","))

	var posts []models.FeedPost
	if err := c.get(ctx, "/api/feed/home?"+q.Encode(), &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// FetchExplorePosts retrieves the global explore feed.
func (c *Client) FetchExplorePosts(ctx context.Context) ([]models.FeedPost, error) {
	var posts []models.FeedPost
	if err := c.get(ctx, "/api/feed/explore", &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// ToggleLike reports an optimistic like toggle. The caller has already
// applied the local state change; the acknowledgement body is discarded.
func (c *Client) ToggleLike(ctx context.Context, req models.LikeRequest) error {
	var ack models.Ack
	return c.post(ctx, "/api/posts/like", req, &ack)
}

// FetchComments retrieves the comment thread for the post addressed by
// (ownerEmail, imageURL).
func (c *Client) FetchComments(ctx context.Context, ownerEmail, imageURL string) ([]models.CommentView, error) {
	q := url.Values{}
	q.Set("owner", ownerEmail)
	q.Set("image_url", imageURL)

	var comments []models.CommentView
	if err := c.get(ctx, "/api/posts/comments?"+q.Encode(), &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// PostComment submits a new comment.
func (c *Client) PostComment(ctx context.Context, req models.CommentRequest) error {
	var ack models.Ack
	return c.post(ctx, "/api/posts/comments", req, &ack)
}

func (c *Client) get(ctx context.Context, path string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return models.NewNetworkError(err)
	}
	return c.do(req, dest)
}

func (c *Client) post(ctx context.Context, path string, body, dest any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return models.NewNetworkError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return models.NewNetworkError(err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, dest)
}

// do executes the request and normalizes the outcome: transport errors and
// non-2xx statuses become NETWORK_FAILURE, a body that does not decode into
// the expected shape becomes EMPTY_RESPONSE.
func (c *Client) do(req *http.Request, dest any) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.NewNetworkError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.NewNetworkError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr models.ErrorResponse
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error != "" {
			return models.NewNetworkError(fmt.Errorf("%s: %s", resp.Status, apiErr.Error))
		}
		return models.NewNetworkError(fmt.Errorf("unexpected status %s", resp.Status))
	}

	if dest == nil {
		return nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return models.NewEmptyResponseError("response body was not the expected shape")
	}
	return nil
}
