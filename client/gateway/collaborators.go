package gateway

import (
	"context"
	"strings"

	"fotogram/client/session"
	"fotogram/internal/models"
)

// The calls below are single-shot request/response glue consumed by the
// account forms, the search overlay, and the creation overlay. They carry
// no client-side state.

type signupRequest struct {
	Username         string `json:"username"`
	Email            string `json:"email"`
	Name             string `json:"name"`
	Password         string `json:"password"`
	Bio              string `json:"bio,omitempty"`
	Link             string `json:"link,omitempty"`
	ProfileImageLink string `json:"profile_image_link,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// CreateUser registers a new account and returns a live session.
func (c *Client) CreateUser(ctx context.Context, username, email, name, password string) (session.Session, error) {
	req := signupRequest{Username: username, Email: email, Name: name, Password: password}

	var resp authResponse
	if err := c.post(ctx, "/api/auth/signup", req, &resp); err != nil {
		return session.Session{}, err
	}

	c.SetToken(resp.Token)
	return session.Session{
		Username: resp.User.Username,
		Email:    resp.User.Email,
		Token:    resp.Token,
	}, nil
}

// LoginUser authenticates and returns a live session.
func (c *Client) LoginUser(ctx context.Context, email, password string) (session.Session, error) {
	var resp authResponse
	if err := c.post(ctx, "/api/auth/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return session.Session{}, err
	}

	c.SetToken(resp.Token)
	return session.Session{
		Username: resp.User.Username,
		Email:    resp.User.Email,
		Token:    resp.Token,
	}, nil
}

// CurrentUser fetches the signed-in user's profile header, including live
// follower and following counts.
func (c *Client) CurrentUser(ctx context.Context) (models.UserProfile, error) {
	var profile models.UserProfile
	if err := c.get(ctx, "/api/users/me", &profile); err != nil {
		return models.UserProfile{}, err
	}
	return profile, nil
}

// SearchUsers fetches all users and filters client-side by substring match
// on username. An empty query returns everyone.
func (c *Client) SearchUsers(ctx context.Context, query string) ([]models.SearchUserResult, error) {
	var results []models.SearchUserResult
	if err := c.get(ctx, "/api/users/search", &results); err != nil {
		return nil, err
	}

	if query == "" {
		return results, nil
	}

	filtered := results[:0]
	needle := strings.ToLower(query)
	for _, r := range results {
		if strings.Contains(strings.ToLower(r.Username), needle) {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

// UploadPost registers a new post. The binary media has already been
// uploaded out-of-band; imageURL is its reference.
func (c *Client) UploadPost(ctx context.Context, userEmail, imageURL, caption string) error {
	var ack models.Ack
	return c.post(ctx, "/api/posts", models.UploadRequest{
		UserEmail: userEmail,
		ImageLink: imageURL,
		Caption:   caption,
	}, &ack)
}

// SetFollow toggles a follower relationship.
func (c *Client) SetFollow(ctx context.Context, targetEmail, followerEmail, operation string) error {
	var ack models.Ack
	return c.post(ctx, "/api/users/follow", models.FollowRequest{
		TargetEmail:   targetEmail,
		FollowerEmail: followerEmail,
		Operation:     operation,
	}, &ack)
}
