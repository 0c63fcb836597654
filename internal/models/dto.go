package models

// Wire shapes shared by the API handlers and the client gateway.

// FeedPost is a post as rendered in the home and explore feeds.
type FeedPost struct {
	Username      string `json:"username"`
	Email         string `json:"email"`
	ImageLink     string `json:"image_link"`
	Likes         int    `json:"likes"`
	Caption       string `json:"caption"`
	CommentsCount int    `json:"comments_count"`
}

// CommentView is a comment as rendered in the detail overlay.
type CommentView struct {
	Username string `json:"username"`
	Text     string `json:"text"`
}

// LikeRequest carries an optimistic like toggle. Likes is the count the
// client was displaying before the toggle; the server trusts it.
type LikeRequest struct {
	UserEmail string `json:"user_email"`
	ImageLink string `json:"image_url"`
	Likes     int    `json:"likes"`
	Operation string `json:"operation"` // "like" or "dislike"
}

// CommentRequest carries a new comment submission.
type CommentRequest struct {
	UserEmail string `json:"user_email"`
	ImageLink string `json:"image_url"`
	Text      string `json:"text"`
}

// UploadRequest carries a new post. The binary media is uploaded
// out-of-band; ImageLink is the resulting media reference.
type UploadRequest struct {
	UserEmail string `json:"user_email"`
	ImageLink string `json:"image_url"`
	Caption   string `json:"caption"`
}

// FollowRequest toggles a follower relationship.
type FollowRequest struct {
	TargetEmail   string `json:"target_email"`
	FollowerEmail string `json:"follower_email"`
	Operation     string `json:"operation"` // "follow" or "unfollow"
}

// UserProfile is the signed-in user's profile header data.
type UserProfile struct {
	Username         string `json:"username"`
	Name             string `json:"name"`
	FollowersCount   int64  `json:"followers_count"`
	FollowingCount   int64  `json:"following_count"`
	Bio              string `json:"bio,omitempty"`
	Link             string `json:"link,omitempty"`
	ProfileImageLink string `json:"profile_image_link,omitempty"`
}

// SearchUserResult is a row in the user search overlay.
type SearchUserResult struct {
	Username         string `json:"username"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	FollowersCount   int64  `json:"followers_count"`
	ProfileImageLink string `json:"profile_image_link,omitempty"`
}

// Ack is the opaque acknowledgement returned by mutation endpoints.
type Ack struct {
	Message string `json:"message"`
}
