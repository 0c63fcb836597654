// Package service implements the application's business logic on top of the
// repository layer.
package service

import (
	"context"
	"errors"

	"fotogram/internal/models"
	"fotogram/internal/repository"

	"gorm.io/gorm"
)

// Like operations accepted by ApplyLike.
const (
	OpLike    = "like"
	OpDislike = "dislike"
)

type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

type UploadInput struct {
	UserEmail string
	ImageLink string
	Caption   string
}

// LikeInput carries an optimistic like toggle. PriorLikes is the count the
// client was displaying before the toggle; the server trusts it rather than
// recounting, so a "dislike" simply writes the prior count back.
type LikeInput struct {
	UserEmail  string
	ImageLink  string
	PriorLikes int
	Operation  string
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// HomeFeed returns the posts of every user in followingEmails, newest first.
func (s *PostService) HomeFeed(ctx context.Context, followingEmails []string) ([]models.FeedPost, error) {
	var userIDs []uint
	for _, email := range followingEmails {
		user, err := s.userRepo.GetByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, models.NewNotFoundError("user", email)
		}
		userIDs = append(userIDs, user.ID)
	}

	posts, err := s.postRepo.ListByUserIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	return toFeedPosts(posts), nil
}

// ExploreFeed returns all posts, newest first.
func (s *PostService) ExploreFeed(ctx context.Context) ([]models.FeedPost, error) {
	posts, err := s.postRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toFeedPosts(posts), nil
}

// Upload records a new post. The binary media has already been uploaded
// out-of-band; ImageLink is its reference.
func (s *PostService) Upload(ctx context.Context, in UploadInput) (*models.Post, error) {
	if in.ImageLink == "" {
		return nil, models.NewValidationError("Image URL is required")
	}

	user, err := s.userRepo.GetByEmail(ctx, in.UserEmail)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("user", in.UserEmail)
	}

	post := &models.Post{
		UserID:    user.ID,
		ImageLink: in.ImageLink,
		Caption:   in.Caption,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// ApplyLike applies an optimistic like toggle. On "like" the stored count
// becomes PriorLikes+1, on "dislike" it becomes PriorLikes. Returns the new
// count.
func (s *PostService) ApplyLike(ctx context.Context, in LikeInput) (int, error) {
	if in.Operation != OpLike && in.Operation != OpDislike {
		return 0, models.NewValidationError("Operation must be \"like\" or \"dislike\"")
	}

	user, err := s.userRepo.GetByEmail(ctx, in.UserEmail)
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, models.NewNotFoundError("user", in.UserEmail)
	}

	post, err := s.postRepo.GetByImageLink(ctx, in.ImageLink)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, models.NewNotFoundError("post", in.ImageLink)
	}
	if err != nil {
		return 0, err
	}

	newLikes := in.PriorLikes
	if in.Operation == OpLike {
		newLikes++
	}
	if newLikes < 0 {
		newLikes = 0
	}

	if err := s.postRepo.UpdateLikes(ctx, post.ID, newLikes); err != nil {
		return 0, err
	}
	return newLikes, nil
}

func toFeedPosts(posts []*models.Post) []models.FeedPost {
	feed := make([]models.FeedPost, 0, len(posts))
	for _, post := range posts {
		feed = append(feed, models.FeedPost{
			Username:      post.User.Username,
			Email:         post.User.Email,
			ImageLink:     post.ImageLink,
			Likes:         post.Likes,
			Caption:       post.Caption,
			CommentsCount: post.CommentsCount,
		})
	}
	return feed
}
