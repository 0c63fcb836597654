package service

import (
	"context"
	"errors"

	"fotogram/internal/models"
	"fotogram/internal/repository"

	"gorm.io/gorm"
)

const maxCommentLen = 2200

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
}

type AddCommentInput struct {
	UserEmail string
	ImageLink string
	Text      string
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

// ListForPost returns the comment thread for the post addressed by
// (ownerEmail, imageLink), oldest first.
func (s *CommentService) ListForPost(ctx context.Context, ownerEmail, imageLink string) ([]models.CommentView, error) {
	owner, err := s.userRepo.GetByEmail(ctx, ownerEmail)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, models.NewNotFoundError("user", ownerEmail)
	}

	post, err := s.postRepo.GetByImageLink(ctx, imageLink)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewNotFoundError("post", imageLink)
	}
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByPost(ctx, post.ID)
	if err != nil {
		return nil, err
	}

	views := make([]models.CommentView, 0, len(comments))
	for _, comment := range comments {
		views = append(views, models.CommentView{
			Username: comment.User.Username,
			Text:     comment.Text,
		})
	}
	return views, nil
}

// Add records a new comment on the post addressed by imageLink.
func (s *CommentService) Add(ctx context.Context, in AddCommentInput) (*models.Comment, error) {
	if in.Text == "" {
		return nil, models.NewValidationError("Comment text is required")
	}
	if len(in.Text) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 2200 characters)")
	}

	user, err := s.userRepo.GetByEmail(ctx, in.UserEmail)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("user", in.UserEmail)
	}

	post, err := s.postRepo.GetByImageLink(ctx, in.ImageLink)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewNotFoundError("post", in.ImageLink)
	}
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Text:   in.Text,
		UserID: user.ID,
		PostID: post.ID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, comment.ID)
}
