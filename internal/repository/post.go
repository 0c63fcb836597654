package repository

import (
	"context"

	"fotogram/internal/models"

	"gorm.io/gorm"
)

// commentsCountSelect computes CommentsCount at query time.
const commentsCountSelect = "posts.*, " +
	"(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id AND comments.deleted_at IS NULL) AS comments_count"

// PostRepository defines interface for post operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByImageLink(ctx context.Context, imageLink string) (*models.Post, error)
	ListByUserIDs(ctx context.Context, userIDs []uint) ([]*models.Post, error)
	ListAll(ctx context.Context) ([]*models.Post, error)
	UpdateLikes(ctx context.Context, postID uint, likes int) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// GetByImageLink looks a post up by its image URL. The image URL is the
// identity key the clients address posts by.
func (r *postRepository) GetByImageLink(ctx context.Context, imageLink string) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).
		Select(commentsCountSelect).
		Preload("User").
		Where("image_link = ?", imageLink).
		First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) ListByUserIDs(ctx context.Context, userIDs []uint) ([]*models.Post, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var posts []*models.Post
	err := r.db.WithContext(ctx).
		Select(commentsCountSelect).
		Preload("User").
		Where("user_id IN ?", userIDs).
		Order("created_at desc").
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) ListAll(ctx context.Context) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.WithContext(ctx).
		Select(commentsCountSelect).
		Preload("User").
		Order("created_at desc").
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) UpdateLikes(ctx context.Context, postID uint, likes int) error {
	return r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", postID).
		Update("likes", likes).Error
}
