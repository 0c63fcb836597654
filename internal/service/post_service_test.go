package service

import (
	"context"
	"errors"
	"testing"

	"fotogram/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostService_ApplyLike(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("like writes prior plus one", func(t *testing.T) {
		t.Parallel()
		var written int
		postRepo := noopPostRepo()
		postRepo.updateLikesFn = func(_ context.Context, _ uint, likes int) error {
			written = likes
			return nil
		}
		svc := NewPostService(postRepo, noopUserRepo())

		got, err := svc.ApplyLike(ctx, LikeInput{
			UserEmail:  "a@example.com",
			ImageLink:  "https://img/1.jpg",
			PriorLikes: 7,
			Operation:  OpLike,
		})
		require.NoError(t, err)
		assert.Equal(t, 8, got)
		assert.Equal(t, 8, written)
	})

	t.Run("dislike writes prior back unchanged", func(t *testing.T) {
		t.Parallel()
		var written int
		postRepo := noopPostRepo()
		postRepo.updateLikesFn = func(_ context.Context, _ uint, likes int) error {
			written = likes
			return nil
		}
		svc := NewPostService(postRepo, noopUserRepo())

		got, err := svc.ApplyLike(ctx, LikeInput{
			UserEmail:  "a@example.com",
			ImageLink:  "https://img/1.jpg",
			PriorLikes: 7,
			Operation:  OpDislike,
		})
		require.NoError(t, err)
		assert.Equal(t, 7, got)
		assert.Equal(t, 7, written)
	})

	t.Run("negative prior clamps to zero", func(t *testing.T) {
		t.Parallel()
		svc := NewPostService(noopPostRepo(), noopUserRepo())

		got, err := svc.ApplyLike(ctx, LikeInput{
			UserEmail:  "a@example.com",
			ImageLink:  "https://img/1.jpg",
			PriorLikes: -3,
			Operation:  OpDislike,
		})
		require.NoError(t, err)
		assert.Equal(t, 0, got)
	})

	t.Run("unknown operation rejected", func(t *testing.T) {
		t.Parallel()
		svc := NewPostService(noopPostRepo(), noopUserRepo())
		_, err := svc.ApplyLike(ctx, LikeInput{
			UserEmail: "a@example.com",
			ImageLink: "https://img/1.jpg",
			Operation: "smash",
		})
		assertValidationError(t, err)
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()
		svc := NewPostService(noopPostRepo(), missingUserRepo())
		_, err := svc.ApplyLike(ctx, LikeInput{
			UserEmail: "nobody@example.com",
			ImageLink: "https://img/1.jpg",
			Operation: OpLike,
		})
		assertNotFoundError(t, err)
	})

	t.Run("unknown post", func(t *testing.T) {
		t.Parallel()
		svc := NewPostService(missingPostRepo(), noopUserRepo())
		_, err := svc.ApplyLike(ctx, LikeInput{
			UserEmail: "a@example.com",
			ImageLink: "https://img/missing.jpg",
			Operation: OpLike,
		})
		assertNotFoundError(t, err)
	})
}

func TestPostService_HomeFeed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("resolves emails and returns posts", func(t *testing.T) {
		t.Parallel()
		userRepo := noopUserRepo()
		userRepo.getByEmailFn = func(_ context.Context, email string) (*models.User, error) {
			if email == "a@example.com" {
				return &models.User{ID: 11, Username: "a", Email: email}, nil
			}
			return &models.User{ID: 22, Username: "b", Email: email}, nil
		}

		var requested []uint
		postRepo := noopPostRepo()
		postRepo.listByUserIDsFn = func(_ context.Context, userIDs []uint) ([]*models.Post, error) {
			requested = userIDs
			return []*models.Post{
				{
					ImageLink: "https://img/a.jpg",
					Caption:   "hello",
					Likes:     3,
					User:      models.User{Username: "a", Email: "a@example.com"},
				},
			}, nil
		}

		svc := NewPostService(postRepo, userRepo)
		feed, err := svc.HomeFeed(ctx, []string{"a@example.com", "b@example.com"})
		require.NoError(t, err)
		assert.Equal(t, []uint{11, 22}, requested)
		require.Len(t, feed, 1)
		assert.Equal(t, "a", feed[0].Username)
		assert.Equal(t, "https://img/a.jpg", feed[0].ImageLink)
		assert.Equal(t, 3, feed[0].Likes)
	})

	t.Run("unknown followed user", func(t *testing.T) {
		t.Parallel()
		svc := NewPostService(noopPostRepo(), missingUserRepo())
		_, err := svc.HomeFeed(ctx, []string{"nobody@example.com"})
		assertNotFoundError(t, err)
	})

	t.Run("empty following yields empty feed", func(t *testing.T) {
		t.Parallel()
		svc := NewPostService(noopPostRepo(), noopUserRepo())
		feed, err := svc.HomeFeed(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, feed)
	})
}

func TestPostService_Upload(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("missing image link rejected", func(t *testing.T) {
		t.Parallel()
		svc := NewPostService(noopPostRepo(), noopUserRepo())
		_, err := svc.Upload(ctx, UploadInput{UserEmail: "a@example.com"})
		assertValidationError(t, err)
	})

	t.Run("persists post for resolved user", func(t *testing.T) {
		t.Parallel()
		var created *models.Post
		postRepo := noopPostRepo()
		postRepo.createFn = func(_ context.Context, post *models.Post) error {
			created = post
			return nil
		}
		svc := NewPostService(postRepo, noopUserRepo())

		post, err := svc.Upload(ctx, UploadInput{
			UserEmail: "a@example.com",
			ImageLink: "https://img/new.jpg",
			Caption:   "fresh",
		})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, uint(1), post.UserID)
		assert.Equal(t, "https://img/new.jpg", post.ImageLink)
	})

	t.Run("repo error propagates", func(t *testing.T) {
		t.Parallel()
		repoErr := errors.New("disk full")
		postRepo := noopPostRepo()
		postRepo.createFn = func(_ context.Context, _ *models.Post) error { return repoErr }
		svc := NewPostService(postRepo, noopUserRepo())

		_, err := svc.Upload(ctx, UploadInput{UserEmail: "a@example.com", ImageLink: "https://img/x.jpg"})
		assert.ErrorIs(t, err, repoErr)
	})
}
