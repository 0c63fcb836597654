package service

import (
	"context"
	"errors"

	"fotogram/internal/models"
	"fotogram/internal/repository"

	"gorm.io/gorm"
)

// Follow operations accepted by SetFollow.
const (
	OpFollow   = "follow"
	OpUnfollow = "unfollow"
)

type UserService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
}

type FollowInput struct {
	TargetEmail   string
	FollowerEmail string
	Operation     string
}

func NewUserService(userRepo repository.UserRepository, followRepo repository.FollowRepository) *UserService {
	return &UserService{
		userRepo:   userRepo,
		followRepo: followRepo,
	}
}

// Search returns every user with their follower counts. The search overlay
// filters client-side by substring match on username.
func (s *UserService) Search(ctx context.Context) ([]models.SearchUserResult, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]models.SearchUserResult, 0, len(users))
	for _, user := range users {
		followers, err := s.followRepo.CountFollowers(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		results = append(results, models.SearchUserResult{
			Username:         user.Username,
			Name:             user.Name,
			Email:            user.Email,
			FollowersCount:   followers,
			ProfileImageLink: user.ProfileImageLink,
		})
	}
	return results, nil
}

// Profile returns the profile header for the given user, with live
// follower and following counts.
func (s *UserService) Profile(ctx context.Context, userID uint) (*models.UserProfile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("user", userID)
		}
		return nil, err
	}

	followers, err := s.followRepo.CountFollowers(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	following, err := s.followRepo.CountFollowing(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &models.UserProfile{
		Username:         user.Username,
		Name:             user.Name,
		FollowersCount:   followers,
		FollowingCount:   following,
		Bio:              user.Bio,
		Link:             user.Link,
		ProfileImageLink: user.ProfileImageLink,
	}, nil
}

// SetFollow creates or removes a follower relationship.
func (s *UserService) SetFollow(ctx context.Context, in FollowInput) error {
	if in.Operation != OpFollow && in.Operation != OpUnfollow {
		return models.NewValidationError("Operation must be \"follow\" or \"unfollow\"")
	}

	target, err := s.userRepo.GetByEmail(ctx, in.TargetEmail)
	if err != nil {
		return err
	}
	if target == nil {
		return models.NewNotFoundError("user", in.TargetEmail)
	}

	follower, err := s.userRepo.GetByEmail(ctx, in.FollowerEmail)
	if err != nil {
		return err
	}
	if follower == nil {
		return models.NewNotFoundError("user", in.FollowerEmail)
	}

	if in.Operation == OpFollow {
		return s.followRepo.Follow(ctx, follower.ID, target.ID)
	}
	return s.followRepo.Unfollow(ctx, follower.ID, target.ID)
}
