package service

import (
	"context"

	"yatube/internal/repository"
)

// FollowService maintains the directed follow graph. Both mutations act
// only on the caller's own outgoing edges; the handler supplies the
// authenticated user ID and nothing else.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// NewFollowService creates a new FollowService.
func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{followRepo: followRepo, userRepo: userRepo}
}

// Follow subscribes user to the author named by username. Following an
// already-followed author is a no-op, and so is following yourself; the
// original application silently ignored self-follow attempts and we keep
// that contract. Returns whether the edge exists afterwards.
func (s *FollowService) Follow(ctx context.Context, userID uint, username string) (bool, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if author.ID == userID {
		return false, nil
	}
	if err := s.followRepo.Create(ctx, userID, author.ID); err != nil {
		return false, err
	}
	return true, nil
}

// Unfollow removes the edge from user to the author named by username.
// Removing an absent edge is a no-op.
func (s *FollowService) Unfollow(ctx context.Context, userID uint, username string) (bool, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if author.ID == userID {
		return false, nil
	}
	if err := s.followRepo.Delete(ctx, userID, author.ID); err != nil {
		return false, err
	}
	return false, nil
}

// IsFollowing reports whether user follows author.
func (s *FollowService) IsFollowing(ctx context.Context, userID, authorID uint) (bool, error) {
	return s.followRepo.Exists(ctx, userID, authorID)
}

// FollowersCount returns how many users follow the author.
func (s *FollowService) FollowersCount(ctx context.Context, authorID uint) (int64, error) {
	return s.followRepo.CountFollowers(ctx, authorID)
}

// FollowingCount returns how many authors the user follows.
func (s *FollowService) FollowingCount(ctx context.Context, userID uint) (int64, error) {
	return s.followRepo.CountFollowing(ctx, userID)
}
