package repository

import (
	"context"
	"errors"

	"yatube/internal/models"

	"gorm.io/gorm"
)

// FollowRepository defines the interface for follow edge operations.
type FollowRepository interface {
	// Create stores the edge if absent. Creating an existing edge is a
	// no-op (get-or-create), never a duplicate.
	Create(ctx context.Context, userID, authorID uint) error
	Delete(ctx context.Context, userID, authorID uint) error
	Exists(ctx context.Context, userID, authorID uint) (bool, error)
	CountFollowers(ctx context.Context, authorID uint) (int64, error)
	CountFollowing(ctx context.Context, userID uint) (int64, error)
}

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a new follow repository
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Create(ctx context.Context, userID, authorID uint) error {
	follow := models.Follow{UserID: userID, AuthorID: authorID}
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		FirstOrCreate(&follow).Error
	if err != nil {
		// A concurrent create may still race past FirstOrCreate; the unique
		// index turns that into a duplicate-key error we can treat as done.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *followRepository) Delete(ctx context.Context, userID, authorID uint) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&models.Follow{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *followRepository) Exists(ctx context.Context, userID, authorID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *followRepository) CountFollowers(ctx context.Context, authorID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("author_id = ?", authorID).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *followRepository) CountFollowing(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
