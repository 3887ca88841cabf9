package repository

import (
	"context"
	"errors"
	"fmt"

	"soundcheck/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FollowRepository 关注关系数据访问接口
type FollowRepository interface {
	Create(ctx context.Context, followerID, followingID string) error
	Delete(ctx context.Context, followerID, followingID string) error
	Exists(ctx context.Context, followerID, followingID string) (bool, error)
	ListByFollower(ctx context.Context, followerID string) ([]model.Follow, error)
}

// gormFollowRepository GORM 实现
type gormFollowRepository struct {
	db *gorm.DB
}

// NewGormFollowRepository 创建 GORM 关注仓库
func NewGormFollowRepository(db *gorm.DB) FollowRepository {
	return &gormFollowRepository{db: db}
}

// Create 创建关注关系，重复关注视为成功
func (r *gormFollowRepository) Create(ctx context.Context, followerID, followingID string) error {
	if followerID == followingID {
		return fmt.Errorf("cannot follow self")
	}

	exists, err := r.Exists(ctx, followerID, followingID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	follow := &model.Follow{
		ID:          uuid.NewString(),
		FollowerID:  followerID,
		FollowingID: followingID,
	}
	if err := r.db.WithContext(ctx).Create(follow).Error; err != nil {
		return fmt.Errorf("failed to create follow: %w", err)
	}
	return nil
}

// Delete 取消关注
func (r *gormFollowRepository) Delete(ctx context.Context, followerID, followingID string) error {
	err := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&model.Follow{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete follow: %w", err)
	}
	return nil
}

// Exists 检查关注关系是否存在
func (r *gormFollowRepository) Exists(ctx context.Context, followerID, followingID string) (bool, error) {
	var follow model.Follow
	err := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		First(&follow).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check follow: %w", err)
	}
	return true, nil
}

// ListByFollower 获取某用户关注的所有关系
func (r *gormFollowRepository) ListByFollower(ctx context.Context, followerID string) ([]model.Follow, error) {
	var follows []model.Follow
	err := r.db.WithContext(ctx).
		Where("follower_id = ?", followerID).
		Order("created_at ASC").
		Find(&follows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list follows: %w", err)
	}
	return follows, nil
}
