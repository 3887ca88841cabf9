package repository

import (
	"context"
	"errors"
	"fmt"

	"soundcheck/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttendanceRepository 出席记录数据访问接口
type AttendanceRepository interface {
	Set(ctx context.Context, userID, eventID string, status model.AttendanceStatus) error
	Delete(ctx context.Context, userID, eventID string) error
	Get(ctx context.Context, userID, eventID string) (*model.EventAttendance, error)
	ListGoingByEventIDs(ctx context.Context, eventIDs []string) ([]model.EventAttendance, error)
	ListGoingByUser(ctx context.Context, userID string) ([]model.EventAttendance, error)
}

// gormAttendanceRepository GORM 实现
type gormAttendanceRepository struct {
	db *gorm.DB
}

// NewGormAttendanceRepository 创建 GORM 出席仓库
func NewGormAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &gormAttendanceRepository{db: db}
}

// Set 写入或更新出席状态，(user, event) 唯一
func (r *gormAttendanceRepository) Set(ctx context.Context, userID, eventID string, status model.AttendanceStatus) error {
	existing, err := r.Get(ctx, userID, eventID)
	if err != nil {
		return err
	}

	if existing != nil {
		err := r.db.WithContext(ctx).
			Model(&model.EventAttendance{}).
			Where("id = ?", existing.ID).
			Update("status", status).Error
		if err != nil {
			return fmt.Errorf("failed to update attendance: %w", err)
		}
		return nil
	}

	record := &model.EventAttendance{
		ID:      uuid.NewString(),
		UserID:  userID,
		EventID: eventID,
		Status:  status,
	}
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create attendance: %w", err)
	}
	return nil
}

// Delete 删除出席记录
func (r *gormAttendanceRepository) Delete(ctx context.Context, userID, eventID string) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		Delete(&model.EventAttendance{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	return nil
}

// Get 查询单条出席记录，不存在返回 nil
func (r *gormAttendanceRepository) Get(ctx context.Context, userID, eventID string) (*model.EventAttendance, error) {
	var record model.EventAttendance
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}
	return &record, nil
}

// ListGoingByEventIDs 查询一批活动的所有 going 记录，按创建时间排序
func (r *gormAttendanceRepository) ListGoingByEventIDs(ctx context.Context, eventIDs []string) ([]model.EventAttendance, error) {
	if len(eventIDs) == 0 {
		return nil, nil
	}

	var records []model.EventAttendance
	err := r.db.WithContext(ctx).
		Where("event_id IN ? AND status = ?", eventIDs, model.AttendanceGoing).
		Order("created_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list going attendance: %w", err)
	}
	return records, nil
}

// ListGoingByUser 查询某用户的所有 going 记录
func (r *gormAttendanceRepository) ListGoingByUser(ctx context.Context, userID string) ([]model.EventAttendance, error) {
	var records []model.EventAttendance
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, model.AttendanceGoing).
		Order("created_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list user attendance: %w", err)
	}
	return records, nil
}
