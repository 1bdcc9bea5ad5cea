package repository

import (
	"context"

	"github.com/beyondborder/backend/internal/model"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *model.Notification) error
	// Find returns a page of notifications newest-first plus the total the
	// filter matches. With unreadOnly set, read rows are excluded.
	Find(ctx context.Context, limit, offset int, unreadOnly bool) ([]model.Notification, int64, error)
	CountUnread(ctx context.Context) (int64, error)
	MarkAsRead(ctx context.Context, id uint64) error
	MarkAllAsRead(ctx context.Context) error
	Delete(ctx context.Context, id uint64) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, n *model.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *notificationRepository) Find(ctx context.Context, limit, offset int, unreadOnly bool) ([]model.Notification, int64, error) {
	var (
		list  []model.Notification
		total int64
	)
	q := r.db.WithContext(ctx).Model(&model.Notification{})
	if unreadOnly {
		q = q.Where("is_read = ?", false)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := q.
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *notificationRepository) CountUnread(ctx context.Context) (int64, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("is_read = ?", false).
		Count(&cnt).Error; err != nil {
		return 0, err
	}
	return cnt, nil
}

// MarkAsRead is idempotent for already-read rows but still reports unknown
// ids as gorm.ErrRecordNotFound so callers can answer 404.
func (r *notificationRepository) MarkAsRead(ctx context.Context, id uint64) error {
	var n model.Notification
	if err := r.db.WithContext(ctx).Select("id").First(&n, id).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("id = ?", id).
		Update("is_read", true).Error
}

func (r *notificationRepository) MarkAllAsRead(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("is_read = ?", false).
		Update("is_read", true).Error
}

func (r *notificationRepository) Delete(ctx context.Context, id uint64) error {
	tx := r.db.WithContext(ctx).Delete(&model.Notification{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
