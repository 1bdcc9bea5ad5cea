package repository

import (
	"context"

	"github.com/beyondborder/backend/internal/model"
	"gorm.io/gorm"
)

// Repositories for the three public lead-capture tables. Writes come from
// the public forms, reads and deletes from the admin screens.

type ContactRepository interface {
	Create(ctx context.Context, c *model.Contact) error
	List(ctx context.Context, limit, offset int) ([]model.Contact, int64, error)
	Delete(ctx context.Context, id uint64) error
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, c *model.Contact) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *contactRepository) List(ctx context.Context, limit, offset int) ([]model.Contact, int64, error) {
	var (
		list  []model.Contact
		total int64
	)
	if err := r.db.WithContext(ctx).Model(&model.Contact{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *contactRepository) Delete(ctx context.Context, id uint64) error {
	return deleteByID(ctx, r.db, &model.Contact{}, id)
}

type ConsultantRequestRepository interface {
	Create(ctx context.Context, req *model.ConsultantRequest) error
	List(ctx context.Context, limit, offset int) ([]model.ConsultantRequest, int64, error)
	Delete(ctx context.Context, id uint64) error
}

type consultantRequestRepository struct {
	db *gorm.DB
}

func NewConsultantRequestRepository(db *gorm.DB) ConsultantRequestRepository {
	return &consultantRequestRepository{db: db}
}

func (r *consultantRequestRepository) Create(ctx context.Context, req *model.ConsultantRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *consultantRequestRepository) List(ctx context.Context, limit, offset int) ([]model.ConsultantRequest, int64, error) {
	var (
		list  []model.ConsultantRequest
		total int64
	)
	if err := r.db.WithContext(ctx).Model(&model.ConsultantRequest{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *consultantRequestRepository) Delete(ctx context.Context, id uint64) error {
	return deleteByID(ctx, r.db, &model.ConsultantRequest{}, id)
}

type CommunityMemberRepository interface {
	Create(ctx context.Context, m *model.CommunityMember) error
	List(ctx context.Context, limit, offset int) ([]model.CommunityMember, int64, error)
	Delete(ctx context.Context, id uint64) error
}

type communityMemberRepository struct {
	db *gorm.DB
}

func NewCommunityMemberRepository(db *gorm.DB) CommunityMemberRepository {
	return &communityMemberRepository{db: db}
}

func (r *communityMemberRepository) Create(ctx context.Context, m *model.CommunityMember) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *communityMemberRepository) List(ctx context.Context, limit, offset int) ([]model.CommunityMember, int64, error) {
	var (
		list  []model.CommunityMember
		total int64
	)
	if err := r.db.WithContext(ctx).Model(&model.CommunityMember{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *communityMemberRepository) Delete(ctx context.Context, id uint64) error {
	return deleteByID(ctx, r.db, &model.CommunityMember{}, id)
}
