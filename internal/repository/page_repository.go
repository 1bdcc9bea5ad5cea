package repository

import (
	"context"

	"github.com/beyondborder/backend/internal/model"
	"gorm.io/gorm"
)

type PageRepository interface {
	Create(ctx context.Context, p *model.Page) error
	Update(ctx context.Context, p *model.Page) error
	Delete(ctx context.Context, id uint64) error
	FindByID(ctx context.Context, id uint64) (*model.Page, error)
	FindBySlug(ctx context.Context, slug string) (*model.Page, error)
	List(ctx context.Context, publishedOnly bool) ([]model.Page, error)
}

type pageRepository struct {
	db *gorm.DB
}

func NewPageRepository(db *gorm.DB) PageRepository {
	return &pageRepository{db: db}
}

func (r *pageRepository) Create(ctx context.Context, p *model.Page) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *pageRepository) Update(ctx context.Context, p *model.Page) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *pageRepository) Delete(ctx context.Context, id uint64) error {
	tx := r.db.WithContext(ctx).Delete(&model.Page{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *pageRepository) FindByID(ctx context.Context, id uint64) (*model.Page, error) {
	var p model.Page
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *pageRepository) FindBySlug(ctx context.Context, slug string) (*model.Page, error) {
	var p model.Page
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *pageRepository) List(ctx context.Context, publishedOnly bool) ([]model.Page, error) {
	var pages []model.Page
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if publishedOnly {
		q = q.Where("is_published = ?", true)
	}
	if err := q.Find(&pages).Error; err != nil {
		return nil, err
	}
	return pages, nil
}
