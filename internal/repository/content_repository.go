package repository

import (
	"context"
	"errors"

	"github.com/beyondborder/backend/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repositories for the remaining content tables. They share the same CRUD
// shape as pages, so they live together.

type BreadcrumbRepository interface {
	Create(ctx context.Context, b *model.Breadcrumb) error
	Update(ctx context.Context, b *model.Breadcrumb) error
	Delete(ctx context.Context, id uint64) error
	FindByID(ctx context.Context, id uint64) (*model.Breadcrumb, error)
	List(ctx context.Context, pageSlug string) ([]model.Breadcrumb, error)
}

type breadcrumbRepository struct {
	db *gorm.DB
}

func NewBreadcrumbRepository(db *gorm.DB) BreadcrumbRepository {
	return &breadcrumbRepository{db: db}
}

func (r *breadcrumbRepository) Create(ctx context.Context, b *model.Breadcrumb) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *breadcrumbRepository) Update(ctx context.Context, b *model.Breadcrumb) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *breadcrumbRepository) Delete(ctx context.Context, id uint64) error {
	return deleteByID(ctx, r.db, &model.Breadcrumb{}, id)
}

func (r *breadcrumbRepository) FindByID(ctx context.Context, id uint64) (*model.Breadcrumb, error) {
	var b model.Breadcrumb
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *breadcrumbRepository) List(ctx context.Context, pageSlug string) ([]model.Breadcrumb, error) {
	var list []model.Breadcrumb
	q := r.db.WithContext(ctx).Order("id ASC")
	if pageSlug != "" {
		q = q.Where("page_slug = ?", pageSlug)
	}
	if err := q.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

type TestimonialRepository interface {
	Create(ctx context.Context, t *model.Testimonial) error
	Update(ctx context.Context, t *model.Testimonial) error
	Delete(ctx context.Context, id uint64) error
	FindByID(ctx context.Context, id uint64) (*model.Testimonial, error)
	List(ctx context.Context, publishedOnly bool) ([]model.Testimonial, error)
}

type testimonialRepository struct {
	db *gorm.DB
}

func NewTestimonialRepository(db *gorm.DB) TestimonialRepository {
	return &testimonialRepository{db: db}
}

func (r *testimonialRepository) Create(ctx context.Context, t *model.Testimonial) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *testimonialRepository) Update(ctx context.Context, t *model.Testimonial) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *testimonialRepository) Delete(ctx context.Context, id uint64) error {
	return deleteByID(ctx, r.db, &model.Testimonial{}, id)
}

func (r *testimonialRepository) FindByID(ctx context.Context, id uint64) (*model.Testimonial, error) {
	var t model.Testimonial
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *testimonialRepository) List(ctx context.Context, publishedOnly bool) ([]model.Testimonial, error) {
	var list []model.Testimonial
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if publishedOnly {
		q = q.Where("is_published = ?", true)
	}
	if err := q.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

type TeamMemberRepository interface {
	Create(ctx context.Context, m *model.TeamMember) error
	Update(ctx context.Context, m *model.TeamMember) error
	Delete(ctx context.Context, id uint64) error
	FindByID(ctx context.Context, id uint64) (*model.TeamMember, error)
	List(ctx context.Context) ([]model.TeamMember, error)
}

type teamMemberRepository struct {
	db *gorm.DB
}

func NewTeamMemberRepository(db *gorm.DB) TeamMemberRepository {
	return &teamMemberRepository{db: db}
}

func (r *teamMemberRepository) Create(ctx context.Context, m *model.TeamMember) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *teamMemberRepository) Update(ctx context.Context, m *model.TeamMember) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *teamMemberRepository) Delete(ctx context.Context, id uint64) error {
	return deleteByID(ctx, r.db, &model.TeamMember{}, id)
}

func (r *teamMemberRepository) FindByID(ctx context.Context, id uint64) (*model.TeamMember, error) {
	var m model.TeamMember
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *teamMemberRepository) List(ctx context.Context) ([]model.TeamMember, error) {
	var list []model.TeamMember
	if err := r.db.WithContext(ctx).Order("sort_order ASC, id ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

type WhyChooseUsRepository interface {
	Create(ctx context.Context, item *model.WhyChooseUsItem) error
	Update(ctx context.Context, item *model.WhyChooseUsItem) error
	Delete(ctx context.Context, id uint64) error
	FindByID(ctx context.Context, id uint64) (*model.WhyChooseUsItem, error)
	List(ctx context.Context) ([]model.WhyChooseUsItem, error)
}

type whyChooseUsRepository struct {
	db *gorm.DB
}

func NewWhyChooseUsRepository(db *gorm.DB) WhyChooseUsRepository {
	return &whyChooseUsRepository{db: db}
}

func (r *whyChooseUsRepository) Create(ctx context.Context, item *model.WhyChooseUsItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *whyChooseUsRepository) Update(ctx context.Context, item *model.WhyChooseUsItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *whyChooseUsRepository) Delete(ctx context.Context, id uint64) error {
	return deleteByID(ctx, r.db, &model.WhyChooseUsItem{}, id)
}

func (r *whyChooseUsRepository) FindByID(ctx context.Context, id uint64) (*model.WhyChooseUsItem, error) {
	var item model.WhyChooseUsItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *whyChooseUsRepository) List(ctx context.Context) ([]model.WhyChooseUsItem, error) {
	var list []model.WhyChooseUsItem
	if err := r.db.WithContext(ctx).Order("sort_order ASC, id ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

type AboutUsRepository interface {
	Get(ctx context.Context) (*model.AboutUs, error)
	Upsert(ctx context.Context, a *model.AboutUs) error
}

type aboutUsRepository struct {
	db *gorm.DB
}

func NewAboutUsRepository(db *gorm.DB) AboutUsRepository {
	return &aboutUsRepository{db: db}
}

func (r *aboutUsRepository) Get(ctx context.Context) (*model.AboutUs, error) {
	var a model.AboutUs
	if err := r.db.WithContext(ctx).First(&a, 1).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &model.AboutUs{ID: 1}, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *aboutUsRepository) Upsert(ctx context.Context, a *model.AboutUs) error {
	a.ID = 1
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(a).Error
}

func deleteByID(ctx context.Context, db *gorm.DB, m any, id uint64) error {
	tx := db.WithContext(ctx).Delete(m, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
