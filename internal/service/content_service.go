package service

import (
	"context"
	"errors"
	"strings"

	"github.com/beyondborder/backend/internal/model"
	"github.com/beyondborder/backend/internal/repository"
	"gorm.io/gorm"
)

// Services for the remaining content surfaces. All follow the same
// validate-persist shape as pages.

type BreadcrumbInput struct {
	PageSlug string
	Title    string
	ImageURL *string
}

type BreadcrumbService interface {
	Create(ctx context.Context, in BreadcrumbInput) (*model.Breadcrumb, error)
	Update(ctx context.Context, id uint64, in BreadcrumbInput) (*model.Breadcrumb, error)
	Delete(ctx context.Context, id uint64) error
	List(ctx context.Context, pageSlug string) ([]model.Breadcrumb, error)
}

type breadcrumbService struct {
	repo repository.BreadcrumbRepository
}

func NewBreadcrumbService(repo repository.BreadcrumbRepository) BreadcrumbService {
	return &breadcrumbService{repo: repo}
}

func (s *breadcrumbService) validate(in BreadcrumbInput) error {
	v := &validator{}
	v.require("pageSlug", in.PageSlug)
	v.require("title", in.Title)
	return v.err()
}

func (s *breadcrumbService) Create(ctx context.Context, in BreadcrumbInput) (*model.Breadcrumb, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	b := &model.Breadcrumb{
		PageSlug: strings.TrimSpace(in.PageSlug),
		Title:    strings.TrimSpace(in.Title),
		ImageURL: in.ImageURL,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *breadcrumbService) Update(ctx context.Context, id uint64, in BreadcrumbInput) (*model.Breadcrumb, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	b.PageSlug = strings.TrimSpace(in.PageSlug)
	b.Title = strings.TrimSpace(in.Title)
	b.ImageURL = in.ImageURL
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *breadcrumbService) Delete(ctx context.Context, id uint64) error {
	return mapNotFound(s.repo.Delete(ctx, id))
}

func (s *breadcrumbService) List(ctx context.Context, pageSlug string) ([]model.Breadcrumb, error) {
	return s.repo.List(ctx, strings.TrimSpace(pageSlug))
}

type TestimonialInput struct {
	AuthorName  string
	Company     string
	Quote       string
	Rating      uint8
	ImageURL    *string
	IsPublished bool
}

type TestimonialService interface {
	Create(ctx context.Context, in TestimonialInput) (*model.Testimonial, error)
	Update(ctx context.Context, id uint64, in TestimonialInput) (*model.Testimonial, error)
	Delete(ctx context.Context, id uint64) error
	List(ctx context.Context, publishedOnly bool) ([]model.Testimonial, error)
}

type testimonialService struct {
	repo repository.TestimonialRepository
}

func NewTestimonialService(repo repository.TestimonialRepository) TestimonialService {
	return &testimonialService{repo: repo}
}

func (s *testimonialService) validate(in TestimonialInput) error {
	v := &validator{}
	v.require("authorName", in.AuthorName)
	v.require("quote", in.Quote)
	if in.Rating < 1 || in.Rating > 5 {
		v.fields = append(v.fields, FieldError{Field: "rating", Message: "rating must be between 1 and 5"})
	}
	return v.err()
}

func (s *testimonialService) Create(ctx context.Context, in TestimonialInput) (*model.Testimonial, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	t := &model.Testimonial{
		AuthorName:  strings.TrimSpace(in.AuthorName),
		Company:     strings.TrimSpace(in.Company),
		Quote:       strings.TrimSpace(in.Quote),
		Rating:      in.Rating,
		ImageURL:    in.ImageURL,
		IsPublished: in.IsPublished,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *testimonialService) Update(ctx context.Context, id uint64, in TestimonialInput) (*model.Testimonial, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	t.AuthorName = strings.TrimSpace(in.AuthorName)
	t.Company = strings.TrimSpace(in.Company)
	t.Quote = strings.TrimSpace(in.Quote)
	t.Rating = in.Rating
	t.ImageURL = in.ImageURL
	t.IsPublished = in.IsPublished
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *testimonialService) Delete(ctx context.Context, id uint64) error {
	return mapNotFound(s.repo.Delete(ctx, id))
}

func (s *testimonialService) List(ctx context.Context, publishedOnly bool) ([]model.Testimonial, error) {
	return s.repo.List(ctx, publishedOnly)
}

type TeamMemberInput struct {
	Name      string
	Position  string
	Bio       string
	ImageURL  *string
	SortOrder int
}

type TeamService interface {
	Create(ctx context.Context, in TeamMemberInput) (*model.TeamMember, error)
	Update(ctx context.Context, id uint64, in TeamMemberInput) (*model.TeamMember, error)
	Delete(ctx context.Context, id uint64) error
	List(ctx context.Context) ([]model.TeamMember, error)
}

type teamService struct {
	repo repository.TeamMemberRepository
}

func NewTeamService(repo repository.TeamMemberRepository) TeamService {
	return &teamService{repo: repo}
}

func (s *teamService) validate(in TeamMemberInput) error {
	v := &validator{}
	v.require("name", in.Name)
	v.require("position", in.Position)
	return v.err()
}

func (s *teamService) Create(ctx context.Context, in TeamMemberInput) (*model.TeamMember, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	m := &model.TeamMember{
		Name:      strings.TrimSpace(in.Name),
		Position:  strings.TrimSpace(in.Position),
		Bio:       in.Bio,
		ImageURL:  in.ImageURL,
		SortOrder: in.SortOrder,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *teamService) Update(ctx context.Context, id uint64, in TeamMemberInput) (*model.TeamMember, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	m.Name = strings.TrimSpace(in.Name)
	m.Position = strings.TrimSpace(in.Position)
	m.Bio = in.Bio
	m.ImageURL = in.ImageURL
	m.SortOrder = in.SortOrder
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *teamService) Delete(ctx context.Context, id uint64) error {
	return mapNotFound(s.repo.Delete(ctx, id))
}

func (s *teamService) List(ctx context.Context) ([]model.TeamMember, error) {
	return s.repo.List(ctx)
}

type WhyChooseUsInput struct {
	Title       string
	Description string
	Icon        string
	SortOrder   int
}

type WhyChooseUsService interface {
	Create(ctx context.Context, in WhyChooseUsInput) (*model.WhyChooseUsItem, error)
	Update(ctx context.Context, id uint64, in WhyChooseUsInput) (*model.WhyChooseUsItem, error)
	Delete(ctx context.Context, id uint64) error
	List(ctx context.Context) ([]model.WhyChooseUsItem, error)
}

type whyChooseUsService struct {
	repo repository.WhyChooseUsRepository
}

func NewWhyChooseUsService(repo repository.WhyChooseUsRepository) WhyChooseUsService {
	return &whyChooseUsService{repo: repo}
}

func (s *whyChooseUsService) Create(ctx context.Context, in WhyChooseUsInput) (*model.WhyChooseUsItem, error) {
	v := &validator{}
	v.require("title", in.Title)
	if err := v.err(); err != nil {
		return nil, err
	}
	item := &model.WhyChooseUsItem{
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Icon:        strings.TrimSpace(in.Icon),
		SortOrder:   in.SortOrder,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *whyChooseUsService) Update(ctx context.Context, id uint64, in WhyChooseUsInput) (*model.WhyChooseUsItem, error) {
	v := &validator{}
	v.require("title", in.Title)
	if err := v.err(); err != nil {
		return nil, err
	}
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	item.Title = strings.TrimSpace(in.Title)
	item.Description = in.Description
	item.Icon = strings.TrimSpace(in.Icon)
	item.SortOrder = in.SortOrder
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *whyChooseUsService) Delete(ctx context.Context, id uint64) error {
	return mapNotFound(s.repo.Delete(ctx, id))
}

func (s *whyChooseUsService) List(ctx context.Context) ([]model.WhyChooseUsItem, error) {
	return s.repo.List(ctx)
}

type AboutUsInput struct {
	Content  string
	Mission  string
	Vision   string
	ImageURL *string
}

type AboutService interface {
	Get(ctx context.Context) (*model.AboutUs, error)
	Update(ctx context.Context, in AboutUsInput) (*model.AboutUs, error)
}

type aboutService struct {
	repo repository.AboutUsRepository
}

func NewAboutService(repo repository.AboutUsRepository) AboutService {
	return &aboutService{repo: repo}
}

func (s *aboutService) Get(ctx context.Context) (*model.AboutUs, error) {
	return s.repo.Get(ctx)
}

func (s *aboutService) Update(ctx context.Context, in AboutUsInput) (*model.AboutUs, error) {
	a := &model.AboutUs{
		Content:  in.Content,
		Mission:  in.Mission,
		Vision:   in.Vision,
		ImageURL: in.ImageURL,
	}
	if err := s.repo.Upsert(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
