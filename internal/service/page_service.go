package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/beyondborder/backend/internal/model"
	"github.com/beyondborder/backend/internal/repository"
	"gorm.io/gorm"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type PageInput struct {
	Slug            string
	Title           string
	Content         string
	MetaTitle       string
	MetaDescription string
	IsPublished     bool
}

type PageService interface {
	Create(ctx context.Context, in PageInput) (*model.Page, error)
	Update(ctx context.Context, id uint64, in PageInput) (*model.Page, error)
	Delete(ctx context.Context, id uint64) error
	GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*model.Page, error)
	List(ctx context.Context, publishedOnly bool) ([]model.Page, error)
}

type pageService struct {
	repo repository.PageRepository
}

func NewPageService(repo repository.PageRepository) PageService {
	return &pageService{repo: repo}
}

func (s *pageService) validate(in PageInput) error {
	v := &validator{}
	v.require("slug", in.Slug)
	v.require("title", in.Title)
	if slug := strings.TrimSpace(in.Slug); slug != "" && !slugPattern.MatchString(slug) {
		v.fields = append(v.fields, FieldError{Field: "slug", Message: "slug must be lowercase letters, digits and hyphens"})
	}
	return v.err()
}

func (s *pageService) Create(ctx context.Context, in PageInput) (*model.Page, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	slug := strings.TrimSpace(in.Slug)
	if existing, err := s.repo.FindBySlug(ctx, slug); err == nil && existing != nil {
		return nil, &ValidationError{Fields: []FieldError{{Field: "slug", Message: "slug is already in use"}}}
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	p := &model.Page{
		Slug:            slug,
		Title:           strings.TrimSpace(in.Title),
		Content:         in.Content,
		MetaTitle:       strings.TrimSpace(in.MetaTitle),
		MetaDescription: strings.TrimSpace(in.MetaDescription),
		IsPublished:     in.IsPublished,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *pageService) Update(ctx context.Context, id uint64, in PageInput) (*model.Page, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	slug := strings.TrimSpace(in.Slug)
	if slug != p.Slug {
		if existing, err := s.repo.FindBySlug(ctx, slug); err == nil && existing != nil {
			return nil, &ValidationError{Fields: []FieldError{{Field: "slug", Message: "slug is already in use"}}}
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	p.Slug = slug
	p.Title = strings.TrimSpace(in.Title)
	p.Content = in.Content
	p.MetaTitle = strings.TrimSpace(in.MetaTitle)
	p.MetaDescription = strings.TrimSpace(in.MetaDescription)
	p.IsPublished = in.IsPublished
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *pageService) Delete(ctx context.Context, id uint64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *pageService) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*model.Page, error) {
	p, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if publishedOnly && !p.IsPublished {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *pageService) List(ctx context.Context, publishedOnly bool) ([]model.Page, error) {
	return s.repo.List(ctx, publishedOnly)
}
