package service

import (
	"context"
	"strings"

	"github.com/beyondborder/backend/internal/model"
	"github.com/beyondborder/backend/internal/repository"
)

type ContactInput struct {
	Name        string
	Email       string
	Phone       string
	Description string
}

type ConsultantRequestInput struct {
	Name         string
	Email        string
	Phone        string
	Organization string
	Message      string
}

type CommunityMemberInput struct {
	Name      string
	Email     string
	Phone     string
	Company   string
	Expertise string
}

// LeadService persists the three public lead-capture forms and serves the
// admin read side. Event emission is the handler's job, after it has
// answered the submitter.
type LeadService interface {
	CreateContact(ctx context.Context, in ContactInput) (*model.Contact, error)
	CreateConsultantRequest(ctx context.Context, in ConsultantRequestInput) (*model.ConsultantRequest, error)
	CreateCommunityMember(ctx context.Context, in CommunityMemberInput) (*model.CommunityMember, error)

	ListContacts(ctx context.Context, page, pageSize int) ([]model.Contact, Pagination, error)
	ListConsultantRequests(ctx context.Context, page, pageSize int) ([]model.ConsultantRequest, Pagination, error)
	ListCommunityMembers(ctx context.Context, page, pageSize int) ([]model.CommunityMember, Pagination, error)

	DeleteContact(ctx context.Context, id uint64) error
	DeleteConsultantRequest(ctx context.Context, id uint64) error
	DeleteCommunityMember(ctx context.Context, id uint64) error
}

type leadService struct {
	contacts    repository.ContactRepository
	consultants repository.ConsultantRequestRepository
	community   repository.CommunityMemberRepository
}

func NewLeadService(
	contacts repository.ContactRepository,
	consultants repository.ConsultantRequestRepository,
	community repository.CommunityMemberRepository,
) LeadService {
	return &leadService{contacts: contacts, consultants: consultants, community: community}
}

func (s *leadService) CreateContact(ctx context.Context, in ContactInput) (*model.Contact, error) {
	v := &validator{}
	v.require("name", in.Name)
	v.require("email", in.Email)
	v.email("email", in.Email)
	v.require("description", in.Description)
	if err := v.err(); err != nil {
		return nil, err
	}
	c := &model.Contact{
		Name:        strings.TrimSpace(in.Name),
		Email:       strings.TrimSpace(in.Email),
		Phone:       strings.TrimSpace(in.Phone),
		Description: strings.TrimSpace(in.Description),
	}
	if err := s.contacts.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *leadService) CreateConsultantRequest(ctx context.Context, in ConsultantRequestInput) (*model.ConsultantRequest, error) {
	v := &validator{}
	v.require("name", in.Name)
	v.require("email", in.Email)
	v.email("email", in.Email)
	v.require("organization", in.Organization)
	if err := v.err(); err != nil {
		return nil, err
	}
	req := &model.ConsultantRequest{
		Name:         strings.TrimSpace(in.Name),
		Email:        strings.TrimSpace(in.Email),
		Phone:        strings.TrimSpace(in.Phone),
		Organization: strings.TrimSpace(in.Organization),
		Message:      strings.TrimSpace(in.Message),
	}
	if err := s.consultants.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *leadService) CreateCommunityMember(ctx context.Context, in CommunityMemberInput) (*model.CommunityMember, error) {
	v := &validator{}
	v.require("name", in.Name)
	v.require("email", in.Email)
	v.email("email", in.Email)
	v.require("company", in.Company)
	if err := v.err(); err != nil {
		return nil, err
	}
	m := &model.CommunityMember{
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		Company:   strings.TrimSpace(in.Company),
		Expertise: strings.TrimSpace(in.Expertise),
	}
	if err := s.community.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *leadService) ListContacts(ctx context.Context, page, pageSize int) ([]model.Contact, Pagination, error) {
	page, pageSize = clampPage(page, pageSize)
	list, total, err := s.contacts.List(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, Pagination{}, err
	}
	return list, newPagination(page, pageSize, total), nil
}

func (s *leadService) ListConsultantRequests(ctx context.Context, page, pageSize int) ([]model.ConsultantRequest, Pagination, error) {
	page, pageSize = clampPage(page, pageSize)
	list, total, err := s.consultants.List(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, Pagination{}, err
	}
	return list, newPagination(page, pageSize, total), nil
}

func (s *leadService) ListCommunityMembers(ctx context.Context, page, pageSize int) ([]model.CommunityMember, Pagination, error) {
	page, pageSize = clampPage(page, pageSize)
	list, total, err := s.community.List(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, Pagination{}, err
	}
	return list, newPagination(page, pageSize, total), nil
}

func (s *leadService) DeleteContact(ctx context.Context, id uint64) error {
	return mapNotFound(s.contacts.Delete(ctx, id))
}

func (s *leadService) DeleteConsultantRequest(ctx context.Context, id uint64) error {
	return mapNotFound(s.consultants.Delete(ctx, id))
}

func (s *leadService) DeleteCommunityMember(ctx context.Context, id uint64) error {
	return mapNotFound(s.community.Delete(ctx, id))
}
