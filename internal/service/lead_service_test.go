package service

import (
	"context"
	"errors"
	"testing"

	"github.com/beyondborder/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContactRepo struct {
	created []model.Contact
	nextID  uint64
}

func (f *fakeContactRepo) Create(_ context.Context, c *model.Contact) error {
	f.nextID++
	c.ID = f.nextID
	f.created = append(f.created, *c)
	return nil
}

func (f *fakeContactRepo) List(_ context.Context, limit, offset int) ([]model.Contact, int64, error) {
	total := int64(len(f.created))
	if offset >= len(f.created) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(f.created) {
		end = len(f.created)
	}
	return f.created[offset:end], total, nil
}

func (f *fakeContactRepo) Delete(_ context.Context, id uint64) error {
	for i := range f.created {
		if f.created[i].ID == id {
			f.created = append(f.created[:i], f.created[i+1:]...)
			return nil
		}
	}
	return errNotFoundRow
}

func newLeadServiceForTest(contacts *fakeContactRepo) LeadService {
	return NewLeadService(contacts, nil, nil)
}

func TestCreateContactTrimsAndPersists(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := newLeadServiceForTest(repo)

	c, err := svc.CreateContact(context.Background(), ContactInput{
		Name:        "  Ann  ",
		Email:       "ann@x.com",
		Description: "Need help with export paperwork",
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), c.ID)
	assert.Equal(t, "Ann", c.Name)
}

func TestCreateContactValidation(t *testing.T) {
	svc := newLeadServiceForTest(&fakeContactRepo{})

	tests := []struct {
		name       string
		in         ContactInput
		wantFields []string
	}{
		{
			name:       "all missing",
			in:         ContactInput{},
			wantFields: []string{"name", "email", "description"},
		},
		{
			name:       "bad email",
			in:         ContactInput{Name: "Ann", Email: "not-an-email", Description: "hi"},
			wantFields: []string{"email"},
		},
		{
			name:       "whitespace only",
			in:         ContactInput{Name: "   ", Email: "ann@x.com", Description: "hi"},
			wantFields: []string{"name"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateContact(context.Background(), tt.in)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "want ValidationError, got %v", err)
			var fields []string
			for _, f := range verr.Fields {
				fields = append(fields, f.Field)
			}
			assert.ElementsMatch(t, tt.wantFields, fields)
		})
	}
}

func TestListContactsPagination(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := newLeadServiceForTest(repo)
	for i := 0; i < 7; i++ {
		_, err := svc.CreateContact(context.Background(), ContactInput{
			Name: "Ann", Email: "ann@x.com", Description: "hello",
		})
		require.NoError(t, err)
	}

	list, p, err := svc.ListContacts(context.Background(), 2, 5)
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, Pagination{Page: 2, PageSize: 5, Total: 7, Pages: 2}, p)
}

func TestDeleteContactNotFound(t *testing.T) {
	svc := newLeadServiceForTest(&fakeContactRepo{})
	err := svc.DeleteContact(context.Background(), 999)
	assert.Error(t, err)
}
