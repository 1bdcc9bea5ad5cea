package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/beyondborder/backend/internal/event"
	"github.com/beyondborder/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotificationRepo struct {
	mu         sync.Mutex
	rows       []model.Notification
	nextID     uint64
	failCreate bool
}

func (f *fakeNotificationRepo) Create(_ context.Context, n *model.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate {
		return errors.New("insert failed")
	}
	f.nextID++
	n.ID = f.nextID
	n.CreatedAt = time.Now()
	// prepend so rows stays newest-first like the SQL ordering
	f.rows = append([]model.Notification{*n}, f.rows...)
	return nil
}

func (f *fakeNotificationRepo) Find(_ context.Context, limit, offset int, unreadOnly bool) ([]model.Notification, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []model.Notification
	for _, n := range f.rows {
		if unreadOnly && n.IsRead {
			continue
		}
		matched = append(matched, n)
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (f *fakeNotificationRepo) CountUnread(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var cnt int64
	for _, n := range f.rows {
		if !n.IsRead {
			cnt++
		}
	}
	return cnt, nil
}

func (f *fakeNotificationRepo) MarkAsRead(_ context.Context, id uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows[i].IsRead = true
			return nil
		}
	}
	return errNotFoundRow
}

func (f *fakeNotificationRepo) MarkAllAsRead(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rows {
		f.rows[i].IsRead = true
	}
	return nil
}

func (f *fakeNotificationRepo) Delete(_ context.Context, id uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return errNotFoundRow
}

var errNotFoundRow = errors.New("record not found")

type fakeBroadcaster struct {
	mu       sync.Mutex
	received []*model.Notification
	ch       chan *model.Notification
}

func newFakeBroadcaster() *fakeBroadcaster {
	return &fakeBroadcaster{ch: make(chan *model.Notification, 8)}
}

func (f *fakeBroadcaster) Broadcast(v any) (int, int) {
	n, _ := v.(*model.Notification)
	f.mu.Lock()
	f.received = append(f.received, n)
	f.mu.Unlock()
	select {
	case f.ch <- n:
	default:
	}
	return 1, 0
}

type fakeMailer struct {
	mu       sync.Mutex
	subjects []string
	fail     bool
}

func (f *fakeMailer) SendLeadAlert(subject, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("smtp down")
	}
	f.subjects = append(f.subjects, subject)
	return nil
}

func newTestService(repo *fakeNotificationRepo, bc *fakeBroadcaster) *notificationService {
	bus := event.NewBus()
	return NewNotificationService(repo, bc, nil, bus).(*notificationService)
}

func TestContactEventCreatesAndBroadcastsNotification(t *testing.T) {
	repo := &fakeNotificationRepo{}
	bc := newFakeBroadcaster()
	svc := newTestService(repo, bc)

	svc.handleEvent(event.ContactCreated{Contact: model.Contact{ID: 12, Name: "Ann", Email: "ann@x.com"}})

	require.Len(t, repo.rows, 1)
	n := repo.rows[0]
	assert.Equal(t, "New Contact Inquiry", n.Title)
	assert.Equal(t, "Ann submitted a contact inquiry", n.Message)
	assert.Equal(t, model.NotificationTypeContact, n.Type)
	assert.Equal(t, uint64(12), n.ReferenceID)
	assert.Equal(t, "/api/contact", n.SourceRoute)
	assert.Equal(t, "/admin/contacts", n.TargetRoute)
	assert.False(t, n.IsRead)

	require.Len(t, bc.received, 1)
	assert.Equal(t, n.ID, bc.received[0].ID, "broadcast must carry the persisted row")
}

func TestConsultantAndCommunityTemplates(t *testing.T) {
	repo := &fakeNotificationRepo{}
	bc := newFakeBroadcaster()
	svc := newTestService(repo, bc)

	svc.handleEvent(event.ConsultantCreated{Request: model.ConsultantRequest{ID: 3, Name: "Bo", Organization: "Acme"}})
	svc.handleEvent(event.CommunityCreated{Member: model.CommunityMember{ID: 4, Name: "Cy", Company: "Initech"}})

	require.Len(t, repo.rows, 2)
	// rows are newest-first
	community, consultant := repo.rows[0], repo.rows[1]
	assert.Equal(t, "New Consultant Request", consultant.Title)
	assert.Equal(t, "Bo from Acme requested a consultant", consultant.Message)
	assert.Equal(t, uint64(3), consultant.ReferenceID)
	assert.Equal(t, "New Community Membership Request", community.Title)
	assert.Equal(t, "Cy from Initech applied to join the consultant community", community.Message)
	assert.Equal(t, model.NotificationTypeCommunity, community.Type)
}

func TestPersistFailureSkipsBroadcast(t *testing.T) {
	repo := &fakeNotificationRepo{failCreate: true}
	bc := newFakeBroadcaster()
	svc := newTestService(repo, bc)

	svc.handleEvent(event.ContactCreated{Contact: model.Contact{ID: 1, Name: "Ann"}})

	assert.Empty(t, bc.received, "no broadcast after a failed insert")
}

func TestMailerFailureDoesNotBlockBroadcast(t *testing.T) {
	repo := &fakeNotificationRepo{}
	bc := newFakeBroadcaster()
	bus := event.NewBus()
	mail := &fakeMailer{fail: true}
	svc := NewNotificationService(repo, bc, mail, bus).(*notificationService)

	svc.handleEvent(event.ContactCreated{Contact: model.Contact{ID: 1, Name: "Ann"}})

	assert.Len(t, bc.received, 1)
}

func TestBusSubscriptionDeliversEndToEnd(t *testing.T) {
	repo := &fakeNotificationRepo{}
	bc := newFakeBroadcaster()
	bus := event.NewBus()
	NewNotificationService(repo, bc, nil, bus)

	bus.Emit(event.ContactCreated{Contact: model.Contact{ID: 9, Name: "Ann"}})

	select {
	case n := <-bc.ch:
		require.NotNil(t, n)
		assert.Equal(t, uint64(9), n.ReferenceID)
	case <-time.After(2 * time.Second):
		t.Fatal("notification never reached the broadcaster")
	}
}

func TestListPagination(t *testing.T) {
	repo := &fakeNotificationRepo{}
	bc := newFakeBroadcaster()
	svc := newTestService(repo, bc)
	for i := 0; i < 25; i++ {
		svc.handleEvent(event.ContactCreated{Contact: model.Contact{ID: uint64(i + 1), Name: "Ann"}})
	}

	list, p, err := svc.List(context.Background(), 2, 10, false)
	require.NoError(t, err)
	assert.Equal(t, Pagination{Page: 2, PageSize: 10, Total: 25, Pages: 3}, p)
	require.Len(t, list, 10)
	// newest-first: page 2 starts at the 11th newest row
	assert.Equal(t, uint64(15), list[0].ID)
	assert.Equal(t, uint64(6), list[9].ID)
}

func TestListClampsInvalidPaging(t *testing.T) {
	repo := &fakeNotificationRepo{}
	bc := newFakeBroadcaster()
	svc := newTestService(repo, bc)
	svc.handleEvent(event.ContactCreated{Contact: model.Contact{ID: 1, Name: "Ann"}})

	_, p, err := svc.List(context.Background(), 0, -5, false)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PageSize)
}

func TestMarkAllReadIsIdempotent(t *testing.T) {
	repo := &fakeNotificationRepo{}
	bc := newFakeBroadcaster()
	svc := newTestService(repo, bc)
	svc.handleEvent(event.ContactCreated{Contact: model.Contact{ID: 1, Name: "Ann"}})
	svc.handleEvent(event.ContactCreated{Contact: model.Contact{ID: 2, Name: "Bo"}})

	require.NoError(t, svc.MarkAllRead(context.Background()))
	cnt, err := svc.UnreadCount(context.Background())
	require.NoError(t, err)
	assert.Zero(t, cnt)

	require.NoError(t, svc.MarkAllRead(context.Background()))
	cnt, err = svc.UnreadCount(context.Background())
	require.NoError(t, err)
	assert.Zero(t, cnt)
}

func TestUnreadOnlyFilter(t *testing.T) {
	repo := &fakeNotificationRepo{}
	bc := newFakeBroadcaster()
	svc := newTestService(repo, bc)
	svc.handleEvent(event.ContactCreated{Contact: model.Contact{ID: 1, Name: "Ann"}})
	svc.handleEvent(event.ContactCreated{Contact: model.Contact{ID: 2, Name: "Bo"}})

	require.NoError(t, svc.MarkRead(context.Background(), repo.rows[0].ID))

	list, p, err := svc.List(context.Background(), 1, 20, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.Total)
	require.Len(t, list, 1)
	assert.False(t, list[0].IsRead)
}
