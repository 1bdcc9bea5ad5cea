package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/beyondborder/backend/internal/event"
	"github.com/beyondborder/backend/internal/mailer"
	"github.com/beyondborder/backend/internal/model"
	"github.com/beyondborder/backend/internal/repository"
)

// Broadcaster pushes one notification to every live admin stream and
// reports how many deliveries succeeded and failed.
type Broadcaster interface {
	Broadcast(notification any) (sent, failed int)
}

// NotificationService bridges domain events to durable notifications, email
// and live SSE delivery, and serves the notification read side.
type NotificationService interface {
	List(ctx context.Context, page, pageSize int, unreadOnly bool) ([]model.Notification, Pagination, error)
	UnreadCount(ctx context.Context) (int64, error)
	MarkRead(ctx context.Context, id uint64) error
	MarkAllRead(ctx context.Context) error
	Delete(ctx context.Context, id uint64) error
}

type notificationService struct {
	repo      repository.NotificationRepository
	broadcast Broadcaster
	mail      mailer.Mailer
}

const persistTimeout = 5 * time.Second

// NewNotificationService wires the service to the bus. It subscribes to the
// three lead-creation events on construction; mail may be nil.
func NewNotificationService(
	repo repository.NotificationRepository,
	broadcast Broadcaster,
	mail mailer.Mailer,
	bus *event.Bus,
) NotificationService {
	s := &notificationService{repo: repo, broadcast: broadcast, mail: mail}
	bus.On(event.ContactCreatedName, s.handleEvent)
	bus.On(event.ConsultantCreatedName, s.handleEvent)
	bus.On(event.CommunityCreatedName, s.handleEvent)
	return s
}

// handleEvent runs on the bus goroutine, after the originating request has
// been answered. Delivery is at-most-once: a persistence failure is logged
// and the event is gone.
func (s *notificationService) handleEvent(e event.Event) {
	n, ok := s.buildNotification(e)
	if !ok {
		log.Printf("notification: unknown event %s, dropping", e.Name())
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := s.repo.Create(ctx, n); err != nil {
		log.Printf("notification: persist failed for %s: %v", e.Name(), err)
		return
	}

	if s.mail != nil {
		if err := s.mail.SendLeadAlert(n.Title, n.Message); err != nil {
			log.Printf("notification: email failed for %s: %v", e.Name(), err)
		}
	}

	sent, failed := s.broadcast.Broadcast(n)
	if failed > 0 {
		log.Printf("notification: broadcast %d delivered, %d failed", sent, failed)
	}
}

func (s *notificationService) buildNotification(e event.Event) (*model.Notification, bool) {
	switch ev := e.(type) {
	case event.ContactCreated:
		return &model.Notification{
			Title:       "New Contact Inquiry",
			Message:     fmt.Sprintf("%s submitted a contact inquiry", ev.Contact.Name),
			SourceRoute: "/api/contact",
			TargetRoute: "/admin/contacts",
			ReferenceID: ev.Contact.ID,
			Type:        model.NotificationTypeContact,
		}, true
	case event.ConsultantCreated:
		return &model.Notification{
			Title:       "New Consultant Request",
			Message:     fmt.Sprintf("%s from %s requested a consultant", ev.Request.Name, ev.Request.Organization),
			SourceRoute: "/api/consultant-requests",
			TargetRoute: "/admin/consultant-requests",
			ReferenceID: ev.Request.ID,
			Type:        model.NotificationTypeConsultant,
		}, true
	case event.CommunityCreated:
		return &model.Notification{
			Title:       "New Community Membership Request",
			Message:     fmt.Sprintf("%s from %s applied to join the consultant community", ev.Member.Name, ev.Member.Company),
			SourceRoute: "/api/community-members",
			TargetRoute: "/admin/community-members",
			ReferenceID: ev.Member.ID,
			Type:        model.NotificationTypeCommunity,
		}, true
	default:
		return nil, false
	}
}

func (s *notificationService) List(ctx context.Context, page, pageSize int, unreadOnly bool) ([]model.Notification, Pagination, error) {
	page, pageSize = clampPage(page, pageSize)
	list, total, err := s.repo.Find(ctx, pageSize, (page-1)*pageSize, unreadOnly)
	if err != nil {
		return nil, Pagination{}, err
	}
	return list, newPagination(page, pageSize, total), nil
}

func (s *notificationService) UnreadCount(ctx context.Context) (int64, error) {
	return s.repo.CountUnread(ctx)
}

func (s *notificationService) MarkRead(ctx context.Context, id uint64) error {
	return mapNotFound(s.repo.MarkAsRead(ctx, id))
}

func (s *notificationService) MarkAllRead(ctx context.Context) error {
	return s.repo.MarkAllAsRead(ctx)
}

func (s *notificationService) Delete(ctx context.Context, id uint64) error {
	return mapNotFound(s.repo.Delete(ctx, id))
}
