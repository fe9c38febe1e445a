package service

import (
	"context"

	"librental-backend/internal/domain"
	"librental-backend/internal/repository"
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationService(notificationRepo repository.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

// List returns the acting user's own notifications, newest first. There is
// no cross-user read; staff get their own feed like everyone else.
func (s *notificationService) List(ctx context.Context, actor domain.Actor, limit, offset int32) ([]domain.Notification, int32, error) {
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.notificationRepo.List(ctx, actor.UserID, limit, offset)
}
