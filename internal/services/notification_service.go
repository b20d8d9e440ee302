package services

import (
	"errors"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/pkg/apperrors"
)

type NotificationService interface {
	ListUserNotifications(userID string, criteria repositories.NotificationCriteria) ([]models.Notification, int64, error)
	MarkAsRead(id string) error
	MarkAllAsRead(userID string) error
	UnreadCount(userID string) (int64, error)
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

func (s *notificationService) ListUserNotifications(userID string, criteria repositories.NotificationCriteria) ([]models.Notification, int64, error) {
	return s.notificationRepo.FindUserNotifications(userID, criteria)
}

func (s *notificationService) MarkAsRead(id string) error {
	err := s.notificationRepo.MarkAsRead(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.New(apperrors.CodeNotFound, "notification", "Notification not found", 404)
		}
		return err
	}
	return nil
}

func (s *notificationService) MarkAllAsRead(userID string) error {
	return s.notificationRepo.MarkAllAsRead(userID)
}

func (s *notificationService) UnreadCount(userID string) (int64, error) {
	return s.notificationRepo.UnreadCount(userID)
}
