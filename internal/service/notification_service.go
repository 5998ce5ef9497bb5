package service

import (
	"context"
	"errors"
	"strings"

	"github.com/yasirSub/backend-mexo/internal/model"
	"github.com/yasirSub/backend-mexo/internal/repository"
	"gorm.io/gorm"
)

var notificationTypes = map[string]bool{
	"info":    true,
	"success": true,
	"warning": true,
	"error":   true,
	"order":   true,
	"product": true,
	"seller":  true,
	"payment": true,
}

type NotificationService interface {
	Create(ctx context.Context, n *model.Notification) error
	List(ctx context.Context, scope repository.NotificationScope, limit, offset int) ([]model.Notification, error)
	MarkRead(ctx context.Context, id uint64) error
	MarkAllRead(ctx context.Context, scope repository.NotificationScope) error
	UnreadCount(ctx context.Context, scope repository.NotificationScope) (int64, error)
	Delete(ctx context.Context, id uint64) error
	DeleteAllRead(ctx context.Context, scope repository.NotificationScope) error
}

type notificationService struct {
	repo repository.NotificationRepository
}

func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) Create(ctx context.Context, n *model.Notification) error {
	if strings.TrimSpace(n.Title) == "" {
		return NewValidationError("title", "title is required")
	}
	if strings.TrimSpace(n.Message) == "" {
		return NewValidationError("message", "message is required")
	}
	if n.Type == "" {
		n.Type = "info"
	} else if !notificationTypes[n.Type] {
		return NewValidationError("type", "type must be one of info, success, warning, error, order, product, seller, payment")
	}
	return s.repo.Create(ctx, n)
}

func (s *notificationService) List(ctx context.Context, scope repository.NotificationScope, limit, offset int) ([]model.Notification, error) {
	return s.repo.List(ctx, scope, limit, offset)
}

func (s *notificationService) MarkRead(ctx context.Context, id uint64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.MarkRead(ctx, id)
}

func (s *notificationService) MarkAllRead(ctx context.Context, scope repository.NotificationScope) error {
	return s.repo.MarkAllRead(ctx, scope)
}

func (s *notificationService) UnreadCount(ctx context.Context, scope repository.NotificationScope) (int64, error) {
	return s.repo.UnreadCount(ctx, scope)
}

func (s *notificationService) Delete(ctx context.Context, id uint64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *notificationService) DeleteAllRead(ctx context.Context, scope repository.NotificationScope) error {
	return s.repo.DeleteAllRead(ctx, scope)
}
