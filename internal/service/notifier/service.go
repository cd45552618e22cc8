// Package notifier сохраняет и доставляет уведомления о событиях бронирования
package notifier

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/prepmate/MIP-BookingService/internal/domain"
	notificationRepo "github.com/prepmate/MIP-BookingService/internal/infra/storage/notification"
	"github.com/prepmate/MIP-BookingService/internal/integrations/notifyhub"
	"github.com/prepmate/MIP-BookingService/internal/service/notifier/models"
)

// Service сервис уведомлений
//
// Notify вызывается после коммита транзакции жизненного цикла и никогда
// не возвращает ошибку: сбой уведомления не должен ронять операцию,
// которая его породила. Все сбои только логируются.
type Service struct {
	notificationRepo NotificationRepository
	hub              HubClient
	logger           Logger
}

// NewService создает новый экземпляр сервиса уведомлений
// hub может быть nil - тогда уведомления сохраняются только в БД
func NewService(
	notificationRepo NotificationRepository,
	hub HubClient,
	logger Logger,
) *Service {
	return &Service{
		notificationRepo: notificationRepo,
		hub:              hub,
		logger:           logger,
	}
}

// Notify сохраняет уведомление и пытается доставить его через NotifyHub
func (s *Service) Notify(ctx context.Context, userID int64, bookingID *int64, nType domain.NotificationType, message string) {
	message = truncateMessage(message, domain.MaxNotificationMessageLen)

	n := &domain.Notification{
		UserID:    userID,
		BookingID: bookingID,
		Type:      nType,
		Message:   message,
	}

	created, err := s.notificationRepo.Create(ctx, n)
	if err != nil {
		s.logger.Error("Notify: failed to persist notification type=%s for user=%d: %v", nType, userID, err)
		// Доставку все равно пробуем: пользователь лучше получит
		// уведомление без записи в БД, чем ничего
	} else {
		s.logger.Info("Notify: persisted notification id=%d type=%s for user=%d", created.ID, nType, userID)
	}

	if s.hub == nil {
		return
	}

	pushErr := s.hub.PushWithGracefulDegradation(ctx, &notifyhub.PushRequest{
		UserID:    userID,
		BookingID: bookingID,
		Type:      string(nType),
		Message:   message,
	})
	if pushErr != nil {
		// Ошибка уже залогирована клиентом, уведомление осталось в БД
		return
	}
}

// truncateMessage обрезает сообщение до limit рун: сообщения кириллические,
// обрезка по байтам порвала бы руну и оставила невалидный UTF-8
func truncateMessage(message string, limit int) string {
	if utf8.RuneCountInString(message) <= limit {
		return message
	}
	return string([]rune(message)[:limit])
}

// List возвращает уведомления пользователя, сначала новые
func (s *Service) List(ctx context.Context, userID int64, onlyUnread bool) (*models.NotificationListResponse, error) {
	notifications, err := s.notificationRepo.ListByUser(ctx, userID, onlyUnread)
	if err != nil {
		s.logger.Error("List: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainNotificationList(notifications), nil
}

// MarkRead помечает уведомление пользователя прочитанным
func (s *Service) MarkRead(ctx context.Context, id int64, userID int64) error {
	if err := s.notificationRepo.MarkRead(ctx, id, userID); err != nil {
		if errors.Is(err, notificationRepo.ErrNotificationNotFound) {
			s.logger.Warn("MarkRead: notification id=%d not found for user=%d", id, userID)
			return ErrNotificationNotFound
		}
		s.logger.Error("MarkRead: repository error for notification id=%d: %v", id, err)
		return fmt.Errorf("%w: MarkRead - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("MarkRead: notification id=%d marked read by user=%d", id, userID)
	return nil
}
