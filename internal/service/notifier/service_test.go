package notifier

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepmate/MIP-BookingService/internal/domain"
	notificationRepo "github.com/prepmate/MIP-BookingService/internal/infra/storage/notification"
	"github.com/prepmate/MIP-BookingService/internal/integrations/notifyhub"
	"github.com/prepmate/MIP-BookingService/pkg/ptr"
)

type fakeNotificationRepo struct {
	notifications []*domain.Notification
	nextID        int64
	createErr     error
}

func (f *fakeNotificationRepo) Create(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	created := *n
	created.ID = f.nextID
	f.notifications = append(f.notifications, &created)
	return &created, nil
}

func (f *fakeNotificationRepo) ListByUser(_ context.Context, userID int64, onlyUnread bool) ([]*domain.Notification, error) {
	var result []*domain.Notification
	for _, n := range f.notifications {
		if n.UserID != userID {
			continue
		}
		if onlyUnread && n.IsRead {
			continue
		}
		result = append(result, n)
	}
	return result, nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, id int64, userID int64) error {
	for _, n := range f.notifications {
		if n.ID == id && n.UserID == userID {
			n.IsRead = true
			return nil
		}
	}
	return notificationRepo.ErrNotificationNotFound
}

type fakeHub struct {
	pushes  []*notifyhub.PushRequest
	pushErr error
}

func (f *fakeHub) PushWithGracefulDegradation(_ context.Context, req *notifyhub.PushRequest) error {
	if f.pushErr != nil {
		return f.pushErr
	}
	f.pushes = append(f.pushes, req)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestService_Notify(t *testing.T) {
	repo := &fakeNotificationRepo{}
	hub := &fakeHub{}
	svc := NewService(repo, hub, nopLogger{})

	svc.Notify(context.Background(), 1, ptr.Ptr(int64(5)), domain.NotificationCreation, "Бронирование №5 создано")

	require.Len(t, repo.notifications, 1)
	assert.Equal(t, domain.NotificationCreation, repo.notifications[0].Type)
	assert.False(t, repo.notifications[0].IsRead)

	require.Len(t, hub.pushes, 1)
	assert.Equal(t, string(domain.NotificationCreation), hub.pushes[0].Type)
	require.NotNil(t, hub.pushes[0].BookingID)
	assert.Equal(t, int64(5), *hub.pushes[0].BookingID)
}

func TestService_Notify_NilHub(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewService(repo, nil, nopLogger{})

	svc.Notify(context.Background(), 1, nil, domain.NotificationReminder, "скоро интервью")

	require.Len(t, repo.notifications, 1)
}

// Кириллическое сообщение обрезается по рунам, а не по байтам:
// в сохраненном тексте не должно быть порванной руны
func TestService_Notify_TruncatesLongMessage(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewService(repo, nil, nopLogger{})

	long := strings.Repeat("ы", domain.MaxNotificationMessageLen+100)
	svc.Notify(context.Background(), 1, nil, domain.NotificationCreation, long)

	require.Len(t, repo.notifications, 1)
	stored := repo.notifications[0].Message
	assert.True(t, utf8.ValidString(stored))
	assert.Equal(t, domain.MaxNotificationMessageLen, utf8.RuneCountInString(stored))
}

func TestService_Notify_ShortMessageUntouched(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewService(repo, nil, nopLogger{})

	svc.Notify(context.Background(), 1, nil, domain.NotificationCreation, "Бронирование №1 создано")

	require.Len(t, repo.notifications, 1)
	assert.Equal(t, "Бронирование №1 создано", repo.notifications[0].Message)
}

// Сбой записи в БД не мешает попытке доставки
func TestService_Notify_RepoFailureStillPushes(t *testing.T) {
	repo := &fakeNotificationRepo{createErr: errors.New("db down")}
	hub := &fakeHub{}
	svc := NewService(repo, hub, nopLogger{})

	svc.Notify(context.Background(), 1, nil, domain.NotificationCreation, "msg")

	require.Len(t, hub.pushes, 1)
}

func TestService_Notify_PushFailureIsAbsorbed(t *testing.T) {
	repo := &fakeNotificationRepo{}
	hub := &fakeHub{pushErr: errors.New("hub unreachable")}
	svc := NewService(repo, hub, nopLogger{})

	// Не должно паниковать и ничего не возвращает
	svc.Notify(context.Background(), 1, nil, domain.NotificationCreation, "msg")

	require.Len(t, repo.notifications, 1)
}

func TestService_List_OnlyUnread(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewService(repo, nil, nopLogger{})
	ctx := context.Background()

	svc.Notify(ctx, 1, nil, domain.NotificationCreation, "first")
	svc.Notify(ctx, 1, nil, domain.NotificationConfirmation, "second")
	require.NoError(t, svc.MarkRead(ctx, 1, 1))

	all, err := svc.List(ctx, 1, false)
	require.NoError(t, err)
	assert.Len(t, all.Notifications, 2)

	unread, err := svc.List(ctx, 1, true)
	require.NoError(t, err)
	require.Len(t, unread.Notifications, 1)
	assert.Equal(t, "second", unread.Notifications[0].Message)
}

func TestService_MarkRead_NotFound(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewService(repo, nil, nopLogger{})

	err := svc.MarkRead(context.Background(), 42, 1)

	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

// Чужое уведомление прочитать нельзя
func TestService_MarkRead_OtherUser(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewService(repo, nil, nopLogger{})
	ctx := context.Background()

	svc.Notify(ctx, 1, nil, domain.NotificationCreation, "msg")

	err := svc.MarkRead(ctx, 1, 2)

	assert.ErrorIs(t, err, ErrNotificationNotFound)
}
