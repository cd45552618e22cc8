package domain

// Default points configuration
const (
	DefaultBookingCost       = 10
	DefaultInterviewerReward = 1
)

// Refund policy constants
const (
	// FullRefundNoticeHours отмена не позднее, чем за это число часов до начала
	// слота, возвращает всю стоимость
	FullRefundNoticeHours = 24

	// LateCancelRefundPercent процент возврата при поздней отмене (floor)
	LateCancelRefundPercent = 50
)

// Business validation constants
const (
	MaxSpecializationLength     = 100
	MaxDescriptionLength        = 255
	MaxCancellationReasonLength = 500
	MaxNotificationMessageLen   = 500

	DefaultHistoryPageSize = 20
	MaxHistoryPageSize     = 100
)

// ActiveBookingStatuses список статусов, при которых бронирование удерживает слот
// Используется при проверке доступности слота и при запрете удаления
var ActiveBookingStatuses = []BookingStatus{
	BookingStatusCreated,
	BookingStatusConfirmed,
	BookingStatusCompleted,
}
