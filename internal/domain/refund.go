package domain

import "time"

// RefundAmount computes the points refunded for a cancellation happening at now.
//
// Policy: a hard cutoff at exactly FullRefundNoticeHours before the slot start.
// At or above the cutoff the full pointsSpent is returned; below it, the
// LateCancelRefundPercent tier applies with the result floored.
func RefundAmount(pointsSpent int64, slotStart, now time.Time) int64 {
	if pointsSpent <= 0 {
		return 0
	}
	notice := slotStart.Sub(now)
	if notice >= FullRefundNoticeHours*time.Hour {
		return pointsSpent
	}
	return pointsSpent * LateCancelRefundPercent / 100
}
