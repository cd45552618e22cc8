package complete_interview

import (
	"context"

	completeInterview "github.com/prepmate/MIP-BookingService/internal/usecase/complete_interview"
)

type CompleteInterviewUseCase interface {
	Execute(ctx context.Context, req *completeInterview.Request) (*completeInterview.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
