package get_schedule

import (
	"context"

	"github.com/fadeline/booking-service/internal/service/schedule/models"
)

type ScheduleService interface {
	GetPolicy(ctx context.Context, providerID int64) (*models.PolicyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
