package update_schedule

import (
	"context"

	"github.com/fadeline/booking-service/internal/service/schedule/models"
)

type ScheduleService interface {
	UpdatePolicy(ctx context.Context, providerID int64, req *models.UpdatePolicyRequest) (*models.PolicyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
