package schedule

import (
	"context"

	"github.com/fadeline/booking-service/internal/domain"
	"github.com/fadeline/booking-service/internal/integrations/providerdirectory"
)

// PolicyRepository is the persistence surface the service needs.
type PolicyRepository interface {
	GetByProviderID(ctx context.Context, providerID int64) (*domain.SchedulePolicy, error)
	Upsert(ctx context.Context, policy *domain.SchedulePolicy) (*domain.SchedulePolicy, error)
}

// ProviderDirectoryClient resolves provider profiles.
type ProviderDirectoryClient interface {
	GetProvider(ctx context.Context, providerID int64) (*providerdirectory.Provider, error)
}

// Logger is the logging surface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
