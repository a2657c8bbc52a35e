package get_available_slots

import (
	"context"
	"time"

	"github.com/fadeline/booking-service/internal/domain"
	"github.com/fadeline/booking-service/internal/integrations/providerdirectory"
)

// AppointmentRepository reads the provider's booked appointments.
type AppointmentRepository interface {
	GetByProviderWithFilter(ctx context.Context, filter domain.ProviderAppointmentsFilter) ([]*domain.Appointment, error)
}

// PolicyRepository reads the provider's schedule policy.
type PolicyRepository interface {
	GetByProviderID(ctx context.Context, providerID int64) (*domain.SchedulePolicy, error)
}

// ProviderDirectoryClient resolves provider profiles.
type ProviderDirectoryClient interface {
	GetActiveProvider(ctx context.Context, providerID int64) (*providerdirectory.Provider, error)
}

// TimeProvider supplies the current time; swapped out in tests.
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time source.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
