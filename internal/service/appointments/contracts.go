package appointments

import (
	"context"

	"github.com/fadeline/booking-service/internal/domain"
	"github.com/fadeline/booking-service/internal/integrations/providerdirectory"
)

// AppointmentRepository is the persistence surface the service needs.
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByClientRef(ctx context.Context, clientRef string, status *domain.AppointmentStatus) ([]*domain.Appointment, error)
	GetByProviderWithFilter(ctx context.Context, filter domain.ProviderAppointmentsFilter) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
	Cancel(ctx context.Context, id int64, status domain.AppointmentStatus, reason string) error
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
