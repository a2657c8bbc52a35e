package appointment

import "errors"

var (
	// ErrAppointmentNotFound is returned when the appointment does not exist.
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrAppointmentOverlap is returned when the insert violates the
	// no-overlap exclusion constraint: a concurrent writer took the slot
	// after our in-transaction check. Same user-facing treatment as a
	// conflict detected up front.
	ErrAppointmentOverlap = errors.New("appointment.repository: overlapping appointment exists")

	// ErrTransaction is returned on transaction handling failures.
	ErrTransaction = errors.New("appointment.repository: transaction error")

	// ErrBuildQuery is returned when the SQL statement cannot be built.
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery is returned when the SQL statement fails to execute.
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned.
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
