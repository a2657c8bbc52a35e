package schedule

import "errors"

var (
	// ErrPolicyNotFound is returned when the provider has no configured
	// schedule policy. Callers fall back to the default policy.
	ErrPolicyNotFound = errors.New("schedule.repository: schedule policy not found")

	// ErrBuildQuery is returned when the SQL statement cannot be built.
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery is returned when the SQL statement fails to execute.
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned.
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
