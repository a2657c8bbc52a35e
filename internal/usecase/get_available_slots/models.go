package get_available_slots

import (
	"time"

	"github.com/fadeline/booking-service/pkg/types"
)

// Request asks for the open slots of one provider on one date for a
// service of the given duration.
type Request struct {
	ProviderID      int64
	Date            time.Time // calendar date, time component ignored
	DurationMinutes int
}

// Response lists the bookable start times in chronological order. An
// empty list is a normal answer: closed day, past date, or fully booked.
type Response struct {
	ProviderID      int64
	Date            time.Time
	DurationMinutes int
	Slots           []types.TimeString
}
