package get_available_slots

import (
	"strconv"
	"time"

	"github.com/fadeline/booking-service/internal/domain"
	getAvailableSlots "github.com/fadeline/booking-service/internal/usecase/get_available_slots"
)

// SlotsResponse is the HTTP response: bookable start times ascending.
type SlotsResponse struct {
	Slots []string `json:"slots"`
}

// ToUseCaseRequest parses the query parameters into the usecase request.
func ToUseCaseRequest(providerID int64, dateStr, durationStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	duration, err := strconv.Atoi(durationStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		ProviderID:      providerID,
		Date:            date,
		DurationMinutes: duration,
	}, nil
}

// FromUseCaseResponse converts the usecase response into the HTTP model.
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}
	return &SlotsResponse{Slots: slots}
}
