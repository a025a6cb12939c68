package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	DoctorID int64  `json:"doctorId"`
	Date     string `json:"date"`

	AvailableSlots []string `json:"availableSlots"`
	BookedSlots    []string `json:"bookedSlots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	result := &AvailableSlotsResponse{
		DoctorID:       resp.DoctorID,
		Date:           resp.Date,
		AvailableSlots: make([]string, len(resp.AvailableSlots)),
		BookedSlots:    make([]string, len(resp.BookedSlots)),
	}

	for i, slot := range resp.AvailableSlots {
		result.AvailableSlots[i] = slot.String()
	}
	for i, slot := range resp.BookedSlots {
		result.BookedSlots[i] = slot.String()
	}

	return result
}
