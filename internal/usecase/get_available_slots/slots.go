package get_available_slots

import (
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// subtractBookedSlots возвращает слоты каталога, не занятые записями.
// Порядок каталога сохраняется. Времена вне каталога (исторические данные
// с нестандартной сеткой) на результат не влияют.
func subtractBookedSlots(booked []types.TimeString) []types.TimeString {
	bookedSet := make(map[types.TimeString]struct{}, len(booked))
	for _, t := range booked {
		bookedSet[t] = struct{}{}
	}

	available := make([]types.TimeString, 0, len(domain.SlotCatalog))
	for _, slot := range domain.SlotCatalog {
		if _, taken := bookedSet[slot]; !taken {
			available = append(available, slot)
		}
	}

	return available
}
