package domain

import "github.com/m04kA/SMC-AppointmentService/pkg/types"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Trailing window for the creation-date histogram in stats
const StatsTrailingDays = 7

// TopDoctorsLimit количество врачей в рейтинге по числу записей
const TopDoctorsLimit = 5

// SlotCatalog фиксированный упорядоченный каталог получасовых слотов клиники
// (09:00-17:30 включительно, 18 слотов). Слот занят, только если на него
// есть запись в статусе Pending.
var SlotCatalog = []types.TimeString{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"12:00", "12:30", "13:00", "13:30", "14:00", "14:30",
	"15:00", "15:30", "16:00", "16:30", "17:00", "17:30",
}

// IsCatalogSlot возвращает true, если time является меткой слота из каталога
func IsCatalogSlot(time types.TimeString) bool {
	for _, slot := range SlotCatalog {
		if slot == time {
			return true
		}
	}
	return false
}

// ValidStatuses список допустимых статусов записи на прием
var ValidStatuses = []AppointmentStatus{
	StatusPending,
	StatusCompleted,
	StatusCancelled,
}

// ParseStatus валидирует и конвертирует строку в AppointmentStatus
func ParseStatus(s string) (AppointmentStatus, bool) {
	status := AppointmentStatus(s)
	for _, valid := range ValidStatuses {
		if status == valid {
			return status, true
		}
	}
	return "", false
}
