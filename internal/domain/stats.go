package domain

// StatusStats количество записей по каждому статусу
type StatusStats struct {
	Pending   int64
	Completed int64
	Cancelled int64
}

// DateCount количество записей, созданных за конкретную дату приема
type DateCount struct {
	Date  string
	Count int64
}

// DoctorCount количество записей у конкретного врача.
// Порядок при равном количестве не специфицирован (определяется хранилищем).
type DoctorCount struct {
	DoctorID int64
	Count    int64
}

// AppointmentStats агрегированная статистика по записям на прием
type AppointmentStats struct {
	Total              int64
	StatusStats        StatusStats
	AppointmentsByDate []DateCount // за последние StatsTrailingDays дней, по дате ASC
	TopDoctors         []DoctorCount
}
