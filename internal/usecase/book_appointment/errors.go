package book_appointment

import "errors"

var (
	// ErrDoctorNotFound возвращается, когда врач не найден или заявка не подтверждена
	ErrDoctorNotFound = errors.New("book_appointment: doctor not found")

	// ErrPatientNotFound возвращается, когда пациент не найден
	ErrPatientNotFound = errors.New("book_appointment: patient not found")

	// ErrSlotTaken возвращается, когда слот уже занят Pending-записью.
	// При конкурентных бронированиях одного слота его получает проигравший:
	// побеждает ровно один вызов, молчаливой перезаписи не бывает.
	ErrSlotTaken = errors.New("book_appointment: slot already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_appointment: internal error")
)
