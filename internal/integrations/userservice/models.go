package userservice

// DoctorProfile профиль врача из UserService
type DoctorProfile struct {
	UserID         int64   `json:"user_id"`
	Specialization string  `json:"specialization"`
	Experience     int     `json:"experience"`
	Fees           float64 `json:"fees"`
	Approved       bool    `json:"approved"` // заявка на роль врача подтверждена админом
}

// UserDisplay отображаемые данные пользователя из UserService
type UserDisplay struct {
	ID        int64  `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Pic       string `json:"pic"`
}

// FullName возвращает полное имя пользователя для текстов уведомлений
func (u *UserDisplay) FullName() string {
	return u.Firstname + " " + u.Lastname
}

// ErrorResponse модель ошибки от UserService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
