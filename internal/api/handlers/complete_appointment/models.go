package complete_appointment

// CompleteAppointmentRequest HTTP request model
type CompleteAppointmentRequest struct {
	AppointmentID int64 `json:"appointmentId"`
}
