package requests

type BookAppointment struct {
	DoctorID         uint   `json:"doctorId" validate:"required"`
	AppointmentDate  string `json:"appointmentDate" validate:"required"`
	AppointmentTime  string `json:"appointmentTime" validate:"required"`
	ConsultationType string `json:"consultationType,omitempty"`
	Symptoms         string `json:"symptoms,omitempty"`
}

type UpdateAppointmentStatus struct {
	Status string `json:"status" validate:"required,oneof=confirmed completed"`
	Notes  string `json:"notes,omitempty"`
}

type CancelAppointment struct {
	CancellationReason string `json:"cancellationReason" validate:"required"`
}

type ListAppointments struct {
	Status   string
	Date     string
	Page     int
	PageSize int
}
