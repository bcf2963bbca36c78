package responses

type BookAppointment struct {
	AppointmentID   uint    `json:"appointmentId"`
	DoctorName      string  `json:"doctorName"`
	AppointmentDate string  `json:"appointmentDate"`
	AppointmentTime string  `json:"appointmentTime"`
	ConsultationFee float64 `json:"consultationFee"`
}

type Appointment struct {
	AppointmentID      uint    `json:"appointmentId"`
	PatientID          uint    `json:"patientId"`
	DoctorID           uint    `json:"doctorId"`
	PatientName        string  `json:"patientName,omitempty"`
	DoctorName         string  `json:"doctorName,omitempty"`
	Specialization     string  `json:"specialization,omitempty"`
	AppointmentDate    string  `json:"appointmentDate"`
	AppointmentTime    string  `json:"appointmentTime"`
	ConsultationType   string  `json:"consultationType,omitempty"`
	Symptoms           string  `json:"symptoms,omitempty"`
	ConsultationFee    float64 `json:"consultationFee"`
	Status             string  `json:"status"`
	PaymentStatus      string  `json:"paymentStatus"`
	DoctorNotes        string  `json:"doctorNotes,omitempty"`
	CancellationReason string  `json:"cancellationReason,omitempty"`
}
