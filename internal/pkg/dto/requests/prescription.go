package requests

type PrescriptionMedicine struct {
	MedicineName string `json:"medicineName" validate:"required"`
	Dosage       string `json:"dosage,omitempty"`
	Frequency    string `json:"frequency,omitempty"`
	Duration     string `json:"duration,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}

type CreatePrescription struct {
	AppointmentID uint                   `json:"appointmentId" validate:"required"`
	Diagnosis     string                 `json:"diagnosis" validate:"required"`
	Medicines     []PrescriptionMedicine `json:"medicines,omitempty" validate:"omitempty,dive"`
	Tests         []string               `json:"tests,omitempty"`
	Notes         string                 `json:"notes,omitempty"`
	FollowUpDate  string                 `json:"followUpDate,omitempty"`
}
