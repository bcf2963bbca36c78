package responses

type PrescriptionMedicine struct {
	MedicineName string `json:"medicineName"`
	Dosage       string `json:"dosage,omitempty"`
	Frequency    string `json:"frequency,omitempty"`
	Duration     string `json:"duration,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}

type Prescription struct {
	PrescriptionID uint                   `json:"prescriptionId"`
	AppointmentID  uint                   `json:"appointmentId"`
	PatientName    string                 `json:"patientName,omitempty"`
	DoctorName     string                 `json:"doctorName,omitempty"`
	Specialization string                 `json:"specialization,omitempty"`
	Diagnosis      string                 `json:"diagnosis"`
	Medicines      []PrescriptionMedicine `json:"medicines"`
	Tests          []string               `json:"tests"`
	Notes          string                 `json:"notes,omitempty"`
	FollowUpDate   string                 `json:"followUpDate,omitempty"`
	CreatedAt      string                 `json:"createdAt"`
}

type CreatePrescription struct {
	PrescriptionID uint `json:"prescriptionId"`
}
