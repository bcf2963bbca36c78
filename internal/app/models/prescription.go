package models

import "time"

type Prescription struct {
	PrescriptionID uint                   `gorm:"column:prescription_id;primaryKey;autoIncrement" json:"prescriptionId"`
	AppointmentID  uint                   `gorm:"column:appointment_id;uniqueIndex;not null" json:"appointmentId"`
	PatientID      uint                   `gorm:"column:patient_id;index;not null" json:"patientId"`
	DoctorID       uint                   `gorm:"column:doctor_id;index;not null" json:"doctorId"`
	Diagnosis      string                 `gorm:"column:diagnosis;type:text;not null" json:"diagnosis"`
	Notes          string                 `gorm:"column:notes;type:text" json:"notes"`
	FollowUpDate   string                 `gorm:"column:follow_up_date;size:20" json:"followUpDate"`
	Medicines      []PrescriptionMedicine `gorm:"foreignKey:PrescriptionID;references:PrescriptionID" json:"medicines"`
	Tests          []PrescriptionTest     `gorm:"foreignKey:PrescriptionID;references:PrescriptionID" json:"tests"`
	CreatedAt      time.Time              `gorm:"column:created_at" json:"createdAt"`
}

func (Prescription) TableName() string { return "prescriptions" }

type PrescriptionMedicine struct {
	ID             uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	PrescriptionID uint   `gorm:"column:prescription_id;index;not null" json:"prescriptionId"`
	MedicineName   string `gorm:"column:medicine_name;size:255;not null" json:"medicineName"`
	Dosage         string `gorm:"column:dosage;size:100" json:"dosage"`
	Frequency      string `gorm:"column:frequency;size:100" json:"frequency"`
	Duration       string `gorm:"column:duration;size:100" json:"duration"`
	Instructions   string `gorm:"column:instructions;type:text" json:"instructions"`
}

func (PrescriptionMedicine) TableName() string { return "prescription_medicines" }

type PrescriptionTest struct {
	ID             uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	PrescriptionID uint   `gorm:"column:prescription_id;index;not null" json:"prescriptionId"`
	TestName       string `gorm:"column:test_name;size:255;not null" json:"testName"`
}

func (PrescriptionTest) TableName() string { return "prescription_tests" }
