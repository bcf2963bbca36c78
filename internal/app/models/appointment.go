package models

import "time"

const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

const (
	PaymentStateUnpaid   = "unpaid"
	PaymentStatePaid     = "paid"
	PaymentStateRefunded = "refunded"
)

type Appointment struct {
	AppointmentID      uint      `gorm:"column:appointment_id;primaryKey;autoIncrement" json:"appointmentId"`
	PatientID          uint      `gorm:"column:patient_id;index;not null" json:"patientId"`
	DoctorID           uint      `gorm:"column:doctor_id;not null;uniqueIndex:uniq_doctor_slot" json:"doctorId"`
	AppointmentDate    string    `gorm:"column:appointment_date;size:20;not null;uniqueIndex:uniq_doctor_slot" json:"appointmentDate"`
	AppointmentTime    string    `gorm:"column:appointment_time;size:10;not null;uniqueIndex:uniq_doctor_slot" json:"appointmentTime"`
	ConsultationType   string    `gorm:"column:consultation_type;size:20;default:in-person" json:"consultationType"`
	Symptoms           string    `gorm:"column:symptoms;type:text" json:"symptoms"`
	ConsultationFee    float64   `gorm:"column:consultation_fee" json:"consultationFee"`
	Status             string    `gorm:"column:status;size:20;default:pending" json:"status"`
	PaymentStatus      string    `gorm:"column:payment_status;size:20;default:unpaid" json:"paymentStatus"`
	DoctorNotes        string    `gorm:"column:doctor_notes;type:text" json:"doctorNotes"`
	CancellationReason string    `gorm:"column:cancellation_reason;type:text" json:"cancellationReason"`
	CancelledBy        string    `gorm:"column:cancelled_by;size:20" json:"cancelledBy,omitempty"`
	// CancelledSeq is 0 while the appointment holds its slot and becomes the
	// appointment id on cancellation, so the unique index on
	// (doctor, date, time, cancelled_seq) only ever blocks live duplicates.
	CancelledSeq uint `gorm:"column:cancelled_seq;not null;default:0;uniqueIndex:uniq_doctor_slot" json:"-"`
	CreatedAt          time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt          time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Appointment) TableName() string { return "appointments" }
