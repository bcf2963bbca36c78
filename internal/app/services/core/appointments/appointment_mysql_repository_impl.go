package appointments

import (
	"context"
	"errors"

	"medibridge-service/internal/app/contracts"
	"medibridge-service/internal/app/models"
	"medibridge-service/internal/pkg/exceptions"

	"gorm.io/gorm"
)

type AppointmentMySQLRepository struct {
	DB *gorm.DB
}

func NewAppointmentMySQLRepository(db *gorm.DB) contracts.AppointmentRepository {
	return &AppointmentMySQLRepository{DB: db}
}

// CreateIfSlotFree inserts the appointment only when no live appointment
// exists for the same doctor, date and time. The existence check gives the
// common case a clean 409; the unique index on (doctor_id, appointment_date,
// appointment_time, cancelled_seq) is the authority when two bookings race
// past the check, since live rows all carry cancelled_seq 0.
func (r *AppointmentMySQLRepository) CreateIfSlotFree(ctx context.Context, appointment *models.Appointment) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&models.Appointment{}).
			Where("doctor_id = ? AND appointment_date = ? AND appointment_time = ? AND status <> ?",
				appointment.DoctorID, appointment.AppointmentDate, appointment.AppointmentTime, models.AppointmentStatusCancelled).
			Count(&count).Error
		if err != nil {
			return exceptions.ErrMySQLFindData(err)
		}
		if count > 0 {
			return exceptions.ErrSlotAlreadyBooked(nil)
		}
		if err := tx.Create(appointment).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return exceptions.ErrSlotAlreadyBooked(err)
			}
			return exceptions.ErrMySQLInsertData(err)
		}
		return nil
	})
}

func (r *AppointmentMySQLRepository) FindByID(ctx context.Context, appointmentID uint) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.DB.WithContext(ctx).Where("appointment_id = ?", appointmentID).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, exceptions.ErrMySQLFindData(err)
	}
	return &appointment, nil
}

func (r *AppointmentMySQLRepository) ListByPatient(ctx context.Context, patientID uint, status, date string, limit, offset int) ([]models.Appointment, int64, error) {
	return r.list(ctx, "patient_id = ?", patientID, status, date, limit, offset)
}

func (r *AppointmentMySQLRepository) ListByDoctor(ctx context.Context, doctorID uint, status, date string, limit, offset int) ([]models.Appointment, int64, error) {
	return r.list(ctx, "doctor_id = ?", doctorID, status, date, limit, offset)
}

func (r *AppointmentMySQLRepository) list(ctx context.Context, ownerClause string, ownerID uint, status, date string, limit, offset int) ([]models.Appointment, int64, error) {
	query := r.DB.WithContext(ctx).Model(&models.Appointment{}).Where(ownerClause, ownerID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if date != "" {
		query = query.Where("appointment_date = ?", date)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, exceptions.ErrMySQLFindData(err)
	}

	var appointments []models.Appointment
	err := query.
		Order("appointment_date DESC, appointment_time DESC").
		Limit(limit).
		Offset(offset).
		Find(&appointments).Error
	if err != nil {
		return nil, 0, exceptions.ErrMySQLFindData(err)
	}
	return appointments, total, nil
}

func (r *AppointmentMySQLRepository) Update(ctx context.Context, appointment *models.Appointment) error {
	if err := r.DB.WithContext(ctx).Save(appointment).Error; err != nil {
		return exceptions.ErrMySQLUpdateData(err)
	}
	return nil
}
