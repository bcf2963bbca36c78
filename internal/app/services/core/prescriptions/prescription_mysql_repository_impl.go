package prescriptions

import (
	"context"
	"errors"

	"medibridge-service/internal/app/contracts"
	"medibridge-service/internal/app/models"
	"medibridge-service/internal/pkg/exceptions"

	"gorm.io/gorm"
)

type PrescriptionMySQLRepository struct {
	DB *gorm.DB
}

func NewPrescriptionMySQLRepository(db *gorm.DB) contracts.PrescriptionRepository {
	return &PrescriptionMySQLRepository{DB: db}
}

// CreateWithLines inserts the prescription with its medicine and test lines
// and marks the appointment completed, all in one transaction.
func (r *PrescriptionMySQLRepository) CreateWithLines(ctx context.Context, prescription *models.Prescription) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(prescription).Error; err != nil {
			return exceptions.ErrMySQLInsertData(err)
		}
		err := tx.Model(&models.Appointment{}).
			Where("appointment_id = ?", prescription.AppointmentID).
			Update("status", models.AppointmentStatusCompleted).Error
		if err != nil {
			return exceptions.ErrMySQLUpdateData(err)
		}
		return nil
	})
}

func (r *PrescriptionMySQLRepository) FindByID(ctx context.Context, prescriptionID uint) (*models.Prescription, error) {
	var prescription models.Prescription
	err := r.DB.WithContext(ctx).
		Preload("Medicines").
		Preload("Tests").
		Where("prescription_id = ?", prescriptionID).
		First(&prescription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, exceptions.ErrMySQLFindData(err)
	}
	return &prescription, nil
}

func (r *PrescriptionMySQLRepository) FindByAppointmentID(ctx context.Context, appointmentID uint) (*models.Prescription, error) {
	var prescription models.Prescription
	err := r.DB.WithContext(ctx).Where("appointment_id = ?", appointmentID).First(&prescription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, exceptions.ErrMySQLFindData(err)
	}
	return &prescription, nil
}

func (r *PrescriptionMySQLRepository) ListByPatient(ctx context.Context, patientID uint, limit, offset int) ([]models.Prescription, int64, error) {
	return r.list(ctx, "patient_id = ?", patientID, limit, offset)
}

func (r *PrescriptionMySQLRepository) ListByDoctor(ctx context.Context, doctorID uint, limit, offset int) ([]models.Prescription, int64, error) {
	return r.list(ctx, "doctor_id = ?", doctorID, limit, offset)
}

func (r *PrescriptionMySQLRepository) list(ctx context.Context, ownerClause string, ownerID uint, limit, offset int) ([]models.Prescription, int64, error) {
	query := r.DB.WithContext(ctx).Model(&models.Prescription{}).Where(ownerClause, ownerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, exceptions.ErrMySQLFindData(err)
	}

	var prescriptions []models.Prescription
	err := query.
		Preload("Medicines").
		Preload("Tests").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&prescriptions).Error
	if err != nil {
		return nil, 0, exceptions.ErrMySQLFindData(err)
	}
	return prescriptions, total, nil
}
