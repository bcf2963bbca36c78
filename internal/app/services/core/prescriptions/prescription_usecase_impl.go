package prescriptions

import (
	"context"
	"time"

	"medibridge-service/internal/app/contracts"
	"medibridge-service/internal/app/models"
	"medibridge-service/internal/pkg/constvars"
	"medibridge-service/internal/pkg/dto/requests"
	"medibridge-service/internal/pkg/dto/responses"
	"medibridge-service/internal/pkg/exceptions"
	"medibridge-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type prescriptionUsecase struct {
	PrescriptionRepository contracts.PrescriptionRepository
	AppointmentRepository  contracts.AppointmentRepository
	UserRepository         contracts.UserRepository
	Logger                 *zap.Logger
}

func NewPrescriptionUsecase(
	prescriptionRepository contracts.PrescriptionRepository,
	appointmentRepository contracts.AppointmentRepository,
	userRepository contracts.UserRepository,
	logger *zap.Logger,
) contracts.PrescriptionUsecase {
	return &prescriptionUsecase{
		PrescriptionRepository: prescriptionRepository,
		AppointmentRepository:  appointmentRepository,
		UserRepository:         userRepository,
		Logger:                 logger,
	}
}

func (uc *prescriptionUsecase) Create(ctx context.Context, claims *utils.TokenClaims, request *requests.CreatePrescription) (*responses.CreatePrescription, error) {
	doctor, err := uc.UserRepository.FindDoctorByUserID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrProfileNotFound(nil)
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, request.AppointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}
	if appointment.DoctorID != doctor.DoctorID {
		return nil, exceptions.ErrNotResourceOwner(nil)
	}

	existing, err := uc.PrescriptionRepository.FindByAppointmentID(ctx, request.AppointmentID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrPrescriptionAlreadyExists(nil)
	}

	medicines := make([]models.PrescriptionMedicine, 0, len(request.Medicines))
	for _, medicine := range request.Medicines {
		medicines = append(medicines, models.PrescriptionMedicine{
			MedicineName: medicine.MedicineName,
			Dosage:       medicine.Dosage,
			Frequency:    medicine.Frequency,
			Duration:     medicine.Duration,
			Instructions: medicine.Instructions,
		})
	}
	tests := make([]models.PrescriptionTest, 0, len(request.Tests))
	for _, testName := range request.Tests {
		tests = append(tests, models.PrescriptionTest{TestName: testName})
	}

	prescription := &models.Prescription{
		AppointmentID: appointment.AppointmentID,
		PatientID:     appointment.PatientID,
		DoctorID:      appointment.DoctorID,
		Diagnosis:     request.Diagnosis,
		Notes:         request.Notes,
		FollowUpDate:  request.FollowUpDate,
		Medicines:     medicines,
		Tests:         tests,
	}

	if err := uc.PrescriptionRepository.CreateWithLines(ctx, prescription); err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Logger, "prescription_created", utils.GetRequestID(ctx),
		zap.Uint("prescription_id", prescription.PrescriptionID),
		zap.Uint("appointment_id", prescription.AppointmentID),
	)

	return &responses.CreatePrescription{PrescriptionID: prescription.PrescriptionID}, nil
}

func (uc *prescriptionUsecase) List(ctx context.Context, claims *utils.TokenClaims, page, limit int) ([]responses.Prescription, *responses.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit

	var prescriptions []models.Prescription
	var total int64
	var err error

	switch claims.Role {
	case constvars.RolePatient:
		patient, findErr := uc.UserRepository.FindPatientByUserID(ctx, claims.UserID)
		if findErr != nil {
			return nil, nil, findErr
		}
		if patient == nil {
			return nil, nil, exceptions.ErrProfileNotFound(nil)
		}
		prescriptions, total, err = uc.PrescriptionRepository.ListByPatient(ctx, patient.PatientID, limit, offset)
	case constvars.RoleDoctor:
		doctor, findErr := uc.UserRepository.FindDoctorByUserID(ctx, claims.UserID)
		if findErr != nil {
			return nil, nil, findErr
		}
		if doctor == nil {
			return nil, nil, exceptions.ErrProfileNotFound(nil)
		}
		prescriptions, total, err = uc.PrescriptionRepository.ListByDoctor(ctx, doctor.DoctorID, limit, offset)
	default:
		return nil, nil, exceptions.ErrRoleNotAllowed(nil)
	}
	if err != nil {
		return nil, nil, err
	}

	result := make([]responses.Prescription, 0, len(prescriptions))
	for _, prescription := range prescriptions {
		result = append(result, toPrescriptionResponse(&prescription))
	}

	pagination := utils.BuildPaginationResponse(int(total), page, limit, "/api/prescriptions")
	return result, pagination, nil
}

func (uc *prescriptionUsecase) GetByID(ctx context.Context, claims *utils.TokenClaims, prescriptionID uint) (*responses.Prescription, error) {
	prescription, err := uc.PrescriptionRepository.FindByID(ctx, prescriptionID)
	if err != nil {
		return nil, err
	}
	if prescription == nil {
		return nil, exceptions.ErrPrescriptionNotFound(nil)
	}

	switch claims.Role {
	case constvars.RolePatient:
		patient, err := uc.UserRepository.FindPatientByUserID(ctx, claims.UserID)
		if err != nil {
			return nil, err
		}
		if patient == nil || patient.PatientID != prescription.PatientID {
			return nil, exceptions.ErrNotResourceOwner(nil)
		}
	case constvars.RoleDoctor:
		doctor, err := uc.UserRepository.FindDoctorByUserID(ctx, claims.UserID)
		if err != nil {
			return nil, err
		}
		if doctor == nil || doctor.DoctorID != prescription.DoctorID {
			return nil, exceptions.ErrNotResourceOwner(nil)
		}
	default:
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	response := toPrescriptionResponse(prescription)
	return &response, nil
}

func toPrescriptionResponse(prescription *models.Prescription) responses.Prescription {
	medicines := make([]responses.PrescriptionMedicine, 0, len(prescription.Medicines))
	for _, medicine := range prescription.Medicines {
		medicines = append(medicines, responses.PrescriptionMedicine{
			MedicineName: medicine.MedicineName,
			Dosage:       medicine.Dosage,
			Frequency:    medicine.Frequency,
			Duration:     medicine.Duration,
			Instructions: medicine.Instructions,
		})
	}
	tests := make([]string, 0, len(prescription.Tests))
	for _, test := range prescription.Tests {
		tests = append(tests, test.TestName)
	}
	return responses.Prescription{
		PrescriptionID: prescription.PrescriptionID,
		AppointmentID:  prescription.AppointmentID,
		Diagnosis:      prescription.Diagnosis,
		Medicines:      medicines,
		Tests:          tests,
		Notes:          prescription.Notes,
		FollowUpDate:   prescription.FollowUpDate,
		CreatedAt:      prescription.CreatedAt.Format(time.RFC3339),
	}
}
