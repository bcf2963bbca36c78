package appointments

import (
	"context"
	"fmt"

	"medibridge-service/internal/app/contracts"
	"medibridge-service/internal/app/models"
	"medibridge-service/internal/pkg/constvars"
	"medibridge-service/internal/pkg/dto/requests"
	"medibridge-service/internal/pkg/dto/responses"
	"medibridge-service/internal/pkg/exceptions"
	"medibridge-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	UserRepository        contracts.UserRepository
	MailerService         contracts.MailerService
	Logger                *zap.Logger
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	userRepository contracts.UserRepository,
	mailerService contracts.MailerService,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		UserRepository:        userRepository,
		MailerService:         mailerService,
		Logger:                logger,
	}
}

func (uc *appointmentUsecase) Book(ctx context.Context, claims *utils.TokenClaims, request *requests.BookAppointment) (*responses.BookAppointment, error) {
	patient, err := uc.UserRepository.FindPatientByUserID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrProfileNotFound(nil)
	}

	doctor, err := uc.UserRepository.FindDoctorByID(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	consultationType := request.ConsultationType
	if consultationType == "" {
		consultationType = "in-person"
	}

	appointment := &models.Appointment{
		PatientID:        patient.PatientID,
		DoctorID:         doctor.DoctorID,
		AppointmentDate:  request.AppointmentDate,
		AppointmentTime:  request.AppointmentTime,
		ConsultationType: consultationType,
		Symptoms:         request.Symptoms,
		ConsultationFee:  doctor.ConsultationFee,
		Status:           models.AppointmentStatusPending,
		PaymentStatus:    models.PaymentStateUnpaid,
	}

	if err := uc.AppointmentRepository.CreateIfSlotFree(ctx, appointment); err != nil {
		return nil, err
	}

	doctorUser, err := uc.UserRepository.FindByID(ctx, doctor.UserID)
	if err != nil {
		return nil, err
	}
	doctorName := ""
	if doctorUser != nil {
		doctorName = doctorUser.Name
	}

	utils.LogBusinessEvent(uc.Logger, "appointment_booked", utils.GetRequestID(ctx),
		zap.Uint("appointment_id", appointment.AppointmentID),
		zap.Uint("patient_id", appointment.PatientID),
		zap.Uint("doctor_id", appointment.DoctorID),
	)

	return &responses.BookAppointment{
		AppointmentID:   appointment.AppointmentID,
		DoctorName:      doctorName,
		AppointmentDate: appointment.AppointmentDate,
		AppointmentTime: appointment.AppointmentTime,
		ConsultationFee: appointment.ConsultationFee,
	}, nil
}

func (uc *appointmentUsecase) List(ctx context.Context, claims *utils.TokenClaims, request *requests.ListAppointments) ([]responses.Appointment, *responses.Pagination, error) {
	page, pageSize := normalizePaging(request.Page, request.PageSize)
	offset := (page - 1) * pageSize

	var appointments []models.Appointment
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
		appointments, total, err = uc.AppointmentRepository.ListByPatient(ctx, patient.PatientID, request.Status, request.Date, pageSize, offset)
	case constvars.RoleDoctor:
		doctor, findErr := uc.UserRepository.FindDoctorByUserID(ctx, claims.UserID)
		if findErr != nil {
			return nil, nil, findErr
		}
		if doctor == nil {
			return nil, nil, exceptions.ErrProfileNotFound(nil)
		}
		appointments, total, err = uc.AppointmentRepository.ListByDoctor(ctx, doctor.DoctorID, request.Status, request.Date, pageSize, offset)
	default:
		return nil, nil, exceptions.ErrRoleNotAllowed(nil)
	}
	if err != nil {
		return nil, nil, err
	}

	result := make([]responses.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		result = append(result, toAppointmentResponse(&appointment))
	}

	pagination := utils.BuildPaginationResponse(int(total), page, pageSize, "/api/appointments")
	return result, pagination, nil
}

func (uc *appointmentUsecase) UpdateStatus(ctx context.Context, claims *utils.TokenClaims, appointmentID uint, request *requests.UpdateAppointmentStatus) error {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return exceptions.ErrAppointmentNotFound(nil)
	}

	doctor, err := uc.UserRepository.FindDoctorByUserID(ctx, claims.UserID)
	if err != nil {
		return err
	}
	if doctor == nil || doctor.DoctorID != appointment.DoctorID {
		return exceptions.ErrNotResourceOwner(nil)
	}

	if !validAppointmentTransition(appointment.Status, request.Status) {
		return exceptions.ErrInvalidStatusTransition(nil)
	}

	appointment.Status = request.Status
	if request.Notes != "" {
		appointment.DoctorNotes = request.Notes
	}
	if err := uc.AppointmentRepository.Update(ctx, appointment); err != nil {
		return err
	}

	if appointment.Status == models.AppointmentStatusConfirmed {
		uc.queueConfirmationEmail(ctx, appointment)
	}

	utils.LogBusinessEvent(uc.Logger, "appointment_status_updated", utils.GetRequestID(ctx),
		zap.Uint("appointment_id", appointment.AppointmentID),
		zap.String("status", appointment.Status),
	)
	return nil
}

// queueConfirmationEmail is best effort. A mail outage must not fail the
// status update itself.
func (uc *appointmentUsecase) queueConfirmationEmail(ctx context.Context, appointment *models.Appointment) {
	if uc.MailerService == nil {
		return
	}
	patient, err := uc.UserRepository.FindPatientByID(ctx, appointment.PatientID)
	if err != nil || patient == nil {
		return
	}
	patientUser, err := uc.UserRepository.FindByID(ctx, patient.UserID)
	if err != nil || patientUser == nil {
		return
	}

	payload := &requests.EmailPayload{
		To:      patientUser.Email,
		Subject: "Appointment confirmed",
		Body: fmt.Sprintf(
			"Your appointment on %s at %s has been confirmed.",
			appointment.AppointmentDate, appointment.AppointmentTime,
		),
	}
	if err := uc.MailerService.QueueEmail(ctx, payload); err != nil {
		uc.Logger.Warn("failed to queue appointment confirmation email",
			zap.Uint("appointment_id", appointment.AppointmentID),
			zap.Error(err),
		)
	}
}

func (uc *appointmentUsecase) Cancel(ctx context.Context, claims *utils.TokenClaims, appointmentID uint, request *requests.CancelAppointment) error {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return exceptions.ErrAppointmentNotFound(nil)
	}

	if err := uc.checkCancelOwnership(ctx, claims, appointment); err != nil {
		return err
	}

	switch appointment.Status {
	case models.AppointmentStatusCancelled:
		return exceptions.ErrAppointmentAlreadyCancelled(nil)
	case models.AppointmentStatusCompleted:
		return exceptions.ErrCancelCompletedAppointment(nil)
	}

	appointment.Status = models.AppointmentStatusCancelled
	appointment.CancellationReason = request.CancellationReason
	appointment.CancelledBy = claims.Role
	appointment.CancelledSeq = appointment.AppointmentID
	if err := uc.AppointmentRepository.Update(ctx, appointment); err != nil {
		return err
	}

	utils.LogBusinessEvent(uc.Logger, "appointment_cancelled", utils.GetRequestID(ctx),
		zap.Uint("appointment_id", appointment.AppointmentID),
	)
	return nil
}

func (uc *appointmentUsecase) checkCancelOwnership(ctx context.Context, claims *utils.TokenClaims, appointment *models.Appointment) error {
	switch claims.Role {
	case constvars.RolePatient:
		patient, err := uc.UserRepository.FindPatientByUserID(ctx, claims.UserID)
		if err != nil {
			return err
		}
		if patient == nil || patient.PatientID != appointment.PatientID {
			return exceptions.ErrNotResourceOwner(nil)
		}
	case constvars.RoleDoctor:
		doctor, err := uc.UserRepository.FindDoctorByUserID(ctx, claims.UserID)
		if err != nil {
			return err
		}
		if doctor == nil || doctor.DoctorID != appointment.DoctorID {
			return exceptions.ErrNotResourceOwner(nil)
		}
	default:
		return exceptions.ErrRoleNotAllowed(nil)
	}
	return nil
}

func validAppointmentTransition(current, next string) bool {
	switch next {
	case models.AppointmentStatusConfirmed:
		return current == models.AppointmentStatusPending
	case models.AppointmentStatusCompleted:
		return current == models.AppointmentStatusPending || current == models.AppointmentStatusConfirmed
	}
	return false
}

func toAppointmentResponse(appointment *models.Appointment) responses.Appointment {
	return responses.Appointment{
		AppointmentID:      appointment.AppointmentID,
		PatientID:          appointment.PatientID,
		DoctorID:           appointment.DoctorID,
		AppointmentDate:    appointment.AppointmentDate,
		AppointmentTime:    appointment.AppointmentTime,
		ConsultationType:   appointment.ConsultationType,
		Symptoms:           appointment.Symptoms,
		ConsultationFee:    appointment.ConsultationFee,
		Status:             appointment.Status,
		PaymentStatus:      appointment.PaymentStatus,
		DoctorNotes:        appointment.DoctorNotes,
		CancellationReason: appointment.CancellationReason,
	}
}

func normalizePaging(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}
	return page, pageSize
}
