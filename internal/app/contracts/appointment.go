package contracts

import (
	"context"

	"medibridge-service/internal/app/models"
	"medibridge-service/internal/pkg/dto/requests"
	"medibridge-service/internal/pkg/dto/responses"
	"medibridge-service/internal/pkg/utils"
)

type AppointmentRepository interface {
	CreateIfSlotFree(ctx context.Context, appointment *models.Appointment) error
	FindByID(ctx context.Context, appointmentID uint) (*models.Appointment, error)
	ListByPatient(ctx context.Context, patientID uint, status, date string, limit, offset int) ([]models.Appointment, int64, error)
	ListByDoctor(ctx context.Context, doctorID uint, status, date string, limit, offset int) ([]models.Appointment, int64, error)
	Update(ctx context.Context, appointment *models.Appointment) error
}

type AppointmentUsecase interface {
	Book(ctx context.Context, claims *utils.TokenClaims, request *requests.BookAppointment) (*responses.BookAppointment, error)
	List(ctx context.Context, claims *utils.TokenClaims, request *requests.ListAppointments) ([]responses.Appointment, *responses.Pagination, error)
	UpdateStatus(ctx context.Context, claims *utils.TokenClaims, appointmentID uint, request *requests.UpdateAppointmentStatus) error
	Cancel(ctx context.Context, claims *utils.TokenClaims, appointmentID uint, request *requests.CancelAppointment) error
}
