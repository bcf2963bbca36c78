package contracts

import (
	"context"

	"medibridge-service/internal/app/models"
	"medibridge-service/internal/pkg/dto/requests"
	"medibridge-service/internal/pkg/dto/responses"
	"medibridge-service/internal/pkg/utils"
)

type PrescriptionRepository interface {
	CreateWithLines(ctx context.Context, prescription *models.Prescription) error
	FindByID(ctx context.Context, prescriptionID uint) (*models.Prescription, error)
	FindByAppointmentID(ctx context.Context, appointmentID uint) (*models.Prescription, error)
	ListByPatient(ctx context.Context, patientID uint, limit, offset int) ([]models.Prescription, int64, error)
	ListByDoctor(ctx context.Context, doctorID uint, limit, offset int) ([]models.Prescription, int64, error)
}

type PrescriptionUsecase interface {
	Create(ctx context.Context, claims *utils.TokenClaims, request *requests.CreatePrescription) (*responses.CreatePrescription, error)
	List(ctx context.Context, claims *utils.TokenClaims, page, limit int) ([]responses.Prescription, *responses.Pagination, error)
	GetByID(ctx context.Context, claims *utils.TokenClaims, prescriptionID uint) (*responses.Prescription, error)
}
