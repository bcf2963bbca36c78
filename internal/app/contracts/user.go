package contracts

import (
	"context"

	"medibridge-service/internal/app/models"
)

type UserRepository interface {
	CreateUserWithProfile(ctx context.Context, user *models.User, profile *models.RoleProfile) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, userID uint) (*models.User, error)
	UpdatePassword(ctx context.Context, userID uint, hashedPassword string) error
	TouchLastLogin(ctx context.Context, userID uint) error
	FindProfileByUserID(ctx context.Context, userID uint, role string) (*models.RoleProfile, error)
	FindPatientByID(ctx context.Context, patientID uint) (*models.Patient, error)
	FindPatientByUserID(ctx context.Context, userID uint) (*models.Patient, error)
	FindDoctorByID(ctx context.Context, doctorID uint) (*models.Doctor, error)
	FindDoctorByUserID(ctx context.Context, userID uint) (*models.Doctor, error)
	FindShopByID(ctx context.Context, shopID uint) (*models.MedicalShop, error)
	FindShopByUserID(ctx context.Context, userID uint) (*models.MedicalShop, error)
}
